package list

import "reflect"

// Temporary head (dummy node) technique.
// A sentinel is placed ahead of the real head, so the head element is
// handled by the same code path as any other element.
// The sentinel never escapes from the method.

func (l *singlyLinkedList[T]) DeleteByValue(v T) bool {
	if l == nil || l.head == nil {
		return false
	}

	dynamic := mayHoldUncomparable[T]()
	var dummy SinglyNodeElement[T]
	dummy.next = l.head
	prev, current := &dummy, l.head
	for current != nil {
		if valueEqual(dynamic, current.Value, v) {
			prev.next = current.next
			// avoid memory leaks
			current.next = nil
			// The head may be the deleted one.
			l.head = dummy.next
			return true
		}
		prev, current = current, current.next
	}
	l.head = dummy.next
	return false
}

func (l *singlyLinkedList[T]) Reverse() {
	if l == nil || l.head == nil {
		return
	}

	var dummy SinglyNodeElement[T]
	dummy.next = l.head
	prev, current := &dummy, l.head
	for current != nil {
		next := current.next
		current.next = prev
		prev, current = current, next
	}
	l.head = prev
	// The old head is the new tail and it still points to the sentinel.
	if dummy.next != nil {
		dummy.next.next = nil
	}
}

// mayHoldUncomparable reports whether T satisfies comparable while its values
// may still carry slices, maps or funcs behind interfaces.
func mayHoldUncomparable[T comparable]() bool {
	switch reflect.TypeOf((*T)(nil)).Elem().Kind() {
	case reflect.Interface, reflect.Struct, reflect.Array:
		return true
	}
	return false
}

// valueEqual never panics. A value with an uncomparable dynamic part
// equals to nothing.
func valueEqual[T comparable](dynamic bool, a, b T) bool {
	if dynamic {
		if rv := reflect.ValueOf(a); rv.IsValid() && !rv.Comparable() {
			return false
		}
	}
	return a == b
}
