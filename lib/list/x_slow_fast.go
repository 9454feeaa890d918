package list

// References:
// Floyd's cycle-finding algorithm (tortoise and hare).
// https://en.wikipedia.org/wiki/Cycle_detection#Floyd's_tortoise_and_hare
//
// Let mu be the distance from head to the cycle start and lambda the cycle length.
// When slow and fast meet, slow has walked k steps and fast 2k steps, so k is a
// multiple of lambda. Then walking mu more steps from the meeting point lands on
// the cycle start, which is the same point reached by walking mu steps from head.

// InjectCycle is a testing helper only.
// It breaks the finite chain, so Len, ToSlice, String and the others never return afterwards.
func (l *singlyLinkedList[T]) InjectCycle(pos int) bool {
	if l == nil || l.head == nil || pos < 0 {
		return false
	}

	var (
		target *SinglyNodeElement[T]
		last   *SinglyNodeElement[T]
		idx    = 0
	)
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		if idx == pos {
			target = iterator
		}
		last = iterator
		idx++
	}
	if target == nil || last == nil {
		// pos >= length
		return false
	}
	last.next = target
	return true
}

// meet runs the detection phase. It returns the element where slow and fast
// pointers meet or nil if fast reaches the end of the chain.
func (l *singlyLinkedList[T]) meet() *SinglyNodeElement[T] {
	slow, fast := l.head, l.head
	for fast != nil && fast.next != nil {
		slow = slow.next
		fast = fast.next.next
		if slow == fast {
			return slow
		}
	}
	return nil
}

func (l *singlyLinkedList[T]) HasCycle() bool {
	if l == nil || l.head == nil {
		return false
	}
	return l.meet() != nil
}

func (l *singlyLinkedList[T]) FindCycleStart() (T, bool) {
	var zero T
	if l == nil || l.head == nil {
		return zero, false
	}
	// A single element without a self loop.
	if l.head.next == nil {
		return zero, false
	}

	fast := l.meet()
	if fast == nil {
		return zero, false
	}

	slow := l.head
	for slow != fast {
		slow = slow.next
		fast = fast.next
	}
	return slow.Value, true
}
