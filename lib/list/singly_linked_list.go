package list

import (
	"fmt"
	"strings"
)

var _ SinglyLinkedList[struct{}] = (*singlyLinkedList[struct{}])(nil) // Type check assertion

const singlyLinkedListTerminator = "nil"

type singlyLinkedList[T comparable] struct {
	head *SinglyNodeElement[T]
}

func NewSinglyLinkedList[T comparable]() SinglyLinkedList[T] {
	return &singlyLinkedList[T]{}
}

func (l *singlyLinkedList[T]) Front() *SinglyNodeElement[T] {
	if l == nil {
		return nil
	}
	return l.head
}

// tail walks to the last element. Caller has to make sure the list is not empty.
func (l *singlyLinkedList[T]) tail() *SinglyNodeElement[T] {
	iterator := l.head
	for iterator.next != nil {
		iterator = iterator.next
	}
	return iterator
}

func (l *singlyLinkedList[T]) Append(v T) *SinglyNodeElement[T] {
	if l == nil {
		return nil
	}

	e := newSinglyNodeElement[T](v)
	if l.head == nil {
		// empty list, new append element is the first one
		l.head = e
		return e
	}
	l.tail().next = e
	return e
}

func (l *singlyLinkedList[T]) AppendValue(values ...T) []*SinglyNodeElement[T] {
	if l == nil || len(values) <= 0 {
		return nil
	}

	elements := make([]*SinglyNodeElement[T], 0, len(values))
	for _, v := range values {
		elements = append(elements, l.Append(v))
	}
	return elements
}

func (l *singlyLinkedList[T]) Len() int64 {
	if l == nil {
		return 0
	}

	var count int64
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		count++
	}
	return count
}

// Foreach, the next element is fetched before fn is called, so fn
// is free to relink the current element.
func (l *singlyLinkedList[T]) Foreach(fn func(idx int64, e *SinglyNodeElement[T]) error) error {
	if l == nil || fn == nil {
		return nil
	}

	var (
		iterator       = l.head
		idx      int64 = 0
	)
	for iterator != nil {
		n := iterator.next
		if err := fn(idx, iterator); err != nil {
			return err
		}
		iterator = n
		idx++
	}
	return nil
}

func (l *singlyLinkedList[T]) ToSlice() []T {
	values := make([]T, 0, 8)
	if l == nil {
		return values
	}
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		values = append(values, iterator.Value)
	}
	return values
}

func (l *singlyLinkedList[T]) String() string {
	builder := strings.Builder{}
	if l != nil {
		for iterator := l.head; iterator != nil; iterator = iterator.next {
			_, _ = builder.WriteString(fmt.Sprint(iterator.Value))
			_, _ = builder.WriteString(" -> ")
		}
	}
	_, _ = builder.WriteString(singlyLinkedListTerminator)
	return builder.String()
}
