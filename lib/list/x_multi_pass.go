package list

// Multiple pass technique.
// The first pass counts the elements, the second pass stops at the middle.

func (l *singlyLinkedList[T]) FindMiddle() (T, bool) {
	var zero T
	if l == nil || l.head == nil {
		return zero, false
	}

	var count int64
	for iterator := l.head; iterator != nil; iterator = iterator.next {
		count++
	}

	// 0-indexed, the even length list returns the upper middle.
	middle := l.head
	for i := int64(0); i < count/2; i++ {
		middle = middle.next
	}
	return middle.Value, true
}
