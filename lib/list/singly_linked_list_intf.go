package list

// Note that the singly linked list is not thread safe.
// Callers have to serialize the access by themselves.

// SinglyLinkedList is a forward only linked list which keeps nothing but the head.
// Length and tail lookup are resolved by traversal, so every operation is O(n)
// time and O(1) extra space.
//
// InjectCycle breaks the finite chain on purpose. After a successful injection only
// HasCycle and FindCycleStart may be called, any other method never returns.
type SinglyLinkedList[T comparable] interface {
	// Len counts the elements from head to the end of the chain.
	Len() int64
	// Front returns the head element or nil if the list is empty.
	Front() *SinglyNodeElement[T]
	// Append appends value v at the tail of the list and returns the new element.
	Append(v T) *SinglyNodeElement[T]
	// AppendValue appends the values in order and returns the new elements.
	AppendValue(values ...T) []*SinglyNodeElement[T]
	// Foreach traverses the list and executes function fn for each element.
	// If fn returns an error, the traversal stops and returns the error.
	Foreach(fn func(idx int64, e *SinglyNodeElement[T]) error) error
	// ToSlice returns the values from head to tail.
	ToSlice() []T
	// String renders the list as "v1 -> v2 -> nil".
	String() string

	// FindMiddle returns the value at index Len()/2.
	// For even length it is the upper one of the two middle elements.
	FindMiddle() (T, bool)

	// InjectCycle links the tail back to the element at pos.
	// It returns false without any modification if pos is out of range.
	InjectCycle(pos int) bool
	// HasCycle reports whether the chain loops back.
	HasCycle() bool
	// FindCycleStart returns the value of the element where the cycle begins.
	FindCycleStart() (T, bool)

	// DeleteByValue removes the first element whose value equals to v.
	// Values holding slices, maps or funcs behind interfaces never match.
	DeleteByValue(v T) bool
	// Reverse reverses the list in place.
	Reverse()
}
