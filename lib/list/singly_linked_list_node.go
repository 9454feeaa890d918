package list

type SinglyNodeElement[T comparable] struct {
	next  *SinglyNodeElement[T]
	Value T // The type of value may be a small size type.
	// It should be placed at the end of the struct to avoid taking too much padding.
}

func newSinglyNodeElement[T comparable](v T) *SinglyNodeElement[T] {
	return &SinglyNodeElement[T]{
		Value: v,
	}
}

func (e *SinglyNodeElement[T]) HasNext() bool {
	if e == nil {
		return false
	}
	return e.next != nil
}

func (e *SinglyNodeElement[T]) Next() *SinglyNodeElement[T] {
	if e == nil {
		return nil
	}
	return e.next
}
