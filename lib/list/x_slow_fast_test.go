package list

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestSinglyLinkedList_FindCycleStartAcyclic(t *testing.T) {
	for n := 0; n <= 10; n++ {
		slist := NewSinglyLinkedList[int]()
		slist.AppendValue(lo.RangeFrom(1, n)...)
		start, ok := slist.FindCycleStart()
		require.False(t, ok, "length %d", n)
		require.Zero(t, start)
		require.False(t, slist.HasCycle())
	}
}

func TestSinglyLinkedList_InjectCycleInvalid(t *testing.T) {
	empty := NewSinglyLinkedList[int]()
	require.False(t, empty.InjectCycle(0))
	require.False(t, empty.InjectCycle(-1))

	slist := NewSinglyLinkedList[int]()
	slist.AppendValue(1, 2, 3)
	require.False(t, slist.InjectCycle(-1))
	require.False(t, slist.InjectCycle(3))
	require.False(t, slist.InjectCycle(10))
	// No modification.
	require.Equal(t, []int{1, 2, 3}, slist.ToSlice())
	_, ok := slist.FindCycleStart()
	require.False(t, ok)
}

func TestSinglyLinkedList_InjectCycle(t *testing.T) {
	testcases := []struct {
		name   string
		values []any
		pos    int
		want   any
	}{
		{"middle", []any{1, 2, 3, 4, 5}, 1, 2},
		{"head", []any{1, 2, 3}, 0, 1},
		{"tail self loop", []any{1, 2, 3}, 2, 3},
		{"single self loop", []any{42}, 0, 42},
		{"two elements to head", []any{1, 2}, 0, 1},
		{"two elements self loop", []any{1, 2}, 1, 2},
		{"larger", lo.ToAnySlice(lo.RangeFrom(1, 10)), 3, 4},
		{"strings", []any{"apple", "banana", "cherry", "date"}, 1, "banana"},
		{"mixed", []any{1, "hello", 3.14, true, "value"}, 2, 3.14},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			slist := NewSinglyLinkedList[any]()
			slist.AppendValue(tc.values...)
			require.True(t, slist.InjectCycle(tc.pos))
			require.True(t, slist.HasCycle())
			start, ok := slist.FindCycleStart()
			require.True(t, ok)
			require.Equal(t, tc.want, start)
		})
	}
}

func TestSinglyLinkedList_InjectCycleEveryPosition(t *testing.T) {
	for n := 1; n <= 12; n++ {
		for pos := 0; pos < n; pos++ {
			values := lo.RangeFrom(1, n)
			slist := NewSinglyLinkedList[int]()
			slist.AppendValue(values...)
			require.True(t, slist.InjectCycle(pos))
			start, ok := slist.FindCycleStart()
			require.True(t, ok)
			require.Equal(t, values[pos], start, "length %d, pos %d", n, pos)
		}
	}
}

func TestSinglyLinkedList_InjectCycleIdentity(t *testing.T) {
	// Duplicated values, the cycle start is located by element identity.
	slist := NewSinglyLinkedList[int]()
	elements := slist.AppendValue(7, 7, 8, 7)
	require.True(t, slist.InjectCycle(2))
	start, ok := slist.FindCycleStart()
	require.True(t, ok)
	require.Equal(t, 8, start)
	require.Equal(t, elements[2], elements[3].Next())
}
