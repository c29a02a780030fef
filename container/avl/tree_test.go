package avl

import (
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"

	"github.com/treekit/datastructures/compare"
)

func TestTree(t *testing.T) {
	tests := []struct {
		scenario string
		function func(*testing.T, *Tree[int32])
	}{
		{
			scenario: "an empty tree has a length of zero",
			function: testTreeEmpty,
		},

		{
			scenario: "elements inserted in the tree are reported as contained",
			function: testTreeInsertAndContains,
		},

		{
			scenario: "elements deleted from the tree are not contained anymore",
			function: testTreeInsertAndDelete,
		},

		{
			scenario: "ranging over elements produces them ordered by the comparison function",
			function: testTreeRange,
		},
	}

	for _, test := range tests {
		t.Run(test.scenario, func(t *testing.T) {
			tr := New[int32](compare.Function[int32])
			test.function(t, tr)
			tr.impl.checkInvariants(t)
		})
	}
}

func testTreeEmpty(t *testing.T, tr *Tree[int32]) {
	if n := tr.Len(); n != 0 {
		t.Errorf("wrong number of elements: got=%d want=0", n)
	}
	if !tr.Empty() {
		t.Error("empty tree not reported as empty")
	}
}

func testTreeInsertAndContains(t *testing.T, tr *Tree[int32]) {
	f := func(elems map[int32]struct{}) bool {
		tr.Init(compare.Function[int32])

		for e := range elems {
			if replaced := tr.Insert(e); replaced {
				t.Errorf("replaced element which did not exist in the tree: %d", e)
				return false
			}
		}

		if n := tr.Len(); n != len(elems) {
			t.Errorf("wrong number of elements: got=%d want=%d", n, len(elems))
			return false
		}

		for e := range elems {
			if !tr.Contains(e) {
				t.Errorf("element not found in tree: %d", e)
				return false
			}
		}

		return true
	}
	quick.Check(f, nil)
}

func testTreeInsertAndDelete(t *testing.T, tr *Tree[int32]) {
	f := func(elems map[int32]struct{}) bool {
		tr.Init(compare.Function[int32])

		for e := range elems {
			tr.Insert(e)
		}

		for e := range elems {
			if !tr.Delete(e) {
				t.Errorf("element not deleted from tree: %d", e)
				return false
			}
			if tr.Contains(e) {
				t.Errorf("element still contained after delete: %d", e)
				return false
			}
		}

		if n := tr.Len(); n != 0 {
			t.Errorf("tree not empty after deleting every element: len=%d", n)
			return false
		}
		return true
	}
	quick.Check(f, nil)
}

func testTreeRange(t *testing.T, tr *Tree[int32]) {
	f := func(elems map[int32]struct{}) bool {
		tr.Init(compare.Function[int32])

		for e := range elems {
			tr.Insert(e)
		}

		sorted := make([]int32, 0, len(elems))
		for e := range elems {
			sorted = append(sorted, e)
		}
		sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })

		i := 0
		tr.Range(func(e int32) bool {
			if e != sorted[i] {
				t.Errorf("wrong element at index %d: got=%d want=%d", i, e, sorted[i])
				return false
			}
			i++
			return true
		})

		if i != len(sorted) {
			t.Errorf("ranging did not expose all elements: got=%d want=%d", i, len(sorted))
			return false
		}
		return true
	}
	quick.Check(f, nil)
}

func TestTreeDuplicateInsert(t *testing.T) {
	tr := New[int](compare.Function[int])

	require.False(t, tr.Insert(5))
	require.True(t, tr.Insert(5))
	require.Equal(t, 1, tr.Len())
	require.True(t, tr.Contains(5))
}

func TestTreeDeleteNotExist(t *testing.T) {
	tr := TreeOf(compare.Function[int], 1, 2, 3)

	require.False(t, tr.Delete(4))
	require.Equal(t, 3, tr.Len())
}

func TestTreeMinMax(t *testing.T) {
	tr := New[string](compare.Function[string])

	_, err := tr.Min()
	require.ErrorIs(t, err, ErrEmptyContainer)
	_, err = tr.Max()
	require.ErrorIs(t, err, ErrEmptyContainer)

	for _, e := range []string{"pear", "apple", "plum", "fig"} {
		tr.Insert(e)
	}

	minElem, err := tr.Min()
	require.NoError(t, err)
	require.Equal(t, "apple", minElem)

	maxElem, err := tr.Max()
	require.NoError(t, err)
	require.Equal(t, "plum", maxElem)
}

func TestTreeOf(t *testing.T) {
	tr := TreeOf(compare.Function[int], 3, 1, 2, 3, 1)

	require.Equal(t, 3, tr.Len())
	require.Equal(t, []int{1, 2, 3}, elemsOf(tr))
	require.Equal(t, "{1, 2, 3}", tr.String())
}

func elemsOf[E any](tr *Tree[E]) []E {
	elems := make([]E, 0, tr.Len())
	for e := range tr.All() {
		elems = append(elems, e)
	}
	return elems
}

func TestTreeCloneAndMove(t *testing.T) {
	tr := TreeOf(compare.Function[int], 1, 2, 3, 4)

	c := tr.Clone()
	c.Delete(2)
	require.True(t, tr.Contains(2))
	require.Equal(t, 4, tr.Len())
	require.Equal(t, 3, c.Len())

	moved := tr.Move()
	require.True(t, tr.Empty())
	require.False(t, tr.Contains(1))
	require.Equal(t, []int{1, 2, 3, 4}, elemsOf(moved))

	// The source stays initialized and usable after the move.
	tr.Insert(9)
	require.Equal(t, 1, tr.Len())

	moved.impl.checkInvariants(t)
	c.impl.checkInvariants(t)
}

func TestTreeHeight(t *testing.T) {
	tr := New[int](compare.Function[int])
	require.Equal(t, -1, tr.Height())

	for i := 1; i <= 10; i++ {
		tr.Insert(i)
	}
	require.LessOrEqual(t, tr.Height(), 4)
}
