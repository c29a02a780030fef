package avl

import (
	"fmt"
	"iter"
	"strings"
)

// Tree is a balanced binary tree containing elements of type E, ordered
// by themselves. All structural logic is delegated to a Map with empty
// values.
type Tree[E any] struct{ impl Map[E, struct{}] }

// New constructs a new tree using the comparison function passed as
// argument to order the elements.
func New[E any](cmp func(E, E) int) *Tree[E] {
	t := new(Tree[E])
	t.Init(cmp)
	return t
}

// TreeOf constructs a new tree holding the given elements, inserted in
// order. Duplicate elements collapse to a single entry.
func TreeOf[E any](cmp func(E, E) int, elems ...E) *Tree[E] {
	t := New[E](cmp)
	for _, e := range elems {
		t.Insert(e)
	}
	return t
}

// Init initializes the tree with the given comparison function to order
// the elements.
func (t *Tree[E]) Init(cmp func(E, E) int) {
	t.impl.Init(cmp)
}

// Len returns the number of elements in the tree.
func (t *Tree[E]) Len() int { return t.impl.Len() }

// Empty returns true if the tree holds no elements.
func (t *Tree[E]) Empty() bool { return t.impl.Empty() }

// Height returns the height of the tree, -1 if it is empty.
func (t *Tree[E]) Height() int { return t.impl.Height() }

// Clear discards every element, leaving an empty tree.
func (t *Tree[E]) Clear() { t.impl.Clear() }

// Insert inserts a new element in the tree. Inserting an element equal to
// one already present keeps a single entry and leaves the length
// unchanged, reporting replaced as true. The method panics if the tree
// had not been initialized by a call to New or Init.
func (t *Tree[E]) Insert(elem E) (replaced bool) {
	_, replaced = t.impl.Insert(elem, struct{}{})
	return replaced
}

// Contains returns true if the given element exists in the tree.
func (t *Tree[E]) Contains(elem E) (found bool) {
	_, found = t.impl.Lookup(elem)
	return found
}

// Delete removes an element from the tree. Deleting an absent element is
// a no-op reported by a false return value.
func (t *Tree[E]) Delete(elem E) (deleted bool) {
	_, deleted = t.impl.Delete(elem)
	return deleted
}

// Min returns the smallest element in the tree, or an error matching
// ErrEmptyContainer if the tree is empty.
func (t *Tree[E]) Min() (elem E, err error) {
	elem, _, err = t.impl.Min()
	return elem, err
}

// Max returns the largest element in the tree, or an error matching
// ErrEmptyContainer if the tree is empty.
func (t *Tree[E]) Max() (elem E, err error) {
	elem, _, err = t.impl.Max()
	return elem, err
}

// Range calls f for each element in the tree, in the order defined by the
// comparison function. If f returns false, the iteration is stopped.
func (t *Tree[E]) Range(f func(E) bool) {
	t.impl.Range(func(elem E, _ struct{}) bool { return f(elem) })
}

// All returns an iterator over the elements of the tree in ascending
// order.
func (t *Tree[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		t.Range(yield)
	}
}

// Clone returns a deep copy of the tree, sharing no nodes with the
// original.
func (t *Tree[E]) Clone() *Tree[E] {
	return &Tree[E]{impl: *t.impl.Clone()}
}

// Move transfers every element to a freshly constructed tree, leaving
// the receiver empty but still initialized.
func (t *Tree[E]) Move() *Tree[E] {
	return &Tree[E]{impl: *t.impl.Move()}
}

// String renders the elements in ascending order, e.g. {1, 2, 3}.
func (t *Tree[E]) String() string {
	s := new(strings.Builder)
	s.WriteByte('{')
	t.Range(func(elem E) bool {
		if s.Len() > 1 {
			s.WriteString(", ")
		}
		fmt.Fprintf(s, "%v", elem)
		return true
	})
	s.WriteByte('}')
	return s.String()
}
