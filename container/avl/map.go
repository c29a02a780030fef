// Package avl contains ordered containers backed by a height-balanced
// (AVL) binary search tree.
//
// The containers keep their entries sorted by a comparison function
// installed at construction time, and guarantee logarithmic insert,
// delete and lookup by rebalancing the tree with rotations after every
// structural mutation.
package avl

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"
)

// Map is a map type associating keys to values in a similar way to the
// standard Go map type, but backed by an AVL tree instead of a hashmap,
// which maintains ordering of keys.
//
// The zero-value is a valid empty map which supports lookups and deletes,
// but must be initialized prior to inserting any keys.
type Map[K, V any] struct {
	cmp  func(K, K) int
	len  int
	root *node[K, V]
}

// node is a vertex of the tree. A node exclusively owns its children:
// no node is ever linked from two places.
type node[K, V any] struct {
	left   *node[K, V]
	right  *node[K, V]
	key    K
	value  V
	height int32
}

// Entry is a key/value pair used to construct maps from sequences.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// NewMap instantiates a new map using the given comparison function to
// order the keys.
func NewMap[K, V any](cmp func(K, K) int) *Map[K, V] {
	m := new(Map[K, V])
	m.Init(cmp)
	return m
}

// MapOf instantiates a new map holding the given entries, inserted in
// order. Entries with duplicate keys collapse to the last value seen.
func MapOf[K, V any](cmp func(K, K) int, entries ...Entry[K, V]) *Map[K, V] {
	m := NewMap[K, V](cmp)
	for _, e := range entries {
		m.Insert(e.Key, e.Value)
	}
	return m
}

// Init initializes (or re-initializes) the map. The comparison function
// passed as argument will be used to order the keys.
//
// Init must be called prior to inserting keys in the map, otherwise
// inserts will panic.
//
// Complexity: O(1)
func (m *Map[K, V]) Init(cmp func(K, K) int) {
	m.cmp = cmp
	m.len = 0
	m.root = nil
}

// Len returns the number of entries currently held in the map.
//
// Complexity: O(1)
func (m *Map[K, V]) Len() int { return m.len }

// Empty returns true if the map holds no entries.
//
// Complexity: O(1)
func (m *Map[K, V]) Empty() bool { return m.len == 0 }

// Height returns the height of the tree backing the map, -1 if the map
// is empty. The balancing guarantees the height stays within a small
// constant factor of log2 of the number of entries.
//
// Complexity: O(1)
func (m *Map[K, V]) Height() int { return int(height(m.root)) }

// Clear discards every entry, leaving an empty map. The comparison
// function installed by Init is retained.
//
// Complexity: O(1)
func (m *Map[K, V]) Clear() {
	m.len = 0
	m.root = nil
}

// Insert inserts a new entry in the map, or replaces the value if the key
// already existed. The method returns the previous value associated with
// the key or the zero-value if the key did not exist, and a boolean
// indicating whether the value was replaced.
//
// The map must have been initialized by a call to NewMap or Init or the
// call to Insert will panic.
//
// Complexity: O(log n)
func (m *Map[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	m.root, previous, replaced = m.insert(m.root, key, value)
	if !replaced {
		m.len++
	}
	return previous, replaced
}

func (m *Map[K, V]) insert(n *node[K, V], key K, value V) (inserted *node[K, V], previous V, replaced bool) {
	if n == nil {
		return &node[K, V]{key: key, value: value}, previous, false
	}
	switch cmp := m.cmp(key, n.key); {
	case cmp < 0:
		n.left, previous, replaced = m.insert(n.left, key, value)
	case cmp > 0:
		n.right, previous, replaced = m.insert(n.right, key, value)
	default:
		previous, replaced = n.value, true
		n.value = value
		return n, previous, replaced
	}
	return rebalance(n), previous, replaced
}

// GetOrInsert returns a pointer to the value associated with the given
// key, inserting an entry with the zero-value if the key was absent.
// The pointer may be used to read and overwrite the value in place,
// which never changes the shape of the tree; it stays valid until the
// next structural mutation of the map (insert or delete of any key).
//
// The map must have been initialized by a call to NewMap or Init or the
// call to GetOrInsert will panic.
//
// Complexity: O(log n)
func (m *Map[K, V]) GetOrInsert(key K) *V {
	var value *V
	m.root, value = m.getOrInsert(m.root, key)
	return value
}

func (m *Map[K, V]) getOrInsert(n *node[K, V], key K) (*node[K, V], *V) {
	if n == nil {
		n = &node[K, V]{key: key}
		m.len++
		return n, &n.value
	}
	var value *V
	switch cmp := m.cmp(key, n.key); {
	case cmp < 0:
		n.left, value = m.getOrInsert(n.left, key)
	case cmp > 0:
		n.right, value = m.getOrInsert(n.right, key)
	default:
		return n, &n.value
	}
	// Rotations relink nodes without copying their values, so the
	// pointer returned by the recursive call remains valid here.
	return rebalance(n), value
}

// Lookup returns the value associated with the given key in the map, and
// a boolean value indicating whether the key was found in the map.
//
// Complexity: O(log n)
func (m *Map[K, V]) Lookup(key K) (value V, found bool) {
	for n := m.root; n != nil; {
		switch cmp := m.cmp(key, n.key); {
		case cmp < 0:
			n = n.left
		case cmp > 0:
			n = n.right
		default:
			return n.value, true
		}
	}
	return value, false
}

// At returns the value associated with the given key, or an error
// matching ErrKeyNotFound if the key is absent. Unlike GetOrInsert, At
// never modifies the map.
//
// Complexity: O(log n)
func (m *Map[K, V]) At(key K) (value V, err error) {
	value, found := m.Lookup(key)
	if !found {
		return value, errors.Wrapf(ErrKeyNotFound, "no entry for key %v", key)
	}
	return value, nil
}

// Delete deletes the given key from the map. If the key does not exist,
// the map is not modified and the deletion is reported as a no-op. The
// method returns the value removed from the map and a boolean indicating
// whether the key was found.
//
// Complexity: O(log n)
func (m *Map[K, V]) Delete(key K) (value V, deleted bool) {
	m.root, value, deleted = m.delete(m.root, key)
	if deleted {
		m.len--
	}
	return value, deleted
}

func (m *Map[K, V]) delete(n *node[K, V], key K) (remaining *node[K, V], value V, deleted bool) {
	if n == nil {
		return nil, value, false
	}
	switch cmp := m.cmp(key, n.key); {
	case cmp < 0:
		n.left, value, deleted = m.delete(n.left, key)
	case cmp > 0:
		n.right, value, deleted = m.delete(n.right, key)
	default:
		value, deleted = n.value, true
		if n.left == nil || n.right == nil {
			// At most one child: the node's slot is replaced by
			// that child (or emptied), no rebalancing needed below
			// this frame.
			if n.left != nil {
				return n.left, value, true
			}
			return n.right, value, true
		}
		// Two children: overwrite the node with its in-order
		// successor and delete the successor from the right
		// subtree, where it has at most one child.
		s := minNode(n.right)
		n.key, n.value = s.key, s.value
		n.right, _, _ = m.delete(n.right, s.key)
	}
	return rebalance(n), value, deleted
}

// Min returns the entry with the smallest key in the map, or an error
// matching ErrEmptyContainer if the map holds no entries.
//
// Complexity: O(log n)
func (m *Map[K, V]) Min() (key K, value V, err error) {
	if m.root == nil {
		return key, value, ErrEmptyContainer
	}
	n := minNode(m.root)
	return n.key, n.value, nil
}

// Max returns the entry with the largest key in the map, or an error
// matching ErrEmptyContainer if the map holds no entries.
//
// Complexity: O(log n)
func (m *Map[K, V]) Max() (key K, value V, err error) {
	if m.root == nil {
		return key, value, ErrEmptyContainer
	}
	n := maxNode(m.root)
	return n.key, n.value, nil
}

// Range calls f for each entry of the map. The keys and values are
// presented in ascending order according to the comparison function
// installed on the map. If f returns false, the iteration is stopped.
//
// Complexity: O(N)
func (m *Map[K, V]) Range(f func(K, V) bool) {
	subrange(m.root, f)
}

func subrange[K, V any](n *node[K, V], call func(K, V) bool) bool {
	return n == nil || (subrange(n.left, call) && call(n.key, n.value) && subrange(n.right, call))
}

// All returns an iterator over the entries of the map in ascending key
// order. The sequence is not restartable; call All again to iterate from
// the beginning.
//
// Complexity: O(N)
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		subrange(m.root, yield)
	}
}

// Clone returns a deep copy of the map. The clone shares no nodes with
// the original: mutating one never affects the other.
//
// Complexity: O(N)
func (m *Map[K, V]) Clone() *Map[K, V] {
	return &Map[K, V]{cmp: m.cmp, len: m.len, root: clone(m.root)}
}

func clone[K, V any](n *node[K, V]) *node[K, V] {
	if n == nil {
		return nil
	}
	return &node[K, V]{
		left:   clone(n.left),
		right:  clone(n.right),
		key:    n.key,
		value:  n.value,
		height: n.height,
	}
}

// Move transfers every entry to a freshly constructed map, leaving the
// receiver empty but still initialized with its comparison function.
//
// Complexity: O(1)
func (m *Map[K, V]) Move() *Map[K, V] {
	moved := &Map[K, V]{cmp: m.cmp, len: m.len, root: m.root}
	m.len = 0
	m.root = nil
	return moved
}

// String renders the entries in ascending key order, e.g. {(1, a), (2, b)}.
// The representation is a debugging convenience, not a stable format.
func (m *Map[K, V]) String() string {
	s := new(strings.Builder)
	s.WriteByte('{')
	m.Range(func(key K, value V) bool {
		if s.Len() > 1 {
			s.WriteString(", ")
		}
		fmt.Fprintf(s, "(%v, %v)", key, value)
		return true
	})
	s.WriteByte('}')
	return s.String()
}

// height is -1 for an absent subtree, otherwise the value cached on the
// node. Every structural operation updates the cache before returning,
// it is never lazily invalidated.
func height[K, V any](n *node[K, V]) int32 {
	if n == nil {
		return -1
	}
	return n.height
}

func minNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K, V any](n *node[K, V]) *node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// rebalance restores the balance invariant at n, assuming both children
// already satisfy it, and returns the new root of the subtree. A single
// or double rotation is always enough to bring the balance factor of n
// back within [-1, 1].
func rebalance[K, V any](n *node[K, V]) *node[K, V] {
	switch diff := height(n.left) - height(n.right); {
	case diff > 1:
		if height(n.left.left) >= height(n.left.right) {
			n = rotateRight(n)
		} else {
			n.left = rotateLeft(n.left)
			n = rotateRight(n)
		}
	case diff < -1:
		if height(n.right.right) >= height(n.right.left) {
			n = rotateLeft(n)
		} else {
			n.right = rotateRight(n.right)
			n = rotateLeft(n)
		}
	default:
		n.height = 1 + max(height(n.left), height(n.right))
	}
	return n
}

// rotateRight promotes the left child to the root of the subtree. The
// demoted node's height is recomputed first since the promoted node's
// depends on it.
func rotateRight[K, V any](n *node[K, V]) *node[K, V] {
	l := n.left
	n.left = l.right
	n.height = 1 + max(height(n.left), height(n.right))
	l.right = n
	l.height = 1 + max(height(l.left), n.height)
	return l
}

// rotateLeft is the mirror of rotateRight.
func rotateLeft[K, V any](n *node[K, V]) *node[K, V] {
	r := n.right
	n.right = r.left
	n.height = 1 + max(height(n.left), height(n.right))
	r.left = n
	r.height = 1 + max(height(r.right), n.height)
	return r
}
