package avl

import "github.com/cockroachdb/errors"

var (
	// ErrEmptyContainer is returned when an operation requires at least
	// one entry, such as Min or Max, and the container holds none.
	ErrEmptyContainer = errors.New("avl: empty container")

	// ErrKeyNotFound is returned by checked accessors when the requested
	// key is not present in the container.
	ErrKeyNotFound = errors.New("avl: key not found")
)
