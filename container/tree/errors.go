package tree

import "errors"

var (
	// ErrInvalidValue is returned when an input cannot be
	// interpreted as a value that the tree can order
	ErrInvalidValue = errors.New("value is not an integer")

	// ErrNotFound is returned by strict removals of values
	// that are not present in the tree
	ErrNotFound = errors.New("value not found in tree")

	// ErrInvalidKind is returned when parsing an unknown tree kind
	ErrInvalidKind = errors.New("unknown tree kind")

	// ErrInvalidOrder is returned when parsing an unknown traversal order
	ErrInvalidOrder = errors.New("unknown traversal order")
)

// ErrInvariant is returned by Verify when a tree does not hold
// the properties of its variant
var ErrInvariant = errors.New("tree invariant violated")
