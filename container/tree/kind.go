package tree

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Kind identifies one of the tree variants
type Kind uint

const (
	// Binary places values in the first free slot in level order
	// and does not keep any ordering between them
	Binary Kind = iota

	// Search keeps the binary search tree ordering
	Search

	// Balanced keeps the binary search tree ordering and rebalances
	// the tree after every change so that it stays an AVL tree
	Balanced
)

var kindNames = map[Kind]string{
	Binary:   "binary",
	Search:   "bst",
	Balanced: "avl",
}

// String returns the name of the kind as accepted by ParseKind
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ParseKind returns the Kind with the provided name. Names
// are case insensitive
func ParseKind(s string) (Kind, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for k, n := range kindNames {
		if n == name {
			return k, nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidKind, "%q", s)
}

// Order identifies a traversal order
type Order uint

const (
	// InOrder visits the left subtree, the node and then the right subtree
	InOrder Order = iota

	// PreOrder visits the node before its subtrees
	PreOrder

	// PostOrder visits the node after its subtrees
	PostOrder

	// LevelOrder visits nodes breadth first, top to bottom and left
	// to right within each depth
	LevelOrder
)

var orderNames = map[Order]string{
	InOrder:    "inorder",
	PreOrder:   "preorder",
	PostOrder:  "postorder",
	LevelOrder: "levelorder",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return "order(" + strconv.Itoa(int(o)) + ")"
}

// ParseOrder returns the Order with the provided name. Names are
// case insensitive and dashes are ignored, so "level-order" is
// accepted as well as "levelorder"
func ParseOrder(s string) (Order, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "")
	for o, n := range orderNames {
		if n == name {
			return o, nil
		}
	}

	return 0, errors.Wrapf(ErrInvalidOrder, "%q", s)
}

// ParseValue converts user input into a value that can be stored
// in a tree. Anything that is not an integer is rejected with
// ErrInvalidValue before it reaches a tree
func ParseValue(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidValue, "%q", s)
	}

	return v, nil
}
