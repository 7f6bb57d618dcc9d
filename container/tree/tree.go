package tree

import (
	"iter"

	"github.com/pkg/errors"
)

// Tree holds the root of one of the tree variants. The variant
// is chosen when the tree is created and fixes how values are
// inserted and deleted for the lifetime of the tree.
//
// A Tree is not safe for concurrent use. Rotations and deletions
// perform several link updates that must not be interleaved, so
// callers sharing a tree must serialize whole operations
type Tree struct {
	root *Node
	cmp  Lesser
	mod  modifier
	kind Kind
	len  int
}

func newTree(kind Kind, cmp Lesser, mod modifier) *Tree {
	if cmp == nil {
		cmp = IntLesser{}
	}

	return &Tree{cmp: cmp, mod: mod, kind: kind}
}

// New creates an empty tree of the provided kind
func New(kind Kind, cmp Lesser) *Tree {
	switch kind {
	case Binary:
		return NewBinaryTree(cmp)
	case Search:
		return NewSearchTree(cmp)
	case Balanced:
		return NewBalancedTree(cmp)
	default:
		panic("unknown tree kind " + kind.String())
	}
}

// Kind returns the variant of the tree
func (t *Tree) Kind() Kind {
	return t.kind
}

// Len returns the number of nodes in the tree
func (t *Tree) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree) Root() *Node {
	return t.root
}

// Height returns the number of nodes in the longest path
// from the root to a leaf. An empty tree has height 0
func (t *Tree) Height() int {
	return depth(t.root)
}

// Min returns the leftmost node of the tree, which holds the
// lowest value for the ordered variants. It returns nil if the
// tree is empty
func (t *Tree) Min() *Node {
	return t.root.Min()
}

// Max returns the rightmost node of the tree, which holds the
// highest value for the ordered variants. It returns nil if the
// tree is empty
func (t *Tree) Max() *Node {
	return t.root.Max()
}

// Find returns the node that holds v, or nil if there is none.
// The binary variant has no ordering, so the whole tree is scanned
func (t *Tree) Find(v int) *Node {
	if t.kind == Binary {
		return scan(t.root, v)
	}

	for curr := t.root; curr != nil; {
		switch c := t.cmp.Less(v, curr.Value); {
		case c < 0:
			curr = curr.left
		case c > 0:
			curr = curr.right
		default:
			return curr
		}
	}

	return nil
}

// Contains returns true if the tree holds v
func (t *Tree) Contains(v int) bool {
	return t.Find(v) != nil
}

// Insert a value into the tree. It returns false and leaves
// the tree unchanged if the value is already present
func (t *Tree) Insert(v int) bool {
	added := t.mod.Insert(t, v)
	if added {
		t.len++
	}
	return added
}

// Delete the node that holds v. It returns false and leaves
// the tree unchanged if no node was removed
func (t *Tree) Delete(v int) bool {
	removed := t.mod.Delete(t, v)
	if removed {
		t.len--
	}
	return removed
}

// Remove is a strict Delete that returns ErrNotFound if
// no node was removed
func (t *Tree) Remove(v int) error {
	if !t.Delete(v) {
		return errors.Wrapf(ErrNotFound, "%d", v)
	}
	return nil
}

// Clear removes all the nodes of the tree
func (t *Tree) Clear() {
	t.root = nil
	t.len = 0
}

// All returns the nodes of the tree in the provided order
func (t *Tree) All(order Order) iter.Seq[*Node] {
	return t.root.All(order)
}

// Values returns the values of the tree in the provided order
func (t *Tree) Values(order Order) []int {
	values := make([]int, 0, t.len)
	for n := range t.root.All(order) {
		values = append(values, n.Value)
	}
	return values
}

// Visits returns the traversal of the tree in the provided order
func (t *Tree) Visits(order Order) []Visit {
	return t.root.Visits(order)
}

// Walk calls fn for every node of the tree in the provided order
func (t *Tree) Walk(order Order, fn func(*Node)) {
	t.root.Walk(order, fn)
}

// InOrderWalk implements an in order walk on the tree
func (t *Tree) InOrderWalk(fn func(*Node)) {
	t.root.InOrderWalk(fn)
}

// PreOrderWalk implements a pre order walk on the tree
func (t *Tree) PreOrderWalk(fn func(*Node)) {
	t.root.PreOrderWalk(fn)
}

// PostOrderWalk implements a post order walk on the tree
func (t *Tree) PostOrderWalk(fn func(*Node)) {
	t.root.PostOrderWalk(fn)
}

// LevelOrderWalk implements a breadth first walk on the tree
func (t *Tree) LevelOrderWalk(fn func(*Node)) {
	t.root.LevelOrderWalk(fn)
}
