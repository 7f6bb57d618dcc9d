package tree

import "github.com/pkg/errors"

// Verify checks that the tree holds the properties of its variant:
// no duplicate values and a node count equal to Len for every tree,
// the search tree ordering for Search and Balanced, and consistent
// heights with balance factors in [-1, 1] for Balanced. Errors wrap
// ErrInvariant
func (t *Tree) Verify() error {
	seen := make(map[int]struct{}, t.len)
	count := 0
	for n := range t.root.All(PreOrder) {
		if _, ok := seen[n.Value]; ok {
			return errors.Wrapf(ErrInvariant, "duplicate value %d", n.Value)
		}
		seen[n.Value] = struct{}{}
		count++
	}

	if count != t.len {
		return errors.Wrapf(ErrInvariant, "tree has %d nodes but reports %d", count, t.len)
	}

	if t.kind == Binary {
		return nil
	}

	var prev *Node
	for n := range t.root.All(InOrder) {
		if prev != nil && t.cmp.Less(prev.Value, n.Value) >= 0 {
			return errors.Wrapf(ErrInvariant, "value %d is not ordered after %d", n.Value, prev.Value)
		}
		prev = n
	}

	if t.kind != Balanced {
		return nil
	}

	for n := range t.root.All(PostOrder) {
		if expected := 1 + max(n.left.Height(), n.right.Height()); n.height != expected {
			return errors.Wrapf(ErrInvariant, "node %d has height %d, expected %d", n.Value, n.height, expected)
		}
		if b := n.Balance(); b < -1 || b > 1 {
			return errors.Wrapf(ErrInvariant, "node %d has balance factor %d", n.Value, b)
		}
	}

	return nil
}
