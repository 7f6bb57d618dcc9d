package tree

// balanced extends search with the AVL balancing strategy. After
// every insertion or deletion, each node on the path back to the
// root gets its height updated and at most one rotation pattern
// applied so that its balance factor stays in [-1, 1]
type balanced struct {
	search
}

// Insert the value and rebalance the path back to the root
func (m balanced) Insert(t *Tree, v int) bool {
	var added bool
	cmp := t.cmp
	t.root = m.insert(cmp, t.root, v, &added, func(n *Node, v int) *Node {
		return m.rebalanceInsert(cmp, n, v)
	})
	return added
}

// Delete the value and rebalance the path back to the root
func (m balanced) Delete(t *Tree, v int) bool {
	var removed bool
	t.root = m.delete(t.cmp, t.root, v, &removed, func(n *Node, _ int) *Node {
		return m.rebalanceDelete(n)
	})
	return removed
}

// rebalanceInsert picks the rotation from the position of the inserted
// value relative to the child on the heavy side
func (balanced) rebalanceInsert(cmp Lesser, n *Node, v int) *Node {
	n.updateHeight()
	balance := n.Balance()

	switch {
	case balance > 1 && cmp.Less(v, n.left.Value) < 0:
		// left left
		return rightRotate(n)
	case balance < -1 && cmp.Less(v, n.right.Value) > 0:
		// right right
		return leftRotate(n)
	case balance > 1 && cmp.Less(v, n.left.Value) > 0:
		// left right
		n.left = leftRotate(n.left)
		return rightRotate(n)
	case balance < -1 && cmp.Less(v, n.right.Value) < 0:
		// right left
		n.right = rightRotate(n.right)
		return leftRotate(n)
	}

	return n
}

// rebalanceDelete picks the rotation from the balance factor of the
// child on the heavy side, since the removed value no longer tells
// where the imbalance comes from
func (balanced) rebalanceDelete(n *Node) *Node {
	n.updateHeight()
	balance := n.Balance()

	switch {
	case balance > 1 && n.left.Balance() >= 0:
		return rightRotate(n)
	case balance > 1:
		n.left = leftRotate(n.left)
		return rightRotate(n)
	case balance < -1 && n.right.Balance() <= 0:
		return leftRotate(n)
	case balance < -1:
		n.right = rightRotate(n.right)
		return leftRotate(n)
	}

	return n
}

// NewBalancedTree creates a new AVL tree
func NewBalancedTree(cmp Lesser) *Tree {
	return newTree(Balanced, cmp, balanced{})
}
