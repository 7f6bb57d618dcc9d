package tree

// search is a pair of algorithms that insert and delete
// values preserving the Binary Search Tree properties
// without applying any balancing strategy
type search struct{}

// fixer is invoked on every node on the path back from the
// position where a value was inserted or removed, and returns the
// node that takes its place as the root of the subtree
type fixer func(n *Node, v int) *Node

// Insert the value into the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm
func (m search) Insert(t *Tree, v int) bool {
	var added bool
	t.root = m.insert(t.cmp, t.root, v, &added, nil)
	return added
}

// Delete the value from the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm
func (m search) Delete(t *Tree, v int) bool {
	var removed bool
	t.root = m.delete(t.cmp, t.root, v, &removed, nil)
	return removed
}

// insert places v in the subtree rooted at n and returns the new root
// of the subtree. Equal values stop the descent and leave the subtree
// untouched, so fix is not called for them
func (m search) insert(cmp Lesser, n *Node, v int, added *bool, fix fixer) *Node {
	if n == nil {
		*added = true
		return newNode(v)
	}

	switch c := cmp.Less(v, n.Value); {
	case c < 0:
		n.left = m.insert(cmp, n.left, v, added, fix)
	case c > 0:
		n.right = m.insert(cmp, n.right, v, added, fix)
	default:
		return n
	}

	if fix != nil {
		return fix(n, v)
	}
	return n
}

// delete removes v from the subtree rooted at n and returns the new root
// of the subtree. A node with two children takes the value of its in
// order successor, which is then removed from the right subtree.
// removed is only set when a node is unlinked
func (m search) delete(cmp Lesser, n *Node, v int, removed *bool, fix fixer) *Node {
	if n == nil {
		return nil
	}

	switch c := cmp.Less(v, n.Value); {
	case c < 0:
		n.left = m.delete(cmp, n.left, v, removed, fix)
	case c > 0:
		n.right = m.delete(cmp, n.right, v, removed, fix)
	default:
		if n.left == nil {
			*removed = true
			return n.right
		}
		if n.right == nil {
			*removed = true
			return n.left
		}

		successor := m.minValueNode(n.right)
		n.Value = successor.Value
		n.right = m.delete(cmp, n.right, successor.Value, removed, fix)
	}

	if fix != nil {
		return fix(n, v)
	}
	return n
}

// minValueNode returns the leftmost node of a non empty subtree
func (search) minValueNode(n *Node) *Node {
	return n.Min()
}

// NewSearchTree creates a new binary search tree. How balanced
// the branches of the tree are depends exclusively on the order
// of the insert and delete operations performed on the tree
func NewSearchTree(cmp Lesser) *Tree {
	return newTree(Search, cmp, search{})
}
