package tree

// Node of a tree. A node is owned by exactly one parent, or
// by the tree if it is the root, so there are no parent links
type Node struct {
	Value int

	// height is only maintained by the balanced variant. The
	// other variants leave it at 1 for every node
	height int
	left   *Node
	right  *Node
}

func newNode(v int) *Node {
	return &Node{Value: v, height: 1}
}

// Left returns the node's left child
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the node's right child
func (n *Node) Right() *Node {
	return n.right
}

// Height returns the height recorded on the node. A nil
// node has height 0
func (n *Node) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// Balance returns the balance factor of the node, that is the height
// of the left subtree minus the height of the right subtree. A nil
// node has balance 0
func (n *Node) Balance() int {
	if n == nil {
		return 0
	}
	return n.left.Height() - n.right.Height()
}

// Min returns the node in the subtree reached by following
// left links until there are none left. For ordered
// variants that is the node with the lowest value.
// It returns nil for a nil subtree
func (n *Node) Min() *Node {
	if n == nil {
		return nil
	}

	curr := n
	for curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree reached by following
// right links until there are none left. For ordered
// variants that is the node with the highest value.
// It returns nil for a nil subtree
func (n *Node) Max() *Node {
	if n == nil {
		return nil
	}

	curr := n
	for curr.right != nil {
		curr = curr.right
	}

	return curr
}

// updateHeight recomputes the height of the node from the
// heights of its children
func (n *Node) updateHeight() {
	n.height = 1 + max(n.left.Height(), n.right.Height())
}

// depth computes the height of the subtree from its structure
// instead of the recorded heights, so it is valid for
// every variant
func depth(n *Node) int {
	if n == nil {
		return 0
	}
	return 1 + max(depth(n.left), depth(n.right))
}
