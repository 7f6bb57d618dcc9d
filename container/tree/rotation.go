package tree

// leftRotate promotes the right child of n and returns it as the new
// root of the subtree. Only the heights of n and the promoted child
// are recomputed
func leftRotate(n *Node) *Node {
	target := n.right
	if target == nil {
		return n
	}

	n.right = target.left
	target.left = n

	n.updateHeight()
	target.updateHeight()
	return target
}

// rightRotate promotes the left child of n and returns it as the new
// root of the subtree. Only the heights of n and the promoted child
// are recomputed
func rightRotate(n *Node) *Node {
	target := n.left
	if target == nil {
		return n
	}

	n.left = target.right
	target.right = n

	n.updateHeight()
	target.updateHeight()
	return target
}
