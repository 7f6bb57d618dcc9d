package tree

import "iter"

// All returns the nodes of the subtree in the provided order. The
// sequence is lazy and can be ranged over any number of times. It
// does not modify the tree, but the tree must not be modified while
// the sequence is being consumed
func (n *Node) All(order Order) iter.Seq[*Node] {
	switch order {
	case InOrder:
		return n.inOrder
	case PreOrder:
		return n.preOrder
	case PostOrder:
		return n.postOrder
	case LevelOrder:
		return n.levelOrder
	default:
		panic("unknown traversal order " + order.String())
	}
}

func (n *Node) inOrder(yield func(*Node) bool) {
	var stack []*Node

	for curr := n; curr != nil || len(stack) > 0; {
		for curr != nil {
			stack = append(stack, curr)
			curr = curr.left
		}

		curr = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !yield(curr) {
			return
		}

		curr = curr.right
	}
}

func (n *Node) preOrder(yield func(*Node) bool) {
	if n == nil {
		return
	}

	stack := []*Node{n}
	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if !yield(curr) {
			return
		}

		// right first so that the left subtree is popped first
		if curr.right != nil {
			stack = append(stack, curr.right)
		}
		if curr.left != nil {
			stack = append(stack, curr.left)
		}
	}
}

func (n *Node) postOrder(yield func(*Node) bool) {
	var stack []*Node
	var last *Node

	for curr := n; curr != nil || len(stack) > 0; {
		if curr != nil {
			stack = append(stack, curr)
			curr = curr.left
			continue
		}

		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			// the right subtree has not been visited yet
			curr = top.right
			continue
		}

		stack = stack[:len(stack)-1]
		if !yield(top) {
			return
		}
		last = top
	}
}

func (n *Node) levelOrder(yield func(*Node) bool) {
	if n == nil {
		return
	}

	queue := []*Node{n}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if !yield(curr) {
			return
		}

		if curr.left != nil {
			queue = append(queue, curr.left)
		}
		if curr.right != nil {
			queue = append(queue, curr.right)
		}
	}
}

// Walk calls fn once for every node of the subtree in the provided order
func (n *Node) Walk(order Order, fn func(*Node)) {
	for node := range n.All(order) {
		fn(node)
	}
}

// InOrderWalk implements an in order walk on the subtree
func (n *Node) InOrderWalk(fn func(*Node)) {
	n.Walk(InOrder, fn)
}

// PreOrderWalk implements a pre order walk on the subtree
func (n *Node) PreOrderWalk(fn func(*Node)) {
	n.Walk(PreOrder, fn)
}

// PostOrderWalk implements a post order walk on the subtree
func (n *Node) PostOrderWalk(fn func(*Node)) {
	n.Walk(PostOrder, fn)
}

// LevelOrderWalk implements a breadth first walk on the subtree
func (n *Node) LevelOrderWalk(fn func(*Node)) {
	n.Walk(LevelOrder, fn)
}

// Visit is a single step of a traversal as consumed by
// a presentation layer that replays it
type Visit struct {
	// Step is the position of the visit in the traversal, starting at 0
	Step int `json:"step"`

	// Value of the visited node
	Value int `json:"value"`
}

// Visits buffers the traversal of the subtree in the provided order
func (n *Node) Visits(order Order) []Visit {
	var visits []Visit
	for node := range n.All(order) {
		visits = append(visits, Visit{Step: len(visits), Value: node.Value})
	}

	return visits
}
