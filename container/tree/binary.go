package tree

// binary inserts values in level order, in the first free
// slot found scanning the tree top to bottom and left to
// right. It keeps no ordering between values.
//
// Deletion is inherited from search and descends by comparing
// values, which is only reliable while the values happen to
// satisfy the search tree ordering. On other trees a value
// that is present may not be found.
type binary struct {
	search
}

// Insert the value in the first free slot in level order unless
// the tree already contains it
func (m binary) Insert(t *Tree, v int) bool {
	if t.root == nil {
		t.root = newNode(v)
		return true
	}

	if scan(t.root, v) != nil {
		return false
	}

	n := newNode(v)
	queue := []*Node{t.root}
	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		if curr.left == nil {
			curr.left = n
			return true
		}
		queue = append(queue, curr.left)

		if curr.right == nil {
			curr.right = n
			return true
		}
		queue = append(queue, curr.right)
	}

	// a finite tree always has a free slot
	panic("unreachable statement")
}

// scan searches the whole subtree for a node with value v
func scan(n *Node, v int) *Node {
	if n == nil {
		return nil
	}
	if n.Value == v {
		return n
	}
	if found := scan(n.left, v); found != nil {
		return found
	}
	return scan(n.right, v)
}

// NewBinaryTree creates a new tree that fills levels from left
// to right in insertion order. The comparison function is only
// used by Delete
func NewBinaryTree(cmp Lesser) *Tree {
	return newTree(Binary, cmp, binary{})
}
