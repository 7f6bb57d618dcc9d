package tree

// Snapshot is a copy of the topology of a tree that can be
// serialized and handed to a presentation layer
type Snapshot struct {
	Value int `json:"value"`

	// Height of the subtree computed from its structure, so it
	// is valid for every variant
	Height int `json:"height"`

	// Balance is the height of the left subtree minus the
	// height of the right subtree
	Balance int `json:"balance"`

	Left  *Snapshot `json:"left,omitempty"`
	Right *Snapshot `json:"right,omitempty"`
}

// Snapshot copies the topology of the tree. It returns nil for an
// empty tree
func (t *Tree) Snapshot() *Snapshot {
	return snapshot(t.root)
}

func snapshot(n *Node) *Snapshot {
	if n == nil {
		return nil
	}

	s := &Snapshot{
		Value: n.Value,
		Left:  snapshot(n.left),
		Right: snapshot(n.right),
	}

	lh, rh := s.Left.height(), s.Right.height()
	s.Height = 1 + max(lh, rh)
	s.Balance = lh - rh
	return s
}

func (s *Snapshot) height() int {
	if s == nil {
		return 0
	}
	return s.Height
}

// Len returns the number of nodes in the snapshot
func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}
	return 1 + s.Left.Len() + s.Right.Len()
}
