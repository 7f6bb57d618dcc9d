package tree

// modifier is a pair of algorithms used to insert
// and remove values from the tree. Each variant of
// the tree is defined by its modifier, while walks
// are shared by all of them
type modifier interface {
	// Insert a value into the tree. It returns true
	// if a new node was added
	Insert(t *Tree, v int) bool

	// Delete a value from the tree. It returns true
	// if a node was removed
	Delete(t *Tree, v int) bool
}
