package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func exampleSearchTree() *Tree {
	return insertAll(NewSearchTree(IntLesser{}), 5, 3, 8, 1, 4, 7, 9)
}

func collect(tree *Tree, order Order) []int {
	var res []int
	tree.Walk(order, func(n *Node) {
		res = append(res, n.Value)
	})
	return res
}

func TestWalkEmptyTree(t *testing.T) {
	for _, order := range []Order{InOrder, PreOrder, PostOrder, LevelOrder} {
		tree := NewSearchTree(IntLesser{})
		called := 0
		tree.Walk(order, func(n *Node) {
			called++
		})

		assert.Equal(t, 0, called, order.String())
		assert.Empty(t, tree.Visits(order), order.String())
	}
}

func TestInOrderWalkOneLevel(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 1, 0, 2)
	var res []int

	tree.InOrderWalk(func(n *Node) {
		res = append(res, n.Value)
	})

	assert.Equal(t, []int{0, 1, 2}, res)
}

func TestPreOrderWalkOneLevel(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 1, 0, 2)
	var res []int

	tree.PreOrderWalk(func(n *Node) {
		res = append(res, n.Value)
	})

	assert.Equal(t, []int{1, 0, 2}, res)
}

func TestPostOrderWalkOneLevel(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 1, 0, 2)
	var res []int

	tree.PostOrderWalk(func(n *Node) {
		res = append(res, n.Value)
	})

	assert.Equal(t, []int{0, 2, 1}, res)
}

func TestLevelOrderWalkOneLevel(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 1, 0, 2)
	var res []int

	tree.LevelOrderWalk(func(n *Node) {
		res = append(res, n.Value)
	})

	assert.Equal(t, []int{1, 0, 2}, res)
}

func TestWalkMultiLevel(t *testing.T) {
	tree := exampleSearchTree()

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, collect(tree, InOrder))
	assert.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, collect(tree, PreOrder))
	assert.Equal(t, []int{1, 4, 3, 7, 9, 8, 5}, collect(tree, PostOrder))
	assert.Equal(t, []int{5, 3, 8, 1, 4, 7, 9}, collect(tree, LevelOrder))
}

func TestWalkDegenerateTrees(t *testing.T) {
	right := insertAll(NewSearchTree(IntLesser{}), 1, 2, 3)
	assert.Equal(t, []int{1, 2, 3}, collect(right, InOrder))
	assert.Equal(t, []int{1, 2, 3}, collect(right, PreOrder))
	assert.Equal(t, []int{3, 2, 1}, collect(right, PostOrder))

	left := insertAll(NewSearchTree(IntLesser{}), 3, 2, 1)
	assert.Equal(t, []int{1, 2, 3}, collect(left, InOrder))
	assert.Equal(t, []int{3, 2, 1}, collect(left, PreOrder))
	assert.Equal(t, []int{1, 2, 3}, collect(left, PostOrder))
}

func TestWalkUnorderedTree(t *testing.T) {
	tree := insertAll(NewBinaryTree(IntLesser{}), 3, 1, 2, 5)

	assert.Equal(t, []int{5, 1, 3, 2}, collect(tree, InOrder))
	assert.Equal(t, []int{3, 1, 5, 2}, collect(tree, PreOrder))
	assert.Equal(t, []int{5, 1, 2, 3}, collect(tree, PostOrder))
	assert.Equal(t, []int{3, 1, 2, 5}, collect(tree, LevelOrder))
}

func TestWalkIsDeterministic(t *testing.T) {
	tree := insertAll(NewBalancedTree(IntLesser{}), 8, 3, 10, 1, 6, 14, 4, 7, 13)

	for _, order := range []Order{InOrder, PreOrder, PostOrder, LevelOrder} {
		assert.Equal(t, collect(tree, order), collect(tree, order), order.String())
	}
}

func TestAllStopsEarly(t *testing.T) {
	tree := exampleSearchTree()

	for _, order := range []Order{InOrder, PreOrder, PostOrder, LevelOrder} {
		var res []int
		for n := range tree.All(order) {
			res = append(res, n.Value)
			if len(res) == 3 {
				break
			}
		}

		assert.Equal(t, collect(tree, order)[:3], res, order.String())
	}

	// stopping early leaves the tree untouched
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, collect(tree, InOrder))
	assert.NoError(t, tree.Verify())
}

func TestAllUnknownOrderPanics(t *testing.T) {
	tree := exampleSearchTree()
	assert.Panics(t, func() {
		tree.All(Order(42))
	})
}

func TestVisits(t *testing.T) {
	tree := exampleSearchTree()

	visits := tree.Visits(PreOrder)

	assert.Equal(t, []Visit{
		{Step: 0, Value: 5},
		{Step: 1, Value: 3},
		{Step: 2, Value: 1},
		{Step: 3, Value: 4},
		{Step: 4, Value: 8},
		{Step: 5, Value: 7},
		{Step: 6, Value: 9},
	}, visits)
}

func TestNodeWalkSubtree(t *testing.T) {
	tree := exampleSearchTree()
	var res []int

	tree.Find(8).InOrderWalk(func(n *Node) {
		res = append(res, n.Value)
	})

	assert.Equal(t, []int{7, 8, 9}, res)
}
