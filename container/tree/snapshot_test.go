package tree

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotEmpty(t *testing.T) {
	tree := NewBalancedTree(IntLesser{})
	assert.Nil(t, tree.Snapshot())
	assert.Equal(t, 0, tree.Snapshot().Len())
}

func TestSnapshotBalanced(t *testing.T) {
	tree := insertAll(NewBalancedTree(IntLesser{}), 10, 20, 30)

	s := tree.Snapshot()

	assert.Equal(t, &Snapshot{
		Value:  20,
		Height: 2,
		Left:   &Snapshot{Value: 10, Height: 1},
		Right:  &Snapshot{Value: 30, Height: 1},
	}, s)
	assert.Equal(t, 3, s.Len())
}

func TestSnapshotHeightsForUnbalancedVariants(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 1, 2, 3)

	s := tree.Snapshot()

	require.NotNil(t, s.Right)
	assert.Equal(t, 3, s.Height)
	assert.Equal(t, -2, s.Balance)
	assert.Equal(t, 2, s.Right.Height)
}

func TestSnapshotIsCopy(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 2, 1, 3)
	s := tree.Snapshot()

	tree.Delete(1)

	require.NotNil(t, s.Left)
	assert.Equal(t, 1, s.Left.Value)
}

func TestSnapshotJSON(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 2, 1)

	b, err := json.Marshal(tree.Snapshot())

	assert.NoError(t, err)
	assert.JSONEq(t, `{"value":2,"height":2,"balance":1,"left":{"value":1,"height":1,"balance":0}}`, string(b))
}

func TestPrint(t *testing.T) {
	tree := insertAll(NewSearchTree(IntLesser{}), 2, 1, 3)
	var buf bytes.Buffer

	assert.NoError(t, tree.Print(&buf))
	assert.Equal(t, ""+
		"       /------+ 3 (h=1 b=+0)\n"+
		"|------+ 2 (h=2 b=+0)\n"+
		"       \\------+ 1 (h=1 b=+0)\n", buf.String())
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer

	assert.NoError(t, NewBinaryTree(IntLesser{}).Print(&buf))
	assert.Empty(t, buf.String())
}
