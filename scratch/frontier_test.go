package scratch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taisia-zlotnikova/pathfinding-bench/scratch"
)

func TestFrontier_PopsAscendingByF(t *testing.T) {
	f := scratch.NewFrontier(0)
	f.PushNode(1, 5.0, 5.0)
	f.PushNode(2, 1.0, 1.0)
	f.PushNode(3, 3.0, 3.0)

	var order []int
	for f.Len() > 0 {
		order = append(order, f.PopNode().ID)
	}
	assert.Equal(t, []int{2, 3, 1}, order)
}

func TestFrontier_TiesBrokenByInsertionOrder(t *testing.T) {
	f := scratch.NewFrontier(0)
	f.PushNode(10, 2.0, 2.0)
	f.PushNode(20, 2.0, 2.0)
	f.PushNode(30, 2.0, 2.0)

	assert.Equal(t, 10, f.PopNode().ID)
	assert.Equal(t, 20, f.PopNode().ID)
	assert.Equal(t, 30, f.PopNode().ID)
}

func TestFrontier_LazyDuplicatesCoexist(t *testing.T) {
	f := scratch.NewFrontier(0)
	// Same cell id pushed twice at different priorities, simulating a
	// relaxation that improves a previously queued candidate: both entries
	// remain in the heap and the caller is responsible for discarding the
	// stale one once it is popped.
	f.PushNode(7, 9.0, 9.0)
	f.PushNode(7, 4.0, 4.0)

	assert.Equal(t, 2, f.Len())
	first := f.PopNode()
	assert.Equal(t, 7, first.ID)
	assert.Equal(t, 4.0, first.F)
	second := f.PopNode()
	assert.Equal(t, 7, second.ID)
	assert.Equal(t, 9.0, second.F)
}

func TestFrontier_ResetEmptiesButKeepsCapacity(t *testing.T) {
	f := scratch.NewFrontier(8)
	f.PushNode(1, 1.0, 1.0)
	f.PushNode(2, 2.0, 2.0)

	f.Reset()
	assert.Equal(t, 0, f.Len())

	f.PushNode(3, 0.5, 0.5)
	assert.Equal(t, 1, f.Len())
	assert.Equal(t, 3, f.PopNode().ID)
}

func TestFrontier_EmptyLenIsZero(t *testing.T) {
	f := scratch.NewFrontier(0)
	assert.Equal(t, 0, f.Len())
}
