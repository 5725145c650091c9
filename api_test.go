package bestfirst

import (
	"container/heap"
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countdown is a minimal test puzzle: states are the integers 0..limit,
// solved at 0, with one move down and one move up. Move id is the target
// value.
type countdown struct {
	value, limit int
}

func (c countdown) Key() string { return strconv.Itoa(c.value) }
func (c countdown) Score() int  { return c.limit - c.value }
func (c countdown) End() bool   { return c.value == 0 }

func (c countdown) Moves() []Move[countdown] {
	var moves []Move[countdown]
	if c.value > 0 {
		moves = append(moves, Move[countdown]{Next: countdown{c.value - 1, c.limit}, ID: c.value - 1})
	}
	if c.value < c.limit {
		moves = append(moves, Move[countdown]{Next: countdown{c.value + 1, c.limit}, ID: c.value + 1})
	}
	return moves
}

func TestSearchAlreadySolved(t *testing.T) {
	result, err := Search(context.Background(), countdown{0, 5}, 10)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, 0, result.Explored, "a terminal root is never expanded")
	assert.Empty(t, result.Solution.Path())
	assert.Equal(t, NoMove, result.Solution.MoveID)
}

func TestSearchFindsSolution(t *testing.T) {
	result, err := Search(context.Background(), countdown{3, 5}, 10)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.True(t, result.Solution.Latest.End())
	// The score gradient points straight down, so greedy ordering walks it.
	assert.Equal(t, []int{2, 1, 0}, result.Solution.Path())
	assert.Equal(t, 3, result.Explored)
}

func TestSearchDepthBoundExhausts(t *testing.T) {
	result, err := Search(context.Background(), countdown{3, 5}, 1)
	require.NoError(t, err, "exhaustion is a normal outcome, not an error")
	assert.False(t, result.Found)
	assert.Equal(t, 3, result.Explored)
}

func TestSearchDepthBoundJustSufficient(t *testing.T) {
	// A state's history excludes its own move, so the terminal state for a
	// 3-move path carries 2 recorded moves and survives a bound of 2.
	result, err := Search(context.Background(), countdown{3, 5}, 2)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Len(t, result.Solution.Path(), 3)
}

func TestSearchExploredLimit(t *testing.T) {
	result, err := Search(context.Background(), countdown{3, 5}, 10, WithExploredLimit(2))
	require.NoError(t, err)
	assert.False(t, result.Found)
	assert.Equal(t, 2, result.Explored)
}

func TestSearchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Search(ctx, countdown{3, 5}, 10)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearchDeterministic(t *testing.T) {
	first, err := Search(context.Background(), countdown{7, 20}, 40)
	require.NoError(t, err)
	second, err := Search(context.Background(), countdown{7, 20}, 40)
	require.NoError(t, err)

	assert.Equal(t, first.Found, second.Found)
	assert.Equal(t, first.Explored, second.Explored)
	if first.Found {
		assert.Equal(t, first.Solution.Path(), second.Solution.Path())
	}
}

func TestPriorityQueueOrdering(t *testing.T) {
	queue := make(PriorityQueue[countdown], 0)
	heap.Init(&queue)
	for i, score := range []int{1, 3, 3, 2} {
		heap.Push(&queue, &PriorityQueueItem[countdown]{
			State:          &SearchState[countdown]{Score: score, MoveID: i},
			SequenceNumber: uint64(i),
		})
	}

	var popped []int
	for queue.Len() > 0 {
		item := heap.Pop(&queue).(*PriorityQueueItem[countdown])
		popped = append(popped, item.State.MoveID)
	}
	// Highest score first; equal scores pop in insertion order.
	assert.Equal(t, []int{1, 2, 3, 0}, popped)
}

func TestChildrenHistoryIndependence(t *testing.T) {
	root := NewSearchState(countdown{2, 5})
	assert.Equal(t, 3, root.Score)
	children := root.Children()
	require.Len(t, children, 2)
	for _, child := range children {
		assert.Empty(t, child.History, "the root has no move to hand down")
	}

	down := children[0]
	require.Equal(t, 1, down.MoveID)
	grandchildren := down.Children()
	require.Len(t, grandchildren, 2)
	for _, grandchild := range grandchildren {
		assert.Equal(t, []int{1}, grandchild.History)
	}

	assert.Equal(t, []int{1, 0}, grandchildren[0].Path())

	grandchildren[0].History = append(grandchildren[0].History, 99)
	assert.Equal(t, []int{1}, grandchildren[1].History, "siblings must not share history storage")
}
