package bestfirst_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/lightsout"
)

// twoClusterBoard is an all-off 3x3 board with the corner toggles (0,0) and
// (2,2) applied, so it is solvable in exactly those two moves.
func twoClusterBoard(t *testing.T) lightsout.Board {
	t.Helper()
	board, err := lightsout.New(3, 3)
	require.NoError(t, err)
	return board.Toggle(0, 0).Toggle(2, 2)
}

func TestReplayReproducesSolution(t *testing.T) {
	board := twoClusterBoard(t)
	result, err := bestfirst.Search(context.Background(), board, 9)
	require.NoError(t, err)
	require.True(t, result.Found)

	path := result.Solution.Path()
	assert.Equal(t, []int{0, 8}, path)
	assert.Equal(t, 2, result.Explored)

	steps, err := bestfirst.Replay(board, path)
	require.NoError(t, err)
	require.Len(t, steps, len(path))

	last := steps[len(steps)-1]
	assert.True(t, last.Equal(result.Solution.Latest))
	assert.Empty(t, cmp.Diff(result.Solution.Latest.Rows(), last.Rows()))
	assert.True(t, last.End())
}

func TestReplayEmptyHistory(t *testing.T) {
	steps, err := bestfirst.Replay(twoClusterBoard(t), nil)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestReplayMismatch(t *testing.T) {
	steps, err := bestfirst.Replay(twoClusterBoard(t), []int{17})
	assert.ErrorIs(t, err, bestfirst.ErrHistoryMismatch)
	assert.Nil(t, steps)
}

func TestSeededSearchDeterministic(t *testing.T) {
	board, err := lightsout.New(3, 3)
	require.NoError(t, err)
	board = board.Randomize(42)

	first, err := bestfirst.Search(context.Background(), board, 9)
	require.NoError(t, err)
	second, err := bestfirst.Search(context.Background(), board, 9)
	require.NoError(t, err)

	assert.Equal(t, first.Found, second.Found)
	assert.Equal(t, first.Explored, second.Explored)
	if first.Found {
		assert.Equal(t, first.Solution.Path(), second.Solution.Path())

		// A solution history must replay back to the solution's own board.
		steps, err := bestfirst.Replay(board, first.Solution.Path())
		require.NoError(t, err)
		assert.True(t, steps[len(steps)-1].Equal(first.Solution.Latest))
	}
}

func TestSingleCellBoardScenarios(t *testing.T) {
	lit, err := lightsout.FromRows(1, 1, []uint64{1})
	require.NoError(t, err)

	result, err := bestfirst.Search(context.Background(), lit, 1)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []int{0}, result.Solution.Path())
	assert.Equal(t, 1, result.Explored)

	solved, err := lightsout.FromRows(1, 1, []uint64{0})
	require.NoError(t, err)

	result, err = bestfirst.Search(context.Background(), solved, 0)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Empty(t, result.Solution.Path())
	assert.Equal(t, 0, result.Explored)
}
