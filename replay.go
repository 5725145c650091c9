package bestfirst

import (
	"errors"
	"fmt"
)

// ErrHistoryMismatch reports a recorded move identifier that no legal move
// of the board being replayed matches. A history produced by Search against
// the same initial state never triggers it; seeing it means move-identifier
// assignment and move enumeration disagree.
var ErrHistoryMismatch = errors.New("history does not match state")

// Replay walks a move history from initialState, returning one state per
// move applied, in order. Each step selects, among the current state's legal
// moves, the one whose identifier equals the recorded one.
func Replay[PuzzleType State[PuzzleType]](initialState PuzzleType, history []int) ([]PuzzleType, error) {
	states := make([]PuzzleType, 0, len(history))
	current := initialState
	for position, moveID := range history {
		matched := false
		for _, move := range current.Moves() {
			if move.ID == moveID {
				current = move.Next
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("replay step %d: move id %d: %w", position, moveID, ErrHistoryMismatch)
		}
		states = append(states, current)
	}
	return states, nil
}
