package bestfirst

import "slices"

// NoMove marks a root search state, which no move produced.
const NoMove = -1

// SearchState decorates a puzzle value with the move history that led to it
// and a cached ordering score. Each branch owns an independent copy of its
// history; siblings never alias state.
type SearchState[PuzzleType State[PuzzleType]] struct {
	// History holds the move identifiers taken to reach the parent of this
	// state, in chronological order. This state's own move is in MoveID, not
	// History; Path joins the two.
	History []int
	// Latest is the wrapped puzzle value.
	Latest PuzzleType
	// MoveID identifies the move that produced this state, NoMove for a root.
	MoveID int
	// Score caches Latest.Score() from construction time.
	Score int
}

// NewSearchState wraps a bare puzzle value as a root search state with empty
// history and no originating move.
func NewSearchState[PuzzleType State[PuzzleType]](value PuzzleType) *SearchState[PuzzleType] {
	return &SearchState[PuzzleType]{
		Latest: value,
		MoveID: NoMove,
		Score:  value.Score(),
	}
}

// Children derives one search state per legal move of Latest. Every child
// receives its own copy of this state's history with this state's move
// appended, and records the move that produced it.
func (state *SearchState[PuzzleType]) Children() []*SearchState[PuzzleType] {
	moves := state.Latest.Moves()
	if len(moves) == 0 {
		return nil
	}

	base := state.History
	if state.MoveID != NoMove {
		base = make([]int, 0, len(state.History)+1)
		base = append(base, state.History...)
		base = append(base, state.MoveID)
	}

	children := make([]*SearchState[PuzzleType], 0, len(moves))
	for _, move := range moves {
		children = append(children, &SearchState[PuzzleType]{
			History: slices.Clone(base),
			Latest:  move.Next,
			MoveID:  move.ID,
			Score:   move.Next.Score(),
		})
	}
	return children
}

// Path returns the full move sequence from the root to this state: History
// plus this state's own move. Replaying it from the root's puzzle value
// reproduces Latest.
func (state *SearchState[PuzzleType]) Path() []int {
	if state.MoveID == NoMove {
		return slices.Clone(state.History)
	}
	path := make([]int, 0, len(state.History)+1)
	path = append(path, state.History...)
	return append(path, state.MoveID)
}
