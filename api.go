package bestfirst

import (
	"container/heap"
	"context"
)

// State is the capability set a puzzle must provide to be searchable.
// PuzzleType is the implementing type itself (e.g. lightsout.Board).
//
// Key, Score and End must be pure functions of the state's content: the
// visited set treats two states with equal keys as the same position, so
// their scores and terminal status must agree as well.
type State[PuzzleType any] interface {
	// Key returns a structural identity used for deduplication.
	Key() string
	// Score is the heuristic value; higher means closer to solved.
	Score() int
	// End reports whether the state is terminal.
	End() bool
	// Moves returns every legal transition from this state. The result must
	// be finite and must not include the receiver itself.
	Moves() []Move[PuzzleType]
}

// Move represents a reachable state with the identifier of the move that
// produces it.
type Move[PuzzleType any] struct {
	Next PuzzleType
	ID   int
}

// Result contains the outcome of a search.
type Result[PuzzleType State[PuzzleType]] struct {
	// Solution is the terminal search state; nil when Found is false.
	Solution *SearchState[PuzzleType]
	// Explored counts the distinct puzzle values inserted into the visited
	// set, an exploration-cost metric.
	Explored int
	Found    bool
}

// Options defines parameters for the search.
type Options struct {
	ExploredLimit int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithExploredLimit caps how many distinct states the search may expand
// before giving up. Zero or negative means unlimited.
func WithExploredLimit(limit int) Option {
	return func(options *Options) { options.ExploredLimit = limit }
}

// Search executes a greedy best-first search from initialState.
//
// The frontier is ordered by the static heuristic score alone, with no path
// length contribution, so a returned solution is not guaranteed to use the
// minimum number of moves. States whose history has reached maxDepth are
// dropped without expansion. An exhausted frontier is a normal outcome and
// returns Found false with a nil error; the error return reports context
// cancellation only, checked once per pop cycle.
func Search[PuzzleType State[PuzzleType]](
	contextObject context.Context,
	initialState PuzzleType,
	maxDepth int,
	options ...Option,
) (Result[PuzzleType], error) {

	// --- Apply options ---
	searchOptions := Options{}
	for _, option := range options {
		option(&searchOptions)
	}

	// --- Initialize state ---
	frontier := make(PriorityQueue[PuzzleType], 0)
	heap.Init(&frontier)
	var sequence uint64
	heap.Push(&frontier, &PriorityQueueItem[PuzzleType]{
		State:          NewSearchState(initialState),
		SequenceNumber: sequence,
	})
	visited := make(map[string]struct{})

	// --- Expansion loop ---
	for {
		select {
		case <-contextObject.Done():
			return Result[PuzzleType]{Explored: len(visited)}, contextObject.Err()
		default:
		}

		if searchOptions.ExploredLimit > 0 && len(visited) >= searchOptions.ExploredLimit {
			return Result[PuzzleType]{Explored: len(visited)}, nil
		}
		if frontier.Len() == 0 {
			return Result[PuzzleType]{Explored: len(visited)}, nil
		}

		current := heap.Pop(&frontier).(*PriorityQueueItem[PuzzleType]).State
		if current.Latest.End() {
			return Result[PuzzleType]{
				Solution: current,
				Explored: len(visited),
				Found:    true,
			}, nil
		}
		if len(current.History) >= maxDepth {
			// Depth bound reached: a dead end for this branch, but other
			// frontier entries still compete.
			continue
		}

		visited[current.Latest.Key()] = struct{}{}
		for _, child := range current.Children() {
			if _, seen := visited[child.Latest.Key()]; seen {
				continue
			}
			sequence++
			heap.Push(&frontier, &PriorityQueueItem[PuzzleType]{
				State:          child,
				SequenceNumber: sequence,
			})
		}
	}
}
