package bestfirst

import (
	"container/heap"
	"context"
)

// StepSnapshot exposes the per-iteration state of the search
type StepSnapshot[PuzzleType State[PuzzleType]] struct {
	// Current is the search state popped by this step, nil when the frontier
	// was already empty.
	Current     *SearchState[PuzzleType]
	FrontierLen int
	Explored    int
	Done        bool
	Found       bool
	StepIndex   int
}

// Stepper runs the same expansion loop as Search one pop/expand cycle at a
// time, for driving UIs or debugging tools. It owns its frontier and visited
// set exclusively and is not safe for concurrent use.
type Stepper[PuzzleType State[PuzzleType]] struct {
	ctx      context.Context
	cancel   context.CancelFunc
	maxDepth int
	limit    int

	frontier PriorityQueue[PuzzleType]
	visited  map[string]struct{}
	sequence uint64

	stepCount int
	done      bool
	found     bool
	solution  *SearchState[PuzzleType]
}

// NewStepper creates a stepper over the same expansion logic as Search
func NewStepper[PuzzleType State[PuzzleType]](
	parent context.Context,
	initialState PuzzleType,
	maxDepth int,
	options ...Option,
) *Stepper[PuzzleType] {
	// options
	opts := Options{}
	for _, o := range options {
		o(&opts)
	}

	ctx, cancel := context.WithCancel(parent)
	s := &Stepper[PuzzleType]{
		ctx: ctx, cancel: cancel,
		maxDepth: maxDepth,
		limit:    opts.ExploredLimit,
		frontier: make(PriorityQueue[PuzzleType], 0),
		visited:  make(map[string]struct{}),
	}

	heap.Init(&s.frontier)
	heap.Push(&s.frontier, &PriorityQueueItem[PuzzleType]{
		State:          NewSearchState(initialState),
		SequenceNumber: s.sequence,
	})

	return s
}

// Close releases the stepper; further Step calls report cancellation.
func (s *Stepper[PuzzleType]) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Step advances the search by one pop/expand cycle and returns a snapshot.
func (s *Stepper[PuzzleType]) Step() (StepSnapshot[PuzzleType], error) {
	select {
	case <-s.ctx.Done():
		s.done = true
		return s.snapshot(nil), s.ctx.Err()
	default:
	}

	if s.done {
		return s.snapshot(nil), nil
	}
	if s.limit > 0 && len(s.visited) >= s.limit {
		s.done = true
		return s.snapshot(nil), nil
	}
	if s.frontier.Len() == 0 {
		s.done = true
		return s.snapshot(nil), nil
	}

	s.stepCount++
	current := heap.Pop(&s.frontier).(*PriorityQueueItem[PuzzleType]).State

	if current.Latest.End() {
		s.done = true
		s.found = true
		s.solution = current
		return s.snapshot(current), nil
	}
	if len(current.History) >= s.maxDepth {
		return s.snapshot(current), nil
	}

	s.visited[current.Latest.Key()] = struct{}{}
	for _, child := range current.Children() {
		if _, seen := s.visited[child.Latest.Key()]; seen {
			continue
		}
		s.sequence++
		heap.Push(&s.frontier, &PriorityQueueItem[PuzzleType]{
			State:          child,
			SequenceNumber: s.sequence,
		})
	}
	return s.snapshot(current), nil
}

// Result packages the outcome reached so far in Search's terms.
func (s *Stepper[PuzzleType]) Result() Result[PuzzleType] {
	return Result[PuzzleType]{
		Solution: s.solution,
		Explored: len(s.visited),
		Found:    s.found,
	}
}

func (s *Stepper[PuzzleType]) snapshot(current *SearchState[PuzzleType]) StepSnapshot[PuzzleType] {
	return StepSnapshot[PuzzleType]{
		Current:     current,
		FrontierLen: s.frontier.Len(),
		Explored:    len(s.visited),
		Done:        s.done,
		Found:       s.found,
		StepIndex:   s.stepCount,
	}
}
