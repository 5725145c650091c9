package bestfirst

// PriorityQueueItem pairs a search state with its heap bookkeeping. The
// sequence number is assigned by the driver in push order.
type PriorityQueueItem[PuzzleType State[PuzzleType]] struct {
	State          *SearchState[PuzzleType]
	SequenceNumber uint64
	IndexInQueue   int
}

// PriorityQueue is a max-priority frontier ordered by cached score. Ties on
// score break FIFO by sequence number so a search over equal inputs always
// pops states in the same order.
type PriorityQueue[PuzzleType State[PuzzleType]] []*PriorityQueueItem[PuzzleType]

func (queue PriorityQueue[PuzzleType]) Len() int { return len(queue) }

func (queue PriorityQueue[PuzzleType]) Less(i, j int) bool {
	if queue[i].State.Score != queue[j].State.Score {
		return queue[i].State.Score > queue[j].State.Score
	}
	return queue[i].SequenceNumber < queue[j].SequenceNumber
}

func (queue PriorityQueue[PuzzleType]) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].IndexInQueue = i
	queue[j].IndexInQueue = j
}

func (queue *PriorityQueue[PuzzleType]) Push(x any) {
	item := x.(*PriorityQueueItem[PuzzleType])
	item.IndexInQueue = len(*queue)
	*queue = append(*queue, item)
}

func (queue *PriorityQueue[PuzzleType]) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*queue = oldQueue[:n-1]
	return item
}
