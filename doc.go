// Package bestfirst provides a generic greedy best-first search engine for
// single-player puzzles.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//
// The engine is generic over the puzzle type: anything implementing State can
// be searched. Priority is the state's own heuristic score (higher means
// closer to solved), so a returned solution is not guaranteed to be shortest,
// only to be the first terminal state popped under score-first ordering
// within the depth bound.
package bestfirst
