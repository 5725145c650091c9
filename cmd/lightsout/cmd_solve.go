package main

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/bestfirst"
	"github.com/pdrpinto/bestfirst/internal/gridview"
	"github.com/pdrpinto/bestfirst/lightsout"
)

func searchOptions() []bestfirst.Option {
	if exploredLimit > 0 {
		return []bestfirst.Option{bestfirst.WithExploredLimit(exploredLimit)}
	}
	return nil
}

// initialBoard builds the demo board, randomizing the seed when the flag was
// not given. The seed is always printed so runs can be reproduced.
func initialBoard(cmd *cobra.Command) (lightsout.Board, error) {
	board, err := lightsout.New(boardWidth, boardHeight)
	if err != nil {
		return lightsout.Board{}, err
	}
	if !cmd.Flags().Changed("seed") {
		seed = rand.Uint64()
	}
	fmt.Printf("Seed: %d\n", seed)
	return board.Randomize(seed), nil
}

func runSolve(cmd *cobra.Command, args []string) error {
	board, err := initialBoard(cmd)
	if err != nil {
		return err
	}
	fmt.Println(gridview.Render(board))

	start := time.Now()
	result, err := bestfirst.Search(cmd.Context(), board, depthBound(), searchOptions()...)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}
	if !result.Found {
		fmt.Println("No solution found")
		slog.Info("search exhausted",
			"explored", result.Explored,
			"duration", elapsed)
		return nil
	}

	path := result.Solution.Path()
	steps, err := bestfirst.Replay(board, path)
	if err != nil {
		// A history the engine produced must replay against its own initial
		// board; anything else is a bookkeeping bug.
		return fmt.Errorf("replaying solution: %w", err)
	}
	if !quiet {
		fmt.Println("Solution:")
		for i, step := range steps {
			fmt.Printf("Move %d of %d (id %d)\n", i+1, len(path), path[i])
			fmt.Println(gridview.Render(step))
		}
	}
	fmt.Printf("%d moves\n", len(path))
	fmt.Printf("Explored %d states\n", result.Explored)
	slog.Info("solved",
		"moves", len(path),
		"explored", result.Explored,
		"duration", elapsed)
	return nil
}
