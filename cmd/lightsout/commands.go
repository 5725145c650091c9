package main

import "github.com/spf13/cobra"

// --- Global Command Variables ---
var (
	boardWidth    int
	boardHeight   int
	seed          uint64
	maxDepth      int // 0 means width*height
	exploredLimit int
	quiet         bool

	rootCmd = &cobra.Command{
		Use:   "lightsout",
		Short: "Solve lights-toggle boards with greedy best-first search",
		Long: `lightsout generates a random board of binary cells and searches for a
move sequence that turns every cell off. Each move toggles a plus-shaped
cluster of cells centered on one cell.`,
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Search a random board and print the solution transcript",
		RunE:  runSolve,
	}

	watchCmd = &cobra.Command{
		Use:   "watch",
		Short: "Step through the search interactively in the terminal",
		RunE:  runWatch,
	}
)

func init() {
	for _, cmd := range []*cobra.Command{solveCmd, watchCmd} {
		cmd.Flags().IntVar(&boardWidth, "width", 5, "board width in cells (1-64)")
		cmd.Flags().IntVar(&boardHeight, "height", 5, "board height in cells")
		cmd.Flags().Uint64Var(&seed, "seed", 0, "randomization seed (random when unset)")
		cmd.Flags().IntVar(&maxDepth, "max-depth", 0, "history length bound (default width*height)")
		cmd.Flags().IntVar(&exploredLimit, "explored-limit", 0, "abort after expanding this many states (0 = unlimited)")
	}
	solveCmd.Flags().BoolVar(&quiet, "quiet", false, "skip the per-move board transcript")
	rootCmd.AddCommand(solveCmd, watchCmd)
}

// depthBound resolves the --max-depth flag; the demo default matches the
// board's cell count.
func depthBound() int {
	if maxDepth > 0 {
		return maxDepth
	}
	return boardWidth * boardHeight
}
