package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecipher"
	"github.com/SeamusWaldron/cubecipher/internal/scramble"
)

var (
	scrambleMoves   int
	scrambleSeed    uint64
	scrambleSymbols string
	scrambleShuffle bool
	scrambleShow    bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random cube state",
	Long: `Generate a random scramble and print it with the resulting state.

The state is printed in net order and can be passed straight to solve.
--symbols relabels the faces, one rune per face in U L F R B D order.
--shuffle prints a random arrangement of the symbols instead of a scramble;
such states are almost never solvable.`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleMoves, "moves", "n", 0, "Scramble length (default: drawn from the configured range)")
	scrambleCmd.Flags().Uint64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")
	scrambleCmd.Flags().StringVar(&scrambleSymbols, "symbols", "", "Face symbols in U L F R B D order")
	scrambleCmd.Flags().BoolVar(&scrambleShuffle, "shuffle", false, "Shuffle facets without regard to reachability")
	scrambleCmd.Flags().BoolVar(&scrambleShow, "show", false, "Draw the scrambled cube")
}

func runScramble(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	gen := scramble.NewRandom()
	if cmd.Flags().Changed("seed") {
		gen = scramble.New(scrambleSeed)
	}

	if scrambleShuffle {
		state, err := gen.Shuffle(scrambleSymbols)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, state)
		return nil
	}

	c, err := scramble.Solved(scrambleSymbols)
	if err != nil {
		return err
	}
	var seq cubecipher.Sequence
	if scrambleMoves > 0 {
		seq = gen.Moves(scrambleMoves)
	} else {
		sc := currentConfig().Scramble
		seq = gen.Between(sc.MinMoves, sc.MaxMoves)
	}
	c.ApplySequence(seq)
	logger.Debug().Int("moves", len(seq)).Msg("scramble generated")

	fmt.Fprintln(out, seq)
	fmt.Fprintln(out, c.FlatColors())
	if scrambleShow {
		fmt.Fprintln(out, newRenderer().Colors(c))
	}
	return nil
}
