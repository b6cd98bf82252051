package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecipher"
	"github.com/SeamusWaldron/cubecipher/internal/analysis"
	"github.com/SeamusWaldron/cubecipher/internal/render"
	"github.com/SeamusWaldron/cubecipher/internal/storage"
)

var (
	solvePayload   string
	solveDelimiter string
	solveFaceMajor bool
	solveSave      bool
	solveNotes     string
	solvePlain     bool
	solveExplain   bool
	solveStats     bool
)

var solveCmd = &cobra.Command{
	Use:   "solve <colors>",
	Short: "Solve a cube state",
	Long: `Solve a cube given as 54 color symbols in net order: the nine Up facets,
then three rows of Left Front Right Back, then the nine Down facets.

With --face-major the symbols are read face by face in U L F R B D order
instead, each face row by row as seen from outside.

A payload rides along with the colors and is printed in solved position.

Examples:
  cubecipher solve UUUUUUUUULLLFFFRRRBBBLLLFFFRRRBBBLLLFFFRRRBBBDDDDDDDDD
  cubecipher solve --payload "$DATA" "$COLORS"
  cubecipher solve --plain --face-major "$STATE"`,
	Args: cobra.ExactArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solvePayload, "payload", "p", "", "Payload symbols, one rune per facet")
	solveCmd.Flags().StringVar(&solveDelimiter, "delimiter", "", "Separator between payload symbols")
	solveCmd.Flags().BoolVar(&solveFaceMajor, "face-major", false, "Read colors and payload face by face")
	solveCmd.Flags().BoolVar(&solveSave, "save", false, "Record the solve in the database")
	solveCmd.Flags().StringVar(&solveNotes, "notes", "", "Notes for the saved solve")
	solveCmd.Flags().BoolVar(&solvePlain, "plain", false, "Print only the solution and its length")
	solveCmd.Flags().BoolVar(&solveExplain, "explain", false, "Describe each move in words")
	solveCmd.Flags().BoolVar(&solveStats, "stats", false, "Analyze the solution for wasted and repeated moves")
}

// buildCube parses colors and an optional payload from the command line.
func buildCube(colors, payload, delimiter string, faceMajor bool) (*cubecipher.Cube, error) {
	if faceMajor {
		var err error
		if colors, err = cubecipher.FaceMajorToNet(colors); err != nil {
			return nil, err
		}
		if payload != "" && delimiter == "" {
			if payload, err = cubecipher.FaceMajorToNet(payload); err != nil {
				return nil, err
			}
		}
	}

	var opts []cubecipher.Option
	switch {
	case payload == "":
	case delimiter != "" && faceMajor:
		tokens, err := cubecipher.FaceMajorTokensToNet(strings.Split(payload, delimiter))
		if err != nil {
			return nil, err
		}
		opts = append(opts, cubecipher.WithPayloadTokens(tokens))
	case delimiter != "":
		opts = append(opts, cubecipher.WithPayloadDelimited(payload, delimiter))
	default:
		opts = append(opts, cubecipher.WithPayload(payload))
	}
	return cubecipher.New(colors, opts...)
}

// payloadText formats the payload the way buildCube reads it.
func payloadText(c *cubecipher.Cube, delimiter string, faceMajor bool) string {
	switch {
	case delimiter != "" && faceMajor:
		return strings.Join(c.FaceMajorPayloadTokens(), delimiter)
	case delimiter != "":
		return c.PayloadDelimited(delimiter)
	case faceMajor:
		return c.FaceMajorPayload()
	default:
		return c.FlatPayload()
	}
}

func runSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	c, err := buildCube(args[0], solvePayload, solveDelimiter, solveFaceMajor)
	if err != nil {
		return err
	}
	start := c.Clone()

	solver := cubecipher.NewSolver(c, solverOptions()...)
	began := time.Now()
	moves, solveErr := solver.Solve()
	elapsed := time.Since(began)

	if solveSave {
		if err := saveSolve(start, moves, solver.Phases(), solveErr, elapsed, solveNotes); err != nil {
			return err
		}
	}
	if solveErr != nil {
		return solveErr
	}

	if solvePlain {
		fmt.Fprintln(out, moves)
		fmt.Fprintln(out, len(moves))
		return nil
	}

	r := newRenderer()
	fmt.Fprintln(out, titleStyle.Render("Start"))
	fmt.Fprintln(out, r.Colors(start))

	fmt.Fprintln(out, titleStyle.Render(fmt.Sprintf("Solution (%d moves, %s)", len(moves), formatDuration(elapsed))))
	if len(moves) == 0 {
		fmt.Fprintln(out, statusStyle.Render("  already solved"))
	}
	for _, line := range wrapMoves(moves, 60) {
		fmt.Fprintf(out, "  %s\n", moveStyle.Render(line))
	}
	if solveExplain {
		for i, m := range moves {
			fmt.Fprintf(out, "  %3d. %-3s %s\n", i+1, m.Notation(), render.Describe(m))
		}
	}
	fmt.Fprintln(out)

	printPhases(out, moves, solver.Phases())
	if solveStats {
		printSummary(out, moves, analysis.Summarize(moves, solver.Phases()))
	}

	if c.HasPayload() {
		fmt.Fprintln(out, titleStyle.Render("Payload"))
		fmt.Fprintln(out, r.Payload(c))
		fmt.Fprintln(out, payloadText(c, solveDelimiter, solveFaceMajor))
	}
	return nil
}

// printPhases prints the moves spent in each phase.
func printPhases(out io.Writer, moves cubecipher.Sequence, marks []cubecipher.PhaseMark) {
	if len(marks) == 0 {
		return
	}
	fmt.Fprintln(out, titleStyle.Render("Phases"))

	stored := make([]storage.PhaseMark, len(marks))
	for i, m := range marks {
		stored[i] = storage.PhaseMark{PhaseKey: m.Phase.String(), MoveCount: m.Moves}
	}
	for _, seg := range storage.Segments(stored) {
		fmt.Fprintf(out, "  %-32s %3d moves", storage.PhaseDisplayName(seg.PhaseKey), seg.MoveCount)
		if seg.MoveCount > 0 {
			fmt.Fprintf(out, "  %s", moveStyle.Render(moves[seg.StartMove:seg.EndMove].String()))
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}

func saveSolve(start *cubecipher.Cube, moves cubecipher.Sequence, marks []cubecipher.PhaseMark, solveErr error, elapsed time.Duration, notes string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	id, err := storage.NewSolveRepository(db).Save(storage.SolveInput{
		Colors:   start.FlatColors(),
		Payload:  start.FlatPayload(),
		Moves:    moves,
		Phases:   marks,
		Err:      solveErr,
		Duration: elapsed,
		Source:   "cli",
		Notes:    notes,
	})
	if err != nil {
		return fmt.Errorf("failed to save solve: %w", err)
	}
	logger.Info().Str("solve_id", id).Msg("solve saved")
	return nil
}

// printSummary prints solution statistics.
func printSummary(out io.Writer, moves cubecipher.Sequence, s *analysis.Summary) {
	fmt.Fprintln(out, titleStyle.Render("Analysis"))
	fmt.Fprintf(out, "  Moves:          %d (%d quarter turns)\n", s.TotalMoves, s.QuarterTurns)
	fmt.Fprintf(out, "  After merging:  %d (%.0f%%)\n", s.OptimizedMoves, s.Efficiency*100)
	if s.TotalMoves > 0 {
		fmt.Fprintf(out, "  Most used face: %s (%d)\n", s.Profile.MostUsedFace, s.Profile.FaceCounts[s.Profile.MostUsedFace])
	}

	rep := s.Repetitions
	if rep.TotalWastedMoves > 0 {
		fmt.Fprintf(out, "  Wasted moves:   %d (%d cancellations, %d merges)\n",
			rep.TotalWastedMoves, len(rep.ImmediateCancellations), len(rep.MergeOpportunities))
	}
	for _, p := range rep.BackAndForthPatterns {
		fmt.Fprintf(out, "  Back and forth: %s x%d at move %d\n", strings.Join(p.Pattern, " "), p.Count, p.StartIndex+1)
	}

	for _, g := range analysis.MineNGrams(moves, 4, 3) {
		fmt.Fprintf(out, "  Repeated:       %s x%d\n", g, g.Count)
	}
	fmt.Fprintln(out)
}
