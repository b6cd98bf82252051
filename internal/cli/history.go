package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecipher/internal/analysis"
	"github.com/SeamusWaldron/cubecipher/internal/storage"
)

var (
	listLimit int
	showLast  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse saved solves",
	Long:  `Commands for listing, inspecting, and deleting solves saved with 'cubecipher solve --save' or by the server.`,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent solves",
	Long:  `Display a list of recent solves with their outcome and length.`,
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [solve-id]",
	Short: "Show details of a solve",
	Long: `Display detailed information about a specific solve including:
- Solve metadata (outcome, moves, solver time)
- Phase breakdown with moves
- The starting colors and payload

Use --last to show the most recent solve.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistoryShow,
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <solve-id>",
	Short: "Delete a solve",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryDelete,
}

var historyStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize saved solves",
	Args:  cobra.NoArgs,
	RunE:  runHistoryStats,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.AddCommand(historyListCmd)
	historyListCmd.Flags().IntVar(&listLimit, "limit", 20, "Maximum number of solves to display")

	historyCmd.AddCommand(historyShowCmd)
	historyShowCmd.Flags().BoolVar(&showLast, "last", false, "Show the most recent solve")

	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyStatsCmd)
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(listLimit)
	if err != nil {
		return err
	}

	if len(solves) == 0 {
		fmt.Fprintln(out, "No solves recorded yet")
		fmt.Fprintln(out, "Save one with: cubecipher solve --save <colors>")
		return nil
	}

	fmt.Fprintf(out, "Recent solves (showing %d):\n", len(solves))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-6s  %-10s  %s\n", "ID", "Created", "Outcome", "Moves", "Time", "Notes")
	fmt.Fprintln(out, "------------------------------------  -------------------  ----------  ------  ----------  -----")

	for _, s := range solves {
		notes := ""
		if s.Notes != nil {
			notes = *s.Notes
			if len(notes) > 30 {
				notes = notes[:27] + "..."
			}
		}

		fmt.Fprintf(out, "%-36s  %-19s  %-10s  %-6d  %-10s  %s\n",
			s.SolveID,
			s.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			s.Outcome,
			s.MoveCount,
			formatDuration(s.Duration),
			notes,
		)
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveRepo := storage.NewSolveRepository(db)
	moveRepo := storage.NewMoveRepository(db)
	phaseRepo := storage.NewPhaseRepository(db)

	var solve *storage.Solve
	switch {
	case showLast:
		solve, err = solveRepo.GetLast()
	case len(args) > 0:
		solve, err = solveRepo.Get(args[0])
	default:
		return fmt.Errorf("please provide a solve ID or use --last")
	}
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("solve not found")
	}

	records, err := moveRepo.GetBySolve(solve.SolveID)
	if err != nil {
		return err
	}
	moves, err := storage.ToSequence(records)
	if err != nil {
		return err
	}
	segments, err := phaseRepo.GetPhaseSegments(solve.SolveID)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Solve Details")
	fmt.Fprintln(out, "=============")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "ID:      %s\n", solve.SolveID)
	fmt.Fprintf(out, "Created: %s\n", solve.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(out, "Outcome: %s\n", solve.Outcome)
	if solve.Error != nil {
		fmt.Fprintf(out, "Error:   %s\n", errorStyle.Render(*solve.Error))
	}
	if solve.Source != nil {
		fmt.Fprintf(out, "Source:  %s\n", *solve.Source)
	}
	if solve.Notes != nil {
		fmt.Fprintf(out, "Notes:   %s\n", *solve.Notes)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Statistics")
	fmt.Fprintln(out, "----------")
	fmt.Fprintf(out, "Moves:       %d\n", solve.MoveCount)
	fmt.Fprintf(out, "Solver time: %s\n", formatDuration(solve.Duration))
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Colors:  %s\n", solve.Colors)
	if solve.Payload != nil {
		fmt.Fprintf(out, "Payload: %s\n", *solve.Payload)
	}
	fmt.Fprintln(out)

	if solve.Outcome == storage.OutcomeSolved {
		printSummary(out, moves, analysis.Summarize(moves, nil))
	}

	if len(segments) > 0 {
		fmt.Fprintln(out, "Phases")
		fmt.Fprintln(out, "------")
		for _, seg := range segments {
			fmt.Fprintf(out, "\n%s (%d moves)\n", storage.PhaseDisplayName(seg.PhaseKey), seg.MoveCount)
			if seg.EndMove > len(moves) {
				continue
			}
			for _, line := range wrapMoves(moves[seg.StartMove:seg.EndMove], 60) {
				fmt.Fprintf(out, "  %s\n", line)
			}
		}
	} else if len(moves) > 0 {
		fmt.Fprintln(out, "Moves")
		fmt.Fprintln(out, "-----")
		for _, line := range wrapMoves(moves, 60) {
			fmt.Fprintln(out, line)
		}
	}
	return nil
}

func runHistoryDelete(cmd *cobra.Command, args []string) error {
	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	solve, err := repo.Get(args[0])
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("solve not found: %s", args[0])
	}
	if err := repo.Delete(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Deleted solve: %s\n", args[0])
	return nil
}

func runHistoryStats(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	st, err := storage.NewSolveRepository(db).Stats()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "Total solves: %d\n", st.Total)
	fmt.Fprintf(out, "Solved:       %d\n", st.Solved)
	fmt.Fprintf(out, "Unsolvable:   %d\n", st.Unsolvable)
	if st.Solved > 0 {
		fmt.Fprintf(out, "Avg moves:    %.1f\n", st.AvgMoves)
		fmt.Fprintf(out, "Max moves:    %d\n", st.MaxMoves)
	}
	return nil
}
