package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecipher"
	"github.com/SeamusWaldron/cubecipher/internal/analysis"
	"github.com/SeamusWaldron/cubecipher/internal/storage"
)

var (
	reportOutputDir string
	trendWindow     int
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate analysis reports",
	Long:  `Generate analysis reports for saved solves and trends across them.`,
}

var reportSolveCmd = &cobra.Command{
	Use:   "solve <solve-id|last>",
	Short: "Generate a solve report",
	Long: `Generate a detailed analysis report for a saved solve.

Reports include:
  - solve_summary.json: Overview statistics and per-phase analysis
  - moves.txt: Move sequence in notation
  - repetition_report.json: Cancellations, merges, patterns
  - ngram_report.json: Repeated move sequences (n=4-8)
  - phase_moves/: Per-phase move sequences`,
	Args: cobra.ExactArgs(1),
	RunE: runReportSolve,
}

var reportTrendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Generate a trend report",
	Long:  `Generate a report of solution lengths across recent saved solves, overall and per phase.`,
	Args:  cobra.NoArgs,
	RunE:  runReportTrend,
}

func init() {
	rootCmd.AddCommand(reportCmd)

	reportCmd.AddCommand(reportSolveCmd)
	reportSolveCmd.Flags().StringVarP(&reportOutputDir, "output", "o", "", "Output directory (default: ./reports/<created>)")

	reportCmd.AddCommand(reportTrendCmd)
	reportTrendCmd.Flags().IntVar(&trendWindow, "window", 50, "Number of recent solves to analyze")
	reportTrendCmd.Flags().StringVarP(&reportOutputDir, "output", "o", "", "Output directory (default: ./reports)")
}

// SolveReport is the JSON structure for solve_summary.json.
type SolveReport struct {
	SolveID   string            `json:"solve_id"`
	CreatedAt string            `json:"created_at"`
	Colors    string            `json:"colors"`
	Payload   string            `json:"payload,omitempty"`
	SolverUs  int64             `json:"solver_us"`
	Summary   *analysis.Summary `json:"summary"`
	Phases    []PhaseAnalysis   `json:"phases,omitempty"`
	Notes     string            `json:"notes,omitempty"`
}

// PhaseAnalysis contains per-phase analysis data.
type PhaseAnalysis struct {
	PhaseKey    string                     `json:"phase_key"`
	DisplayName string                     `json:"display_name"`
	MoveCount   int                        `json:"move_count"`
	Moves       string                     `json:"moves"`
	Repetitions *analysis.RepetitionReport `json:"repetitions,omitempty"`
	TopPatterns []analysis.NGram           `json:"top_patterns,omitempty"`
}

func runReportSolve(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solveRepo := storage.NewSolveRepository(db)
	var solve *storage.Solve
	if args[0] == "last" {
		solve, err = solveRepo.GetLast()
	} else {
		solve, err = solveRepo.Get(args[0])
	}
	if err != nil {
		return err
	}
	if solve == nil {
		return fmt.Errorf("solve not found")
	}

	records, err := storage.NewMoveRepository(db).GetBySolve(solve.SolveID)
	if err != nil {
		return err
	}
	moves, err := storage.ToSequence(records)
	if err != nil {
		return err
	}
	segments, err := storage.NewPhaseRepository(db).GetPhaseSegments(solve.SolveID)
	if err != nil {
		return err
	}

	outputDir := reportOutputDir
	if outputDir == "" {
		outputDir = filepath.Join("reports", solve.CreatedAt.Local().Format("2006-01-02_150405"))
	}
	if err := os.MkdirAll(filepath.Join(outputDir, "phase_moves"), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	fmt.Fprintln(out, "Analyzing solve...")

	report := SolveReport{
		SolveID:   solve.SolveID,
		CreatedAt: solve.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		Colors:    solve.Colors,
		SolverUs:  solve.Duration.Microseconds(),
		Summary:   analysis.Summarize(moves, nil),
	}
	if solve.Payload != nil {
		report.Payload = *solve.Payload
	}
	if solve.Notes != nil {
		report.Notes = *solve.Notes
	}

	for i, seg := range segments {
		if seg.EndMove > len(moves) {
			return fmt.Errorf("phase %s ends past the solution", seg.PhaseKey)
		}
		phaseMoves := moves[seg.StartMove:seg.EndMove]
		report.Phases = append(report.Phases, PhaseAnalysis{
			PhaseKey:    seg.PhaseKey,
			DisplayName: storage.PhaseDisplayName(seg.PhaseKey),
			MoveCount:   seg.MoveCount,
			Moves:       phaseMoves.String(),
			Repetitions: analysis.AnalyzeRepetitions(phaseMoves),
			TopPatterns: analysis.MineNGrams(phaseMoves, 4, 5),
		})

		name := fmt.Sprintf("%02d_%s.txt", i+1, seg.PhaseKey)
		if err := os.WriteFile(filepath.Join(outputDir, "phase_moves", name), []byte(phaseMoves.String()+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write phase moves: %w", err)
		}
	}

	ngrams := make(map[int][]analysis.NGram)
	for n := 4; n <= 8; n++ {
		if grams := analysis.MineNGrams(moves, n, 10); len(grams) > 0 {
			ngrams[n] = grams
		}
	}

	files := []struct {
		name string
		data any
	}{
		{"solve_summary.json", report},
		{"repetition_report.json", report.Summary.Repetitions},
		{"ngram_report.json", ngrams},
	}
	for _, f := range files {
		if err := writeJSON(filepath.Join(outputDir, f.name), f.data); err != nil {
			return err
		}
	}
	if err := os.WriteFile(filepath.Join(outputDir, "moves.txt"), []byte(moves.String()+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write moves: %w", err)
	}

	fmt.Fprintf(out, "Report written to %s\n", outputDir)
	return nil
}

// TrendReport is the JSON structure for trend_report.json.
type TrendReport struct {
	Window      int                `json:"window"`
	Solves      int                `json:"solves"`
	Unsolvable  int                `json:"unsolvable"`
	AvgMoves    float64            `json:"avg_moves"`
	MinMoves    int                `json:"min_moves"`
	MaxMoves    int                `json:"max_moves"`
	AvgPerPhase map[string]float64 `json:"avg_per_phase"`
	MoveCounts  []int              `json:"move_counts"` // oldest first
}

func runReportTrend(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	db, err := openDB()
	if err != nil {
		return err
	}
	defer db.Close()

	solves, err := storage.NewSolveRepository(db).List(trendWindow)
	if err != nil {
		return err
	}
	phaseRepo := storage.NewPhaseRepository(db)

	trend := TrendReport{Window: trendWindow, AvgPerPhase: make(map[string]float64)}
	total := 0
	for i := len(solves) - 1; i >= 0; i-- {
		s := solves[i]
		if s.Outcome != storage.OutcomeSolved {
			trend.Unsolvable++
			continue
		}
		trend.Solves++
		trend.MoveCounts = append(trend.MoveCounts, s.MoveCount)
		total += s.MoveCount
		if trend.Solves == 1 || s.MoveCount < trend.MinMoves {
			trend.MinMoves = s.MoveCount
		}
		if s.MoveCount > trend.MaxMoves {
			trend.MaxMoves = s.MoveCount
		}

		segments, err := phaseRepo.GetPhaseSegments(s.SolveID)
		if err != nil {
			return err
		}
		for _, seg := range segments {
			trend.AvgPerPhase[seg.PhaseKey] += float64(seg.MoveCount)
		}
	}
	if trend.Solves > 0 {
		trend.AvgMoves = float64(total) / float64(trend.Solves)
		for k := range trend.AvgPerPhase {
			trend.AvgPerPhase[k] /= float64(trend.Solves)
		}
	}

	outputDir := reportOutputDir
	if outputDir == "" {
		outputDir = "reports"
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(outputDir, "trend_report.json")
	if err := writeJSON(path, trend); err != nil {
		return err
	}

	fmt.Fprintf(out, "Solves: %d (%d unsolvable)\n", trend.Solves, trend.Unsolvable)
	if trend.Solves > 0 {
		fmt.Fprintf(out, "Moves:  avg %.1f, min %d, max %d\n", trend.AvgMoves, trend.MinMoves, trend.MaxMoves)
		for p := cubecipher.PhaseCross; p <= cubecipher.PhaseSolved; p++ {
			if avg, ok := trend.AvgPerPhase[p.String()]; ok {
				fmt.Fprintf(out, "  %-32s %5.1f\n", p.DisplayName(), avg)
			}
		}
	}
	fmt.Fprintf(out, "Report written to %s\n", path)
	return nil
}

func writeJSON(path string, data any) error {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
