package cli

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubecipher"
	"github.com/SeamusWaldron/cubecipher/internal/render"
	"github.com/SeamusWaldron/cubecipher/internal/storage"
)

var replayCmd = &cobra.Command{
	Use:   "replay [solve-id|last]",
	Short: "Step through a solution move by move",
	Long: `Replay a solution on screen, one move at a time, with the phase reached
after each move.

The solution comes from a saved solve (by ID, or "last"), or is computed
from --colors. --moves replays a given sequence instead of a solution.

Usage:
  cubecipher replay last                        # Replay the latest saved solve
  cubecipher replay <solve-id>                  # Replay a saved solve
  cubecipher replay --colors "$STATE"           # Solve and replay
  cubecipher replay --moves "R U R' U'"         # Replay moves from solved
  cubecipher replay --speed 2.0 --play last     # Autoplay at 2x speed`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReplay,
}

var (
	replayColors  string
	replayPayload string
	replayMoves   string
	replaySpeed   float64
	replayPlay    bool
)

func init() {
	rootCmd.AddCommand(replayCmd)
	replayCmd.Flags().StringVarP(&replayColors, "colors", "c", "", "Starting colors (default: solved)")
	replayCmd.Flags().StringVarP(&replayPayload, "payload", "p", "", "Payload symbols, one rune per facet")
	replayCmd.Flags().StringVarP(&replayMoves, "moves", "m", "", "Moves to replay instead of a solution")
	replayCmd.Flags().Float64VarP(&replaySpeed, "speed", "s", 1.0, "Playback speed multiplier")
	replayCmd.Flags().BoolVar(&replayPlay, "play", false, "Start playing immediately")
}

func runReplay(cmd *cobra.Command, args []string) error {
	start, moves, err := loadReplay(args)
	if err != nil {
		return err
	}

	model := newReplayModel(start, moves, newRenderer(), replaySpeed, replayPlay)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay error: %w", err)
	}
	return nil
}

// loadReplay returns the starting cube and the moves to replay.
func loadReplay(args []string) (*cubecipher.Cube, cubecipher.Sequence, error) {
	if len(args) > 0 {
		return loadStoredReplay(args[0])
	}

	colors := replayColors
	if colors == "" {
		colors = cubecipher.NewSolved().FlatColors()
	}
	start, err := buildCube(colors, replayPayload, "", false)
	if err != nil {
		return nil, nil, err
	}

	if replayMoves != "" {
		moves, err := cubecipher.ParseSequence(replayMoves)
		return start, moves, err
	}
	moves, err := cubecipher.Solve(start.Clone(), solverOptions()...)
	if err != nil {
		return nil, nil, err
	}
	return start, moves, nil
}

func loadStoredReplay(id string) (*cubecipher.Cube, cubecipher.Sequence, error) {
	db, err := openDB()
	if err != nil {
		return nil, nil, err
	}
	defer db.Close()

	repo := storage.NewSolveRepository(db)
	var solve *storage.Solve
	if id == "last" {
		solve, err = repo.GetLast()
	} else {
		solve, err = repo.Get(id)
	}
	if err != nil {
		return nil, nil, err
	}
	if solve == nil {
		return nil, nil, fmt.Errorf("solve not found: %s", id)
	}
	if solve.Outcome != storage.OutcomeSolved {
		return nil, nil, fmt.Errorf("solve %s has no solution (%s)", solve.SolveID, solve.Outcome)
	}

	payload := ""
	if solve.Payload != nil {
		payload = *solve.Payload
	}
	start, err := buildCube(solve.Colors, payload, "", false)
	if err != nil {
		return nil, nil, err
	}

	records, err := storage.NewMoveRepository(db).GetBySolve(solve.SolveID)
	if err != nil {
		return nil, nil, err
	}
	moves, err := storage.ToSequence(records)
	if err != nil {
		return nil, nil, err
	}
	return start, moves, nil
}

// Replay model
type replayModel struct {
	tracker     *cubecipher.Tracker
	moves       cubecipher.Sequence
	renderer    *render.Renderer
	speed       float64
	playing     bool
	showPayload bool
	reached     []string
	quitting    bool
}

type replayTickMsg time.Time

func newReplayModel(start *cubecipher.Cube, moves cubecipher.Sequence, r *render.Renderer, speed float64, play bool) *replayModel {
	m := &replayModel{
		tracker:     cubecipher.NewTracker(start),
		moves:       moves,
		renderer:    r,
		speed:       speed,
		playing:     play && len(moves) > 0,
		showPayload: start.HasPayload(),
	}
	if m.speed <= 0 {
		m.speed = 1
	}
	m.tracker.SetPhaseCallback(func(p cubecipher.Phase, moves int) {
		m.reached = append(m.reached, fmt.Sprintf("%s after %d moves", p.DisplayName(), moves))
	})
	return m
}

func (m *replayModel) Init() tea.Cmd {
	if m.playing {
		return m.tick()
	}
	return nil
}

func (m *replayModel) tick() tea.Cmd {
	delay := time.Duration(float64(500*time.Millisecond) / m.speed)
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return replayTickMsg(t)
	})
}

func (m *replayModel) pos() int {
	return m.tracker.Applied()
}

func (m *replayModel) step() {
	if m.pos() < len(m.moves) {
		m.tracker.ApplyMove(m.moves[m.pos()])
	}
}

func (m *replayModel) back() {
	target := m.pos() - 1
	if target < 0 {
		return
	}
	m.reset()
	m.tracker.ApplySequence(m.moves[:target])
}

func (m *replayModel) reset() {
	m.tracker.Reset()
	m.reached = nil
}

func (m *replayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case " ", "n", "right", "l":
			m.playing = false
			m.step()

		case "b", "left", "h":
			m.playing = false
			m.back()

		case "p":
			m.playing = !m.playing && m.pos() < len(m.moves)
			if m.playing {
				return m, m.tick()
			}

		case "r":
			m.playing = false
			m.reset()

		case "c":
			m.showPayload = !m.showPayload && m.tracker.Cube().HasPayload()

		case "+", "=":
			m.speed *= 2
			if m.speed > 16 {
				m.speed = 16
			}

		case "-":
			m.speed /= 2
			if m.speed < 0.25 {
				m.speed = 0.25
			}
		}

	case replayTickMsg:
		if !m.playing {
			return m, nil
		}
		m.step()
		if m.pos() >= len(m.moves) {
			m.playing = false
			return m, nil
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *replayModel) View() string {
	if m.quitting {
		return "Replay ended.\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubecipher replay"))
	b.WriteString("\n\n")

	progress := fmt.Sprintf("Move %d/%d", m.pos(), len(m.moves))
	if m.playing {
		progress += " [PLAYING]"
	}
	b.WriteString(statusStyle.Render(progress))
	b.WriteString(fmt.Sprintf(" (%.2gx speed)\n\n", m.speed))

	c := m.tracker.Cube()
	if m.showPayload {
		b.WriteString(m.renderer.Payload(c))
	} else {
		b.WriteString(m.renderer.Colors(c))
	}
	b.WriteString("\n\n")

	// Phase (monotonic - never goes backwards)
	if m.tracker.IsSolved() {
		b.WriteString(fmt.Sprintf("Cube State: %s\n", phaseStyle.Render("SOLVED!")))
	} else {
		highest := m.tracker.HighestPhase()
		b.WriteString(fmt.Sprintf("Working on: %s\n", phaseStyle.Render(nextPhase(highest))))
		if highest > cubecipher.PhaseScrambled {
			b.WriteString(fmt.Sprintf("Completed: %s\n", statusStyle.Render(highest.DisplayName())))
		}
	}
	for _, r := range m.reached {
		b.WriteString(statusStyle.Render("  " + r))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.pos() > 0 {
		done := m.moves[:m.pos()]
		b.WriteString("Done: ")
		if len(done) > 20 {
			done = done[len(done)-20:]
			b.WriteString("... ")
		}
		b.WriteString(moveStyle.Render(done.String()))
		b.WriteString("\n")
	}
	if m.pos() < len(m.moves) {
		next := m.moves[m.pos()]
		b.WriteString(fmt.Sprintf("Next: %s (%s)\n", next.Notation(), render.Describe(next)))
	}
	b.WriteString("\n")

	help := "SPACE/n=next  b=back  p=play  r=reset  c=colors/payload  +/-=speed  q=quit"
	b.WriteString(helpStyle.Render(help))
	b.WriteString("\n")

	return b.String()
}
