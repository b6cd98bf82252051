package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/SeamusWaldron/cubecipher"
)

// timeLayout is fixed width so stored timestamps sort as text.
const timeLayout = "2006-01-02T15:04:05.000000Z"

// Solve outcomes.
const (
	OutcomeSolved     = "solved"
	OutcomeUnsolvable = "unsolvable"
)

// Solve represents a solver run in the database.
type Solve struct {
	SolveID   string
	CreatedAt time.Time
	Colors    string
	Payload   *string
	Outcome   string
	Error     *string
	MoveCount int
	Duration  time.Duration
	Source    *string
	Notes     *string
}

// SolveInput is everything recorded about one solver run.
type SolveInput struct {
	Colors   string
	Payload  string
	Moves    cubecipher.Sequence
	Phases   []cubecipher.PhaseMark
	Err      error // non-nil for an unsolvable cube
	Duration time.Duration
	Source   string // e.g. "cli" or "http"
	Notes    string
}

// SolveRepository provides CRUD operations for solves.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository creates a new solve repository.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Save records a solver run with its moves and phase marks in one
// transaction and returns the new solve ID.
func (r *SolveRepository) Save(in SolveInput) (string, error) {
	id := uuid.New().String()
	outcome := OutcomeSolved
	var errText *string
	if in.Err != nil {
		outcome = OutcomeUnsolvable
		msg := in.Err.Error()
		errText = &msg
	}

	err := r.db.Transaction(func(tx *sql.Tx) error {
		_, err := tx.Exec(`
			INSERT INTO solves (solve_id, created_at, colors, payload, outcome, error, move_count, duration_us, source, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, id, time.Now().UTC().Format(timeLayout), in.Colors, nullable(in.Payload),
			outcome, errText, len(in.Moves), in.Duration.Microseconds(),
			nullable(in.Source), nullable(in.Notes))
		if err != nil {
			return fmt.Errorf("failed to create solve: %w", err)
		}

		if err := insertMoves(tx, id, in.Moves); err != nil {
			return err
		}
		return insertPhaseMarks(tx, id, in.Phases)
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

const solveColumns = `solve_id, created_at, colors, payload, outcome, error, move_count, duration_us, source, notes`

type scanner interface {
	Scan(dest ...any) error
}

func scanSolve(row scanner) (*Solve, error) {
	var s Solve
	var createdAt string
	var durationUs int64
	err := row.Scan(&s.SolveID, &createdAt, &s.Colors, &s.Payload, &s.Outcome,
		&s.Error, &s.MoveCount, &durationUs, &s.Source, &s.Notes)
	if err != nil {
		return nil, err
	}
	if s.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at of solve %s: %w", s.SolveID, err)
	}
	s.Duration = time.Duration(durationUs) * time.Microsecond
	return &s, nil
}

// Get retrieves a solve by ID. It returns nil when no such solve exists.
func (r *SolveRepository) Get(solveID string) (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT `+solveColumns+`
		FROM solves
		WHERE solve_id = ?
	`, solveID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get solve: %w", err)
	}
	return s, nil
}

// GetLast retrieves the most recent solve, or nil when there is none.
func (r *SolveRepository) GetLast() (*Solve, error) {
	s, err := scanSolve(r.db.QueryRow(`
		SELECT ` + solveColumns + `
		FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT 1
	`))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get last solve: %w", err)
	}
	return s, nil
}

// List retrieves recent solves, newest first.
func (r *SolveRepository) List(limit int) ([]Solve, error) {
	rows, err := r.db.Query(`
		SELECT `+solveColumns+`
		FROM solves
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list solves: %w", err)
	}
	defer rows.Close()

	var solves []Solve
	for rows.Next() {
		s, err := scanSolve(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan solve: %w", err)
		}
		solves = append(solves, *s)
	}
	return solves, rows.Err()
}

// Delete deletes a solve and all related data (cascading).
func (r *SolveRepository) Delete(solveID string) error {
	_, err := r.db.Exec("DELETE FROM solves WHERE solve_id = ?", solveID)
	if err != nil {
		return fmt.Errorf("failed to delete solve: %w", err)
	}
	return nil
}

// Stats summarizes the stored solves.
type Stats struct {
	Total      int
	Solved     int
	Unsolvable int
	AvgMoves   float64 // over solved runs
	MaxMoves   int
}

// Stats computes totals over every stored solve.
func (r *SolveRepository) Stats() (Stats, error) {
	var st Stats
	err := r.db.QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(outcome = 'solved'), 0),
			COALESCE(SUM(outcome = 'unsolvable'), 0),
			COALESCE(AVG(CASE WHEN outcome = 'solved' THEN move_count END), 0),
			COALESCE(MAX(move_count), 0)
		FROM solves
	`).Scan(&st.Total, &st.Solved, &st.Unsolvable, &st.AvgMoves, &st.MaxMoves)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to get stats: %w", err)
	}
	return st, nil
}
