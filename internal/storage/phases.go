package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubecipher"
)

// PhaseDef represents a phase definition.
type PhaseDef struct {
	PhaseKey    string
	DisplayName string
	OrderIndex  int
	Description *string
	IsActive    bool
}

// PhaseMark records how many moves a solve had made when a phase completed.
type PhaseMark struct {
	PhaseMarkID int64
	SolveID     string
	PhaseKey    string
	MoveCount   int
}

// PhaseSegment is the stretch of a solution spent in one phase.
type PhaseSegment struct {
	PhaseKey  string
	StartMove int // index of the first move of the phase
	EndMove   int // one past the last move
	MoveCount int
}

// PhaseRepository provides access to phase definitions and marks.
type PhaseRepository struct {
	db *DB
}

// NewPhaseRepository creates a new phase repository.
func NewPhaseRepository(db *DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

func insertPhaseMarks(tx *sql.Tx, solveID string, marks []cubecipher.PhaseMark) error {
	for _, m := range marks {
		_, err := tx.Exec(`
			INSERT INTO phase_marks (solve_id, phase_key, move_count)
			VALUES (?, ?, ?)
		`, solveID, m.Phase.String(), m.Moves)
		if err != nil {
			return fmt.Errorf("failed to create phase mark %s: %w", m.Phase, err)
		}
	}
	return nil
}

// GetAllPhaseDefs retrieves all active phase definitions in order.
func (r *PhaseRepository) GetAllPhaseDefs() ([]PhaseDef, error) {
	rows, err := r.db.Query(`
		SELECT phase_key, display_name, order_index, description, is_active
		FROM phase_defs
		WHERE is_active = 1
		ORDER BY order_index
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase defs: %w", err)
	}
	defer rows.Close()

	var defs []PhaseDef
	for rows.Next() {
		var d PhaseDef
		var isActive int
		if err := rows.Scan(&d.PhaseKey, &d.DisplayName, &d.OrderIndex, &d.Description, &isActive); err != nil {
			return nil, fmt.Errorf("failed to scan phase def: %w", err)
		}
		d.IsActive = isActive == 1
		defs = append(defs, d)
	}
	return defs, rows.Err()
}

// GetPhaseMarks retrieves the phase marks of a solve in order.
func (r *PhaseRepository) GetPhaseMarks(solveID string) ([]PhaseMark, error) {
	rows, err := r.db.Query(`
		SELECT pm.phase_mark_id, pm.solve_id, pm.phase_key, pm.move_count
		FROM phase_marks pm
		JOIN phase_defs pd ON pd.phase_key = pm.phase_key
		WHERE pm.solve_id = ?
		ORDER BY pd.order_index
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get phase marks: %w", err)
	}
	defer rows.Close()

	var marks []PhaseMark
	for rows.Next() {
		var m PhaseMark
		if err := rows.Scan(&m.PhaseMarkID, &m.SolveID, &m.PhaseKey, &m.MoveCount); err != nil {
			return nil, fmt.Errorf("failed to scan phase mark: %w", err)
		}
		marks = append(marks, m)
	}
	return marks, rows.Err()
}

// GetPhaseSegments derives per-phase move ranges from a solve's marks.
func (r *PhaseRepository) GetPhaseSegments(solveID string) ([]PhaseSegment, error) {
	marks, err := r.GetPhaseMarks(solveID)
	if err != nil {
		return nil, err
	}
	return Segments(marks), nil
}

// Segments turns ordered phase marks into segments.
func Segments(marks []PhaseMark) []PhaseSegment {
	segments := make([]PhaseSegment, 0, len(marks))
	start := 0
	for _, m := range marks {
		segments = append(segments, PhaseSegment{
			PhaseKey:  m.PhaseKey,
			StartMove: start,
			EndMove:   m.MoveCount,
			MoveCount: m.MoveCount - start,
		})
		start = m.MoveCount
	}
	return segments
}

// PhaseDisplayName returns a display name for a phase key.
func PhaseDisplayName(phaseKey string) string {
	if p, ok := cubecipher.ParsePhase(phaseKey); ok {
		return p.DisplayName()
	}
	return phaseKey
}
