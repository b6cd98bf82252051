package storage

import (
	"database/sql"
	"fmt"

	"github.com/SeamusWaldron/cubecipher"
)

// MoveRecord represents a move in the database.
type MoveRecord struct {
	MoveID    int64
	SolveID   string
	MoveIndex int
	Face      string
	Turn      int
	Notation  string
}

// MoveRepository reads the moves of stored solves.
type MoveRepository struct {
	db *DB
}

// NewMoveRepository creates a new move repository.
func NewMoveRepository(db *DB) *MoveRepository {
	return &MoveRepository{db: db}
}

func insertMoves(tx *sql.Tx, solveID string, moves cubecipher.Sequence) error {
	if len(moves) == 0 {
		return nil
	}
	stmt, err := tx.Prepare(`
		INSERT INTO moves (solve_id, move_index, face, turn, notation)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare move insert: %w", err)
	}
	defer stmt.Close()

	for i, m := range moves {
		if _, err := stmt.Exec(solveID, i, string(m.Face), int(m.Turn), m.Notation()); err != nil {
			return fmt.Errorf("failed to create move %d: %w", i, err)
		}
	}
	return nil
}

// GetBySolve retrieves all moves for a solve in order.
func (r *MoveRepository) GetBySolve(solveID string) ([]MoveRecord, error) {
	rows, err := r.db.Query(`
		SELECT move_id, solve_id, move_index, face, turn, notation
		FROM moves
		WHERE solve_id = ?
		ORDER BY move_index
	`, solveID)
	if err != nil {
		return nil, fmt.Errorf("failed to get moves: %w", err)
	}
	defer rows.Close()

	var moves []MoveRecord
	for rows.Next() {
		var m MoveRecord
		if err := rows.Scan(&m.MoveID, &m.SolveID, &m.MoveIndex, &m.Face, &m.Turn, &m.Notation); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

// Count returns the number of moves for a solve.
func (r *MoveRepository) Count(solveID string) (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM moves WHERE solve_id = ?", solveID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count moves: %w", err)
	}
	return count, nil
}

// ToSequence converts MoveRecords back to moves.
func ToSequence(records []MoveRecord) (cubecipher.Sequence, error) {
	seq := make(cubecipher.Sequence, len(records))
	for i, r := range records {
		m := cubecipher.Move{Face: cubecipher.Face(r.Face), Turn: cubecipher.Turn(r.Turn)}
		if !m.Valid() {
			return nil, fmt.Errorf("move %d: %w", r.MoveIndex, &cubecipher.UnknownMoveError{Token: r.Notation, Index: r.MoveIndex})
		}
		seq[i] = m
	}
	return seq, nil
}
