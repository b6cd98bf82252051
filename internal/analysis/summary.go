package analysis

import (
	"sort"

	"github.com/SeamusWaldron/cubecipher"
)

// Summary contains statistics for a single solution.
type Summary struct {
	TotalMoves     int               `json:"total_moves"`
	OptimizedMoves int               `json:"optimized_moves"`
	Efficiency     float64           `json:"efficiency"`
	QuarterTurns   int               `json:"quarter_turns"`
	PhaseStats     []PhaseStats      `json:"phase_stats,omitempty"`
	Profile        *MovementProfile  `json:"profile"`
	Repetitions    *RepetitionReport `json:"repetitions"`
}

// PhaseStats contains statistics for a single phase.
type PhaseStats struct {
	Phase     cubecipher.Phase `json:"phase"`
	StartMove int              `json:"start_move"`
	MoveCount int              `json:"move_count"`
	Share     float64          `json:"share"` // fraction of all moves
}

// Summarize analyzes a solution and the phase marks recorded while solving.
func Summarize(moves cubecipher.Sequence, marks []cubecipher.PhaseMark) *Summary {
	optimized := moves.Simplify()
	s := &Summary{
		TotalMoves:     len(moves),
		OptimizedMoves: len(optimized),
		Efficiency:     CalculateEfficiency(moves, optimized),
		QuarterTurns:   QuarterTurns(moves),
		Profile:        AnalyzeMovementProfile(moves),
		Repetitions:    AnalyzeRepetitions(moves),
	}

	start := 0
	for _, m := range marks {
		ps := PhaseStats{
			Phase:     m.Phase,
			StartMove: start,
			MoveCount: m.Moves - start,
		}
		if len(moves) > 0 {
			ps.Share = float64(ps.MoveCount) / float64(len(moves))
		}
		s.PhaseStats = append(s.PhaseStats, ps)
		start = m.Moves
	}
	return s
}

// QuarterTurns counts moves in the quarter-turn metric: half turns count
// twice.
func QuarterTurns(moves cubecipher.Sequence) int {
	n := 0
	for _, m := range moves {
		if m.Turn == cubecipher.Double {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// MovementProfile analyzes the movement patterns in a solution.
type MovementProfile struct {
	FaceCounts    map[cubecipher.Face]int `json:"face_counts"`
	TurnCounts    map[cubecipher.Turn]int `json:"turn_counts"`
	MostUsedFace  cubecipher.Face         `json:"most_used_face"`
	MostUsedTurn  cubecipher.Turn         `json:"most_used_turn"`
	FaceSequences map[string]int          `json:"face_sequences"` // e.g., "RU" -> count
}

// AnalyzeMovementProfile analyzes which faces and turns are most used.
// Ties go to the face or turn that sorts first.
func AnalyzeMovementProfile(moves cubecipher.Sequence) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts:    make(map[cubecipher.Face]int),
		TurnCounts:    make(map[cubecipher.Turn]int),
		FaceSequences: make(map[string]int),
	}

	for i, m := range moves {
		profile.FaceCounts[m.Face]++
		profile.TurnCounts[m.Turn]++

		// Track 2-move face sequences
		if i > 0 {
			profile.FaceSequences[string(moves[i-1].Face)+string(m.Face)]++
		}
	}

	faces := make([]cubecipher.Face, 0, len(profile.FaceCounts))
	for f := range profile.FaceCounts {
		faces = append(faces, f)
	}
	sort.Slice(faces, func(i, j int) bool { return faces[i] < faces[j] })
	best := 0
	for _, f := range faces {
		if profile.FaceCounts[f] > best {
			best = profile.FaceCounts[f]
			profile.MostUsedFace = f
		}
	}

	best = 0
	for _, t := range []cubecipher.Turn{cubecipher.CW, cubecipher.CCW, cubecipher.Double} {
		if profile.TurnCounts[t] > best {
			best = profile.TurnCounts[t]
			profile.MostUsedTurn = t
		}
	}

	return profile
}
