package cubecipher

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Solver drives one cube to the solved state, layer by layer, recording
// every move it applies.
//
// "Solved" is structural: each face ends up holding nine copies of the symbol
// at its center when Solve is called. Decisions depend only on which center
// each facet matches, so two cubes that differ by a renaming of symbols get
// the same moves.
type Solver struct {
	cube *Cube
	cfg  *solverConfig
	log  zerolog.Logger

	ids   [Facets]uint8 // face id of the center each facet matches
	moves Sequence
	marks []PhaseMark
	spent int
}

// NewSolver creates a solver that owns c until Solve returns.
func NewSolver(c *Cube, opts ...SolverOption) *Solver {
	cfg := defaultSolverConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{
		cube: c,
		cfg:  cfg,
		log:  cfg.logger.With().Str("component", "solver").Logger(),
	}
}

// Solve solves the cube in place and returns the moves applied.
//
// A cube that is malformed or not reachable from a solved cube fails with an
// error wrapping ErrUnsolvableState. The cube is then left exactly as it was
// passed in.
func (s *Solver) Solve() (Sequence, error) {
	s.moves = s.moves[:0]
	s.marks = s.marks[:0]

	if err := s.mapCenters(); err != nil {
		return nil, err
	}
	if err := s.checkPieces(); err != nil {
		return nil, err
	}

	steps := []func() error{
		s.solveCross,
		s.solveFirstLayer,
		s.solveMiddleLayer,
		s.orientLastEdges,
		s.positionLastCorners,
		s.orientLastCorners,
		s.permuteLastEdges,
	}
	for i, step := range steps {
		phase := solvePhases[i]
		s.spent = 0
		if err := step(); err != nil {
			s.restore()
			s.log.Debug().Err(err).Str("phase", phase.String()).Msg("solve failed")
			return nil, err
		}
		s.marks = append(s.marks, PhaseMark{Phase: phase, Moves: len(s.moves)})
		s.log.Debug().
			Str("phase", phase.String()).
			Int("moves", len(s.moves)).
			Int("iterations", s.spent).
			Msg("phase complete")
		if s.cfg.onPhase != nil {
			s.cfg.onPhase(phase, len(s.moves))
		}
	}

	if !s.solved() {
		err := s.fail(PhaseSolved, "cube not solved after the last phase")
		s.restore()
		return nil, err
	}
	return s.Moves(), nil
}

// Moves returns a copy of the moves applied so far.
func (s *Solver) Moves() Sequence {
	return append(Sequence(nil), s.moves...)
}

// Phases returns the phase boundaries of the last successful solve.
func (s *Solver) Phases() []PhaseMark {
	return append([]PhaseMark(nil), s.marks...)
}

// Solve solves c in place and returns the moves applied.
func Solve(c *Cube, opts ...SolverOption) (Sequence, error) {
	return NewSolver(c, opts...).Solve()
}

// restore undoes every recorded move.
func (s *Solver) restore() {
	s.cube.ApplyInverse(s.moves)
	s.moves = s.moves[:0]
	s.marks = s.marks[:0]
}

func (s *Solver) fail(phase Phase, format string, args ...any) error {
	return &UnsolvableError{Phase: phase, Reason: fmt.Sprintf(format, args...)}
}

// spend charges one situation against the phase's iteration budget.
func (s *Solver) spend(phase Phase) error {
	s.spent++
	if s.spent > s.cfg.maxIterations {
		return s.fail(phase, "no progress within %d iterations", s.cfg.maxIterations)
	}
	return nil
}

// mapCenters assigns every facet the id of the face whose center carries the
// same symbol.
func (s *Solver) mapCenters() error {
	faces := make(map[string]uint8, 6)
	for face := 0; face < 6; face++ {
		sym := s.cube.colors[center(face)]
		if other, dup := faces[sym]; dup {
			return s.fail(PhaseScrambled, "faces %s and %s share center symbol %q",
				OuterFaces[other], OuterFaces[face], sym)
		}
		faces[sym] = uint8(face)
	}

	for pos, sym := range s.cube.colors {
		id, ok := faces[sym]
		if !ok {
			return s.fail(PhaseScrambled, "facet %d holds %q, which is on no center", pos, sym)
		}
		s.ids[pos] = id
	}
	return nil
}

// checkPieces verifies that every edge and corner exists exactly once and
// that no corner is mirrored.
func (s *Solver) checkPieces() error {
	var seenEdges [len(edgeSlots)]bool
	for _, e := range edgeSlots {
		a := s.ids[facet(e.faces[0], e.at[0])]
		b := s.ids[facet(e.faces[1], e.at[1])]
		id := edgeID[a][b]
		if id < 0 {
			return s.fail(PhaseScrambled, "edge %s%s has no matching piece (%s%s)",
				OuterFaces[e.faces[0]], OuterFaces[e.faces[1]], OuterFaces[a], OuterFaces[b])
		}
		if seenEdges[id] {
			return s.fail(PhaseScrambled, "edge piece %s%s appears twice", OuterFaces[a], OuterFaces[b])
		}
		seenEdges[id] = true
	}

	var seenCorners [len(cornerSlots)]bool
	for _, c := range cornerSlots {
		var col [3]uint8
		for i := range col {
			col[i] = s.ids[facet(c.faces[i], c.at[i])]
		}
		id := cornerID[col[0]][col[1]][col[2]]
		if id < 0 {
			return s.fail(PhaseScrambled, "corner %s%s%s has no matching piece (%s%s%s)",
				OuterFaces[c.faces[0]], OuterFaces[c.faces[1]], OuterFaces[c.faces[2]],
				OuterFaces[col[0]], OuterFaces[col[1]], OuterFaces[col[2]])
		}
		if seenCorners[id] {
			return s.fail(PhaseScrambled, "corner piece %s%s%s appears twice",
				OuterFaces[col[0]], OuterFaces[col[1]], OuterFaces[col[2]])
		}
		if !clockwise[col[0]][col[1]][col[2]] {
			return s.fail(PhaseScrambled, "corner piece %s%s%s is mirrored",
				OuterFaces[col[0]], OuterFaces[col[1]], OuterFaces[col[2]])
		}
		seenCorners[id] = true
	}
	return nil
}

// solved reports whether every facet is on the face it belongs to.
func (s *Solver) solved() bool {
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			if int(s.ids[facet(face, i)]) != face {
				return false
			}
		}
	}
	return true
}
