package cubecipher

import "fmt"

// Phase represents a solving phase of the layer-by-layer method, with the
// first layer built on the Up face and the last layer on Down.
// Phases progress from Scrambled (0) to Solved (7), allowing comparison
// with < and > operators.
type Phase int

const (
	// PhaseScrambled indicates no phase is complete.
	PhaseScrambled Phase = iota

	// PhaseCross indicates the four Up edges are placed and oriented,
	// each matching the adjacent side center.
	PhaseCross

	// PhaseFirstLayer indicates the whole Up layer is solved.
	PhaseFirstLayer

	// PhaseMiddleLayer indicates the four middle layer edges are solved
	// as well (first two layers complete).
	PhaseMiddleLayer

	// PhaseLastCross indicates the four Down edges show the Down color
	// on the Down face. They may still be permuted.
	PhaseLastCross

	// PhaseCornersPositioned indicates the four Down corners sit in their
	// slots, possibly twisted.
	PhaseCornersPositioned

	// PhaseCornersOriented indicates the Down corners are solved.
	// Only the Down edges may still be permuted.
	PhaseCornersOriented

	// PhaseSolved indicates the cube is completely solved.
	PhaseSolved
)

// solvePhases lists the phases the solver works through, in order.
var solvePhases = []Phase{
	PhaseCross,
	PhaseFirstLayer,
	PhaseMiddleLayer,
	PhaseLastCross,
	PhaseCornersPositioned,
	PhaseCornersOriented,
	PhaseSolved,
}

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseScrambled:
		return "scrambled"
	case PhaseCross:
		return "cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseMiddleLayer:
		return "middle_layer"
	case PhaseLastCross:
		return "last_cross"
	case PhaseCornersPositioned:
		return "corners_positioned"
	case PhaseCornersOriented:
		return "corners_oriented"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseScrambled:
		return "Scrambled"
	case PhaseCross:
		return "Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseMiddleLayer:
		return "Middle Layer (F2L)"
	case PhaseLastCross:
		return "Last Layer Cross"
	case PhaseCornersPositioned:
		return "Last Layer Corners Positioned"
	case PhaseCornersOriented:
		return "Last Layer Corners Oriented"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// ParsePhase returns the phase whose String matches key.
func ParsePhase(key string) (Phase, bool) {
	for p := PhaseScrambled; p <= PhaseSolved; p++ {
		if p.String() == key {
			return p, true
		}
	}
	return PhaseScrambled, false
}

// MarshalText encodes the phase as its String key.
func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText parses a String key.
func (p *Phase) UnmarshalText(text []byte) error {
	parsed, ok := ParsePhase(string(text))
	if !ok {
		return fmt.Errorf("unknown phase %q", text)
	}
	*p = parsed
	return nil
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}

// PhaseMark records that a phase was completed after the first Moves moves
// of a solution.
type PhaseMark struct {
	Phase Phase `json:"phase"`
	Moves int   `json:"moves"`
}
