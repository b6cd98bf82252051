package cubecipher

// Tracker wraps a Cube and reports phase transitions as moves are applied.
type Tracker struct {
	start         *Cube
	cube          *Cube
	applied       int
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase, moves int)
}

// NewTracker creates a tracker starting from a copy of start, or from a
// solved cube when start is nil.
func NewTracker(start *Cube) *Tracker {
	if start == nil {
		start = NewSolved()
	}
	t := &Tracker{start: start.Clone()}
	t.Reset()
	return t
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached, with the number of moves applied so far.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase, moves int)) {
	t.phaseCallback = cb
}

// Reset returns the tracker to its starting cube.
func (t *Tracker) Reset() {
	t.cube = t.start.Clone()
	t.applied = 0
	t.highestPhase = t.cube.DetectPhase()
}

// ApplyMove applies a move and checks for phase transitions.
func (t *Tracker) ApplyMove(m Move) {
	t.cube.ApplyMove(m)
	t.applied++
	t.checkPhaseTransition()
}

// ApplySequence applies multiple moves.
func (t *Tracker) ApplySequence(seq Sequence) {
	for _, m := range seq {
		t.ApplyMove(m)
	}
}

// checkPhaseTransition checks if we've completed a new phase.
func (t *Tracker) checkPhaseTransition() {
	currentPhase := t.cube.DetectPhase()

	// Only trigger callback and update highest phase when reaching a NEW high.
	// Intermediate moves of an algorithm may break earlier phases.
	if currentPhase > t.highestPhase {
		t.highestPhase = currentPhase
		if t.phaseCallback != nil {
			t.phaseCallback(currentPhase, t.applied)
		}
	}
}

// CurrentPhase returns the phase of the cube right now.
// This reflects the raw cube state and may go backwards during solving.
func (t *Tracker) CurrentPhase() Phase {
	return t.cube.DetectPhase()
}

// HighestPhase returns the highest phase reached.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}

// Applied returns the number of moves applied since the last reset.
func (t *Tracker) Applied() int {
	return t.applied
}

// Progress returns the detailed progress.
func (t *Tracker) Progress() Progress {
	return t.cube.Progress()
}

// IsSolved returns true if the cube is solved.
func (t *Tracker) IsSolved() bool {
	return t.cube.IsSolved()
}

// Cube returns the underlying cube for inspection.
func (t *Tracker) Cube() *Cube {
	return t.cube
}

// CubeString returns a string representation of the cube.
func (t *Tracker) CubeString() string {
	return t.cube.String()
}
