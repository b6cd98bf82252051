package cubecipher

// Phase detection for the layer-by-layer method.
// Orientation: first layer on Up (U), last layer on Down (D). Every check
// compares facets against the center of their face, so any symbols work.

var sideFaces = [4]int{idxF, idxR, idxB, idxL}

// matches reports whether the facet at local position i of face holds the
// face's center symbol.
func (c *Cube) matches(face, i int) bool {
	return c.colors[facet(face, i)] == c.colors[center(face)]
}

// IsCrossComplete checks the Up cross:
// - U face edge positions 1, 3, 5, 7 hold the U center
// - each edge's side facet matches the adjacent center
func (c *Cube) IsCrossComplete() bool {
	for _, pos := range []int{1, 3, 5, 7} {
		if !c.matches(idxU, pos) {
			return false
		}
	}

	// U[1] is adjacent to B[1], U[3] to L[1], U[5] to R[1], U[7] to F[1]
	for _, face := range sideFaces {
		if !c.matches(face, 1) {
			return false
		}
	}
	return true
}

// IsFirstLayerComplete checks that the whole Up layer is solved.
func (c *Cube) IsFirstLayerComplete() bool {
	if !c.IsCrossComplete() {
		return false
	}

	for i := 0; i < 9; i++ {
		if !c.matches(idxU, i) {
			return false
		}
	}

	// Top-left (0) and top-right (2) of every side face
	for _, face := range sideFaces {
		if !c.matches(face, 0) || !c.matches(face, 2) {
			return false
		}
	}
	return true
}

// IsMiddleLayerComplete checks the middle layer edges, at positions 3 and 5
// of the side faces, on top of a complete first layer.
func (c *Cube) IsMiddleLayerComplete() bool {
	if !c.IsFirstLayerComplete() {
		return false
	}

	for _, face := range sideFaces {
		if !c.matches(face, 3) || !c.matches(face, 5) {
			return false
		}
	}
	return true
}

// IsLastCrossComplete checks that the Down edges show the Down color.
// They need not be in their final positions yet.
func (c *Cube) IsLastCrossComplete() bool {
	if !c.IsMiddleLayerComplete() {
		return false
	}

	for _, pos := range []int{1, 3, 5, 7} {
		if !c.matches(idxD, pos) {
			return false
		}
	}
	return true
}

// lastCorners are the Down corner slots, as [face, local index] pairs.
var lastCorners = [4][3][2]int{
	{{idxD, 2}, {idxF, 8}, {idxR, 6}},
	{{idxD, 8}, {idxR, 8}, {idxB, 6}},
	{{idxD, 6}, {idxB, 8}, {idxL, 6}},
	{{idxD, 0}, {idxL, 8}, {idxF, 6}},
}

// AreLastCornersPositioned checks that each Down corner holds the three
// center symbols of its slot, in any orientation.
func (c *Cube) AreLastCornersPositioned() bool {
	if !c.IsLastCrossComplete() {
		return false
	}

	for _, corner := range lastCorners {
		var actual, expected [3]string
		for i, pos := range corner {
			actual[i] = c.colors[facet(pos[0], pos[1])]
			expected[i] = c.colors[center(pos[0])]
		}
		if !sameSymbols(actual[:], expected[:]) {
			return false
		}
	}
	return true
}

// AreLastCornersOriented checks that the Down corners are solved.
func (c *Cube) AreLastCornersOriented() bool {
	if !c.AreLastCornersPositioned() {
		return false
	}

	for _, pos := range []int{0, 2, 6, 8} {
		if !c.matches(idxD, pos) {
			return false
		}
	}

	// Bottom corners of F, R, B, L
	for _, face := range sideFaces {
		if !c.matches(face, 6) || !c.matches(face, 8) {
			return false
		}
	}
	return true
}

// sameSymbols checks if two symbol slices hold the same symbols (in any order).
func sameSymbols(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}

	count := make(map[string]int, len(a))
	for _, s := range a {
		count[s]++
	}
	for _, s := range b {
		count[s]--
	}
	for _, v := range count {
		if v != 0 {
			return false
		}
	}
	return true
}

// DetectPhase returns the highest phase the cube currently satisfies.
func (c *Cube) DetectPhase() Phase {
	if c.IsSolved() {
		return PhaseSolved
	}
	if c.AreLastCornersOriented() {
		return PhaseCornersOriented
	}
	if c.AreLastCornersPositioned() {
		return PhaseCornersPositioned
	}
	if c.IsLastCrossComplete() {
		return PhaseLastCross
	}
	if c.IsMiddleLayerComplete() {
		return PhaseMiddleLayer
	}
	if c.IsFirstLayerComplete() {
		return PhaseFirstLayer
	}
	if c.IsCrossComplete() {
		return PhaseCross
	}
	return PhaseScrambled
}

// Progress reports which phases are complete.
type Progress struct {
	Cross             bool
	FirstLayer        bool
	MiddleLayer       bool
	LastCross         bool
	CornersPositioned bool
	CornersOriented   bool
	Solved            bool
}

// Progress returns the current progress through all phases.
func (c *Cube) Progress() Progress {
	return Progress{
		Cross:             c.IsCrossComplete(),
		FirstLayer:        c.IsFirstLayerComplete(),
		MiddleLayer:       c.IsMiddleLayerComplete(),
		LastCross:         c.IsLastCrossComplete(),
		CornersPositioned: c.AreLastCornersPositioned(),
		CornersOriented:   c.AreLastCornersOriented(),
		Solved:            c.IsSolved(),
	}
}
