package cubecipher

// Face names the layer a move turns. The six outer faces come first, in facet
// order; slice turns and whole-cube rotations share the type so that every
// notation token maps onto one Face and one Turn.
type Face string

const (
	FaceU Face = "U" // Up
	FaceL Face = "L" // Left
	FaceF Face = "F" // Front
	FaceR Face = "R" // Right
	FaceB Face = "B" // Back
	FaceD Face = "D" // Down

	FaceM Face = "M" // Middle slice, turns like L
	FaceE Face = "E" // Equator slice, turns like D
	FaceS Face = "S" // Standing slice, turns like F

	FaceX Face = "X" // Whole cube, turns like R
	FaceY Face = "Y" // Whole cube, turns like U
	FaceZ Face = "Z" // Whole cube, turns like F
)

// OuterFaces lists the six outer faces in facet order.
var OuterFaces = []Face{FaceU, FaceL, FaceF, FaceR, FaceB, FaceD}

var allFaces = []Face{
	FaceU, FaceL, FaceF, FaceR, FaceB, FaceD,
	FaceM, FaceE, FaceS,
	FaceX, FaceY, FaceZ,
}

// faceIndex returns the catalog row of f, or -1.
func faceIndex(f Face) int {
	for i, g := range allFaces {
		if g == f {
			return i
		}
	}
	return -1
}

// IsOuter reports whether f is one of the six outer faces.
func (f Face) IsOuter() bool {
	i := faceIndex(f)
	return i >= 0 && i < 6
}

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// turnIndex returns the catalog column of t, or -1.
func turnIndex(t Turn) int {
	switch t {
	case CW:
		return 0
	case CCW:
		return 1
	case Double:
		return 2
	default:
		return -1
	}
}

// Move is one catalog entry: a layer and a turn.
type Move struct {
	Face Face // Which layer to turn
	Turn Turn // Direction and amount
}

// Notation returns the canonical notation string for this move.
// Examples: R, R', R2, U, U', U2
func (m Move) Notation() string {
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return string(m.Face) + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// Valid reports whether the move names a catalog entry.
func (m Move) Valid() bool {
	return faceIndex(m.Face) >= 0 && turnIndex(m.Turn) >= 0
}

// Perm returns the facet permutation of the move. It panics for a move that
// is not in the catalog; moves obtained from ParseMove or the predefined
// values are always valid.
func (m Move) Perm() Perm {
	p, ok := Lookup(m.Face, m.Turn)
	if !ok {
		panic("cubecipher: move not in catalog: " + m.Notation())
	}
	return p
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// merge combines two same-face moves. ok is false when the faces differ;
// cancel is true when the pair amounts to no move at all.
func (m Move) merge(other Move) (merged Move, cancel, ok bool) {
	if m.Face != other.Face {
		return Move{}, false, false
	}

	total := (int(m.Turn) + int(other.Turn)) % 4
	if total < 0 {
		total += 4
	}
	switch total {
	case 0:
		return Move{}, true, true
	case 1:
		return Move{Face: m.Face, Turn: CW}, false, true
	case 2:
		return Move{Face: m.Face, Turn: Double}, false, true
	default: // 3 quarter turns
		return Move{Face: m.Face, Turn: CCW}, false, true
	}
}
