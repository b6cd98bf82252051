package cubecipher

// Face indices in facet order. Facet positions are laid out as the net
//
//	          0  1  2
//	          3  4  5
//	          6  7  8
//	 9 10 11 12 13 14 15 16 17 18 19 20
//	21 22 23 24 25 26 27 28 29 30 31 32
//	33 34 35 36 37 38 39 40 41 42 43 44
//	         45 46 47
//	         48 49 50
//	         51 52 53
//
// and every face is addressed locally as
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// seen from outside the cube, with Up above the four side faces and Front
// above Down.
const (
	idxU = iota
	idxL
	idxF
	idxR
	idxB
	idxD
)

// facet converts a face index and a local 0..8 position into a flat facet
// position.
func facet(face, i int) int {
	switch face {
	case idxU:
		return i
	case idxD:
		return 45 + i
	default:
		return 9 + (i/3)*12 + (face-idxL)*3 + i%3
	}
}

// center returns the flat position of a face's center facet.
func center(face int) int {
	return facet(face, 4)
}

// strip is three facets of one face, listed in the order they travel.
type strip struct {
	face int
	at   [3]int
}

// quarterTurn describes a clockwise quarter turn: the turning face (or -1
// for a slice) and four strips whose facets move strips[0] -> strips[1] ->
// strips[2] -> strips[3] -> strips[0], element by element.
type quarterTurn struct {
	face   int
	strips [4]strip
}

var quarterTurns = map[Face]quarterTurn{
	FaceU: {idxU, [4]strip{{idxF, [3]int{0, 1, 2}}, {idxL, [3]int{0, 1, 2}}, {idxB, [3]int{0, 1, 2}}, {idxR, [3]int{0, 1, 2}}}},
	FaceD: {idxD, [4]strip{{idxF, [3]int{6, 7, 8}}, {idxR, [3]int{6, 7, 8}}, {idxB, [3]int{6, 7, 8}}, {idxL, [3]int{6, 7, 8}}}},
	FaceF: {idxF, [4]strip{{idxU, [3]int{6, 7, 8}}, {idxR, [3]int{0, 3, 6}}, {idxD, [3]int{2, 1, 0}}, {idxL, [3]int{8, 5, 2}}}},
	FaceB: {idxB, [4]strip{{idxU, [3]int{2, 1, 0}}, {idxL, [3]int{0, 3, 6}}, {idxD, [3]int{6, 7, 8}}, {idxR, [3]int{8, 5, 2}}}},
	FaceR: {idxR, [4]strip{{idxU, [3]int{2, 5, 8}}, {idxB, [3]int{6, 3, 0}}, {idxD, [3]int{2, 5, 8}}, {idxF, [3]int{2, 5, 8}}}},
	FaceL: {idxL, [4]strip{{idxU, [3]int{0, 3, 6}}, {idxF, [3]int{0, 3, 6}}, {idxD, [3]int{0, 3, 6}}, {idxB, [3]int{8, 5, 2}}}},

	// Slices carry the middle strips and no face of their own.
	FaceM: {-1, [4]strip{{idxU, [3]int{1, 4, 7}}, {idxF, [3]int{1, 4, 7}}, {idxD, [3]int{1, 4, 7}}, {idxB, [3]int{7, 4, 1}}}},
	FaceE: {-1, [4]strip{{idxF, [3]int{3, 4, 5}}, {idxR, [3]int{3, 4, 5}}, {idxB, [3]int{3, 4, 5}}, {idxL, [3]int{3, 4, 5}}}},
	FaceS: {-1, [4]strip{{idxU, [3]int{3, 4, 5}}, {idxR, [3]int{1, 4, 7}}, {idxD, [3]int{5, 4, 3}}, {idxL, [3]int{7, 4, 1}}}},
}

// perm builds the clockwise permutation of the turn.
func (t quarterTurn) perm() Perm {
	var cycles [][]int
	if t.face >= 0 {
		// Corner 0->2->8->6 and edge 1->5->7->3 on the turning face
		cycles = append(cycles,
			[]int{facet(t.face, 0), facet(t.face, 2), facet(t.face, 8), facet(t.face, 6)},
			[]int{facet(t.face, 1), facet(t.face, 5), facet(t.face, 7), facet(t.face, 3)},
		)
	}
	for k := 0; k < 3; k++ {
		cycles = append(cycles, []int{
			facet(t.strips[0].face, t.strips[0].at[k]),
			facet(t.strips[1].face, t.strips[1].at[k]),
			facet(t.strips[2].face, t.strips[2].at[k]),
			facet(t.strips[3].face, t.strips[3].at[k]),
		})
	}
	return permFromCycles(cycles...)
}

// catalog holds every move permutation, indexed by faceIndex and turnIndex.
// It is written once by init and read-only afterwards.
var catalog [12][3]Perm

func init() {
	for face, qt := range quarterTurns {
		setTurns(face, qt.perm())
	}

	// Whole-cube rotations are derived by composing layer turns.
	setTurns(FaceX, Compose(Move{FaceR, CW}, Move{FaceM, CCW}, Move{FaceL, CCW}))
	setTurns(FaceY, Compose(Move{FaceU, CW}, Move{FaceE, CCW}, Move{FaceD, CCW}))
	setTurns(FaceZ, Compose(Move{FaceF, CW}, Move{FaceS, CW}, Move{FaceB, CCW}))
}

// setTurns derives the counter-clockwise and half turns from cw.
func setTurns(face Face, cw Perm) {
	row := &catalog[faceIndex(face)]
	row[turnIndex(CW)] = cw
	row[turnIndex(CCW)] = cw.Inverse()
	row[turnIndex(Double)] = cw.Then(cw)
}

// Lookup returns the permutation for a face and turn.
func Lookup(face Face, turn Turn) (Perm, bool) {
	fi, ti := faceIndex(face), turnIndex(turn)
	if fi < 0 || ti < 0 {
		return Perm{}, false
	}
	return catalog[fi][ti], true
}

// Compose returns the single permutation equivalent to applying moves in
// order. Every move must be valid; see Move.Perm.
func Compose(moves ...Move) Perm {
	p := Identity()
	for _, m := range moves {
		p = p.Then(m.Perm())
	}
	return p
}
