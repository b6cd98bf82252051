package cubecipher

// Piece geometry and the whole-cube frames the solver reasons in.
//
// The solver never reads symbols directly. It maps every facet to the id of
// the face whose center carries the same symbol (idxU..idxD) and tracks those
// ids alongside the cube.

// edgeSlots lists the 12 edges as two faces and their local positions.
var edgeSlots = [12]struct {
	faces [2]int
	at    [2]int
}{
	{[2]int{idxU, idxB}, [2]int{1, 1}},
	{[2]int{idxU, idxL}, [2]int{3, 1}},
	{[2]int{idxU, idxR}, [2]int{5, 1}},
	{[2]int{idxU, idxF}, [2]int{7, 1}},
	{[2]int{idxD, idxF}, [2]int{1, 7}},
	{[2]int{idxD, idxL}, [2]int{3, 7}},
	{[2]int{idxD, idxR}, [2]int{5, 7}},
	{[2]int{idxD, idxB}, [2]int{7, 7}},
	{[2]int{idxF, idxR}, [2]int{5, 3}},
	{[2]int{idxF, idxL}, [2]int{3, 5}},
	{[2]int{idxB, idxL}, [2]int{5, 3}},
	{[2]int{idxB, idxR}, [2]int{3, 5}},
}

// cornerSlots lists the 8 corners as three faces, clockwise around the
// corner seen from outside, and their local positions.
var cornerSlots = [8]struct {
	faces [3]int
	at    [3]int
}{
	{[3]int{idxU, idxR, idxF}, [3]int{8, 0, 2}},
	{[3]int{idxU, idxF, idxL}, [3]int{6, 0, 2}},
	{[3]int{idxU, idxL, idxB}, [3]int{0, 0, 2}},
	{[3]int{idxU, idxB, idxR}, [3]int{2, 0, 2}},
	{[3]int{idxD, idxF, idxR}, [3]int{2, 8, 6}},
	{[3]int{idxD, idxL, idxF}, [3]int{0, 8, 6}},
	{[3]int{idxD, idxB, idxL}, [3]int{6, 8, 6}},
	{[3]int{idxD, idxR, idxB}, [3]int{8, 8, 6}},
}

var (
	// edgeAt[a][b] is the facet on face a of the edge between a and b.
	edgeAt [6][6]int
	// edgeID[a][b] is the index into edgeSlots of the edge whose facets
	// carry a and b, in either order.
	edgeID [6][6]int
	// cornerAt[a][b][c] is the facet on face a of the corner between a,
	// b and c.
	cornerAt [6][6][6]int
	// cornerID[a][b][c] is the index into cornerSlots of the corner with
	// faces a, b and c, in any order.
	cornerID [6][6][6]int
	// clockwise[a][b][c] is set when a, b, c run clockwise around a corner.
	clockwise [6][6][6]bool
)

func init() {
	for a := 0; a < 6; a++ {
		for b := 0; b < 6; b++ {
			edgeAt[a][b], edgeID[a][b] = -1, -1
			for c := 0; c < 6; c++ {
				cornerAt[a][b][c], cornerID[a][b][c] = -1, -1
			}
		}
	}

	for id, e := range edgeSlots {
		a, b := e.faces[0], e.faces[1]
		edgeAt[a][b] = facet(a, e.at[0])
		edgeAt[b][a] = facet(b, e.at[1])
		edgeID[a][b], edgeID[b][a] = id, id
	}

	for id, c := range cornerSlots {
		for r := 0; r < 3; r++ {
			// Rotations keep the clockwise order, reflections swap the
			// last two faces.
			x, y, z := c.faces[r], c.faces[(r+1)%3], c.faces[(r+2)%3]
			pos := facet(x, c.at[r])
			cornerAt[x][y][z], cornerAt[x][z][y] = pos, pos
			cornerID[x][y][z], cornerID[x][z][y] = id, id
			clockwise[x][y][z] = true
		}
	}
}

// ring lists the side faces in order: each face's right-hand neighbour
// follows it.
var ring = [4]int{idxF, idxR, idxB, idxL}

func ringIndex(face int) int {
	for j, f := range ring {
		if f == face {
			return j
		}
	}
	return -1
}

func rightOf(face int) int { return ring[(ringIndex(face)+1)%4] }

// frame relabels the faces of the cube without turning it. The solver
// builds the first layer on the logical Down face, which every frame maps to
// the physical Up face; frame k puts physical side face physRing[k] in front.
type frame struct {
	phys [6]int // logical face -> physical face
	log  [6]int // physical face -> logical face
}

// physRing is ring as seen upside down, which reverses left and right.
var physRing = [4]int{idxF, idxL, idxB, idxR}

var frames [4]frame

func init() {
	for k := range frames {
		f := &frames[k]
		f.phys[idxU], f.phys[idxD] = idxD, idxU
		for j, face := range ring {
			f.phys[face] = physRing[(j+k)%4]
		}
		for logical, physical := range f.phys {
			f.log[physical] = logical
		}
	}
}

// frameFacing returns the frame whose logical Front is logical face side of
// frame k.
func frameFacing(k, side int) *frame {
	return &frames[(k+ringIndex(side))%4]
}

// edgeColors returns the logical colors of edge slot (a, b): the one on face
// a and the one on face b.
func (s *Solver) edgeColors(f *frame, a, b int) (int, int) {
	pa, pb := f.phys[a], f.phys[b]
	return f.log[s.ids[edgeAt[pa][pb]]], f.log[s.ids[edgeAt[pb][pa]]]
}

// cornerColor returns the logical color on face a of corner slot (a, b, c).
func (s *Solver) cornerColor(f *frame, a, b, c int) int {
	return f.log[s.ids[cornerAt[f.phys[a]][f.phys[b]][f.phys[c]]]]
}

// findEdge returns the logical faces carrying colors x and y of the edge
// with those colors.
func (s *Solver) findEdge(f *frame, x, y int) (int, int, bool) {
	for _, e := range edgeSlots {
		a, b := f.log[e.faces[0]], f.log[e.faces[1]]
		ca, cb := s.edgeColors(f, a, b)
		switch {
		case ca == x && cb == y:
			return a, b, true
		case ca == y && cb == x:
			return b, a, true
		}
	}
	return 0, 0, false
}

// findCorner returns the logical faces carrying colors x, y and z of the
// corner with those colors.
func (s *Solver) findCorner(f *frame, x, y, z int) (fx, fy, fz int, ok bool) {
	for _, slot := range cornerSlots {
		var faces [3]int
		for i, p := range slot.faces {
			faces[i] = f.log[p]
		}
		found := 0
		for i := range faces {
			a, b, c := faces[i], faces[(i+1)%3], faces[(i+2)%3]
			switch s.cornerColor(f, a, b, c) {
			case x:
				fx, found = a, found+1
			case y:
				fy, found = a, found+1
			case z:
				fz, found = a, found+1
			}
		}
		if found == 3 {
			return fx, fy, fz, true
		}
	}
	return 0, 0, 0, false
}

// turn applies a quarter or half turn of a logical face.
func (s *Solver) turn(f *frame, face int, t Turn) {
	s.do(Move{Face: OuterFaces[f.phys[face]], Turn: t})
}

// auf turns the logical Up face by n quarter turns. Each turn moves the
// pieces of a side face to its left-hand neighbour.
func (s *Solver) auf(f *frame, n int) {
	switch ((n % 4) + 4) % 4 {
	case 1:
		s.turn(f, idxU, CW)
	case 2:
		s.turn(f, idxU, Double)
	case 3:
		s.turn(f, idxU, CCW)
	}
}

// alg applies an algorithm written for the logical faces of f.
func (s *Solver) alg(f *frame, seq Sequence) {
	for _, m := range seq {
		s.turn(f, faceIndex(m.Face), m.Turn)
	}
}

// do applies a physical move to the ids and the cube and records it.
func (s *Solver) do(m Move) {
	p := m.Perm()
	src := s.ids
	permute(&p, &s.ids, &src)
	s.cube.ApplyPerm(p)
	s.moves = append(s.moves, m)
}
