package cubecipher

// Solver phases. Each works in logical faces (see frame): the finished layers
// sit on logical Down, the layer being built on logical Up. Every phase loops
// over situations, applies the canned moves for the one it finds and looks
// again, until its pieces are home.

// sides returns the two faces of a slot other than except.
func sides(except int, faces ...int) []int {
	out := make([]int, 0, 2)
	for _, f := range faces {
		if f != except {
			out = append(out, f)
		}
	}
	return out
}

// leftOfPair returns whichever of two adjacent side faces has the other on
// its right.
func leftOfPair(a, b int) int {
	if rightOf(a) == b {
		return a
	}
	return b
}

// solveCross places the four Down edges, one frame at a time, at DF.
func (s *Solver) solveCross() error {
	for k := range frames {
		f := &frames[k]
		for {
			a, b, ok := s.findEdge(f, idxD, idxF)
			if !ok {
				return s.fail(PhaseCross, "edge piece missing")
			}
			if a == idxD && b == idxF {
				break
			}
			if err := s.spend(PhaseCross); err != nil {
				return err
			}

			switch {
			case a == idxD || b == idxD:
				// In the Down layer, wrong slot or flipped: lift it out.
				s.turn(f, sides(idxD, a, b)[0], Double)
			case a != idxU && b != idxU:
				// Middle layer
				left := leftOfPair(a, b)
				s.turn(f, left, CCW)
				s.turn(f, idxU, CW)
				s.turn(f, left, CW)
			default:
				s.auf(f, ringIndex(sides(idxU, a, b)[0]))
				if a, _, _ = s.findEdge(f, idxD, idxF); a == idxU {
					s.turn(f, idxF, Double)
				} else {
					s.alg(f, algCrossFlip)
				}
			}
		}
	}
	return nil
}

// solveFirstLayer places the four Down corners, one frame at a time, at DFR.
func (s *Solver) solveFirstLayer() error {
	for k := range frames {
		f := &frames[k]
		for {
			x, y, z, ok := s.findCorner(f, idxD, idxF, idxR)
			if !ok {
				return s.fail(PhaseFirstLayer, "corner piece missing")
			}
			if x == idxD && y == idxF && z == idxR {
				break
			}
			if err := s.spend(PhaseFirstLayer); err != nil {
				return err
			}

			if x == idxD || y == idxD || z == idxD {
				// In the Down layer but wrong: lift it out.
				pair := sides(idxD, x, y, z)
				r := rightOf(leftOfPair(pair[0], pair[1]))
				s.turn(f, r, CW)
				s.turn(f, idxU, CW)
				s.turn(f, r, CCW)
				continue
			}

			pair := sides(idxU, x, y, z)
			s.auf(f, ringIndex(leftOfPair(pair[0], pair[1])))
			x, _, _, _ = s.findCorner(f, idxD, idxF, idxR)
			switch x {
			case idxR:
				s.alg(f, algCornerRight)
			case idxF:
				s.alg(f, algCornerFront)
			default:
				s.alg(f, algCornerUp)
			}
		}
	}
	return nil
}

// solveMiddleLayer places the four middle edges, one frame at a time, at FR.
func (s *Solver) solveMiddleLayer() error {
	for k := range frames {
		f := &frames[k]
		for {
			a, b, ok := s.findEdge(f, idxF, idxR)
			if !ok {
				return s.fail(PhaseMiddleLayer, "edge piece missing")
			}
			if a == idxF && b == idxR {
				break
			}
			if err := s.spend(PhaseMiddleLayer); err != nil {
				return err
			}

			switch {
			case a == idxD || b == idxD:
				return s.fail(PhaseMiddleLayer, "middle edge found in the first layer")
			case a != idxU && b != idxU:
				// Wrong middle slot or flipped: replace it with whatever
				// sits at UF of the frame facing that slot.
				s.alg(frameFacing(k, leftOfPair(a, b)), algEdgeFromFront)
			case b == idxU:
				s.auf(f, ringIndex(a))
				s.alg(f, algEdgeFromFront)
			default:
				s.auf(f, ringIndex(b)-1)
				s.alg(f, algEdgeFromRight)
			}
		}
	}
	return nil
}

// goodEdges reports, per ring position of frame 0, whether the Up edge shows
// the Up color on Up.
func (s *Solver) goodEdges() (good [4]bool, n int) {
	f := &frames[0]
	for j, side := range ring {
		if c, _ := s.edgeColors(f, idxU, side); c == idxU {
			good[j] = true
			n++
		}
	}
	return good, n
}

// orientLastEdges flips the Up edges until the Up cross shows.
func (s *Solver) orientLastEdges() error {
	for {
		good, n := s.goodEdges()
		if n == 4 {
			return nil
		}
		if n%2 == 1 {
			return s.fail(PhaseLastCross, "%d flipped edges", 4-n)
		}
		if err := s.spend(PhaseLastCross); err != nil {
			return err
		}

		if n == 0 {
			s.alg(&frames[0], algEdgeFlip)
			continue
		}

		// Two good edges: a line across L and R goes straight to the cross,
		// an L shape at B and L becomes a line.
		applied := false
		for k := range frames {
			left, right, back := good[(k+3)%4], good[(k+1)%4], good[(k+2)%4]
			if left && right || left && back {
				s.alg(&frames[k], algEdgeFlip)
				applied = true
				break
			}
		}
		if !applied {
			return s.fail(PhaseLastCross, "no edge pattern matched")
		}
	}
}

// cornerHomes returns, per ring position j of frame 0, the ring position of
// the Up corner slot where the piece now at slot j belongs. Slot j is the
// corner between Up, ring[j] and ring[j+1].
func (s *Solver) cornerHomes() (homes [4]int, ok bool) {
	f := &frames[0]
	for j, side := range ring {
		next := ring[(j+1)%4]
		var colors [3]int
		colors[0] = s.cornerColor(f, idxU, side, next)
		colors[1] = s.cornerColor(f, side, idxU, next)
		colors[2] = s.cornerColor(f, next, idxU, side)

		homes[j] = -1
		for h := range ring {
			if sameFaces(colors, [3]int{idxU, ring[h], ring[(h+1)%4]}) {
				homes[j] = h
			}
		}
		if homes[j] < 0 {
			return homes, false
		}
	}
	return homes, true
}

// edgeHomes returns, per ring position j of frame 0, the ring position of the
// Up edge slot where the piece now at UF, UR, UB or UL belongs.
func (s *Solver) edgeHomes() (homes [4]int, ok bool) {
	f := &frames[0]
	for j, side := range ring {
		up, other := s.edgeColors(f, idxU, side)
		if up != idxU {
			return homes, false
		}
		homes[j] = ringIndex(other)
		if homes[j] < 0 {
			return homes, false
		}
	}
	return homes, true
}

// positionLastCorners permutes the Up corners into their slots, ignoring
// twist.
func (s *Solver) positionLastCorners() error {
	homes, ok := s.cornerHomes()
	if !ok {
		return s.fail(PhaseCornersPositioned, "unexpected piece in the last layer")
	}
	// Corner cycles are even, so an odd arrangement needs one Up turn first.
	if oddPermutation(homes) {
		if err := s.spend(PhaseCornersPositioned); err != nil {
			return err
		}
		s.turn(&frames[0], idxU, CW)
	}

	for {
		homes, ok = s.cornerHomes()
		if !ok {
			return s.fail(PhaseCornersPositioned, "unexpected piece in the last layer")
		}
		placed, at := countFixed(homes)
		if placed == 4 {
			return nil
		}
		if err := s.spend(PhaseCornersPositioned); err != nil {
			return err
		}

		switch placed {
		case 0:
			s.alg(&frames[0], algCornerCycle)
		case 1:
			// Frame k has slot k at UFR.
			s.alg(&frames[at], algCornerCycle)
		default:
			return s.fail(PhaseCornersPositioned, "two corners swapped")
		}
	}
}

// orientLastCorners twists each Up corner in turn at UFR. The Down layer is
// disturbed in between and comes back once all four are done, unless the
// twists do not add up.
func (s *Solver) orientLastCorners() error {
	f := &frames[0]
	for j := 0; j < 4; j++ {
		for twists := 0; s.cornerColor(f, idxU, idxF, idxR) != idxU; twists++ {
			if twists == 2 {
				return s.fail(PhaseCornersOriented, "corner cannot be oriented")
			}
			if err := s.spend(PhaseCornersOriented); err != nil {
				return err
			}
			s.alg(f, algCornerTwist)
		}
		s.turn(f, idxU, CW)
	}

	if !s.firstTwoLayers() {
		return s.fail(PhaseCornersOriented, "twisted corner")
	}
	return nil
}

// permuteLastEdges cycles the Up edges into place.
func (s *Solver) permuteLastEdges() error {
	for {
		homes, ok := s.edgeHomes()
		if !ok {
			return s.fail(PhaseSolved, "unexpected piece in the last layer")
		}
		placed, at := countFixed(homes)
		if placed == 4 {
			return nil
		}
		if oddPermutation(homes) {
			return s.fail(PhaseSolved, "two edges swapped")
		}
		if err := s.spend(PhaseSolved); err != nil {
			return err
		}

		switch placed {
		case 0:
			s.alg(&frames[0], algEdgeCycle)
		case 1:
			// Frame k has ring position k+2 at UB.
			s.alg(&frames[(at+2)%4], algEdgeCycle)
		default:
			return s.fail(PhaseSolved, "no edge pattern matched")
		}
	}
}

// firstTwoLayers reports whether the physical Up face and the top two rows of
// every side face are solved.
func (s *Solver) firstTwoLayers() bool {
	for i := 0; i < 9; i++ {
		if s.ids[facet(idxU, i)] != idxU {
			return false
		}
	}
	for _, face := range ring {
		for i := 0; i < 6; i++ {
			if int(s.ids[facet(face, i)]) != face {
				return false
			}
		}
	}
	return true
}

func sameFaces(a, b [3]int) bool {
	for _, x := range a {
		found := false
		for _, y := range b {
			if x == y {
				found = true
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// countFixed returns how many positions map to themselves, and the last one.
func countFixed(homes [4]int) (n, at int) {
	for j, h := range homes {
		if h == j {
			n++
			at = j
		}
	}
	return n, at
}

// oddPermutation reports whether homes, a permutation of 0..3, is odd.
func oddPermutation(homes [4]int) bool {
	var seen [4]bool
	odd := false
	for start := range homes {
		if seen[start] {
			continue
		}
		length := 0
		for i := start; !seen[i]; i = homes[i] {
			seen[i] = true
			length++
		}
		if length%2 == 0 {
			odd = !odd
		}
	}
	return odd
}
