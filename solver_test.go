package cubecipher

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestSolveAlreadySolved(t *testing.T) {
	c := NewSolved()
	moves, err := Solve(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) != 0 {
		t.Errorf("solved cube needed %d moves: %s", len(moves), moves)
	}
}

func TestSolveAfterU(t *testing.T) {
	c, err := New(solvedNet)
	if err != nil {
		t.Fatal(err)
	}
	original := c.FlatColors()
	c.ApplyMove(U)
	scrambled := c.Clone()

	moves, err := Solve(c)
	if err != nil {
		t.Fatal(err)
	}
	if len(moves) < 1 {
		t.Fatal("solving a turned cube should take at least one move")
	}
	if c.FlatColors() != original {
		t.Errorf("solved colors = %q, want %q", c.FlatColors(), original)
	}

	scrambled.ApplySequence(moves)
	if scrambled.FlatColors() != original {
		t.Errorf("replayed solution gives %q, want %q", scrambled.FlatColors(), original)
	}
}

func TestSolveFaceMajorScenario(t *testing.T) {
	net, err := FaceMajorToNet("UUUUUUUUULLLLLLLLLFFFFFFFFFRRRRRRRRRBBBBBBBBBDDDDDDDDD")
	if err != nil {
		t.Fatal(err)
	}
	c, err := New(net)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplyMove(U)
	if _, err := Solve(c); err != nil {
		t.Fatal(err)
	}
	if got := c.FaceMajorColors(); got != "UUUUUUUUULLLLLLLLLFFFFFFFFFRRRRRRRRRBBBBBBBBBDDDDDDDDD" {
		t.Errorf("FaceMajorColors() = %q", got)
	}
}

func TestSolveRandomStates(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1024))
	longest := 0
	for i := 0; i < 1000; i++ {
		c, err := New(solvedNet, WithPayload(alphabetPayload))
		if err != nil {
			t.Fatal(err)
		}
		scramble := randomSequence(rng, 1+rng.IntN(100))
		c.ApplySequence(scramble)
		start := c.Clone()

		moves, err := Solve(c)
		if err != nil {
			t.Fatalf("scramble %q: %v", scramble, err)
		}
		if !c.IsSolved() {
			t.Fatalf("scramble %q: cube not solved\n%s", scramble, c)
		}
		if c.FlatPayload() != alphabetPayload {
			t.Fatalf("scramble %q: payload %q, want %q", scramble, c.FlatPayload(), alphabetPayload)
		}

		start.ApplySequence(moves)
		if !start.Equal(c) {
			t.Fatalf("scramble %q: replaying the solution differs from the solved cube", scramble)
		}
		if len(moves) > longest {
			longest = len(moves)
		}
	}
	t.Logf("longest solution: %d moves", longest)
}

func TestSolveArbitrarySymbols(t *testing.T) {
	// Any reachable state of any labelling, including one whose centers are
	// not the usual letters.
	rng := rand.New(rand.NewPCG(9, 9))
	c, err := New("BBWOGYWGRYGGRYGYROGWRGRRWWOYORBYRBOYOWRWGOBBYGOBBBWOYW")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Solve(c); err != nil {
		t.Fatalf("example cube: %v", err)
	}
	if !c.IsSolved() {
		t.Fatal("example cube not solved")
	}

	c.ApplySequence(randomSequence(rng, 60))
	if _, err := Solve(c); err != nil {
		t.Fatal(err)
	}
	if !c.IsSolved() {
		t.Error("re-scrambled example cube not solved")
	}
}

func TestSolveIsDeterministicUnderRelabelling(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	relabel := map[string]string{
		"U": "white", "L": "orange", "F": "green",
		"R": "red", "B": "blue", "D": "yellow",
	}

	for i := 0; i < 50; i++ {
		a := NewSolved()
		a.ApplySequence(randomSequence(rng, 1+rng.IntN(60)))

		colors := a.Colors()
		symbols := make([]string, Facets)
		for j, s := range colors {
			symbols[j] = relabel[s]
		}
		b, err := NewFromSymbols(symbols, nil)
		if err != nil {
			t.Fatal(err)
		}

		ma, err := Solve(a)
		if err != nil {
			t.Fatal(err)
		}
		mb, err := Solve(b)
		if err != nil {
			t.Fatal(err)
		}
		if ma.String() != mb.String() {
			t.Fatalf("relabelled cube solved differently:\n%s\n%s", ma, mb)
		}
	}
}

func TestSolveRepeatable(t *testing.T) {
	c := NewSolved()
	c.ApplyNotation("R U F' L2 D B' R2 U'")
	first, err := Solve(c.Clone())
	if err != nil {
		t.Fatal(err)
	}
	second, err := Solve(c.Clone())
	if err != nil {
		t.Fatal(err)
	}
	if first.String() != second.String() {
		t.Errorf("two runs differ:\n%s\n%s", first, second)
	}
}

func TestSolvePayloadRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewPCG(13, 14))
	scrambled := NewSolved()
	scrambled.ApplySequence(randomSequence(rng, 40))

	c, err := New(scrambled.FlatColors(), WithPayload(alphabetPayload))
	if err != nil {
		t.Fatal(err)
	}
	moves, err := Solve(c.Clone())
	if err != nil {
		t.Fatal(err)
	}

	c.ApplySequence(moves)
	c.ApplyInverse(moves)
	if got := c.FlatPayload(); got != alphabetPayload {
		t.Errorf("FlatPayload() = %q, want %q", got, alphabetPayload)
	}
}

func TestSolvePhases(t *testing.T) {
	rng := rand.New(rand.NewPCG(15, 16))
	for i := 0; i < 20; i++ {
		c := NewSolved()
		c.ApplySequence(randomSequence(rng, 50))

		var seen []Phase
		s := NewSolver(c, WithPhaseCallback(func(p Phase, moves int) {
			if got := c.DetectPhase(); got < p {
				t.Errorf("after %s the cube detects as %s", p, got)
			}
			seen = append(seen, p)
		}))
		moves, err := s.Solve()
		if err != nil {
			t.Fatal(err)
		}

		if len(seen) != len(solvePhases) {
			t.Fatalf("saw %d phases, want %d", len(seen), len(solvePhases))
		}
		marks := s.Phases()
		for j, m := range marks {
			if m.Phase != solvePhases[j] {
				t.Errorf("mark %d is %s, want %s", j, m.Phase, solvePhases[j])
			}
			if j > 0 && m.Moves < marks[j-1].Moves {
				t.Errorf("mark %d goes backwards", j)
			}
		}
		if last := marks[len(marks)-1]; last.Moves != len(moves) {
			t.Errorf("last mark at %d moves, solution has %d", last.Moves, len(moves))
		}
		if s.Moves().String() != moves.String() {
			t.Error("Moves() should match the returned solution")
		}
	}
}

// swap exchanges the colors at the given facet pairs.
func swap(t *testing.T, net string, pairs ...[2]int) *Cube {
	t.Helper()
	units := strings.Split(net, "")
	for _, p := range pairs {
		units[p[0]], units[p[1]] = units[p[1]], units[p[0]]
	}
	c, err := New(strings.Join(units, ""), WithPayload(alphabetPayload))
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestSolveUnsolvable(t *testing.T) {
	uf := [2]int{facet(idxU, 7), facet(idxF, 1)}
	ur := [2]int{facet(idxU, 5), facet(idxR, 1)}
	urf := [3]int{facet(idxU, 8), facet(idxR, 0), facet(idxF, 2)}
	ufl := [3]int{facet(idxU, 6), facet(idxF, 0), facet(idxL, 2)}

	scrambled := NewSolved()
	scrambled.ApplyNotation("R U2 F' L D2 B R' U")
	base := scrambled.FlatColors()

	tests := []struct {
		name string
		cube *Cube
	}{
		{"flipped edge", swap(t, base, uf)},
		{"mirrored corner", swap(t, base, [2]int{urf[0], urf[1]})},
		{"twisted corner", swap(t, base, [2]int{urf[0], urf[1]}, [2]int{urf[1], urf[2]})},
		{"swapped edges", swap(t, base, [2]int{uf[0], ur[0]}, [2]int{uf[1], ur[1]})},
		{"swapped corners", swap(t, base, [2]int{urf[0], ufl[0]}, [2]int{urf[1], ufl[1]}, [2]int{urf[2], ufl[2]})},
		{"duplicate piece", swap(t, base, [2]int{facet(idxU, 1), facet(idxL, 0)})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.cube.Clone()
			s := NewSolver(tt.cube)
			_, err := s.Solve()
			if !errors.Is(err, ErrUnsolvableState) {
				t.Fatalf("err = %v, want ErrUnsolvableState", err)
			}
			var uerr *UnsolvableError
			if !errors.As(err, &uerr) {
				t.Fatalf("err = %T, want *UnsolvableError", err)
			}
			if !tt.cube.Equal(before) {
				t.Error("a failed solve should leave the cube unchanged")
			}
			if len(s.Moves()) != 0 {
				t.Errorf("a failed solve should record no moves, got %d", len(s.Moves()))
			}
		})
	}
}

func TestSolveRejectsBadCenters(t *testing.T) {
	dup := []byte(solvedNet)
	dup[center(idxF)] = 'R'
	c, err := New(string(dup))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Solve(c); !errors.Is(err, ErrUnsolvableState) {
		t.Errorf("duplicate centers: err = %v, want ErrUnsolvableState", err)
	}

	unknown := []byte(solvedNet)
	unknown[0] = 'Q'
	c, err = New(string(unknown))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Solve(c); !errors.Is(err, ErrUnsolvableState) {
		t.Errorf("unknown symbol: err = %v, want ErrUnsolvableState", err)
	}
}

func TestWithMaxIterationsKeepsFloor(t *testing.T) {
	cfg := defaultSolverConfig()
	WithMaxIterations(1)(cfg)
	if cfg.maxIterations != DefaultMaxIterations {
		t.Errorf("maxIterations = %d, want %d", cfg.maxIterations, DefaultMaxIterations)
	}
	WithMaxIterations(100)(cfg)
	if cfg.maxIterations != 100 {
		t.Errorf("maxIterations = %d, want 100", cfg.maxIterations)
	}
}
