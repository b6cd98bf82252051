package scramble

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/SeamusWaldron/cubecipher"
)

func TestMovesNeverRepeatAFace(t *testing.T) {
	seq := New(1).Moves(500)
	if len(seq) != 500 {
		t.Fatalf("got %d moves, want 500", len(seq))
	}
	for i, m := range seq {
		if !m.Face.IsOuter() {
			t.Fatalf("move %d turns %s, want an outer face", i, m.Face)
		}
		if i > 0 && seq[i-1].Face == m.Face {
			t.Fatalf("moves %d and %d both turn %s", i-1, i, m.Face)
		}
	}
}

func TestSeedIsReproducible(t *testing.T) {
	a := New(7).Moves(40).String()
	b := New(7).Moves(40).String()
	if a != b {
		t.Errorf("same seed gave %q and %q", a, b)
	}
	if c := New(8).Moves(40).String(); c == a {
		t.Error("different seeds should give different scrambles")
	}
}

func TestBetween(t *testing.T) {
	g := New(3)
	for i := 0; i < 100; i++ {
		if n := len(g.Between(5, 9)); n < 5 || n > 9 {
			t.Fatalf("length %d outside [5, 9]", n)
		}
	}
	if n := len(g.Between(6, 2)); n != 6 {
		t.Errorf("inverted bounds gave %d moves, want 6", n)
	}
}

func TestStateIsSolvable(t *testing.T) {
	g := New(4)
	for i := 0; i < 25; i++ {
		c, seq, err := g.State("WOGRBY", 30)
		if err != nil {
			t.Fatal(err)
		}
		if len(seq) != 30 {
			t.Fatalf("scramble has %d moves", len(seq))
		}
		if _, err := cubecipher.Solve(c); err != nil {
			t.Fatalf("scramble %q: %v", seq, err)
		}
		if !c.IsSolved() {
			t.Fatalf("scramble %q not solved", seq)
		}
	}
}

func TestSolved(t *testing.T) {
	c, err := Solved("")
	if err != nil {
		t.Fatal(err)
	}
	if !c.Equal(cubecipher.NewSolved()) {
		t.Errorf("Solved(\"\") differs from NewSolved:\n%s", c)
	}
	if _, err := Solved("ABC"); err == nil {
		t.Error("three symbols should be rejected")
	}
}

func TestShuffleKeepsCounts(t *testing.T) {
	s, err := New(5).Shuffle("WOGRBY")
	if err != nil {
		t.Fatal(err)
	}
	if n := utf8.RuneCountInString(s); n != cubecipher.Facets {
		t.Fatalf("got %d runes", n)
	}
	for _, sym := range "WOGRBY" {
		if n := strings.Count(s, string(sym)); n != 9 {
			t.Errorf("%c appears %d times, want 9", sym, n)
		}
	}

	// Most shuffles are rejected, and none may loop forever.
	g := New(6)
	rejected := 0
	for i := 0; i < 50; i++ {
		s, _ := g.Shuffle("")
		c, err := cubecipher.New(s)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := cubecipher.Solve(c); err != nil {
			if !errors.Is(err, cubecipher.ErrUnsolvableState) {
				t.Fatalf("err = %v, want ErrUnsolvableState", err)
			}
			rejected++
		}
	}
	if rejected == 0 {
		t.Error("expected some shuffles to be rejected")
	}
}
