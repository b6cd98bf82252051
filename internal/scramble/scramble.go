// Package scramble generates random cube states.
//
// Scrambles are random outer face turns that never turn the same face twice
// in a row. Every state they produce is reachable, so the solver accepts it.
package scramble

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/SeamusWaldron/cubecipher"
)

var turns = []cubecipher.Turn{cubecipher.CW, cubecipher.CCW, cubecipher.Double}

// Generator produces scrambles from its own random source.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator with a fixed seed, for reproducible scrambles.
func New(seed uint64) *Generator {
	return &Generator{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// NewRandom creates a generator seeded from the runtime's random source.
func NewRandom() *Generator {
	return New(rand.Uint64())
}

// Moves returns n random outer face moves.
func (g *Generator) Moves(n int) cubecipher.Sequence {
	seq := make(cubecipher.Sequence, 0, n)
	var last cubecipher.Face
	for len(seq) < n {
		face := cubecipher.OuterFaces[g.rng.IntN(len(cubecipher.OuterFaces))]
		if face == last {
			continue
		}
		last = face
		seq = append(seq, cubecipher.Move{Face: face, Turn: turns[g.rng.IntN(len(turns))]})
	}
	return seq
}

// Between returns a scramble whose length is drawn from [min, max].
func (g *Generator) Between(min, max int) cubecipher.Sequence {
	if max < min {
		max = min
	}
	return g.Moves(min + g.rng.IntN(max-min+1))
}

// State applies a scramble of n moves to a solved cube labelled with
// symbols, one rune per face in U L F R B D order, and returns the cube and
// the scramble. Empty symbols mean the face names.
func (g *Generator) State(symbols string, n int) (*cubecipher.Cube, cubecipher.Sequence, error) {
	c, err := Solved(symbols)
	if err != nil {
		return nil, nil, err
	}
	seq := g.Moves(n)
	c.ApplySequence(seq)
	return c, seq, nil
}

// Shuffle returns a flat string holding nine of each symbol in random
// positions, centers included. Most such strings are not reachable states;
// they are useful for exercising rejection paths.
func (g *Generator) Shuffle(symbols string) (string, error) {
	faces, err := faceSymbols(symbols)
	if err != nil {
		return "", err
	}
	units := make([]string, 0, cubecipher.Facets)
	for _, s := range faces {
		for i := 0; i < 9; i++ {
			units = append(units, s)
		}
	}
	g.rng.Shuffle(len(units), func(i, j int) {
		units[i], units[j] = units[j], units[i]
	})
	return strings.Join(units, ""), nil
}

// Solved builds a solved cube with the given face symbols.
func Solved(symbols string) (*cubecipher.Cube, error) {
	faces, err := faceSymbols(symbols)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	// Net order: U, then three rows of L F R B, then D.
	b.WriteString(strings.Repeat(faces[0], 9))
	for row := 0; row < 3; row++ {
		for _, s := range faces[1:5] {
			b.WriteString(strings.Repeat(s, 3))
		}
	}
	b.WriteString(strings.Repeat(faces[5], 9))
	return cubecipher.New(b.String())
}

func faceSymbols(symbols string) ([]string, error) {
	if symbols == "" {
		symbols = "ULFRBD"
	}
	faces := strings.Split(symbols, "")
	if len(faces) != 6 {
		return nil, fmt.Errorf("need 6 face symbols, got %d", len(faces))
	}
	return faces, nil
}
