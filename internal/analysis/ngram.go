package analysis

import (
	"sort"
	"strings"

	"github.com/SeamusWaldron/cubecipher"
)

// NGram represents a repeated move sequence.
type NGram struct {
	N           int      `json:"n"`
	Sequence    []string `json:"sequence"`
	Count       int      `json:"count"`
	Occurrences []int    `json:"occurrences"` // start indices
}

// MineNGrams returns the sequences of n moves that occur at least twice,
// most frequent first, at most limit of them. Equal counts keep the order
// of first occurrence.
func MineNGrams(moves cubecipher.Sequence, n, limit int) []NGram {
	if n <= 0 || len(moves) < n {
		return nil
	}

	byKey := make(map[string]*NGram)
	var order []*NGram
	for i := 0; i+n <= len(moves); i++ {
		window := moves[i : i+n]
		key := window.String()
		g, ok := byKey[key]
		if !ok {
			g = &NGram{N: n, Sequence: window.Tokens()}
			byKey[key] = g
			order = append(order, g)
		}
		g.Count++
		g.Occurrences = append(g.Occurrences, i)
	}

	var repeated []NGram
	for _, g := range order {
		if g.Count >= 2 {
			repeated = append(repeated, *g)
		}
	}
	sort.SliceStable(repeated, func(i, j int) bool {
		return repeated[i].Count > repeated[j].Count
	})
	if limit > 0 && len(repeated) > limit {
		repeated = repeated[:limit]
	}
	return repeated
}

// String returns the n-gram in move notation.
func (g NGram) String() string {
	return strings.Join(g.Sequence, " ")
}
