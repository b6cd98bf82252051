package cubecipher

import (
	"strings"
)

// ParseMove parses one notation token into a Move.
//
// The face letter is one of U L F R B D, the slices M E S or the rotations
// X Y Z (rotations may also be written x y z). It is followed by nothing
// (clockwise), a prime ', ’ or ` or the letter i (counter-clockwise), or 2
// (half turn, optionally primed).
// Examples: R, R', Ri, R2, x2, M'
func ParseMove(token string) (Move, error) {
	m, ok := parseMove(token)
	if !ok {
		return Move{}, &UnknownMoveError{Token: token, Index: -1}
	}
	return m, nil
}

func parseMove(token string) (Move, bool) {
	if token == "" {
		return Move{}, false
	}

	// Extract face
	var face Face
	switch token[0] {
	case 'x':
		face = FaceX
	case 'y':
		face = FaceY
	case 'z':
		face = FaceZ
	default:
		face = Face(token[:1])
		if faceIndex(face) < 0 {
			return Move{}, false
		}
	}

	// Extract turn
	switch token[1:] {
	case "":
		return Move{Face: face, Turn: CW}, true
	case "'", "’", "`", "i":
		return Move{Face: face, Turn: CCW}, true
	case "2", "2'", "2’", "2`":
		return Move{Face: face, Turn: Double}, true
	default:
		return Move{}, false
	}
}

// Sequence is an ordered list of moves.
type Sequence []Move

// ParseSequence parses whitespace-separated notation tokens. It fails on
// the first token that is not a catalog move, reporting it in an
// *UnknownMoveError.
func ParseSequence(text string) (Sequence, error) {
	tokens := strings.Fields(text)
	seq := make(Sequence, 0, len(tokens))
	for i, tok := range tokens {
		m, ok := parseMove(tok)
		if !ok {
			return nil, &UnknownMoveError{Token: tok, Index: i}
		}
		seq = append(seq, m)
	}
	return seq, nil
}

// MustParseSequence is like ParseSequence but panics on error. It is meant
// for package-level algorithm tables.
func MustParseSequence(text string) Sequence {
	seq, err := ParseSequence(text)
	if err != nil {
		panic(err)
	}
	return seq
}

// String formats the sequence as space-separated canonical tokens.
// ParseSequence(s.String()) reproduces s.
func (s Sequence) String() string {
	if len(s) == 0 {
		return ""
	}

	parts := make([]string, len(s))
	for i, m := range s {
		parts[i] = m.Notation()
	}
	return strings.Join(parts, " ")
}

// Tokens returns the canonical token of every move.
func (s Sequence) Tokens() []string {
	tokens := make([]string, len(s))
	for i, m := range s {
		tokens[i] = m.Notation()
	}
	return tokens
}

// Inverse returns the sequence that undoes s: the moves reversed, each
// inverted.
func (s Sequence) Inverse() Sequence {
	inv := make(Sequence, len(s))
	for i, m := range s {
		inv[len(s)-1-i] = m.Inverse()
	}
	return inv
}

// Perm returns the single permutation equivalent to applying s.
func (s Sequence) Perm() Perm {
	return Compose(s...)
}

// Simplify merges adjacent moves of the same layer and drops pairs that
// cancel, repeating until nothing changes. R R becomes R2, R R' vanishes,
// and R U U' R' collapses entirely.
func (s Sequence) Simplify() Sequence {
	out := make(Sequence, 0, len(s))
	for _, m := range s {
		if n := len(out); n > 0 {
			if merged, cancel, ok := out[n-1].merge(m); ok {
				out = out[:n-1]
				if !cancel {
					out = append(out, merged)
				}
				continue
			}
		}
		out = append(out, m)
	}
	return out
}
