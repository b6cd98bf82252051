package cubecipher

import (
	"strings"
)

// DefaultPad fills the last block of a message that is not a multiple of
// Facets runes long.
const DefaultPad = '_'

// Cipher is a transposition cipher over 54-rune blocks. Each block is laid
// out as the payload of a solved cube, the key is applied, and the payload
// is read back.
type Cipher struct {
	Key Sequence
	Pad rune // zero means DefaultPad
}

func (c Cipher) pad() string {
	if c.Pad == 0 {
		return string(DefaultPad)
	}
	return string(c.Pad)
}

// Encrypt permutes plaintext block by block with the key. The last block is
// padded, so the result is always a multiple of Facets runes.
func (c Cipher) Encrypt(plaintext string) string {
	return c.transform(plaintext, c.Key.Perm())
}

// Decrypt reverses Encrypt and strips trailing padding, so a message ending
// in the pad rune loses that tail.
func (c Cipher) Decrypt(ciphertext string) string {
	out := c.transform(ciphertext, c.Key.Perm().Inverse())
	return strings.TrimRight(out, c.pad())
}

func (c Cipher) transform(text string, p Perm) string {
	units := splitRunes(text)
	if rem := len(units) % Facets; rem != 0 || len(units) == 0 {
		for n := Facets - rem; n > 0; n-- {
			units = append(units, c.pad())
		}
	}

	var b strings.Builder
	b.Grow(len(text))
	for start := 0; start < len(units); start += Facets {
		carrier := NewSolved()
		copy(carrier.payload[:], units[start:start+Facets])
		carrier.hasPayload = true
		carrier.ApplyPerm(p)
		b.WriteString(carrier.FlatPayload())
	}
	return b.String()
}

// KeyFromState returns the key under which a message encrypts to the
// arrangement of the scrambled colors: the inverse of their solution.
// A ciphertext block laid out as the payload of that cube is read in clear
// once the cube is solved (see Reveal).
func KeyFromState(colors string, opts ...SolverOption) (Sequence, error) {
	c, err := New(colors)
	if err != nil {
		return nil, err
	}
	solution, err := Solve(c, opts...)
	if err != nil {
		return nil, err
	}
	return solution.Inverse(), nil
}

// Reveal solves the colored cube and returns the payload in solved position.
func Reveal(colors, payload string, opts ...SolverOption) (string, error) {
	c, err := New(colors, WithPayload(payload))
	if err != nil {
		return "", err
	}
	if _, err := Solve(c, opts...); err != nil {
		return "", err
	}
	return c.FlatPayload(), nil
}

// Retarget returns moves that turn base into target: base's solution
// followed by the inverse of target's. When both cubes use the same center
// symbols the result reproduces target exactly; otherwise it reproduces
// target's arrangement in base's symbols.
func Retarget(base, target string, opts ...SolverOption) (Sequence, error) {
	b, err := New(base)
	if err != nil {
		return nil, err
	}
	t, err := New(target)
	if err != nil {
		return nil, err
	}

	toSolved, err := Solve(b, opts...)
	if err != nil {
		return nil, err
	}
	fromSolved, err := Solve(t, opts...)
	if err != nil {
		return nil, err
	}

	moves := append(toSolved, fromSolved.Inverse()...)
	return moves.Simplify(), nil
}
