package cubecipher

import (
	"strings"
	"unicode/utf8"
)

// Cube is a 3x3x3 cube as 54 facet positions in net order (see Facets).
// Each position holds a color symbol and, optionally, a payload symbol that
// travels with it under every move.
//
// Symbols are arbitrary strings. A cube built from a flat string uses one
// rune per facet; the center facets (4, 22, 25, 28, 31, 49) never move and
// define what each face looks like when solved.
//
// A Cube is not safe for concurrent use.
type Cube struct {
	colors     [Facets]string
	payload    [Facets]string
	hasPayload bool
}

// New creates a cube from a flat color string of exactly 54 runes.
// Options attach a payload; see WithPayload and friends.
func New(colors string, opts ...Option) (*Cube, error) {
	return newCube(splitRunes(colors), opts...)
}

// NewFromSymbols creates a cube from explicit color and payload symbols.
// A nil payload means the cube carries none.
func NewFromSymbols(colors, payload []string) (*Cube, error) {
	if payload == nil {
		return newCube(colors)
	}
	return newCube(colors, WithPayloadTokens(payload))
}

// NewSolved creates a solved cube whose faces are labelled with their own
// names: U, L, F, R, B and D.
func NewSolved() *Cube {
	c := &Cube{}
	for face, f := range OuterFaces {
		for i := 0; i < 9; i++ {
			c.colors[facet(face, i)] = string(f)
		}
	}
	return c
}

func newCube(colors []string, opts ...Option) (*Cube, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(cfg)
	}

	if len(colors) != Facets {
		return nil, &LengthError{Field: "colors", Got: len(colors)}
	}

	c := &Cube{}
	copy(c.colors[:], colors)

	if cfg.payloadSet {
		if len(cfg.payload) != Facets {
			return nil, &LengthError{Field: "payload", Got: len(cfg.payload)}
		}
		copy(c.payload[:], cfg.payload)
		c.hasPayload = true
	}
	return c, nil
}

// splitRunes splits s into one string per rune. Invalid UTF-8 bytes become
// single-byte units so that no input is silently dropped.
func splitRunes(s string) []string {
	units := make([]string, 0, utf8.RuneCountInString(s))
	for len(s) > 0 {
		_, size := utf8.DecodeRuneInString(s)
		units = append(units, s[:size])
		s = s[size:]
	}
	return units
}

// FaceMajorToNet reorders a face-major string, the nine facets of U, then L,
// F, R, B and D each row by row, into the net order New expects.
func FaceMajorToNet(s string) (string, error) {
	net, err := faceMajorToNet(splitRunes(s), "colors")
	if err != nil {
		return "", err
	}
	return strings.Join(net, ""), nil
}

// FaceMajorTokensToNet reorders face-major payload tokens into net order.
// Use it with payloads whose symbols are longer than one rune.
func FaceMajorTokensToNet(tokens []string) ([]string, error) {
	return faceMajorToNet(tokens, "payload")
}

func faceMajorToNet(units []string, field string) ([]string, error) {
	if len(units) != Facets {
		return nil, &LengthError{Field: field, Got: len(units)}
	}
	net := make([]string, Facets)
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			net[facet(face, i)] = units[face*9+i]
		}
	}
	return net, nil
}

// FaceMajorColors returns the colors face by face, the inverse of
// FaceMajorToNet.
func (c *Cube) FaceMajorColors() string {
	return faceMajor(&c.colors)
}

// FaceMajorPayload returns the payload face by face, or "" when the cube
// carries no payload.
func (c *Cube) FaceMajorPayload() string {
	if !c.hasPayload {
		return ""
	}
	return faceMajor(&c.payload)
}

// FaceMajorPayloadTokens returns the payload symbols face by face, or nil
// when the cube carries no payload.
func (c *Cube) FaceMajorPayloadTokens() []string {
	if !c.hasPayload {
		return nil
	}
	return faceMajorTokens(&c.payload)
}

func faceMajor(symbols *[Facets]string) string {
	return strings.Join(faceMajorTokens(symbols), "")
}

func faceMajorTokens(symbols *[Facets]string) []string {
	units := make([]string, 0, Facets)
	for face := 0; face < 6; face++ {
		for i := 0; i < 9; i++ {
			units = append(units, symbols[facet(face, i)])
		}
	}
	return units
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes hold the same colors and payload.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil {
		return false
	}
	return c.colors == other.colors &&
		c.hasPayload == other.hasPayload &&
		c.payload == other.payload
}

// IsSolved reports whether every face holds nine copies of its center
// symbol.
func (c *Cube) IsSolved() bool {
	for face := 0; face < 6; face++ {
		want := c.colors[center(face)]
		for i := 0; i < 9; i++ {
			if c.colors[facet(face, i)] != want {
				return false
			}
		}
	}
	return true
}

// ApplyPerm permutes colors and payload by p.
func (c *Cube) ApplyPerm(p Perm) {
	src := c.colors
	permute(&p, &c.colors, &src)
	if c.hasPayload {
		src = c.payload
		permute(&p, &c.payload, &src)
	}
}

// ApplyMove applies a single move. m must be a catalog move, as returned by
// ParseMove or one of the predefined values; ApplyMove panics otherwise. Use
// Move.Valid to check a hand-built move first.
func (c *Cube) ApplyMove(m Move) {
	c.ApplyPerm(m.Perm())
}

// Apply applies moves in order. The moves are composed first, so the facets
// are permuted in a single pass. Like ApplyMove it panics on a move that is
// not in the catalog.
func (c *Cube) Apply(moves ...Move) {
	c.ApplyPerm(Compose(moves...))
}

// ApplySequence applies every move of seq in order.
func (c *Cube) ApplySequence(seq Sequence) {
	c.ApplyPerm(seq.Perm())
}

// ApplyInverse undoes seq: it applies the inverse of each move, last first.
func (c *Cube) ApplyInverse(seq Sequence) {
	c.ApplyPerm(seq.Perm().Inverse())
}

// ApplyNotation parses a move string like "R U R' U'" and applies it.
// Nothing is applied when the string does not parse.
func (c *Cube) ApplyNotation(text string) error {
	seq, err := ParseSequence(text)
	if err != nil {
		return err
	}
	c.ApplySequence(seq)
	return nil
}

// ApplyInverseNotation parses a move string and applies its inverse.
func (c *Cube) ApplyInverseNotation(text string) error {
	seq, err := ParseSequence(text)
	if err != nil {
		return err
	}
	c.ApplyInverse(seq)
	return nil
}

// Colors returns a copy of the color symbols in position order.
func (c *Cube) Colors() [Facets]string {
	return c.colors
}

// FlatColors returns the colors concatenated in position order. For a cube
// built with New this is the inverse of construction.
func (c *Cube) FlatColors() string {
	return strings.Join(c.colors[:], "")
}

// HasPayload reports whether the cube carries a payload.
func (c *Cube) HasPayload() bool {
	return c.hasPayload
}

// PayloadTokens returns the payload symbols in position order, or nil when
// the cube carries no payload.
func (c *Cube) PayloadTokens() []string {
	if !c.hasPayload {
		return nil
	}
	tokens := make([]string, Facets)
	copy(tokens, c.payload[:])
	return tokens
}

// FlatPayload returns the payload concatenated in position order, or "" when
// the cube carries no payload.
func (c *Cube) FlatPayload() string {
	return c.PayloadDelimited("")
}

// PayloadDelimited returns the payload joined by sep.
func (c *Cube) PayloadDelimited(sep string) string {
	if !c.hasPayload {
		return ""
	}
	return strings.Join(c.payload[:], sep)
}

// Facet returns the color and payload symbols at position i, which must be
// in [0, Facets); other positions panic. The payload is "" when the cube
// carries none.
func (c *Cube) Facet(i int) (color, payload string) {
	return c.colors[i], c.payload[i]
}

// String returns the color net:
//
//	      U U U
//	      U U U
//	      U U U
//	L L L F F F R R R B B B
//	...
//	      D D D
func (c *Cube) String() string {
	return renderNet(&c.colors)
}

// PayloadString returns the payload laid out like String, or "" when the cube
// carries no payload.
func (c *Cube) PayloadString() string {
	if !c.hasPayload {
		return ""
	}
	return renderNet(&c.payload)
}

func renderNet(symbols *[Facets]string) string {
	width := 1
	for _, s := range symbols {
		if n := utf8.RuneCountInString(s); n > width {
			width = n
		}
	}
	cell := func(b *strings.Builder, s string) {
		b.WriteString(s)
		b.WriteString(strings.Repeat(" ", width-utf8.RuneCountInString(s)+1))
	}
	indent := strings.Repeat(" ", 3*(width+1))

	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			cell(&b, symbols[facet(idxU, row*3+col)])
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for face := idxL; face <= idxB; face++ {
			for col := 0; col < 3; col++ {
				cell(&b, symbols[facet(face, row*3+col)])
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString(indent)
		for col := 0; col < 3; col++ {
			cell(&b, symbols[facet(idxD, row*3+col)])
		}
		b.WriteString("\n")
	}

	return b.String()
}
