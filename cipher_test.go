package cubecipher

import (
	"errors"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestCipherRoundTrip(t *testing.T) {
	key := MustParseSequence("R U F' L2 D B' M y")
	c := Cipher{Key: key}

	tests := []struct {
		name  string
		plain string
	}{
		{"one block", alphabetPayload},
		{"short", "attack at dawn"},
		{"multi block", strings.Repeat("the quick brown fox jumps over the lazy dog ", 5)},
		{"runes", "ÆØÅ 白黄 ünïcödé"},
		{"empty", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := c.Encrypt(tt.plain)
			if n := utf8.RuneCountInString(ct); n == 0 || n%Facets != 0 {
				t.Fatalf("ciphertext has %d runes, want a positive multiple of %d", n, Facets)
			}
			if got := c.Decrypt(ct); got != tt.plain {
				t.Errorf("Decrypt(Encrypt(%q)) = %q", tt.plain, got)
			}
		})
	}
}

func TestCipherScrambles(t *testing.T) {
	c := Cipher{Key: MustParseSequence("R U")}
	if ct := c.Encrypt(alphabetPayload); ct == alphabetPayload {
		t.Error("ciphertext should differ from plaintext")
	}

	identity := Cipher{Key: MustParseSequence("R R'")}
	if ct := identity.Encrypt(alphabetPayload); ct != alphabetPayload {
		t.Errorf("identity key changed the text: %q", ct)
	}
}

func TestCipherPadding(t *testing.T) {
	c := Cipher{Key: MustParseSequence("F2"), Pad: '.'}
	ct := c.Encrypt("hello")
	if got := strings.Count(ct, "."); got != Facets-5 {
		t.Errorf("got %d pad runes, want %d", got, Facets-5)
	}
	if got := c.Decrypt(ct); got != "hello" {
		t.Errorf("Decrypt() = %q, want %q", got, "hello")
	}

	// The pad rune is stripped from the end of the message too.
	d := Cipher{Key: MustParseSequence("F2")}
	if got := d.Decrypt(d.Encrypt("tail__")); got != "tail" {
		t.Errorf("Decrypt() = %q, want %q", got, "tail")
	}
}

func TestKeyFromStateAndReveal(t *testing.T) {
	scrambled := NewSolved()
	scrambled.ApplyNotation("R U2 F' L D2 B R' U L' F2")
	colors := scrambled.FlatColors()

	key, err := KeyFromState(colors)
	if err != nil {
		t.Fatal(err)
	}
	ct := Cipher{Key: key}.Encrypt(alphabetPayload)

	plain, err := Reveal(colors, ct)
	if err != nil {
		t.Fatal(err)
	}
	if plain != alphabetPayload {
		t.Errorf("Reveal() = %q, want %q", plain, alphabetPayload)
	}

	// The key reproduces the scrambled colors from a solved cube.
	c := NewSolved()
	c.ApplySequence(key)
	if c.FlatColors() != colors {
		t.Error("applying the key to a solved cube should give the scrambled colors")
	}
}

func TestRevealErrors(t *testing.T) {
	if _, err := Reveal(solvedNet, "short"); !errors.Is(err, ErrInvalidLength) {
		t.Errorf("err = %v, want ErrInvalidLength", err)
	}

	flipped := []byte(solvedNet)
	a, b := facet(idxU, 7), facet(idxF, 1)
	flipped[a], flipped[b] = flipped[b], flipped[a]
	if _, err := Reveal(string(flipped), alphabetPayload); !errors.Is(err, ErrUnsolvableState) {
		t.Errorf("err = %v, want ErrUnsolvableState", err)
	}
	if _, err := KeyFromState(string(flipped)); !errors.Is(err, ErrUnsolvableState) {
		t.Errorf("err = %v, want ErrUnsolvableState", err)
	}
}

func TestRetarget(t *testing.T) {
	base := NewSolved()
	base.ApplyNotation("R U F' L2")
	target := NewSolved()
	target.ApplyNotation("D' B2 R U' F")

	moves, err := Retarget(base.FlatColors(), target.FlatColors())
	if err != nil {
		t.Fatal(err)
	}
	base.ApplySequence(moves)
	if base.FlatColors() != target.FlatColors() {
		t.Errorf("retargeted cube = %q, want %q", base.FlatColors(), target.FlatColors())
	}
}

func TestRevealHiddenFlag(t *testing.T) {
	colors := "BBWOGYWGRYGGRYGYROGWRGRRWWOYORBYRBOYOWRWGOBBYGOBBBWOYW"
	data := "{LOLS_SLWCS_A?REBLE}RAOPGNKKØGFEP__URSAAUIUO_PLLDOEXB_"

	c, err := New(colors, WithPayload(data))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Solve(c); err != nil {
		t.Fatal(err)
	}
	// The message was laid out with the cube held a quarter turn about F
	// from the orientation its centers give.
	c.ApplyMove(Move{FaceZ, CW})
	if got := c.FlatPayload(); !strings.Contains(got, "PAPA{FLAGS_ARE_COOL}") {
		t.Errorf("payload %q does not spell the flag", got)
	}
}
