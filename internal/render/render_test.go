package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubecipher"
)

func TestColorsLayout(t *testing.T) {
	r := New(nil)
	out := r.Colors(cubecipher.NewSolved())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9", len(lines))
	}

	// Cells are three columns wide for single-rune symbols.
	widths := []int{18, 18, 18, 36, 36, 36, 18, 18, 18}
	for i, line := range lines {
		if got := lipgloss.Width(line); got != widths[i] {
			t.Errorf("line %d is %d wide, want %d", i, got, widths[i])
		}
	}
	if !strings.Contains(lines[3], "L") || !strings.Contains(lines[3], "B") {
		t.Errorf("middle row should show every side face: %q", lines[3])
	}
}

func TestPayloadWidensCells(t *testing.T) {
	tokens := make([]string, cubecipher.Facets)
	for i := range tokens {
		tokens[i] = "ab"
	}
	tokens[10] = "wide"
	colors := cubecipher.NewSolved().Colors()
	c, err := cubecipher.NewFromSymbols(colors[:], tokens)
	if err != nil {
		t.Fatal(err)
	}

	out := New(map[string]string{"U": "1"}).Payload(c)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if got, want := lipgloss.Width(lines[3]), 12*6; got != want {
		t.Errorf("side row is %d wide, want %d", got, want)
	}
	if !strings.Contains(out, "wide") {
		t.Error("payload symbols should be drawn")
	}
}

func TestPayloadWithoutPayloadDrawsColors(t *testing.T) {
	r := New(nil)
	c := cubecipher.NewSolved()
	if r.Payload(c) != r.Colors(c) {
		t.Error("a cube without payload should draw its colors")
	}
}

func TestDescribe(t *testing.T) {
	tests := []struct {
		move cubecipher.Move
		want string
	}{
		{cubecipher.R, "right up"},
		{cubecipher.RPrime, "right down"},
		{cubecipher.L2, "left down x 2"},
		{cubecipher.UPrime, "top right"},
		{cubecipher.D, "bottom right"},
		{cubecipher.FPrime, "front anti-clockwise"},
		{cubecipher.B2, "back clockwise x 2"},
		{cubecipher.Move{Face: cubecipher.FaceY, Turn: cubecipher.CW}, "spin cube left"},
	}
	for _, tt := range tests {
		if got := Describe(tt.move); got != tt.want {
			t.Errorf("Describe(%s) = %q, want %q", tt.move, got, tt.want)
		}
	}

	seq := cubecipher.MustParseSequence("R U'")
	if got := DescribeSequence(seq); got != "right up, top right" {
		t.Errorf("DescribeSequence() = %q", got)
	}
}
