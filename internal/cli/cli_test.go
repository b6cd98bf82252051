package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/SeamusWaldron/cubecipher"
	"github.com/SeamusWaldron/cubecipher/internal/render"
)

// resetFlags restores every flag to its default so tests do not leak state
// through the package-level flag variables.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append(args, "--config", filepath.Join(t.TempDir(), "missing.yaml")))

	err := rootCmd.Execute()
	return out.String(), err
}

func lines(s string) []string {
	return strings.Split(strings.TrimRight(s, "\n"), "\n")
}

func scrambledColors(t *testing.T, notation string) string {
	t.Helper()
	c := cubecipher.NewSolved()
	if err := c.ApplyNotation(notation); err != nil {
		t.Fatal(err)
	}
	return c.FlatColors()
}

func TestScrambleSeeded(t *testing.T) {
	first, err := execute(t, "", "scramble", "--seed", "7", "--moves", "25")
	if err != nil {
		t.Fatal(err)
	}
	second, err := execute(t, "", "scramble", "--seed", "7", "--moves", "25")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed gave different scrambles:\n%s\n%s", first, second)
	}

	out := lines(first)
	if len(out) != 2 {
		t.Fatalf("got %d lines, want 2", len(out))
	}
	seq, err := cubecipher.ParseSequence(out[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) != 25 {
		t.Errorf("scramble has %d moves, want 25", len(seq))
	}
	c := cubecipher.NewSolved()
	c.ApplySequence(seq)
	if c.FlatColors() != out[1] {
		t.Errorf("state line %q does not match the scramble", out[1])
	}
}

func TestScrambleUsesConfiguredRange(t *testing.T) {
	out, err := execute(t, "", "scramble", "--seed", "3")
	if err != nil {
		t.Fatal(err)
	}
	seq, err := cubecipher.ParseSequence(lines(out)[0])
	if err != nil {
		t.Fatal(err)
	}
	if len(seq) < 20 || len(seq) > 30 {
		t.Errorf("scramble has %d moves, want 20 to 30", len(seq))
	}
}

func TestSolvePlain(t *testing.T) {
	colors := scrambledColors(t, "R U2 F' L D2 B R' U")
	out, err := execute(t, "", "solve", "--plain", colors)
	if err != nil {
		t.Fatal(err)
	}

	got := lines(out)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2: %q", len(got), out)
	}
	moves, err := cubecipher.ParseSequence(got[0])
	if err != nil {
		t.Fatal(err)
	}
	c, err := cubecipher.New(colors)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplySequence(moves)
	if !c.IsSolved() {
		t.Error("printed solution does not solve the cube")
	}
}

func TestSolveReportsErrors(t *testing.T) {
	if _, err := execute(t, "", "solve", "UUU"); !errors.Is(err, cubecipher.ErrInvalidLength) {
		t.Errorf("err = %v, want ErrInvalidLength", err)
	}

	flipped := []byte(cubecipher.NewSolved().FlatColors())
	flipped[7], flipped[13] = flipped[13], flipped[7]
	if _, err := execute(t, "", "solve", string(flipped)); !errors.Is(err, cubecipher.ErrUnsolvableState) {
		t.Errorf("err = %v, want ErrUnsolvableState", err)
	}
}

func TestSolveSaveAndHistory(t *testing.T) {
	db := filepath.Join(t.TempDir(), "history.db")
	colors := scrambledColors(t, "F R U R' U' F'")

	if _, err := execute(t, "", "solve", "--save", "--notes", "sunday", "--db", db, colors); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "history", "list", "--db", db)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "solved") || !strings.Contains(out, "sunday") {
		t.Errorf("history list missing the solve:\n%s", out)
	}

	out, err = execute(t, "", "history", "show", "--last", "--db", db)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Solve Details") || !strings.Contains(out, colors) {
		t.Errorf("history show:\n%s", out)
	}

	out, err = execute(t, "", "history", "stats", "--db", db)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Total solves: 1") {
		t.Errorf("history stats:\n%s", out)
	}

	if _, err := execute(t, "", "history", "delete", "nope", "--db", db); err == nil {
		t.Error("deleting an unknown solve should fail")
	}
}

func TestReports(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "history.db")
	for _, notation := range []string{"R U R' U'", "F2 D L'"} {
		if _, err := execute(t, "", "solve", "--save", "--db", db, scrambledColors(t, notation)); err != nil {
			t.Fatal(err)
		}
	}

	out := filepath.Join(dir, "report")
	if _, err := execute(t, "", "report", "solve", "last", "--output", out, "--db", db); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"solve_summary.json", "repetition_report.json", "ngram_report.json", "moves.txt"} {
		if _, err := os.Stat(filepath.Join(out, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	data, err := os.ReadFile(filepath.Join(out, "solve_summary.json"))
	if err != nil {
		t.Fatal(err)
	}
	var report SolveReport
	if err := json.Unmarshal(data, &report); err != nil {
		t.Fatal(err)
	}
	if report.Colors != scrambledColors(t, "F2 D L'") {
		t.Errorf("report is for %q, want the last solve", report.Colors)
	}
	if n := len(report.Phases); n == 0 || report.Phases[n-1].PhaseKey != "solved" {
		t.Errorf("phases = %+v", report.Phases)
	}
	entries, err := os.ReadDir(filepath.Join(out, "phase_moves"))
	if err != nil || len(entries) != len(report.Phases) {
		t.Errorf("phase_moves has %d files, want %d (%v)", len(entries), len(report.Phases), err)
	}

	trendDir := filepath.Join(dir, "trend")
	text, err := execute(t, "", "report", "trend", "--output", trendDir, "--db", db)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(text, "Solves: 2 (0 unsolvable)") {
		t.Errorf("trend output:\n%s", text)
	}
	data, err = os.ReadFile(filepath.Join(trendDir, "trend_report.json"))
	if err != nil {
		t.Fatal(err)
	}
	var trend TrendReport
	if err := json.Unmarshal(data, &trend); err != nil {
		t.Fatal(err)
	}
	if len(trend.MoveCounts) != 2 || trend.MinMoves > trend.MaxMoves {
		t.Errorf("trend = %+v", trend)
	}
}

func TestEncryptDecrypt(t *testing.T) {
	const plain = "attack at dawn"

	ct, err := execute(t, "", "encrypt", "--key", "R U F' L2", plain)
	if err != nil {
		t.Fatal(err)
	}
	ct = strings.TrimSuffix(ct, "\n")
	if ct == plain {
		t.Fatal("ciphertext equals plaintext")
	}

	// Ciphertext on stdin.
	out, err := execute(t, ct+"\n", "decrypt", "--key", "R U F' L2")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSuffix(out, "\n"); got != plain {
		t.Errorf("decrypt = %q, want %q", got, plain)
	}
}

func TestEncryptKeyFlags(t *testing.T) {
	if _, err := execute(t, "", "encrypt", "hello"); err == nil {
		t.Error("encrypt without a key should fail")
	}
	if _, err := execute(t, "", "encrypt", "--key", "R", "--state", "x", "hello"); err == nil {
		t.Error("encrypt with two keys should fail")
	}
	if _, err := execute(t, "", "encrypt", "--key", "R Q", "hello"); !errors.Is(err, cubecipher.ErrUnknownMove) {
		t.Errorf("err = %v, want ErrUnknownMove", err)
	}
	if _, err := execute(t, "", "encrypt", "--key", "R", "--pad", "ab", "hello"); err == nil {
		t.Error("a multi-rune pad should fail")
	}
}

func TestRevealWithRotation(t *testing.T) {
	colors := "BBWOGYWGRYGGRYGYROGWRGRRWWOYORBYRBOYOWRWGOBBYGOBBBWOYW"
	data := "{LOLS_SLWCS_A?REBLE}RAOPGNKKØGFEP__URSAAUIUO_PLLDOEXB_"

	out, err := execute(t, "", "reveal", "--rotate", "z", colors, data)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "PAPA{FLAGS_ARE_COOL}") {
		t.Errorf("reveal = %q", out)
	}
}

func TestKeyReproducesState(t *testing.T) {
	colors := scrambledColors(t, "B' D2 L U F2 R'")
	out, err := execute(t, "", "key", colors)
	if err != nil {
		t.Fatal(err)
	}
	key, err := cubecipher.ParseSequence(strings.TrimSpace(out))
	if err != nil {
		t.Fatal(err)
	}
	c := cubecipher.NewSolved()
	c.ApplySequence(key)
	if c.FlatColors() != colors {
		t.Errorf("key gives %q, want %q", c.FlatColors(), colors)
	}
}

func TestRetargetCommand(t *testing.T) {
	base := scrambledColors(t, "R U")
	target := scrambledColors(t, "F' D2")
	out, err := execute(t, "", "retarget", base, target)
	if err != nil {
		t.Fatal(err)
	}
	moves, err := cubecipher.ParseSequence(lines(out)[0])
	if err != nil {
		t.Fatal(err)
	}
	c, _ := cubecipher.New(base)
	c.ApplySequence(moves)
	if c.FlatColors() != target {
		t.Errorf("retargeted to %q, want %q", c.FlatColors(), target)
	}
}

func TestApplyCommand(t *testing.T) {
	out, err := execute(t, "", "apply", "--payload", "ABCDEFGHIJKLMNOPQRSTUVWXYZABCDEFGHIJKLMNOPQRSTUVWXYZAB", "R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	got := lines(out)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if want := scrambledColors(t, "R U R' U'"); got[0] != want {
		t.Errorf("colors = %q, want %q", got[0], want)
	}

	out, err = execute(t, "", "apply", "--inverse", "--colors", got[0], "--payload", got[1], "R U R' U'")
	if err != nil {
		t.Fatal(err)
	}
	back := lines(out)
	if back[0] != cubecipher.NewSolved().FlatColors() {
		t.Errorf("inverse colors = %q", back[0])
	}
	if back[1] != "ABCDEFGHIJKLMNOPQRSTUVWXYZABCDEFGHIJKLMNOPQRSTUVWXYZAB" {
		t.Errorf("inverse payload = %q", back[1])
	}
}

// faceMajorTokens labels every facet with its face and index, face by face.
func faceMajorTokens() (colors string, tokens []string) {
	for _, f := range "ULFRBD" {
		colors += strings.Repeat(string(f), 9)
		for i := 0; i < 9; i++ {
			tokens = append(tokens, fmt.Sprintf("%c%d", f, i))
		}
	}
	return colors, tokens
}

func TestBuildCubeFaceMajorDelimited(t *testing.T) {
	colors, tokens := faceMajorTokens()
	c, err := buildCube(colors, strings.Join(tokens, ","), ",", true)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < cubecipher.Facets; i++ {
		color, payload := c.Facet(i)
		if !strings.HasPrefix(payload, color) {
			t.Errorf("facet %d: color %q carries payload %q", i, color, payload)
		}
	}
	if got := payloadText(c, ",", true); got != strings.Join(tokens, ",") {
		t.Errorf("payloadText() = %q", got)
	}

	if _, err := buildCube(colors, "a,b", ",", true); !errors.Is(err, cubecipher.ErrInvalidLength) {
		t.Errorf("err = %v, want ErrInvalidLength", err)
	}
}

func TestApplyFaceMajorDelimited(t *testing.T) {
	colors, tokens := faceMajorTokens()
	payload := strings.Join(tokens, ",")
	out, err := execute(t, "", "apply", "--face-major", "--delimiter", ",",
		"--colors", colors, "--payload", payload, "R U")
	if err != nil {
		t.Fatal(err)
	}
	got := lines(out)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}

	want, err := buildCube(colors, payload, ",", true)
	if err != nil {
		t.Fatal(err)
	}
	want.ApplyNotation("R U")
	if got[0] != want.FaceMajorColors() {
		t.Errorf("colors = %q, want %q", got[0], want.FaceMajorColors())
	}
	if w := strings.Join(want.FaceMajorPayloadTokens(), ","); got[1] != w {
		t.Errorf("payload = %q, want %q", got[1], w)
	}

	out, err = execute(t, "", "apply", "--inverse", "--face-major", "--delimiter", ",",
		"--colors", got[0], "--payload", got[1], "R U")
	if err != nil {
		t.Fatal(err)
	}
	back := lines(out)
	if back[0] != colors || back[1] != payload {
		t.Errorf("inverse gave %q / %q", back[0], back[1])
	}
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestReplayModel(t *testing.T) {
	start := cubecipher.NewSolved()
	start.ApplyNotation("R U R' U' F")
	moves, err := cubecipher.Solve(start.Clone())
	if err != nil {
		t.Fatal(err)
	}

	m := newReplayModel(start, moves, render.New(nil), 1, false)
	for range moves {
		m.Update(keyPress("n"))
	}
	if !m.tracker.IsSolved() {
		t.Fatal("stepping through the solution should solve the cube")
	}
	if len(m.reached) == 0 {
		t.Error("no phases reported")
	}
	if !strings.Contains(m.View(), "SOLVED!") {
		t.Error("view should show the solved state")
	}

	// Stepping past the end is a no-op.
	m.Update(keyPress("n"))
	if m.pos() != len(moves) {
		t.Errorf("pos = %d, want %d", m.pos(), len(moves))
	}

	m.Update(keyPress("b"))
	if m.pos() != len(moves)-1 {
		t.Errorf("after back pos = %d, want %d", m.pos(), len(moves)-1)
	}

	m.Update(keyPress("r"))
	if m.pos() != 0 || !m.tracker.Cube().Equal(start) {
		t.Error("reset should return to the start")
	}
}

func TestReplayModelAutoplay(t *testing.T) {
	moves := cubecipher.MustParseSequence("R U")
	m := newReplayModel(cubecipher.NewSolved(), moves, render.New(nil), 2, true)
	if m.Init() == nil {
		t.Fatal("autoplay should schedule a tick")
	}

	_, cmd := m.Update(replayTickMsg{})
	if m.pos() != 1 || cmd == nil {
		t.Fatalf("after one tick pos = %d, next tick %v", m.pos(), cmd != nil)
	}
	_, cmd = m.Update(replayTickMsg{})
	if m.pos() != 2 || cmd != nil || m.playing {
		t.Errorf("playback should stop at the end")
	}
}
