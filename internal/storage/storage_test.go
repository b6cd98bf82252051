package storage

import (
	"path/filepath"
	"testing"

	"github.com/SeamusWaldron/cubecipher"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func solvedRun(t *testing.T, scramble string) SolveInput {
	t.Helper()
	c := cubecipher.NewSolved()
	if err := c.ApplyNotation(scramble); err != nil {
		t.Fatal(err)
	}
	colors := c.FlatColors()
	s := cubecipher.NewSolver(c)
	moves, err := s.Solve()
	if err != nil {
		t.Fatal(err)
	}
	return SolveInput{Colors: colors, Moves: moves, Phases: s.Phases(), Source: "test"}
}

func TestOpenMigrates(t *testing.T) {
	db := openTestDB(t)
	v, err := db.CurrentVersion()
	if err != nil {
		t.Fatal(err)
	}
	if v != len(migrations) {
		t.Errorf("version = %d, want %d", v, len(migrations))
	}
	if err := db.MigrateUp(); err != nil {
		t.Errorf("second MigrateUp: %v", err)
	}

	defs, err := NewPhaseRepository(db).GetAllPhaseDefs()
	if err != nil {
		t.Fatal(err)
	}
	if len(defs) != 7 || defs[0].PhaseKey != "cross" || defs[6].PhaseKey != "solved" {
		t.Errorf("phase defs = %+v", defs)
	}
}

func TestSaveAndGet(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	in := solvedRun(t, "R U F' L2 D")
	in.Payload = "secret"
	in.Notes = "first"

	id, err := solves.Save(in)
	if err != nil {
		t.Fatal(err)
	}

	got, err := solves.Get(id)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil {
		t.Fatal("saved solve not found")
	}
	if got.Colors != in.Colors || got.Outcome != OutcomeSolved || got.MoveCount != len(in.Moves) {
		t.Errorf("got %+v", got)
	}
	if got.Payload == nil || *got.Payload != "secret" || got.Notes == nil || *got.Notes != "first" {
		t.Errorf("optional fields = %v %v", got.Payload, got.Notes)
	}
	if got.Error != nil {
		t.Errorf("error = %q, want none", *got.Error)
	}

	records, err := NewMoveRepository(db).GetBySolve(id)
	if err != nil {
		t.Fatal(err)
	}
	seq, err := ToSequence(records)
	if err != nil {
		t.Fatal(err)
	}
	if seq.String() != in.Moves.String() {
		t.Errorf("stored moves = %q, want %q", seq, in.Moves)
	}

	// The stored moves still solve the stored colors.
	c, err := cubecipher.New(got.Colors)
	if err != nil {
		t.Fatal(err)
	}
	c.ApplySequence(seq)
	if !c.IsSolved() {
		t.Error("stored solution does not solve the stored cube")
	}
}

func TestGetMissing(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)
	got, err := solves.Get("no-such-id")
	if err != nil || got != nil {
		t.Errorf("Get = %v, %v; want nil, nil", got, err)
	}
	last, err := solves.GetLast()
	if err != nil || last != nil {
		t.Errorf("GetLast = %v, %v; want nil, nil", last, err)
	}
}

func TestPhaseSegments(t *testing.T) {
	db := openTestDB(t)
	in := solvedRun(t, "F2 R' U B L' D2 R")
	id, err := NewSolveRepository(db).Save(in)
	if err != nil {
		t.Fatal(err)
	}

	segments, err := NewPhaseRepository(db).GetPhaseSegments(id)
	if err != nil {
		t.Fatal(err)
	}
	if len(segments) != len(in.Phases) {
		t.Fatalf("got %d segments, want %d", len(segments), len(in.Phases))
	}
	total := 0
	for i, s := range segments {
		if s.PhaseKey != in.Phases[i].Phase.String() {
			t.Errorf("segment %d is %s, want %s", i, s.PhaseKey, in.Phases[i].Phase)
		}
		total += s.MoveCount
	}
	if total != len(in.Moves) {
		t.Errorf("segments cover %d moves, want %d", total, len(in.Moves))
	}
	if PhaseDisplayName("first_layer") != "First Layer" {
		t.Errorf("PhaseDisplayName(first_layer) = %q", PhaseDisplayName("first_layer"))
	}
}

func TestListStatsAndDelete(t *testing.T) {
	db := openTestDB(t)
	solves := NewSolveRepository(db)

	first, err := solves.Save(solvedRun(t, "R U"))
	if err != nil {
		t.Fatal(err)
	}
	_, err = solves.Save(SolveInput{
		Colors: "bad",
		Err:    &cubecipher.UnsolvableError{Phase: cubecipher.PhaseScrambled, Reason: "corner piece mirrored"},
	})
	if err != nil {
		t.Fatal(err)
	}
	last, err := solves.Save(solvedRun(t, "F B'"))
	if err != nil {
		t.Fatal(err)
	}

	list, err := solves.List(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 3 || list[0].SolveID != last || list[2].SolveID != first {
		t.Errorf("list order wrong: %+v", list)
	}
	if list[1].Outcome != OutcomeUnsolvable || list[1].Error == nil {
		t.Errorf("unsolvable run stored as %+v", list[1])
	}

	st, err := solves.Stats()
	if err != nil {
		t.Fatal(err)
	}
	if st.Total != 3 || st.Solved != 2 || st.Unsolvable != 1 || st.AvgMoves <= 0 {
		t.Errorf("stats = %+v", st)
	}

	if err := solves.Delete(first); err != nil {
		t.Fatal(err)
	}
	if n, _ := NewMoveRepository(db).Count(first); n != 0 {
		t.Errorf("moves of a deleted solve should cascade, %d left", n)
	}
	if got, _ := solves.Get(first); got != nil {
		t.Error("deleted solve still found")
	}
}

func TestToSequenceRejectsUnknown(t *testing.T) {
	_, err := ToSequence([]MoveRecord{{Face: "Q", Turn: 1, Notation: "Q", MoveIndex: 4}})
	if err == nil {
		t.Error("expected an error for an unknown face")
	}
}

func TestMalformedCreatedAt(t *testing.T) {
	db := openTestDB(t)
	_, err := db.Exec(`
		INSERT INTO solves (solve_id, created_at, colors, outcome)
		VALUES ('broken', 'yesterday', 'x', 'solved')
	`)
	if err != nil {
		t.Fatal(err)
	}

	solves := NewSolveRepository(db)
	if s, err := solves.Get("broken"); err == nil {
		t.Errorf("Get() = %+v, want a parse error", s)
	}
	if _, err := solves.List(10); err == nil {
		t.Error("List() should fail on a malformed created_at")
	}
}
