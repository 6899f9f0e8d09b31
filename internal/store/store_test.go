package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/polaires/Protein-engineering-tools-sub000/internal/codon"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "libraries.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func Test_Store_roundTrip(t *testing.T) {
	s := newTestStore(t)

	lib := codon.NewLibrary("scan1")
	lib.AddPosition("site 42", "NDT")
	if err := s.Save(lib.Record()); err != nil {
		t.Fatal(err)
	}

	rec, err := s.Load("scan1")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(rec, lib.Record()) {
		t.Errorf("Load() = %v, want %v", rec, lib.Record())
	}
}

// a second save replaces the library's snapshot instead of duplicating it
func Test_Store_saveReplaces(t *testing.T) {
	s := newTestStore(t)

	lib := codon.NewLibrary("scan1")
	if err := s.Save(lib.Record()); err != nil {
		t.Fatal(err)
	}

	lib.AddPosition("added", "NNS")
	if err := s.Save(lib.Record()); err != nil {
		t.Fatal(err)
	}

	rec, err := s.Load("scan1")
	if err != nil {
		t.Fatal(err)
	}
	if len(rec.Positions) != 2 {
		t.Errorf("positions = %d, want 2", len(rec.Positions))
	}

	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"scan1"}) {
		t.Errorf("List() = %v, want [scan1]", names)
	}
}

func Test_Store_list(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"zeta", "alpha"} {
		if err := s.Save(codon.NewLibrary(name).Record()); err != nil {
			t.Fatal(err)
		}
	}

	names, err := s.List()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(names, []string{"alpha", "zeta"}) {
		t.Errorf("List() = %v, want alphabetical [alpha zeta]", names)
	}
}

func Test_Store_delete(t *testing.T) {
	s := newTestStore(t)

	if err := s.Save(codon.NewLibrary("gone").Record()); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete("gone"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Load("gone"); err == nil {
		t.Error("expected an error loading a deleted library")
	}
	if err := s.Delete("gone"); err == nil {
		t.Error("expected an error deleting a missing library")
	}
}

func Test_Store_loadMissing(t *testing.T) {
	s := newTestStore(t)

	if _, err := s.Load("nope"); err == nil {
		t.Error("expected an error for a missing library")
	}
}
