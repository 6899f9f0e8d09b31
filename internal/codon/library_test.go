package codon

import (
	"errors"
	"math/big"
	"reflect"
	"testing"
)

func Test_Library_diversity(t *testing.T) {
	lib := NewLibrary("scan")
	lib.AddPosition("", "NNK")
	lib.AddPosition("", "NNK")

	d, err := lib.Diversity()
	if err != nil {
		t.Fatal(err)
	}
	if d.Cmp(big.NewInt(32768)) != 0 {
		t.Errorf("Diversity() = %v, want 32768 (32^3)", d)
	}
	if got := FormatDiversity(d); got != "3.28e+04" {
		t.Errorf("FormatDiversity() = %q, want 3.28e+04", got)
	}
}

// the product must stay exact well past float64 integer precision
func Test_Library_diversityLarge(t *testing.T) {
	lib := NewLibrary("big")
	for i := 0; i < 11; i++ {
		lib.AddPosition("", "NNN")
	}

	d, err := lib.Diversity()
	if err != nil {
		t.Fatal(err)
	}

	want := new(big.Int).Exp(big.NewInt(64), big.NewInt(12), nil) // 64^12 = 2^72
	if d.Cmp(want) != 0 {
		t.Errorf("Diversity() = %v, want %v", d, want)
	}
	if got := FormatDiversity(d); got != "4.72e+21" {
		t.Errorf("FormatDiversity() = %q, want 4.72e+21", got)
	}
}

func Test_FormatDiversity(t *testing.T) {
	type args struct {
		n int64
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{"small exact", args{32}, "32"},
		{"under threshold", args{999}, "999"},
		{"at threshold", args{1000}, "1.00e+03"},
		{"rounds up", args{32768}, "3.28e+04"},
		{"rounds to next magnitude", args{999900}, "1.00e+06"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDiversity(big.NewInt(tt.args.n)); got != tt.want {
				t.Errorf("FormatDiversity() = %q, want %q", got, tt.want)
			}
		})
	}
}

func Test_Library_removeLastPosition(t *testing.T) {
	lib := NewLibrary("one")
	id := lib.Positions()[0].ID

	if err := lib.RemovePosition(id); !errors.Is(err, ErrCannotRemoveLastPosition) {
		t.Errorf("error = %v, want ErrCannotRemoveLastPosition", err)
	}

	// the library must be unchanged
	positions := lib.Positions()
	if len(positions) != 1 || positions[0].ID != id {
		t.Errorf("positions changed after a rejected removal: %v", positions)
	}
}

func Test_Library_removePosition(t *testing.T) {
	lib := NewLibrary("two")
	p := lib.AddPosition("second", "NDT")

	if err := lib.RemovePosition(p.ID); err != nil {
		t.Fatal(err)
	}
	if got := lib.Positions(); len(got) != 1 {
		t.Errorf("positions = %v, want the original one", got)
	}

	if err := lib.RemovePosition(999); err == nil {
		t.Error("expected an error for an unknown position id")
	}
}

// a failed recalculation must not clobber previously committed results
func Test_Library_recalculateAtomicity(t *testing.T) {
	lib := NewLibrary("atomic")

	first, err := lib.Recalculate()
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != 1 {
		t.Fatalf("results = %d, want 1", len(first))
	}

	p := lib.AddPosition("bad", "ZZZ")
	if _, err := lib.Recalculate(); err == nil {
		t.Fatal("expected an error for an invalid position")
	}

	if !reflect.DeepEqual(lib.Results(), first) {
		t.Error("a failed recalculation replaced the previous results")
	}

	// fixing the position commits a full new result set
	if err := lib.UpdatePosition(p.ID, "NDT"); err != nil {
		t.Fatal(err)
	}
	second, err := lib.Recalculate()
	if err != nil {
		t.Fatal(err)
	}
	if len(second) != 2 {
		t.Errorf("results = %d, want 2", len(second))
	}
	if !reflect.DeepEqual(lib.Results(), second) {
		t.Error("committed results don't match the returned set")
	}
}

func Test_Library_positionsWithStop(t *testing.T) {
	lib := NewLibrary("stops") // NNK carries TAG
	clean := lib.AddPosition("clean", "NDT")

	flagged, err := lib.PositionsWithStop()
	if err != nil {
		t.Fatal(err)
	}
	if len(flagged) != 1 || flagged[0].Codon != "NNK" {
		t.Errorf("flagged = %v, want just the NNK position", flagged)
	}
	for _, p := range flagged {
		if p.ID == clean.ID {
			t.Errorf("NDT position incorrectly flagged for stop codons")
		}
	}
}

func Test_Library_record(t *testing.T) {
	lib := NewLibrary("persisted")
	lib.AddPosition("site 42", "NDT")

	rec := lib.Record()
	restored, err := FromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(restored.Positions(), lib.Positions()) {
		t.Errorf("restored positions = %v, want %v", restored.Positions(), lib.Positions())
	}

	// new ids continue past the restored ones
	p := restored.AddPosition("", "NNK")
	if p.ID != 3 {
		t.Errorf("next id = %d, want 3", p.ID)
	}

	if _, err := FromRecord(&LibraryRecord{Name: "empty"}); err == nil {
		t.Error("expected an error for a record without positions")
	}
}
