package codon

import (
	"reflect"
	"testing"
)

func Test_ExportRows(t *testing.T) {
	a, err := Analyze("RGA") // AGA (R), GGA (G)
	if err != nil {
		t.Fatal(err)
	}

	got := ExportRows([]string{"site 1"}, []*Analysis{a})
	want := [][]string{
		{"site 1", "R", "1", "50.00", "positive"},
		{"site 1", "G", "1", "50.00", "nonpolar"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ExportRows() = %v, want %v", got, want)
	}

	if len(ExportHeader) != len(got[0]) {
		t.Errorf("header has %d columns, rows have %d", len(ExportHeader), len(got[0]))
	}
}
