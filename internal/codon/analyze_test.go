package codon

import (
	"reflect"
	"testing"
)

func Test_Analyze_NNK(t *testing.T) {
	a, err := Analyze("NNK")
	if err != nil {
		t.Fatal(err)
	}

	if a.TotalCodons != 32 {
		t.Errorf("TotalCodons = %d, want 32", a.TotalCodons)
	}
	if len(a.AminoAcids) != 21 {
		t.Errorf("distinct symbols = %d, want 21 (20 amino acids + stop)", len(a.AminoAcids))
	}
	if !a.HasStop {
		t.Error("NNK should contain a stop codon")
	}
	if a.StopFrequency != 3.125 {
		t.Errorf("StopFrequency = %v, want 3.125", a.StopFrequency)
	}

	// counts must sum to the expansion size
	sum := 0
	for _, stat := range a.AminoAcids {
		sum += stat.Count
	}
	if sum != 32 {
		t.Errorf("counts sum to %d, want 32", sum)
	}

	// R, S and L each have 3 codons in NNK; ties keep the order in which
	// the expansion first produced them: R (AGG), S (AGT), L (CTG)
	want := []string{"R", "S", "L"}
	var got []string
	for _, stat := range a.AminoAcids[:3] {
		if stat.Count != 3 {
			t.Errorf("top count = %d, want 3", stat.Count)
		}
		got = append(got, stat.Symbol)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("top rows = %v, want %v (frequency ties keep encounter order)", got, want)
	}
}

func Test_Analyze_NNN(t *testing.T) {
	a, err := Analyze("NNN")
	if err != nil {
		t.Fatal(err)
	}

	if a.TotalCodons != 64 {
		t.Errorf("TotalCodons = %d, want 64", a.TotalCodons)
	}
	if !a.HasStop {
		t.Error("NNN should contain stop codons")
	}
	if a.StopFrequency != 3.0/64*100 {
		t.Errorf("StopFrequency = %v, want %v", a.StopFrequency, 3.0/64*100)
	}
}

func Test_Analyze_exactCodon(t *testing.T) {
	a, err := Analyze("GCA")
	if err != nil {
		t.Fatal(err)
	}

	want := []AminoAcidStat{{Symbol: "A", Count: 1, Frequency: 100, Property: "nonpolar"}}
	if !reflect.DeepEqual(a.AminoAcids, want) {
		t.Errorf("AminoAcids = %v, want %v", a.AminoAcids, want)
	}
	if a.HasStop || a.StopFrequency != 0 {
		t.Errorf("GCA has no stop codon")
	}

	// only the one populated category appears
	wantProps := []PropertyStat{{Property: "nonpolar", Frequency: 100}}
	if !reflect.DeepEqual(a.Properties, wantProps) {
		t.Errorf("Properties = %v, want %v", a.Properties, wantProps)
	}
}

func Test_Analyze_propertyAggregation(t *testing.T) {
	// RGA expands to AGA (R), GGA (G): one positive, one nonpolar
	a, err := Analyze("RGA")
	if err != nil {
		t.Fatal(err)
	}

	want := []PropertyStat{
		{Property: "positive", Frequency: 50},
		{Property: "nonpolar", Frequency: 50},
	}
	if !reflect.DeepEqual(a.Properties, want) {
		t.Errorf("Properties = %v, want %v", a.Properties, want)
	}
}

func Test_Analyze_invalid(t *testing.T) {
	if _, err := Analyze("NZK"); err == nil {
		t.Error("expected an error for an invalid symbol")
	}
	if _, err := Analyze("NNKK"); err == nil {
		t.Error("expected an error for a 4-symbol codon")
	}
}
