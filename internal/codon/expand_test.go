package codon

import (
	"errors"
	"testing"
)

func Test_Expand(t *testing.T) {
	type args struct {
		code string
	}
	tests := []struct {
		name      string
		args      args
		wantLen   int
		wantFirst string
		wantLast  string
		wantErr   bool
	}{
		{"exact codon", args{"ATG"}, 1, "ATG", "ATG", false},
		{"NNK is 32", args{"NNK"}, 32, "AAG", "TTT", false},
		{"NNN is 64", args{"NNN"}, 64, "AAA", "TTT", false},
		{"lowercase", args{"nnk"}, 32, "AAG", "TTT", false},
		{"too short", args{"NN"}, 0, "", "", true},
		{"too long", args{"NNKN"}, 0, "", "", true},
		{"bad symbol", args{"NZK"}, 0, "", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Expand(tt.args.code)
			if (err != nil) != tt.wantErr {
				t.Errorf("Expand() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if len(got) != tt.wantLen {
				t.Errorf("Expand() returned %d codons, want %d", len(got), tt.wantLen)
			}
			if got[0] != tt.wantFirst {
				t.Errorf("Expand()[0] = %v, want %v", got[0], tt.wantFirst)
			}
			if got[len(got)-1] != tt.wantLast {
				t.Errorf("Expand() last = %v, want %v", got[len(got)-1], tt.wantLast)
			}
		})
	}
}

// expansion size must equal the product of the base-set sizes for every
// valid degenerate codon
func Test_Expand_sizeProduct(t *testing.T) {
	for c1 := range iupac {
		for c2 := range iupac {
			code := string([]byte{c1, c2, 'K'})
			want := len(iupac[c1]) * len(iupac[c2]) * 2

			codons, err := Expand(code)
			if err != nil {
				t.Fatal(err)
			}
			if len(codons) != want {
				t.Errorf("Expand(%s) returned %d codons, want %d", code, len(codons), want)
			}
			if len(codons) < 1 || len(codons) > 64 {
				t.Errorf("Expand(%s) size %d outside [1,64]", code, len(codons))
			}

			size, err := ExpansionSize(code)
			if err != nil {
				t.Fatal(err)
			}
			if size != want {
				t.Errorf("ExpansionSize(%s) = %d, want %d", code, size, want)
			}
		}
	}
}

// NNK must contain exactly one stop codon, TAG; NNN all three
func Test_Expand_stopCodons(t *testing.T) {
	type args struct {
		code string
	}
	tests := []struct {
		name      string
		args      args
		wantStops []string
	}{
		{"NNK has TAG only", args{"NNK"}, []string{"TAG"}},
		{"NNS has TAG only", args{"NNS"}, []string{"TAG"}},
		{"NNN has all three", args{"NNN"}, []string{"TAA", "TAG", "TGA"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codons, err := Expand(tt.args.code)
			if err != nil {
				t.Fatal(err)
			}
			var stops []string
			for _, c := range codons {
				if TranslateCodon(c) == Stop {
					stops = append(stops, c)
				}
			}
			if len(stops) != len(tt.wantStops) {
				t.Fatalf("Expand(%s) stops = %v, want %v", tt.args.code, stops, tt.wantStops)
			}
			for i, s := range stops {
				if s != tt.wantStops[i] {
					t.Errorf("Expand(%s) stops = %v, want %v", tt.args.code, stops, tt.wantStops)
				}
			}
		})
	}
}

func Test_Expand_errorKinds(t *testing.T) {
	_, err := Expand("NN")
	var lengthErr *InvalidCodonLengthError
	if !errors.As(err, &lengthErr) || lengthErr.Length != 2 {
		t.Errorf("Expand(NN) error = %v, want InvalidCodonLengthError{2}", err)
	}

	_, err = Expand("NQK")
	var codeErr *InvalidCodeError
	if !errors.As(err, &codeErr) || codeErr.Code != 'Q' {
		t.Errorf("Expand(NQK) error = %v, want InvalidCodeError{Q}", err)
	}
}
