package codon

import (
	"fmt"
	"strings"
)

// TranslateSequence translates a frame-0 DNA sequence into one-letter
// amino-acid symbols, stop codons included as '*'. Input is
// case-insensitive and must be a multiple of three concrete bases.
func TranslateSequence(dna string) (string, error) {
	dna = strings.ToUpper(dna)
	if len(dna)%3 != 0 {
		return "", fmt.Errorf("sequence length %d is not a multiple of 3", len(dna))
	}

	var protein strings.Builder
	for i := 0; i < len(dna); i += 3 {
		c := dna[i : i+3]
		aa, ok := geneticCode[c]
		if !ok {
			return "", fmt.Errorf("invalid codon %q at position %d", c, i)
		}
		protein.WriteByte(aa)
	}
	return protein.String(), nil
}

var complement = map[byte]byte{'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G'}

// ReverseComplement returns the reverse complement of a DNA sequence.
// Characters without a complement pass through unchanged.
func ReverseComplement(seq string) string {
	seq = strings.ToUpper(seq)
	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b := seq[len(seq)-1-i]
		if c, ok := complement[b]; ok {
			rc[i] = c
		} else {
			rc[i] = b
		}
	}
	return string(rc)
}
