package codon

import "strings"

// Expand returns every concrete codon represented by a three symbol
// degenerate codon: the ordered Cartesian product of the three positions'
// base sets, last position iterating fastest. Input is case-insensitive.
func Expand(code string) ([]string, error) {
	code = strings.ToUpper(code)
	if len(code) != 3 {
		return nil, &InvalidCodonLengthError{Length: len(code)}
	}

	var sets [3]string
	for i := 0; i < 3; i++ {
		bases, err := BasesOf(code[i])
		if err != nil {
			return nil, err
		}
		sets[i] = bases
	}

	codons := make([]string, 0, len(sets[0])*len(sets[1])*len(sets[2]))
	for _, b1 := range []byte(sets[0]) {
		for _, b2 := range []byte(sets[1]) {
			for _, b3 := range []byte(sets[2]) {
				codons = append(codons, string([]byte{b1, b2, b3}))
			}
		}
	}

	return codons, nil
}

// ExpansionSize returns the number of concrete codons a degenerate codon
// represents without materializing the expansion.
func ExpansionSize(code string) (int, error) {
	code = strings.ToUpper(code)
	if len(code) != 3 {
		return 0, &InvalidCodonLengthError{Length: len(code)}
	}

	size := 1
	for i := 0; i < 3; i++ {
		bases, err := BasesOf(code[i])
		if err != nil {
			return 0, err
		}
		size *= len(bases)
	}

	return size, nil
}
