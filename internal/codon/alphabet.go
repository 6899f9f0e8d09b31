// Package codon implements degenerate codon expansion, forward analysis
// of amino-acid distributions, and reverse design of degenerate codons
// covering a target amino-acid set, all over the standard genetic code.
package codon

// nucleotides is the fixed base ordering used everywhere a tie-break
// depends on iteration order (expansion, singleton selection).
const nucleotides = "ACGT"

// aminoAcids is the 20 standard one-letter symbols in alphabetical order.
const aminoAcids = "ACDEFGHIKLMNPQRSTVWY"

// Stop is the translation-termination symbol.
const Stop = byte('*')

// iupac maps each of the 15 IUPAC symbols to its nucleotide set,
// bases always in A < C < G < T order.
var iupac = map[byte]string{
	'A': "A",
	'C': "C",
	'G': "G",
	'T': "T",
	'M': "AC",
	'R': "AG",
	'W': "AT",
	'S': "CG",
	'Y': "CT",
	'K': "GT",
	'V': "ACG",
	'H': "ACT",
	'D': "AGT",
	'B': "CGT",
	'N': "ACGT",
}

// geneticCode is the standard genetic code, total over all 64 codons.
var geneticCode = map[string]byte{
	"TTT": 'F', "TTC": 'F', "TTA": 'L', "TTG": 'L',
	"TCT": 'S', "TCC": 'S', "TCA": 'S', "TCG": 'S',
	"TAT": 'Y', "TAC": 'Y', "TAA": '*', "TAG": '*',
	"TGT": 'C', "TGC": 'C', "TGA": '*', "TGG": 'W',
	"CTT": 'L', "CTC": 'L', "CTA": 'L', "CTG": 'L',
	"CCT": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"CAT": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"CGT": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"ATT": 'I', "ATC": 'I', "ATA": 'I', "ATG": 'M',
	"ACT": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"AAT": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"AGT": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GTT": 'V', "GTC": 'V', "GTA": 'V', "GTG": 'V',
	"GCT": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',
	"GAT": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',
	"GGT": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// aaCategory assigns each standard amino acid to exactly one
// physicochemical category. The stop symbol has no category.
var aaCategory = map[byte]string{
	'R': "positive", 'H': "positive", 'K': "positive",
	'D': "negative", 'E': "negative",
	'S': "polar", 'T': "polar", 'C': "polar", 'Y': "polar", 'N': "polar", 'Q': "polar",
	'A': "nonpolar", 'V': "nonpolar", 'L': "nonpolar", 'I': "nonpolar", 'P': "nonpolar",
	'F': "nonpolar", 'M': "nonpolar", 'W': "nonpolar", 'G': "nonpolar",
}

// aaToCodons is the precomputed inverse of geneticCode. Codons are listed
// in A < C < G < T order by position so lookups are deterministic.
var aaToCodons = map[byte][]string{}

// codeOfBases is the precomputed inverse of iupac, keyed by the sorted base set.
var codeOfBases = map[string]byte{}

// categoryMembers lists each category's amino acids in alphabetical order.
var categoryMembers = map[string][]byte{}

func init() {
	for _, b1 := range []byte(nucleotides) {
		for _, b2 := range []byte(nucleotides) {
			for _, b3 := range []byte(nucleotides) {
				c := string([]byte{b1, b2, b3})
				aa := geneticCode[c]
				aaToCodons[aa] = append(aaToCodons[aa], c)
			}
		}
	}

	for code, bases := range iupac {
		codeOfBases[bases] = code
	}

	for _, aa := range []byte(aminoAcids) {
		cat := aaCategory[aa]
		categoryMembers[cat] = append(categoryMembers[cat], aa)
	}
}

// BasesOf returns the nucleotide set of an IUPAC symbol, in A < C < G < T
// order. The symbol is case-insensitive.
func BasesOf(code byte) (string, error) {
	bases, ok := iupac[upper(code)]
	if !ok {
		return "", &InvalidCodeError{Code: code}
	}
	return bases, nil
}

// TranslateCodon returns the amino acid (or Stop) for a concrete codon.
func TranslateCodon(c string) byte {
	return geneticCode[c]
}

// CodonsOf returns every concrete codon translating to aa.
func CodonsOf(aa byte) []string {
	return aaToCodons[aa]
}

// CategoryOf returns the physicochemical category of an amino acid,
// or "" for the stop symbol.
func CategoryOf(aa byte) string {
	return aaCategory[aa]
}

// CanonicalCode returns the single IUPAC symbol for a base set given in
// A < C < G < T order. Every non-empty subset of ACGT has one.
func CanonicalCode(bases string) (byte, error) {
	code, ok := codeOfBases[bases]
	if !ok {
		return 0, ErrNoCanonicalCode
	}
	return code, nil
}

// IsAminoAcid reports whether aa is one of the 20 standard symbols.
func IsAminoAcid(aa byte) bool {
	_, ok := aaCategory[aa]
	return ok
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
