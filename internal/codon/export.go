package codon

import "strconv"

// ExportHeader is the column order of flattened analysis rows.
var ExportHeader = []string{"position", "amino_acid", "count", "frequency", "property"}

// ExportRows flattens analyses into rows matching ExportHeader, one row per
// amino acid per position. names labels each analysis (a position name or
// the raw code) and must be the same length as analyses.
func ExportRows(names []string, analyses []*Analysis) [][]string {
	var rows [][]string
	for i, a := range analyses {
		for _, stat := range a.AminoAcids {
			rows = append(rows, []string{
				names[i],
				stat.Symbol,
				strconv.Itoa(stat.Count),
				strconv.FormatFloat(stat.Frequency, 'f', 2, 64),
				stat.Property,
			})
		}
	}
	return rows
}
