package codon

import "sort"

// AminoAcidStat is one row of a forward analysis: an amino acid (or stop),
// how many concrete codons encode it, and its share of the expansion.
type AminoAcidStat struct {
	Symbol    string  `json:"aminoAcid"`
	Count     int     `json:"count"`
	Frequency float64 `json:"frequency"`
	Property  string  `json:"property,omitempty"`
}

// PropertyStat aggregates the frequency of one physicochemical category.
type PropertyStat struct {
	Property  string  `json:"property"`
	Frequency float64 `json:"frequency"`
}

// Analysis is the amino-acid distribution produced by one degenerate codon.
type Analysis struct {
	Codon         string          `json:"codon"`
	TotalCodons   int             `json:"totalCodons"`
	AminoAcids    []AminoAcidStat `json:"aminoAcids"`
	HasStop       bool            `json:"hasStop"`
	StopFrequency float64         `json:"stopFrequency"`
	Properties    []PropertyStat  `json:"properties"`
}

// Analyze expands a degenerate codon and reports its amino-acid
// distribution. Rows are sorted by descending frequency; ties keep the
// order in which each amino acid was first produced by the expansion.
func Analyze(code string) (*Analysis, error) {
	codons, err := Expand(code)
	if err != nil {
		return nil, err
	}

	counts := make(map[byte]int)
	var order []byte
	for _, c := range codons {
		aa := TranslateCodon(c)
		if counts[aa] == 0 {
			order = append(order, aa)
		}
		counts[aa]++
	}

	total := len(codons)
	stats := make([]AminoAcidStat, 0, len(order))
	for _, aa := range order {
		stats = append(stats, AminoAcidStat{
			Symbol:    string(aa),
			Count:     counts[aa],
			Frequency: float64(counts[aa]) / float64(total) * 100,
			Property:  CategoryOf(aa),
		})
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Count > stats[j].Count
	})

	analysis := &Analysis{
		Codon:       code,
		TotalCodons: total,
		AminoAcids:  stats,
	}

	if stops := counts[Stop]; stops > 0 {
		analysis.HasStop = true
		analysis.StopFrequency = float64(stops) / float64(total) * 100
	}

	// aggregate category frequencies, skipping stop; categories with no
	// members are never emitted
	catFreq := make(map[string]float64)
	var catOrder []string
	for _, aa := range order {
		if aa == Stop {
			continue
		}
		cat := CategoryOf(aa)
		if _, seen := catFreq[cat]; !seen {
			catOrder = append(catOrder, cat)
		}
		catFreq[cat] += float64(counts[aa]) / float64(total) * 100
	}
	for _, cat := range catOrder {
		analysis.Properties = append(analysis.Properties, PropertyStat{
			Property:  cat,
			Frequency: catFreq[cat],
		})
	}
	sort.SliceStable(analysis.Properties, func(i, j int) bool {
		return analysis.Properties[i].Frequency > analysis.Properties[j].Frequency
	})

	return analysis, nil
}
