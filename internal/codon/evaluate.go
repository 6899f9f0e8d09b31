package codon

// AminoAcidCount pairs an amino acid with its concrete codon count.
type AminoAcidCount struct {
	Symbol string `json:"aminoAcid"`
	Count  int    `json:"count"`
}

// Evaluation reports how well a degenerate codon covers a target set:
// the full expansion's amino-acid counts, any amino acids outside the
// target, and the stop-codon share of the expansion.
type Evaluation struct {
	TotalCodons     int              `json:"totalCodons"`
	AminoAcidCounts []AminoAcidCount `json:"aminoAcidCounts"`
	ExtraAminoAcids []string         `json:"extraAminoAcids"`
	StopFrequency   float64          `json:"stopFrequency"`
}

// Evaluate re-expands a candidate degenerate codon and scores it against
// the original target set. Counts and extras keep first-encounter order.
func Evaluate(code string, target map[byte]bool) (*Evaluation, error) {
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

	eval := &Evaluation{
		TotalCodons:     len(codons),
		ExtraAminoAcids: []string{},
	}
	for _, aa := range order {
		eval.AminoAcidCounts = append(eval.AminoAcidCounts, AminoAcidCount{
			Symbol: string(aa),
			Count:  counts[aa],
		})
		if aa != Stop && !target[aa] {
			eval.ExtraAminoAcids = append(eval.ExtraAminoAcids, string(aa))
		}
	}
	if stops := counts[Stop]; stops > 0 {
		eval.StopFrequency = float64(stops) / float64(len(codons)) * 100
	}

	return eval, nil
}
