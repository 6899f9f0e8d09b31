package codon

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy selects how the reverse synthesizer trades compactness against
// off-target amino acids and stop codons.
type Strategy string

const (
	// StrategyMinimal searches for the smallest base set per position that
	// still covers every target amino acid.
	StrategyMinimal Strategy = "minimal"

	// StrategyAll emits every exact codon combination plus one maximally
	// ambiguous cover.
	StrategyAll Strategy = "all"

	// StrategyBalanced widens the target to physicochemical neighbors and
	// ranks bounded-size candidates by stop frequency then extras.
	StrategyBalanced Strategy = "balanced"
)

// balancedMax caps how many candidates the balanced strategy returns.
const balancedMax = 5

// ParseStrategy validates a strategy name from user input.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(s)) {
	case StrategyMinimal:
		return StrategyMinimal, nil
	case StrategyAll:
		return StrategyAll, nil
	case StrategyBalanced:
		return StrategyBalanced, nil
	}
	return "", fmt.Errorf("unknown strategy %q: want minimal, all or balanced", s)
}

// CoverCandidate is a proposed degenerate codon with its evaluation
// against the original target set.
type CoverCandidate struct {
	Codon      string      `json:"codon"`
	Evaluation *Evaluation `json:"evaluation"`
}

// GeneratorResult is the outcome of one reverse synthesis call.
type GeneratorResult struct {
	Target     string           `json:"target"`
	Strategy   Strategy         `json:"strategy"`
	Candidates []CoverCandidate `json:"candidates"`
}

// ParseTarget filters a free-form string to the 20 standard amino acids,
// case-insensitively, deduplicated in first-encounter order.
func ParseTarget(s string) ([]byte, error) {
	seen := make(map[byte]bool)
	var target []byte
	for i := 0; i < len(s); i++ {
		aa := upper(s[i])
		if !IsAminoAcid(aa) || seen[aa] {
			continue
		}
		seen[aa] = true
		target = append(target, aa)
	}
	if len(target) == 0 {
		return nil, ErrEmptyTarget
	}
	return target, nil
}

// Synthesize searches for degenerate codons covering every amino acid in
// the raw target string under the given strategy.
func Synthesize(raw string, strategy Strategy) (*GeneratorResult, error) {
	target, err := ParseTarget(raw)
	if err != nil {
		return nil, err
	}

	targetSet := make(map[byte]bool, len(target))
	for _, aa := range target {
		targetSet[aa] = true
	}

	result := &GeneratorResult{
		Target:   string(target),
		Strategy: strategy,
	}

	var codes []string
	switch strategy {
	case StrategyMinimal:
		codes = synthesizeMinimal(target)
	case StrategyAll:
		codes = synthesizeAll(target)
	case StrategyBalanced:
		result.Candidates = synthesizeBalanced(target, targetSet)
		return result, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", strategy)
	}

	for _, code := range codes {
		eval, err := Evaluate(code, targetSet)
		if err != nil {
			return nil, err
		}
		result.Candidates = append(result.Candidates, CoverCandidate{Codon: code, Evaluation: eval})
	}

	return result, nil
}

// requiredBases returns the union, in A < C < G < T order, of the bases
// used at position p by any codon of any target amino acid.
func requiredBases(target []byte, p int) []byte {
	used := make(map[byte]bool)
	for _, aa := range target {
		for _, c := range CodonsOf(aa) {
			used[c[p]] = true
		}
	}

	bases := make([]byte, 0, 4)
	for _, b := range []byte(nucleotides) {
		if used[b] {
			bases = append(bases, b)
		}
	}
	return bases
}

// coversAt reports whether every target amino acid has a codon whose base
// at position p lies in sub. When prior sets are given, that codon's bases
// at the earlier positions must also lie in them.
func coversAt(target []byte, p int, sub []byte, prior [][]byte) bool {
	for _, aa := range target {
		covered := false
		for _, c := range CodonsOf(aa) {
			if !inSet(sub, c[p]) {
				continue
			}
			usable := true
			for q, ps := range prior {
				if !inSet(ps, c[q]) {
					usable = false
					break
				}
			}
			if usable {
				covered = true
				break
			}
		}
		if !covered {
			return false
		}
	}
	return true
}

func inSet(set []byte, b byte) bool {
	for _, s := range set {
		if s == b {
			return true
		}
	}
	return false
}

// minimalSets returns the smallest covering base sets at position p.
// A single covering base wins outright and the first one in A < C < G < T
// order is taken; otherwise all covering subsets of the minimal size are
// returned. Returns nil when no subset of required covers the target under
// the prior constraints.
func minimalSets(target []byte, p int, required []byte, prior [][]byte) [][]byte {
	for _, b := range required {
		if coversAt(target, p, []byte{b}, prior) {
			return [][]byte{{b}}
		}
	}

	for k := 2; k <= len(required); k++ {
		var covering [][]byte
		for _, sub := range combinations(required, k) {
			if coversAt(target, p, sub, prior) {
				covering = append(covering, sub)
			}
		}
		if len(covering) > 0 {
			return covering
		}
	}

	return nil
}

// codeFor converts three base sets (each in A < C < G < T order) into a
// degenerate codon via the canonical IUPAC symbols.
func codeFor(s1, s2, s3 []byte) (string, error) {
	c1, err := CanonicalCode(string(s1))
	if err != nil {
		return "", err
	}
	c2, err := CanonicalCode(string(s2))
	if err != nil {
		return "", err
	}
	c3, err := CanonicalCode(string(s3))
	if err != nil {
		return "", err
	}
	return string([]byte{c1, c2, c3}), nil
}

// synthesizeMinimal finds the smallest base sets for positions 1 and 2
// independently, then conditions position 3 on each chosen pair, and
// combines the results.
func synthesizeMinimal(target []byte) []string {
	req1 := requiredBases(target, 0)
	req2 := requiredBases(target, 1)
	req3 := requiredBases(target, 2)

	sets1 := minimalSets(target, 0, req1, nil)
	sets2 := minimalSets(target, 1, req2, nil)

	var codes []string
	seen := make(map[string]bool)
	for _, s1 := range sets1 {
		for _, s2 := range sets2 {
			// position 3 coverage only counts codons whose first two
			// bases lie in the chosen sets
			for _, s3 := range minimalSets(target, 2, req3, [][]byte{s1, s2}) {
				code, err := codeFor(s1, s2, s3)
				if err != nil {
					continue
				}
				if !seen[code] {
					seen[code] = true
					codes = append(codes, code)
				}
			}
		}
	}

	return codes
}

// synthesizeAll emits one codon per single-base combination across the
// three positions' required unions, plus the maximally ambiguous cover.
func synthesizeAll(target []byte) []string {
	req1 := requiredBases(target, 0)
	req2 := requiredBases(target, 1)
	req3 := requiredBases(target, 2)

	var codes []string
	seen := make(map[string]bool)
	add := func(code string) {
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	for _, b1 := range req1 {
		for _, b2 := range req2 {
			for _, b3 := range req3 {
				add(string([]byte{b1, b2, b3}))
			}
		}
	}

	if full, err := codeFor(req1, req2, req3); err == nil {
		add(full)
	}

	return codes
}

// expandByCategory widens a target with every amino acid sharing a
// physicochemical category with one of its members.
func expandByCategory(target []byte) []byte {
	seen := make(map[byte]bool, len(target))
	expanded := make([]byte, 0, len(target))
	for _, aa := range target {
		if !seen[aa] {
			seen[aa] = true
			expanded = append(expanded, aa)
		}
	}
	for _, aa := range target {
		for _, member := range categoryMembers[CategoryOf(aa)] {
			if !seen[member] {
				seen[member] = true
				expanded = append(expanded, member)
			}
		}
	}
	return expanded
}

// synthesizeBalanced enumerates bounded per-position subsets of the
// category-expanded target's required bases, evaluates every combination
// against the original target, and keeps the best candidates: ascending
// stop frequency, then ascending extra amino acids.
func synthesizeBalanced(target []byte, targetSet map[byte]bool) []CoverCandidate {
	expanded := expandByCategory(target)

	var perPos [3][][]byte
	for p := 0; p < 3; p++ {
		req := requiredBases(expanded, p)
		max := len(req)
		if max > 3 {
			max = 3 // bound the search cost
		}
		for k := 1; k <= max; k++ {
			perPos[p] = append(perPos[p], combinations(req, k)...)
		}
	}

	var candidates []CoverCandidate
	seen := make(map[string]bool)
	for _, s1 := range perPos[0] {
		for _, s2 := range perPos[1] {
			for _, s3 := range perPos[2] {
				code, err := codeFor(s1, s2, s3)
				if err != nil || seen[code] {
					continue
				}
				seen[code] = true

				eval, err := Evaluate(code, targetSet)
				if err != nil {
					continue
				}
				candidates = append(candidates, CoverCandidate{Codon: code, Evaluation: eval})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		ei, ej := candidates[i].Evaluation, candidates[j].Evaluation
		if ei.StopFrequency != ej.StopFrequency {
			return ei.StopFrequency < ej.StopFrequency
		}
		return len(ei.ExtraAminoAcids) < len(ej.ExtraAminoAcids)
	})

	if len(candidates) > balancedMax {
		candidates = candidates[:balancedMax]
	}
	return candidates
}
