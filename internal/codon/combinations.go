package codon

// combinations returns every k-element subset of items. Order within each
// subset follows the input order and subsets are enumerated
// lexicographically by index. Call sites never pass more than 4 items.
func combinations[T any](items []T, k int) [][]T {
	n := len(items)
	if k <= 0 || k > n {
		return nil
	}

	if k == 1 {
		subsets := make([][]T, n)
		for i, item := range items {
			subsets[i] = []T{item}
		}
		return subsets
	}

	if k == n {
		whole := make([]T, n)
		copy(whole, items)
		return [][]T{whole}
	}

	var subsets [][]T
	indices := make([]int, k)

	var backtrack func(start, depth int)
	backtrack = func(start, depth int) {
		if depth == k {
			subset := make([]T, k)
			for i, idx := range indices {
				subset[i] = items[idx]
			}
			subsets = append(subsets, subset)
			return
		}
		for i := start; i <= n-(k-depth); i++ {
			indices[depth] = i
			backtrack(i+1, depth+1)
		}
	}
	backtrack(0, 0)

	return subsets
}
