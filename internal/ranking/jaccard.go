// Package ranking scores jobs against each other by tag overlap.
package ranking

// Jaccard returns |a ∩ b| / |a ∪ b| for two tag sets sorted ascending without
// duplicates. Two empty sets score 0.
func Jaccard(a, b []int) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 0
	}

	inter := 0
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			inter++
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	union := len(a) + len(b) - inter
	if inter == union {
		return 1.0
	}
	return float64(inter) / float64(union)
}
