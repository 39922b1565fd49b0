package match

// Distance returns the edit distance between a and b counted in runes:
// the fewest insertions, deletions and substitutions turning a into b.
func Distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// row[j] holds the distance between the current prefix of ra and rb[:j].
	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i

		for j := 1; j <= len(rb); j++ {
			above := row[j]

			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			row[j] = min(row[j]+1, row[j-1]+1, diag+cost)
			diag = above
		}
	}

	return row[len(rb)]
}

// Similarity maps Distance onto [0, 1], 1 meaning equal names.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Distance(a, b))/float64(longest)
}
