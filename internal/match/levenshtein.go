package match

// Levenshtein returns the edit distance between a and b: the minimum number
// of single-character insertions, deletions, and substitutions that turns
// one string into the other. Working memory is one row sized by the shorter
// string.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	if len(a) == 0 {
		return len(b)
	}

	row := make([]int, len(a)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(b); j++ {
		// diag carries the value row[i-1] held before this column updated it.
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(a); i++ {
			sub := diag
			if a[i-1] != b[j-1] {
				sub++
			}

			best := sub
			if del := row[i] + 1; del < best {
				best = del
			}

			if ins := row[i-1] + 1; ins < best {
				best = ins
			}

			diag = row[i]
			row[i] = best
		}
	}

	return row[len(a)]
}

// LevenshteinNormalized turns the distance into a similarity score between
// 0 and 1, where 1 means identical and 0 means nothing in common.
func LevenshteinNormalized(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	longest := max(len(a), len(b))

	return 1.0 - float64(Levenshtein(a, b))/float64(longest)
}

// Similarity scores two names after normalizing both, so spelling is all
// that counts and naming convention differences cost nothing.
func Similarity(a, b string) float64 {
	return LevenshteinNormalized(NormalizeIdent(a), NormalizeIdent(b))
}
