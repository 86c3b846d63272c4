package match

import (
	"cmp"
	"slices"
)

// Candidate is a known name scored against a requested name.
type Candidate struct {
	// Name is the candidate as it appeared in the known set.
	Name string

	// Score is the normalized similarity to the requested name (0-1, higher
	// is better).
	Score float64

	// Normalized forms kept for debugging/explanation
	NormalizedName   string
	NormalizedTarget string
}

// CandidateList is a slice of scored candidates, best first once ranked.
type CandidateList []Candidate

// Rank scores every known name against the requested name and returns the
// candidates sorted by score (descending). Ties sort alphabetically so the
// ranking is stable across runs.
func Rank(target string, names []string) CandidateList {
	targetNorm := NormalizeIdent(target)

	candidates := make(CandidateList, 0, len(names))

	for _, name := range names {
		nameNorm := NormalizeIdent(name)

		candidates = append(candidates, Candidate{
			Name:             name,
			Score:            LevenshteinNormalized(nameNorm, targetNorm),
			NormalizedName:   nameNorm,
			NormalizedTarget: targetNorm,
		})
	}

	slices.SortFunc(candidates, func(x, y Candidate) int {
		return cmp.Or(
			cmp.Compare(y.Score, x.Score),
			cmp.Compare(x.Name, y.Name),
		)
	})

	return candidates
}

// Suggest returns up to n known names that the requested name was plausibly
// meant to be. Candidates below DefaultMinScore are not worth suggesting.
func Suggest(target string, names []string, n int) []string {
	ranked := Rank(target, names).AboveThreshold(DefaultMinScore).Top(n)

	suggestions := make([]string, 0, len(ranked))
	for _, c := range ranked {
		suggestions = append(suggestions, c.Name)
	}

	return suggestions
}

// Top returns at most the first n candidates.
func (c CandidateList) Top(n int) CandidateList {
	return c[:min(n, len(c))]
}

// Best returns the highest-ranked candidate, or nil for an empty list.
func (c CandidateList) Best() *Candidate {
	if len(c) == 0 {
		return nil
	}

	return &c[0]
}

// AboveThreshold keeps only candidates scoring at least threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	kept := make(CandidateList, 0, len(c))

	for _, cand := range c {
		if cand.Score >= threshold {
			kept = append(kept, cand)
		}
	}

	return kept
}

// IsAmbiguous reports whether the top two candidates score within threshold
// of each other, meaning neither is a clear winner.
func (c CandidateList) IsAmbiguous(threshold float64) bool {
	if len(c) < 2 {
		return false
	}

	return c[0].Score-c[1].Score < threshold
}

// Confidence thresholds for offering suggestions.
const (
	// DefaultMinScore is the minimum score for a name to be suggested.
	DefaultMinScore = 0.5
	// DefaultAmbiguityThreshold is the score difference that marks ambiguity.
	DefaultAmbiguityThreshold = 0.1
)
