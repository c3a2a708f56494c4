package match

import (
	"sort"
)

// Candidate is a known name scored against an unknown one.
type Candidate struct {
	Name string
	// Normalized is Name after NormalizeIdent.
	Normalized string
	// Score is the normalized Levenshtein similarity (0-1).
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// Suggestion thresholds.
const (
	// DefaultMinScore is the minimum score for a name to be suggested.
	DefaultMinScore = 0.6
	// DefaultMaxSuggestions is how many names Suggest returns at most.
	DefaultMaxSuggestions = 3
)

// RankCandidates scores every name against target. Returns candidates sorted
// by score (descending), then by name. Duplicate names are ranked once.
func RankCandidates(target string, names []string) CandidateList {
	candidates := make(CandidateList, 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		if seen[name] {
			continue
		}

		seen[name] = true

		candidates = append(candidates, Candidate{
			Name:       name,
			Normalized: NormalizeIdent(name),
			Score:      NormalizedLevenshteinScore(target, name),
		})
	}

	sort.Sort(candidates)

	return candidates
}

// Suggest returns up to DefaultMaxSuggestions names from names that look
// like a misspelling of target. An exact match is never suggested.
func Suggest(target string, names []string) []string {
	var others []string

	for _, name := range names {
		if name != target {
			others = append(others, name)
		}
	}

	return RankCandidates(target, others).
		AboveThreshold(DefaultMinScore).
		Top(DefaultMaxSuggestions).
		Names()
}

// Len implements sort.Interface.
func (c CandidateList) Len() int { return len(c) }

// Swap implements sort.Interface.
func (c CandidateList) Swap(i, j int) { c[i], c[j] = c[j], c[i] }

// Less implements sort.Interface.
// Sorts by score descending, then by name for determinism.
func (c CandidateList) Less(i, j int) bool {
	if c[i].Score != c[j].Score {
		return c[i].Score > c[j].Score
	}

	return c[i].Name < c[j].Name
}

// Top returns the top n candidates.
func (c CandidateList) Top(n int) CandidateList {
	if n >= len(c) {
		return c
	}

	return c[:n]
}

// AboveThreshold returns candidates with score at or above the threshold.
func (c CandidateList) AboveThreshold(threshold float64) CandidateList {
	var result CandidateList

	for _, cand := range c {
		if cand.Score >= threshold {
			result = append(result, cand)
		}
	}

	return result
}

// Names returns the candidate names in order.
func (c CandidateList) Names() []string {
	if len(c) == 0 {
		return nil
	}

	names := make([]string, len(c))
	for i, cand := range c {
		names[i] = cand.Name
	}

	return names
}
