package match

import (
	"sort"
	"strings"
)

// DefaultThreshold is the minimum similarity of a suggestion.
const DefaultThreshold = 0.6

// Candidate is a ranked name.
type Candidate struct {
	Name  string
	Score float64
}

// Normalize case-folds a name and removes the separators '-', '_' and ' '.
func Normalize(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '-', '_', ' ':
			return -1
		default:
			return r
		}
	}, strings.ToLower(s))
}

// Rank returns the names scoring at least threshold against target, best
// first. Ties keep the order of names.
func Rank(target string, names []string, threshold float64) []Candidate {
	norm := Normalize(target)

	var res []Candidate

	for _, name := range names {
		score := Similarity(norm, Normalize(name))
		if score >= threshold {
			res = append(res, Candidate{Name: name, Score: score})
		}
	}

	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})

	return res
}

// Suggest returns up to limit of the best names for target.
func Suggest(target string, names []string, limit int) []string {
	ranked := Rank(target, names, DefaultThreshold)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res := make([]string, len(ranked))
	for i, c := range ranked {
		res[i] = c.Name
	}

	return res
}
