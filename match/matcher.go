// Package match implements tiered ranking of records against a query.
//
// Ranking is categorical, not fuzzy: a record either matches a tier or it
// does not, and tiers are tried in a fixed order against normalized forms.
package match

import (
	"strings"

	"github.com/poiesic/searchit/core"
	"github.com/poiesic/searchit/normalize"
)

// Rank reorders candidates against query using six ordered, mutually
// exclusive tiers:
//
//  1. title equals the normalized query
//  2. title starts with the query
//  3. title contains the query
//  4. any keyword equals the query
//  5. any keyword starts with the query
//  6. any keyword contains the query
//
// A candidate matching an earlier tier is removed from consideration for all
// later tiers, so the output never contains duplicates. Within a tier the
// relative input order is preserved. Candidates matching no tier are
// excluded.
//
// An empty normalized query carries no discriminating signal: all candidates
// are returned unchanged in input order. Callers that want "no results for
// empty query" filter upstream.
func Rank(query string, candidates []core.Record, cfg normalize.Config) []core.Record {
	q := normalize.String(query, cfg)
	if q == "" {
		return append([]core.Record(nil), candidates...)
	}

	titles := make([]string, len(candidates))
	keywords := make([][]string, len(candidates))
	for i, candidate := range candidates {
		titles[i] = normalize.String(candidate.Title, cfg)
		if len(candidate.Keywords) > 0 {
			normalized := make([]string, len(candidate.Keywords))
			for j, keyword := range candidate.Keywords {
				normalized[j] = normalize.String(keyword, cfg)
			}
			keywords[i] = normalized
		}
	}

	tiers := []func(i int) bool{
		func(i int) bool { return titles[i] == q },
		func(i int) bool { return strings.HasPrefix(titles[i], q) },
		func(i int) bool { return strings.Contains(titles[i], q) },
		func(i int) bool { return anyKeyword(keywords[i], func(k string) bool { return k == q }) },
		func(i int) bool { return anyKeyword(keywords[i], func(k string) bool { return strings.HasPrefix(k, q) }) },
		func(i int) bool { return anyKeyword(keywords[i], func(k string) bool { return strings.Contains(k, q) }) },
	}

	results := make([]core.Record, 0, len(candidates))
	taken := make([]bool, len(candidates))
	for _, matches := range tiers {
		for i := range candidates {
			if taken[i] || !matches(i) {
				continue
			}
			taken[i] = true
			results = append(results, candidates[i])
		}
	}
	return results
}

func anyKeyword(keywords []string, pred func(string) bool) bool {
	for _, keyword := range keywords {
		if pred(keyword) {
			return true
		}
	}
	return false
}
