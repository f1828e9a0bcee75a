package area

import (
	"slices"
	"strings"

	"diistore/lib/textutil"

	"github.com/antzucaro/matchr"
)

// minSimilarity filters out suggestions that share little more than a
// couple of letters with the query.
const minSimilarity = 0.7

type suggestion struct {
	value      string
	similarity float64
}

// Suggest returns up to n distinct field values that look most like query,
// best first. It is meant for queries that Filter found nothing for, ex.
// "jawa barta" suggests "Jawa Barat".
func Suggest(data Dataset, query string, n int) []string {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" || n <= 0 {
		return nil
	}

	seen := make(map[string]struct{})
	var candidates []suggestion
	for _, r := range data {
		for _, field := range r.Fields() {
			if field == "" {
				continue
			}
			key := textutil.NormalizeName(field)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}

			similarity := matchr.JaroWinkler(query, strings.ToLower(field), false)
			if similarity < minSimilarity {
				continue
			}
			candidates = append(candidates, suggestion{value: field, similarity: similarity})
		}
	}

	slices.SortStableFunc(candidates, func(a, b suggestion) int {
		if a.similarity > b.similarity {
			return -1
		}
		if a.similarity < b.similarity {
			return 1
		}
		return 0
	})

	var result []string
	for _, c := range candidates {
		if len(result) == n {
			break
		}
		result = append(result, c.value)
	}
	return result
}
