package supplements

import (
	"context"
	"sort"
	"strings"
	"supplements-backend/lib/textutil"

	"github.com/antzucaro/matchr"
)

const (
	// DefaultSearchLimit is used when SearchSupplements is given a limit <= 0.
	DefaultSearchLimit = 10
	searchThreshold    = 0.75
)

type SearchResult struct {
	Supplement Supplement `json:"supplement"`
	Score      float64    `json:"score"`
	// MatchedOn is the name or category that produced the score.
	MatchedOn string `json:"matchedOn"`
}

// similarity scores a normalized query against a normalized candidate, a
// candidate containing the query is a perfect match.
func similarity(query, candidate string) float64 {
	if candidate == "" {
		return 0
	}
	if strings.Contains(candidate, query) {
		return 1
	}
	best := matchr.JaroWinkler(query, candidate, false)
	// multi-word names are also compared word by word so "fish" finds
	// "omega-3 fish oil"
	for _, word := range strings.Fields(candidate) {
		score := matchr.JaroWinkler(query, word, false)
		if score > best {
			best = score
		}
	}
	return best
}

// SearchSupplements fuzzy matches the query against supplement names and
// categories, best matches first.
func (s Service) SearchSupplements(ctx context.Context, query string, limit int) ([]SearchResult, error) {
	ctx, span := tracer.Start(ctx, "SearchSupplements")
	defer span.End()

	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	query = textutil.NormalizeName(query)
	if query == "" {
		return []SearchResult{}, nil
	}

	catalog, err := s.ListSupplements(ctx)
	if err != nil {
		s.tel.ReportBroken(report_catalog_search, err)
		return nil, err
	}

	results := []SearchResult{}
	for _, supplement := range catalog {
		best := SearchResult{Supplement: supplement}
		candidates := append([]string{supplement.Name}, supplement.Categories...)
		for _, candidate := range candidates {
			score := similarity(query, textutil.NormalizeName(candidate))
			if score > best.Score {
				best.Score = score
				best.MatchedOn = candidate
			}
		}
		if best.Score < searchThreshold {
			continue
		}
		results = append(results, best)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}
