// Package ranking recomputes dense ranks and percentiles over a candidate set.
package ranking

import (
	"sort"

	"rerank/internal/domain/candidate"
)

// SortByScore orders candidates by overall score, highest first. Equal scores
// keep their relative input order.
func SortByScore(cands []*candidate.Candidate) {
	sort.SliceStable(cands, func(i, j int) bool {
		return cands[i].OverallScore > cands[j].OverallScore
	})
}

// Recompute assigns global, regional and industry ranks in place. The input
// order is the tie-break order; the slice itself is not reordered.
func Recompute(cands []*candidate.Candidate) {
	if len(cands) == 0 {
		return
	}

	ordered := make([]*candidate.Candidate, len(cands))
	copy(ordered, cands)
	SortByScore(ordered)

	regional := make(map[string]int)
	industry := make(map[string]int)
	for i, c := range ordered {
		c.GlobalRank = intPtr(i + 1)

		regional[c.Region]++
		c.RegionalRank = intPtr(regional[c.Region])

		industry[c.Industry]++
		c.IndustryRank = intPtr(industry[c.Industry])
	}
}

// Percentile is round((total - rank + 1) / total * 100) with halves rounded up.
// rank is the 1-based dense rank inside the scope of size total.
func Percentile(rank, total int) int {
	if total <= 0 || rank <= 0 {
		return 0
	}
	if rank > total {
		rank = total
	}
	num := 200*(total-rank+1) + total
	return num / (2 * total)
}

// Paginate returns the [start, end) bounds of a page over n items.
func Paginate(n, limit, offset int) (int, int) {
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}
	if offset > n {
		return n, n
	}
	end := offset + limit
	if end > n || end < offset {
		end = n
	}
	return offset, end
}

// Leaderboard sorts the scoped set, pages it and attaches each row's
// percentile computed from its position in the full scoped set.
func Leaderboard(scoped []*candidate.Candidate, limit, offset int) []candidate.WithRank {
	ordered := make([]*candidate.Candidate, len(scoped))
	copy(ordered, scoped)
	SortByScore(ordered)

	total := len(ordered)
	start, end := Paginate(total, limit, offset)

	out := make([]candidate.WithRank, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, candidate.WithRank{
			Candidate:  ordered[i].Clone(),
			Percentile: Percentile(i+1, total),
		})
	}
	return out
}

func intPtr(v int) *int {
	return &v
}
