package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strconv"
	"strings"

	"rerank/internal/search"
)

const cacheKeyPrefix = "rerank:"

type leaderboardCacheKeyInput struct {
	Scope   string `json:"scope"`
	Value   string `json:"value"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
	Version uint64 `json:"version"`
}

type candidateSearchCacheKeyInput struct {
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Industry   string   `json:"industry"`
	Region     string   `json:"region"`
	MinScore   *int     `json:"min_score"`
	MaxScore   *int     `json:"max_score"`
	Version    uint64   `json:"version"`
}

// normalizeSearchValue folds only what the filter matcher ignores. Inner
// whitespace is significant to the substring match and stays in the key.
func normalizeSearchValue(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// LeaderboardCacheKey keys a leaderboard page. Scope values are kept verbatim.
func LeaderboardCacheKey(scope, value string, limit, offset int, version uint64) string {
	return cacheKeyPrefix + "leaderboard:" + hashKey(leaderboardCacheKeyInput{
		Scope:   scope,
		Value:   value,
		Limit:   limit,
		Offset:  offset,
		Version: version,
	})
}

func CandidateSearchCacheKey(f search.Filters, version uint64) string {
	skills := make([]string, 0, len(f.Skills))
	for _, s := range f.Skills {
		s = normalizeSearchValue(s)
		if s == "" {
			continue
		}
		skills = append(skills, s)
	}

	return cacheKeyPrefix + "search:" + hashKey(candidateSearchCacheKeyInput{
		Skills:     skills,
		Experience: normalizeSearchValue(f.Experience),
		Industry:   normalizeSearchValue(f.Industry),
		Region:     normalizeSearchValue(f.Region),
		MinScore:   f.MinScore,
		MaxScore:   f.MaxScore,
		Version:    version,
	})
}

func AnalyticsCacheKey(version uint64) string {
	return cacheKeyPrefix + "analytics:" + strconv.FormatUint(version, 10)
}

func LockKey(key string) string {
	key = strings.TrimSpace(key)
	return cacheKeyPrefix + "lock:" + strings.TrimPrefix(key, cacheKeyPrefix)
}

func hashKey(in any) string {
	b, _ := json.Marshal(in)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
