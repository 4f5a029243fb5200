// Package search filters candidates by skills, experience, industry, region
// and score range.
package search

import (
	"strings"

	"rerank/internal/domain/candidate"
)

// Filters is a conjunction of optional constraints. A zero value matches all.
type Filters struct {
	Skills     []string
	Experience string
	Industry   string
	Region     string
	MinScore   *int
	MaxScore   *int
}

// Normalize trims every text dimension and drops empty skill terms.
func (f Filters) Normalize() Filters {
	out := Filters{
		Experience: strings.TrimSpace(f.Experience),
		Industry:   strings.TrimSpace(f.Industry),
		Region:     strings.TrimSpace(f.Region),
		MinScore:   f.MinScore,
		MaxScore:   f.MaxScore,
	}
	for _, s := range f.Skills {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out.Skills = append(out.Skills, s)
	}
	return out
}

// HasFilter reports whether any dimension constrains the result.
func (f Filters) HasFilter() bool {
	return len(f.Skills) > 0 ||
		f.Experience != "" ||
		f.Industry != "" ||
		f.Region != "" ||
		f.MinScore != nil ||
		f.MaxScore != nil
}

// ParseSkills splits a comma separated skill list.
func ParseSkills(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Match reports whether c satisfies every dimension of f.
func Match(c *candidate.Candidate, f Filters) bool {
	if c == nil {
		return false
	}
	if len(f.Skills) > 0 && !matchAnySkill(c.Skills, f.Skills) {
		return false
	}
	if f.Experience != "" {
		if c.Experience == nil || !containsFold(*c.Experience, f.Experience) {
			return false
		}
	}
	if f.Industry != "" && !containsFold(c.Industry, f.Industry) {
		return false
	}
	if f.Region != "" && !containsFold(c.Region, f.Region) {
		return false
	}
	if f.MinScore != nil && c.OverallScore < *f.MinScore {
		return false
	}
	if f.MaxScore != nil && c.OverallScore > *f.MaxScore {
		return false
	}
	return true
}

// Apply returns the candidates matching f, keeping input order.
func Apply(cands []*candidate.Candidate, f Filters) []*candidate.Candidate {
	f = f.Normalize()
	out := make([]*candidate.Candidate, 0, len(cands))
	for _, c := range cands {
		if Match(c, f) {
			out = append(out, c)
		}
	}
	return out
}

func matchAnySkill(have []string, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if containsFold(h, w) {
				return true
			}
		}
	}
	return false
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
