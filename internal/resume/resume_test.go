package resume

import (
	"strings"
	"testing"

	"rerank/internal/domain/scoring"
)

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestExtractSkills(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{name: "empty", text: "", want: []string{}},
		{name: "aliases", text: "Built services in Golang on K8s, deployed to Amazon Web Services.", want: []string{"Go", "Kubernetes", "AWS"}},
		{name: "catalog order and dedupe", text: "python, React.js and reactjs. Also JavaScript!", want: []string{"JavaScript", "React", "Python"}},
		{name: "whole tokens only", text: "javascripting is not a skill; nodes neither", want: []string{}},
		{name: "symbols", text: "C++ and C# developer", want: []string{"C++", "C#"}},
		{name: "phrase", text: "Machine   Learning with PyTorch", want: []string{"PyTorch", "Machine Learning"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractSkills(tt.text)
			if !equalStrings(got, tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSkillsOrDefault(t *testing.T) {
	got := SkillsOrDefault("nothing relevant here", RatePlaceholderSkills)
	if !equalStrings(got, RatePlaceholderSkills) {
		t.Fatalf("expected placeholder, got %v", got)
	}
	got[0] = "mutated"
	if RatePlaceholderSkills[0] != "JavaScript" {
		t.Fatalf("placeholder slice was shared")
	}

	got = SkillsOrDefault("redis", IntakePlaceholderSkills)
	if !equalStrings(got, []string{"Redis"}) {
		t.Fatalf("expected extracted skills, got %v", got)
	}
}

func TestDeterministicAnalyzer_Rate(t *testing.T) {
	a := NewDeterministicAnalyzer()
	content := []byte("Senior engineer with Go and Kubernetes")
	skills := []string{"Go", "Kubernetes"}

	first := a.Rate(content, skills)
	second := a.Rate(content, skills)
	if first != second {
		t.Fatalf("same input produced different scores: %+v vs %+v", first, second)
	}

	checkRange := func(name string, v, lo, hi int) {
		if v < lo || v >= hi {
			t.Fatalf("%s=%d outside [%d,%d)", name, v, lo, hi)
		}
	}
	checkRange("skills", first.SkillsScore, 2100, 3100)
	checkRange("certifications", first.CertificationsScore, 2000, 3000)
	checkRange("experience", first.ExperienceScore, 2000, 3000)
	checkRange("industry", first.IndustryScore, 2000, 3000)

	want := scoring.Overall(scoring.SubScores{
		Skills:         first.SkillsScore,
		Certifications: first.CertificationsScore,
		Experience:     first.ExperienceScore,
		Industry:       first.IndustryScore,
	})
	if first.OverallScore != want {
		t.Fatalf("overall %d, want %d", first.OverallScore, want)
	}

	noSkills := a.Rate(content, nil)
	if first.SkillsScore-noSkills.SkillsScore != 100 {
		t.Fatalf("expected +50 per skill, got delta %d", first.SkillsScore-noSkills.SkillsScore)
	}
}

func TestDeterministicAnalyzer_Intake(t *testing.T) {
	a := NewDeterministicAnalyzer()
	for _, doc := range []string{"", "a", strings.Repeat("resume ", 100)} {
		s := a.Intake([]byte(doc))
		for _, v := range []int{s.Skills, s.Certifications, s.Experience, s.Industry} {
			if v < 600 || v >= 1000 {
				t.Fatalf("intake score %d outside [600,1000) for %q", v, doc)
			}
		}
		if s != a.Intake([]byte(doc)) {
			t.Fatalf("intake not deterministic")
		}
	}
}

func TestClassifyRegion(t *testing.T) {
	tests := []struct {
		location, want string
	}{
		{"", RegionNorthAmerica},
		{"San Francisco, CA", RegionNorthAmerica},
		{"Austin, TX", RegionNorthAmerica},
		{"London, UK", RegionEurope},
		{"Berlin, Germany", RegionEurope},
		{"Dublin, IE", RegionEurope},
		{"Tokyo, JP", RegionAsiaPacific},
		{"Singapore", RegionAsiaPacific},
	}
	for _, tt := range tests {
		if got := ClassifyRegion(tt.location); got != tt.want {
			t.Fatalf("ClassifyRegion(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}

func TestDocExtractor(t *testing.T) {
	x := NewDocExtractor()

	text, err := x.Extract("cv.txt", []byte("Python developer"))
	if err != nil || text != "Python developer" {
		t.Fatalf("unexpected: %q %v", text, err)
	}

	if _, err := x.Extract("cv.exe", []byte("MZ")); err == nil {
		t.Fatalf("expected unsupported type error")
	}

	if _, err := x.Extract("cv.txt", []byte{0xff, 0xfe, 0xfd}); err == nil {
		t.Fatalf("expected invalid utf-8 error")
	}

	text, err = x.Extract("empty.pdf", nil)
	if err != nil || text != "" {
		t.Fatalf("empty content should be empty text, got %q %v", text, err)
	}
}
