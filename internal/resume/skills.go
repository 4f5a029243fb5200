package resume

import (
	"strings"
	"unicode"
)

// RatePlaceholderSkills is reported by the rating flow when no known skill is
// found in the document.
var RatePlaceholderSkills = []string{"JavaScript", "React", "Node.js", "Python"}

// IntakePlaceholderSkills is stored on candidates created from an upload when
// no known skill is found in the document.
var IntakePlaceholderSkills = []string{"JavaScript", "React", "Node.js", "TypeScript"}

type catalogEntry struct {
	Name    string
	Aliases []string
}

// Catalog lists the recognised skills in reporting order. Aliases are matched
// as whole lower-case tokens or token sequences.
var Catalog = []catalogEntry{
	{"JavaScript", []string{"javascript", "js", "ecmascript"}},
	{"TypeScript", []string{"typescript"}},
	{"React", []string{"react", "react.js", "reactjs"}},
	{"Next.js", []string{"next.js", "nextjs"}},
	{"Vue", []string{"vue", "vue.js", "vuejs"}},
	{"Angular", []string{"angular", "angularjs"}},
	{"Node.js", []string{"node.js", "nodejs", "node"}},
	{"Python", []string{"python"}},
	{"Go", []string{"golang"}},
	{"Java", []string{"java"}},
	{"Spring Boot", []string{"spring boot", "springboot"}},
	{"Rust", []string{"rust"}},
	{"C++", []string{"c++", "cpp"}},
	{"C#", []string{"c#", "csharp", ".net"}},
	{"SQL", []string{"sql"}},
	{"PostgreSQL", []string{"postgresql", "postgres"}},
	{"MySQL", []string{"mysql"}},
	{"MongoDB", []string{"mongodb", "mongo"}},
	{"Redis", []string{"redis"}},
	{"Kafka", []string{"kafka"}},
	{"GraphQL", []string{"graphql"}},
	{"Docker", []string{"docker"}},
	{"Kubernetes", []string{"kubernetes", "k8s"}},
	{"Terraform", []string{"terraform"}},
	{"Jenkins", []string{"jenkins"}},
	{"AWS", []string{"aws", "amazon web services"}},
	{"Azure", []string{"azure"}},
	{"GCP", []string{"gcp", "google cloud"}},
	{"TensorFlow", []string{"tensorflow"}},
	{"PyTorch", []string{"pytorch"}},
	{"Machine Learning", []string{"machine learning", "ml"}},
	{"MLOps", []string{"mlops"}},
	{"Swift", []string{"swift"}},
	{"Figma", []string{"figma"}},
}

// ExtractSkills returns the catalog skills mentioned in text, in catalog
// order, each at most once.
func ExtractSkills(text string) []string {
	padded := " " + strings.Join(tokenize(text), " ") + " "
	if strings.TrimSpace(padded) == "" {
		return []string{}
	}

	out := make([]string, 0)
	for _, e := range Catalog {
		for _, a := range e.Aliases {
			if strings.Contains(padded, " "+a+" ") {
				out = append(out, e.Name)
				break
			}
		}
	}
	return out
}

// SkillsOrDefault extracts skills from text, falling back to def when none
// are found. The returned slice is never shared with def.
func SkillsOrDefault(text string, def []string) []string {
	found := ExtractSkills(text)
	if len(found) > 0 {
		return found
	}
	out := make([]string, len(def))
	copy(out, def)
	return out
}

// tokenize lower-cases text and splits it on anything that cannot be part of
// a skill name. Sentence punctuation around tokens is trimmed.
func tokenize(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return false
		}
		switch r {
		case '+', '#', '.':
			return false
		}
		return true
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimRight(f, ".")
		if strings.HasPrefix(f, "..") {
			f = strings.TrimLeft(f, ".")
		}
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
