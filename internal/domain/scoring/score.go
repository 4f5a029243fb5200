package scoring

// SubScores are the four component scores of a candidate.
type SubScores struct {
	Skills         int
	Certifications int
	Experience     int
	Industry       int
}

// Breakdown is the wire shape of a scored document.
type Breakdown struct {
	SkillsScore         int `json:"skillsScore"`
	CertificationsScore int `json:"certificationsScore"`
	ExperienceScore     int `json:"experienceScore"`
	IndustryScore       int `json:"industryScore"`
	OverallScore        int `json:"overallScore"`
}

// Weights is a weight set expressed in tenths. The components must sum to 10.
type Weights struct {
	Skills         int
	Certifications int
	Experience     int
	Industry       int
}

// PrimaryWeights is 0.4 skills, 0.2 certifications, 0.3 experience, 0.1 industry.
var PrimaryWeights = Weights{Skills: 4, Certifications: 2, Experience: 3, Industry: 1}

// Overall returns the composite score under PrimaryWeights.
func Overall(s SubScores) int {
	return PrimaryWeights.Apply(s)
}

// Apply computes the weighted sum in integer tenths and rounds the result to
// the nearest integer, halves away from zero (1234.5 -> 1235, -1234.5 -> -1235).
func (w Weights) Apply(s SubScores) int {
	n := w.Skills*s.Skills +
		w.Certifications*s.Certifications +
		w.Experience*s.Experience +
		w.Industry*s.Industry
	return roundTenths(n)
}

// NewBreakdown scores s and returns the full breakdown.
func NewBreakdown(s SubScores) Breakdown {
	return Breakdown{
		SkillsScore:         s.Skills,
		CertificationsScore: s.Certifications,
		ExperienceScore:     s.Experience,
		IndustryScore:       s.Industry,
		OverallScore:        Overall(s),
	}
}

func roundTenths(n int) int {
	if n < 0 {
		return -((-n + 5) / 10)
	}
	return (n + 5) / 10
}
