// Package simulation models the effect of hiring a set of candidates on a team.
package simulation

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrNoHires     = errors.New("simulation: no candidates selected")
	ErrInvalidTeam = errors.New("simulation: invalid team")
)

const (
	coverageBase    = 40
	coveragePerHit  = 30
	coverageMax     = 100
	boostShare      = 0.3
	riskThreshold   = 2
	weeksPerHire    = 3
	weeksFixed      = 2
	productivityDiv = 10
)

// Categories maps a team skill category to the candidate skills that count
// toward it. Matching is case-insensitive.
var Categories = map[string][]string{
	"Frontend": {"JavaScript", "TypeScript", "React", "Next.js", "Vue", "Angular", "Figma", "HTML", "CSS"},
	"Backend":  {"Node.js", "Go", "Java", "Spring Boot", "Python", "Rust", "C#", "C++", "GraphQL", "Kafka"},
	"Cloud":    {"AWS", "Azure", "GCP", "Terraform"},
	"DevOps":   {"Docker", "Kubernetes", "Terraform", "Jenkins", "Prometheus", "Grafana"},
	"AI/ML":    {"TensorFlow", "PyTorch", "Machine Learning", "MLOps", "Scikit-learn", "Spark"},
	"Database": {"SQL", "PostgreSQL", "MySQL", "MongoDB", "Redis"},
}

type Team struct {
	CurrentSkills map[string]int `json:"currentSkills"`
	AvgScore      int            `json:"avgScore"`
	TeamSize      int            `json:"teamSize"`
}

// DefaultTeam is used when a request does not describe its own team.
func DefaultTeam() Team {
	return Team{
		CurrentSkills: map[string]int{
			"Frontend": 70,
			"Backend":  85,
			"Cloud":    60,
			"DevOps":   45,
			"AI/ML":    30,
			"Database": 75,
		},
		AvgScore: 2750,
		TeamSize: 8,
	}
}

func (t Team) Validate() error {
	if t.TeamSize < 0 || t.AvgScore < 0 {
		return ErrInvalidTeam
	}
	for name, level := range t.CurrentSkills {
		if strings.TrimSpace(name) == "" || level < 0 || level > coverageMax {
			return ErrInvalidTeam
		}
	}
	return nil
}

type Hire struct {
	ID           string
	Name         string
	OverallScore int
	Skills       []string
}

type HireImpact struct {
	CandidateID     string         `json:"candidateId"`
	Name            string         `json:"name"`
	OverallScore    int            `json:"overallScore"`
	SkillCoverage   map[string]int `json:"skillCoverage"`
	EstimatedSalary int            `json:"estimatedSalary"`
}

type Result struct {
	Team                 Team               `json:"team"`
	Hires                []HireImpact       `json:"hires"`
	NewTeamSize          int                `json:"newTeamSize"`
	NewAvgScore          float64            `json:"newAvgScore"`
	ScoreImprovement     float64            `json:"scoreImprovement"`
	SkillImprovements    map[string]float64 `json:"skillImprovements"`
	EstimatedCost        int                `json:"estimatedCost"`
	ProductivityIncrease int                `json:"productivityIncrease"`
	TimeToHireWeeks      int                `json:"timeToHireWeeks"`
	RiskAssessment       string             `json:"riskAssessment"`
}

// Simulate adds hires to team and reports the resulting score, skill and
// cost changes.
func Simulate(team Team, hires []Hire) (Result, error) {
	if len(hires) == 0 {
		return Result{}, ErrNoHires
	}
	if err := team.Validate(); err != nil {
		return Result{}, err
	}

	n := len(hires)
	newSize := team.TeamSize + n

	sum := 0
	cost := 0
	impacts := make([]HireImpact, 0, n)
	for _, h := range hires {
		sum += h.OverallScore
		salary := SalaryBand(h.OverallScore)
		cost += salary
		impacts = append(impacts, HireImpact{
			CandidateID:     h.ID,
			Name:            h.Name,
			OverallScore:    h.OverallScore,
			SkillCoverage:   Coverage(h.Skills, team.CurrentSkills),
			EstimatedSalary: salary,
		})
	}

	newAvg := float64(team.AvgScore*team.TeamSize+sum) / float64(newSize)
	diff := newAvg - float64(team.AvgScore)

	improvements := make(map[string]float64, len(team.CurrentSkills))
	for cat, level := range team.CurrentSkills {
		total := 0
		for _, imp := range impacts {
			total += imp.SkillCoverage[cat]
		}
		boost := float64(total) / float64(n)
		next := math.Min(coverageMax, float64(level)+boost*boostShare)
		improvements[cat] = next - float64(level)
	}

	risk := "Low"
	if n > riskThreshold {
		risk = "Medium"
	}

	return Result{
		Team:                 team,
		Hires:                impacts,
		NewTeamSize:          newSize,
		NewAvgScore:          newAvg,
		ScoreImprovement:     diff,
		SkillImprovements:    improvements,
		EstimatedCost:        cost,
		ProductivityIncrease: int(math.Floor(diff/productivityDiv + 0.5)),
		TimeToHireWeeks:      n*weeksPerHire + weeksFixed,
		RiskAssessment:       risk,
	}, nil
}

// SalaryBand estimates a yearly salary from the overall score.
func SalaryBand(overall int) int {
	switch {
	case overall > 3000:
		return 180000
	case overall > 2500:
		return 150000
	default:
		return 120000
	}
}

// Coverage scores how well skills cover each of the team's categories. A
// category with no matching skill is 0; otherwise 40 plus 30 per match,
// capped at 100.
func Coverage(skills []string, categories map[string]int) map[string]int {
	out := make(map[string]int, len(categories))
	for cat := range categories {
		hits := 0
		for _, want := range Categories[cat] {
			for _, have := range skills {
				if strings.EqualFold(strings.TrimSpace(have), want) {
					hits++
					break
				}
			}
		}
		if hits == 0 {
			out[cat] = 0
			continue
		}
		out[cat] = min(coverageMax, coverageBase+coveragePerHit*hits)
	}
	return out
}
