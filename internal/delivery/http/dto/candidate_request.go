package dto

import (
	"rerank/internal/domain/candidate"
	"rerank/internal/usecase"
)

type CreateCandidateRequest struct {
	Name                string   `json:"name"`
	Title               string   `json:"title"`
	Location            string   `json:"location"`
	Company             *string  `json:"company"`
	Experience          *string  `json:"experience"`
	ImageURL            *string  `json:"imageUrl"`
	Email               *string  `json:"email"`
	SkillsScore         int      `json:"skillsScore"`
	CertificationsScore int      `json:"certificationsScore"`
	ExperienceScore     int      `json:"experienceScore"`
	IndustryScore       int      `json:"industryScore"`
	Skills              []string `json:"skills"`
	Badge               *string  `json:"badge"`
	Region              string   `json:"region"`
	Industry            string   `json:"industry"`
}

func (r CreateCandidateRequest) ToInput() usecase.CreateCandidateInput {
	return usecase.CreateCandidateInput{
		Name:                r.Name,
		Title:               r.Title,
		Location:            r.Location,
		Company:             r.Company,
		Experience:          r.Experience,
		ImageURL:            r.ImageURL,
		Email:               r.Email,
		SkillsScore:         r.SkillsScore,
		CertificationsScore: r.CertificationsScore,
		ExperienceScore:     r.ExperienceScore,
		IndustryScore:       r.IndustryScore,
		Skills:              r.Skills,
		Badge:               r.Badge,
		Region:              r.Region,
		Industry:            r.Industry,
	}
}

// UpdateCandidateRequest is a partial update; absent fields stay unchanged.
type UpdateCandidateRequest struct {
	Name                *string  `json:"name"`
	Title               *string  `json:"title"`
	Location            *string  `json:"location"`
	Company             *string  `json:"company"`
	Experience          *string  `json:"experience"`
	ImageURL            *string  `json:"imageUrl"`
	SkillsScore         *int     `json:"skillsScore"`
	CertificationsScore *int     `json:"certificationsScore"`
	ExperienceScore     *int     `json:"experienceScore"`
	IndustryScore       *int     `json:"industryScore"`
	Skills              []string `json:"skills"`
	Badge               *string  `json:"badge"`
	Region              *string  `json:"region"`
	Industry            *string  `json:"industry"`
}

func (r UpdateCandidateRequest) ToPatch() candidate.Patch {
	return candidate.Patch{
		Name:                r.Name,
		Title:               r.Title,
		Location:            r.Location,
		Company:             r.Company,
		Experience:          r.Experience,
		ImageURL:            r.ImageURL,
		SkillsScore:         r.SkillsScore,
		CertificationsScore: r.CertificationsScore,
		ExperienceScore:     r.ExperienceScore,
		IndustryScore:       r.IndustryScore,
		Skills:              r.Skills,
		Badge:               r.Badge,
		Region:              r.Region,
		Industry:            r.Industry,
	}
}
