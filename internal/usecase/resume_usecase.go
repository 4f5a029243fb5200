package usecase

import (
	"context"
	"encoding/base64"
	"log"
	"strings"

	"rerank/internal/domain/candidate"
	"rerank/internal/domain/scoring"
	"rerank/internal/repository"
	"rerank/internal/resume"
)

// MaxResumeBytes is the largest accepted resume upload.
const MaxResumeBytes = 10 * 1024 * 1024

const (
	intakeExperience = "Mid-level"
	intakeIndustry   = "Technology"
)

type ResumeFile struct {
	Filename string
	Size     int64
	Content  []byte
}

type RateResult struct {
	ResumeID        string            `json:"resumeId"`
	Scores          scoring.Breakdown `json:"scores"`
	ExtractedSkills []string          `json:"extractedSkills"`
	Recommendations []string          `json:"recommendations"`
}

type UploadInput struct {
	File     ResumeFile
	Name     string
	Email    string
	Location string
	Title    string
	// Bio is accepted for form compatibility and not stored.
	Bio string
}

type UploadBreakdown struct {
	Skills         int `json:"skills"`
	Experience     int `json:"experience"`
	Industry       int `json:"industry"`
	Certifications int `json:"certifications"`
}

type UploadResult struct {
	Success     bool            `json:"success"`
	CandidateID string          `json:"candidateId"`
	Score       int             `json:"score"`
	Breakdown   UploadBreakdown `json:"breakdown"`
}

type ResumeUsecase interface {
	Rate(ctx context.Context, file ResumeFile) (RateResult, error)
	Upload(ctx context.Context, in UploadInput) (UploadResult, error)
}

type Resumes struct {
	repo      repository.CandidateRepository
	extractor resume.TextExtractor
	analyzer  resume.Analyzer
	logger    *log.Logger
}

func NewResumeUsecase(repo repository.CandidateRepository, extractor resume.TextExtractor, analyzer resume.Analyzer, logger *log.Logger) *Resumes {
	return &Resumes{repo: repo, extractor: extractor, analyzer: analyzer, logger: logger}
}

func (u *Resumes) Rate(ctx context.Context, file ResumeFile) (RateResult, error) {
	if err := checkFile(file); err != nil {
		return RateResult{}, err
	}

	skills := resume.SkillsOrDefault(u.extract(file), resume.RatePlaceholderSkills)
	scores := u.analyzer.Rate(file.Content, skills)

	content := base64.StdEncoding.EncodeToString(file.Content)
	r, err := u.repo.CreateResume(ctx, candidate.NewResume{
		Filename: file.Filename,
		Content:  &content,
	})
	if err != nil {
		return RateResult{}, ErrInternal
	}

	recs := make([]string, len(resume.Recommendations))
	copy(recs, resume.Recommendations)

	logf(u.logger, "[Resumes] rated resume=%s overall=%d skills=%d", r.ID, scores.OverallScore, len(skills))
	return RateResult{
		ResumeID:        r.ID,
		Scores:          scores,
		ExtractedSkills: skills,
		Recommendations: recs,
	}, nil
}

// Upload creates a candidate from the form identity and the analysed
// document, then stores the document against it.
func (u *Resumes) Upload(ctx context.Context, in UploadInput) (UploadResult, error) {
	if err := checkFile(in.File); err != nil {
		return UploadResult{}, err
	}
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return UploadResult{}, ErrMissingIdentity
	}

	location := strings.TrimSpace(in.Location)
	skills := resume.SkillsOrDefault(u.extract(in.File), resume.IntakePlaceholderSkills)
	sub := u.analyzer.Intake(in.File.Content)
	experience := intakeExperience

	created, err := u.repo.CreateCandidate(ctx, candidate.NewCandidate{
		Name:                name,
		Title:               strings.TrimSpace(in.Title),
		Location:            location,
		Experience:          &experience,
		Email:               &email,
		SkillsScore:         sub.Skills,
		CertificationsScore: sub.Certifications,
		ExperienceScore:     sub.Experience,
		IndustryScore:       sub.Industry,
		Skills:              skills,
		Region:              resume.ClassifyRegion(location),
		Industry:            intakeIndustry,
	})
	if err != nil {
		return UploadResult{}, ErrInternal
	}

	content := base64.StdEncoding.EncodeToString(in.File.Content)
	cid := created.ID
	if _, err := u.repo.CreateResume(ctx, candidate.NewResume{
		CandidateID: &cid,
		Filename:    in.File.Filename,
		Content:     &content,
	}); err != nil {
		return UploadResult{}, ErrInternal
	}

	logf(u.logger, "[Resumes] intake candidate=%s overall=%d", created.ID, created.OverallScore)
	return UploadResult{
		Success:     true,
		CandidateID: created.ID,
		Score:       created.OverallScore,
		Breakdown: UploadBreakdown{
			Skills:         sub.Skills,
			Experience:     sub.Experience,
			Industry:       sub.Industry,
			Certifications: sub.Certifications,
		},
	}, nil
}

func (u *Resumes) extract(file ResumeFile) string {
	if u.extractor == nil {
		return ""
	}
	text, err := u.extractor.Extract(file.Filename, file.Content)
	if err != nil {
		logf(u.logger, "[Resumes] text extraction failed file=%q err=%v", file.Filename, err)
		return ""
	}
	return text
}

func checkFile(f ResumeFile) error {
	if strings.TrimSpace(f.Filename) == "" {
		return ErrMissingResume
	}
	if f.Size > MaxResumeBytes || int64(len(f.Content)) > MaxResumeBytes {
		return ErrFileTooLarge
	}
	return nil
}
