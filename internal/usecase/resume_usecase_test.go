package usecase

import (
	"context"
	"errors"
	"testing"

	"rerank/internal/domain/scoring"
	"rerank/internal/resume"
)

func newResumeUsecase() (*Resumes, func() int) {
	store := seededStore()
	uc := NewResumeUsecase(store, resume.NewDocExtractor(), resume.NewDeterministicAnalyzer(), nil)
	count := func() int {
		n, _ := store.GetTotalCandidateCount(context.Background())
		return n
	}
	return uc, count
}

func textFile(name, body string) ResumeFile {
	return ResumeFile{Filename: name, Size: int64(len(body)), Content: []byte(body)}
}

func TestResumes_Rate(t *testing.T) {
	uc, _ := newResumeUsecase()
	ctx := context.Background()
	f := textFile("cv.txt", "Backend engineer. Golang, Kubernetes and PostgreSQL in production.")

	got, err := uc.Rate(ctx, f)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.ResumeID == "" {
		t.Fatalf("expected a stored resume id")
	}
	if len(got.ExtractedSkills) != 3 {
		t.Fatalf("expected 3 extracted skills, got %v", got.ExtractedSkills)
	}
	if len(got.Recommendations) != 3 {
		t.Fatalf("expected 3 recommendations, got %d", len(got.Recommendations))
	}
	s := got.Scores
	if s.SkillsScore < 2150 || s.SkillsScore >= 3150 {
		t.Fatalf("skills score out of range: %d", s.SkillsScore)
	}
	want := scoring.Overall(scoring.SubScores{
		Skills: s.SkillsScore, Certifications: s.CertificationsScore,
		Experience: s.ExperienceScore, Industry: s.IndustryScore,
	})
	if s.OverallScore != want {
		t.Fatalf("overall %d, want %d", s.OverallScore, want)
	}

	again, _ := uc.Rate(ctx, f)
	if again.Scores != got.Scores {
		t.Fatalf("rating is not deterministic: %+v vs %+v", again.Scores, got.Scores)
	}
	if again.ResumeID == got.ResumeID {
		t.Fatalf("each rating should store a new resume")
	}
}

func TestResumes_RateFallsBackToPlaceholderSkills(t *testing.T) {
	uc, _ := newResumeUsecase()
	got, err := uc.Rate(context.Background(), textFile("cv.txt", "nothing relevant here"))
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got.ExtractedSkills) != len(resume.RatePlaceholderSkills) {
		t.Fatalf("expected placeholder skills, got %v", got.ExtractedSkills)
	}
}

func TestResumes_Upload(t *testing.T) {
	store := seededStore()
	uc := NewResumeUsecase(store, resume.NewDocExtractor(), resume.NewDeterministicAnalyzer(), nil)
	ctx := context.Background()

	got, err := uc.Upload(ctx, UploadInput{
		File:     textFile("cv.txt", "Go and AWS"),
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Location: "Berlin, DE",
		Title:    "Engineer",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !got.Success || got.CandidateID == "" {
		t.Fatalf("unexpected result %+v", got)
	}

	c, err := store.GetCandidate(ctx, got.CandidateID)
	if err != nil {
		t.Fatalf("candidate not stored: %v", err)
	}
	if c.OverallScore != got.Score {
		t.Fatalf("reported score %d differs from stored %d", got.Score, c.OverallScore)
	}
	b := got.Breakdown
	if b.Skills < 600 || b.Skills >= 1000 || b.Industry < 600 || b.Industry >= 1000 {
		t.Fatalf("intake breakdown out of range: %+v", b)
	}
	if c.Region != "Europe" || c.Industry != "Technology" {
		t.Fatalf("unexpected region/industry %q/%q", c.Region, c.Industry)
	}
	if c.Email == nil || *c.Email != "jane@example.com" {
		t.Fatalf("email not stored")
	}
	if c.Experience == nil || *c.Experience != "Mid-level" {
		t.Fatalf("experience not defaulted")
	}

	resumes, _ := store.GetResumesByCandidate(ctx, got.CandidateID)
	if len(resumes) != 1 || resumes[0].Filename != "cv.txt" {
		t.Fatalf("resume not linked: %+v", resumes)
	}
}

func TestResumes_Rejections(t *testing.T) {
	ctx := context.Background()
	big := ResumeFile{Filename: "cv.pdf", Size: MaxResumeBytes + 1}

	tests := []struct {
		name string
		in   UploadInput
		want error
	}{
		{name: "missing file", in: UploadInput{Name: "a", Email: "b"}, want: ErrMissingResume},
		{name: "too large", in: UploadInput{File: big, Name: "a", Email: "b"}, want: ErrFileTooLarge},
		{name: "missing name", in: UploadInput{File: textFile("cv.txt", "x"), Email: "b"}, want: ErrMissingIdentity},
		{name: "missing email", in: UploadInput{File: textFile("cv.txt", "x"), Name: "a"}, want: ErrMissingIdentity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, count := newResumeUsecase()
			if _, err := uc.Upload(ctx, tt.in); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
			if n := count(); n != 15 {
				t.Fatalf("store changed on rejected upload: %d candidates", n)
			}
		})
	}

	uc, _ := newResumeUsecase()
	if _, err := uc.Rate(ctx, big); !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	broken := NewResumeUsecase(failingRepo{}, nil, resume.NewDeterministicAnalyzer(), nil)
	if _, err := broken.Rate(ctx, textFile("cv.txt", "x")); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
