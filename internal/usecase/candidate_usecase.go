package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"rerank/internal/domain/candidate"
	"rerank/internal/repository"
	"rerank/internal/resume"
	"rerank/internal/search"
)

const defaultIndustry = "Technology"

type CreateCandidateInput struct {
	Name                string
	Title               string
	Location            string
	Company             *string
	Experience          *string
	ImageURL            *string
	Email               *string
	SkillsScore         int
	CertificationsScore int
	ExperienceScore     int
	IndustryScore       int
	Skills              []string
	Badge               *string
	Region              string
	Industry            string
}

type CandidateUsecase interface {
	Get(ctx context.Context, id string) (candidate.Candidate, error)
	Search(ctx context.Context, filters search.Filters) ([]candidate.Candidate, error)
	Create(ctx context.Context, in CreateCandidateInput) (candidate.Candidate, error)
	Update(ctx context.Context, id string, patch candidate.Patch) (candidate.Candidate, error)
	ListResumes(ctx context.Context, id string) ([]candidate.Resume, error)
}

type Candidates struct {
	repo   repository.CandidateRepository
	cache  SearchCache
	logger *log.Logger
}

func NewCandidateUsecase(repo repository.CandidateRepository, cache SearchCache, logger *log.Logger) *Candidates {
	return &Candidates{repo: repo, cache: cache, logger: logger}
}

func (u *Candidates) Get(ctx context.Context, id string) (candidate.Candidate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	c, err := u.repo.GetCandidate(ctx, id)
	if err != nil {
		return candidate.Candidate{}, mapRepoError(err)
	}
	return c, nil
}

func (u *Candidates) Search(ctx context.Context, filters search.Filters) ([]candidate.Candidate, error) {
	f := filters.Normalize()
	if f.MinScore != nil && f.MaxScore != nil && *f.MinScore > *f.MaxScore {
		return []candidate.Candidate{}, nil
	}

	load := func() ([]candidate.Candidate, error) {
		return u.repo.SearchCandidates(ctx, f)
	}

	var (
		out []candidate.Candidate
		err error
	)
	if f.HasFilter() {
		out, err = cachedRead(ctx, u.cache, u.logger, "Search", CandidateSearchCacheKey(f, u.repo.Version()), load)
	} else {
		out, err = load()
	}
	if err != nil {
		logf(u.logger, "[Search] failed err=%v", err)
		return nil, ErrInternal
	}
	if out == nil {
		out = []candidate.Candidate{}
	}
	return out, nil
}

func (u *Candidates) Create(ctx context.Context, in CreateCandidateInput) (candidate.Candidate, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Title = strings.TrimSpace(in.Title)
	in.Location = strings.TrimSpace(in.Location)
	if in.Name == "" || in.Title == "" {
		return candidate.Candidate{}, ErrInvalidInput
	}
	if in.SkillsScore < 0 || in.CertificationsScore < 0 || in.ExperienceScore < 0 || in.IndustryScore < 0 {
		return candidate.Candidate{}, ErrInvalidInput
	}

	region := strings.TrimSpace(in.Region)
	if region == "" {
		region = resume.ClassifyRegion(in.Location)
	}
	industry := strings.TrimSpace(in.Industry)
	if industry == "" {
		industry = defaultIndustry
	}

	created, err := u.repo.CreateCandidate(ctx, candidate.NewCandidate{
		Name:                in.Name,
		Title:               in.Title,
		Location:            in.Location,
		Company:             in.Company,
		Experience:          in.Experience,
		ImageURL:            in.ImageURL,
		Email:               in.Email,
		SkillsScore:         in.SkillsScore,
		CertificationsScore: in.CertificationsScore,
		ExperienceScore:     in.ExperienceScore,
		IndustryScore:       in.IndustryScore,
		Skills:              cleanSkills(in.Skills),
		Badge:               in.Badge,
		Region:              region,
		Industry:            industry,
	})
	if err != nil {
		return candidate.Candidate{}, mapRepoError(err)
	}
	logf(u.logger, "[Candidates] created id=%s overall=%d", created.ID, created.OverallScore)
	return created, nil
}

func (u *Candidates) Update(ctx context.Context, id string, patch candidate.Patch) (candidate.Candidate, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return candidate.Candidate{}, ErrCandidateNotFound
	}
	if patch.IsEmpty() {
		return candidate.Candidate{}, ErrInvalidInput
	}
	for _, v := range []*int{patch.SkillsScore, patch.CertificationsScore, patch.ExperienceScore, patch.IndustryScore} {
		if v != nil && *v < 0 {
			return candidate.Candidate{}, ErrInvalidInput
		}
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return candidate.Candidate{}, ErrInvalidInput
	}
	if patch.Skills != nil {
		patch.Skills = cleanSkills(patch.Skills)
	}

	updated, err := u.repo.UpdateCandidate(ctx, id, patch)
	if err != nil {
		return candidate.Candidate{}, mapRepoError(err)
	}
	return updated, nil
}

func (u *Candidates) ListResumes(ctx context.Context, id string) ([]candidate.Resume, error) {
	if _, err := u.Get(ctx, id); err != nil {
		return nil, err
	}
	resumes, err := u.repo.GetResumesByCandidate(ctx, id)
	if err != nil {
		return nil, ErrInternal
	}
	// listings never carry the document itself
	for i := range resumes {
		resumes[i].Content = nil
	}
	return resumes, nil
}

func cleanSkills(in []string) []string {
	out := make([]string, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		k := strings.ToLower(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}
	return out
}

func mapRepoError(err error) error {
	if errors.Is(err, candidate.ErrNotFound) {
		return ErrCandidateNotFound
	}
	return ErrInternal
}
