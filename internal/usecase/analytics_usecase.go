package usecase

import (
	"context"
	"log"

	"rerank/internal/repository"
)

const (
	analyticsCountries    = 152
	analyticsAccuracyRate = 98.2
)

type Analytics struct {
	TotalCandidates int                     `json:"totalCandidates"`
	AverageScore    int                     `json:"averageScore"`
	TopSkills       []repository.SkillCount `json:"topSkills"`
	Countries       int                     `json:"countries"`
	AccuracyRate    float64                 `json:"accuracyRate"`
}

type AnalyticsUsecase interface {
	Summary(ctx context.Context) (Analytics, error)
}

type AnalyticsService struct {
	repo   repository.CandidateRepository
	cache  SearchCache
	logger *log.Logger
}

func NewAnalyticsUsecase(repo repository.CandidateRepository, cache SearchCache, logger *log.Logger) *AnalyticsService {
	return &AnalyticsService{repo: repo, cache: cache, logger: logger}
}

func (u *AnalyticsService) Summary(ctx context.Context) (Analytics, error) {
	out, err := cachedRead(ctx, u.cache, u.logger, "Analytics", AnalyticsCacheKey(u.repo.Version()), func() (Analytics, error) {
		total, err := u.repo.GetTotalCandidateCount(ctx)
		if err != nil {
			return Analytics{}, err
		}
		avg, err := u.repo.GetAverageScore(ctx)
		if err != nil {
			return Analytics{}, err
		}
		top, err := u.repo.GetTopSkills(ctx)
		if err != nil {
			return Analytics{}, err
		}
		if top == nil {
			top = []repository.SkillCount{}
		}
		return Analytics{
			TotalCandidates: total,
			AverageScore:    avg,
			TopSkills:       top,
			Countries:       analyticsCountries,
			AccuracyRate:    analyticsAccuracyRate,
		}, nil
	})
	if err != nil {
		logf(u.logger, "[Analytics] failed err=%v", err)
		return Analytics{}, ErrInternal
	}
	return out, nil
}
