package usecase

import (
	"context"
	"log"
	"strings"

	"rerank/internal/domain/candidate"
	"rerank/internal/repository"
)

const (
	DefaultPageLimit = 50
	MaxPageLimit     = 1000
)

const (
	ScopeGlobal   = "global"
	ScopeRegion   = "region"
	ScopeIndustry = "industry"
)

type LeaderboardParams struct {
	Limit  int
	Offset int
}

// Normalize applies the paging defaults. A negative offset is rejected.
func (p LeaderboardParams) Normalize() (LeaderboardParams, error) {
	if p.Offset < 0 {
		return p, ErrInvalidInput
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p, nil
}

type LeaderboardUsecase interface {
	Global(ctx context.Context, params LeaderboardParams) ([]candidate.WithRank, error)
	Regional(ctx context.Context, region string, params LeaderboardParams) ([]candidate.WithRank, error)
	Industry(ctx context.Context, industry string, params LeaderboardParams) ([]candidate.WithRank, error)
}

type Leaderboard struct {
	repo   repository.CandidateRepository
	cache  SearchCache
	logger *log.Logger
}

func NewLeaderboardUsecase(repo repository.CandidateRepository, cache SearchCache, logger *log.Logger) *Leaderboard {
	return &Leaderboard{repo: repo, cache: cache, logger: logger}
}

func (u *Leaderboard) Global(ctx context.Context, params LeaderboardParams) ([]candidate.WithRank, error) {
	return u.read(ctx, ScopeGlobal, "", params, func(p LeaderboardParams) ([]candidate.WithRank, error) {
		return u.repo.GlobalLeaderboard(ctx, p.Limit, p.Offset)
	})
}

func (u *Leaderboard) Regional(ctx context.Context, region string, params LeaderboardParams) ([]candidate.WithRank, error) {
	region = strings.TrimSpace(region)
	if region == "" {
		return nil, ErrInvalidInput
	}
	return u.read(ctx, ScopeRegion, region, params, func(p LeaderboardParams) ([]candidate.WithRank, error) {
		return u.repo.RegionalLeaderboard(ctx, region, p.Limit, p.Offset)
	})
}

func (u *Leaderboard) Industry(ctx context.Context, industry string, params LeaderboardParams) ([]candidate.WithRank, error) {
	industry = strings.TrimSpace(industry)
	if industry == "" {
		return nil, ErrInvalidInput
	}
	return u.read(ctx, ScopeIndustry, industry, params, func(p LeaderboardParams) ([]candidate.WithRank, error) {
		return u.repo.IndustryLeaderboard(ctx, industry, p.Limit, p.Offset)
	})
}

func (u *Leaderboard) read(ctx context.Context, scope, value string, params LeaderboardParams, load func(LeaderboardParams) ([]candidate.WithRank, error)) ([]candidate.WithRank, error) {
	p, err := params.Normalize()
	if err != nil {
		return nil, err
	}

	key := LeaderboardCacheKey(scope, value, p.Limit, p.Offset, u.repo.Version())
	rows, err := cachedRead(ctx, u.cache, u.logger, "Leaderboard", key, func() ([]candidate.WithRank, error) {
		return load(p)
	})
	if err != nil {
		logf(u.logger, "[Leaderboard] load failed scope=%s value=%q err=%v", scope, value, err)
		return nil, ErrInternal
	}
	if rows == nil {
		rows = []candidate.WithRank{}
	}
	return rows, nil
}
