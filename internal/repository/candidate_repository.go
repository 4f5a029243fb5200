package repository

import (
	"context"

	"rerank/internal/domain/candidate"
	"rerank/internal/search"
)

// TotalCandidatePool is the advertised size of the global talent pool. It is
// reported by analytics regardless of how many candidates are stored.
const TotalCandidatePool = 15000

const topSkillsLimit = 10

type SkillCount struct {
	Skill string `json:"skill"`
	Count int    `json:"count"`
}

type CandidateRepository interface {
	GetCandidate(ctx context.Context, id string) (candidate.Candidate, error)
	GetCandidateByName(ctx context.Context, name string) (candidate.Candidate, error)
	CreateCandidate(ctx context.Context, in candidate.NewCandidate) (candidate.Candidate, error)
	UpdateCandidate(ctx context.Context, id string, patch candidate.Patch) (candidate.Candidate, error)

	SearchCandidates(ctx context.Context, filters search.Filters) ([]candidate.Candidate, error)
	GlobalLeaderboard(ctx context.Context, limit, offset int) ([]candidate.WithRank, error)
	RegionalLeaderboard(ctx context.Context, region string, limit, offset int) ([]candidate.WithRank, error)
	IndustryLeaderboard(ctx context.Context, industry string, limit, offset int) ([]candidate.WithRank, error)

	CreateResume(ctx context.Context, in candidate.NewResume) (candidate.Resume, error)
	GetResumesByCandidate(ctx context.Context, candidateID string) ([]candidate.Resume, error)

	GetTotalCandidateCount(ctx context.Context) (int, error)
	GetAverageScore(ctx context.Context) (int, error)
	GetTopSkills(ctx context.Context) ([]SkillCount, error)

	// Version changes on every mutation.
	Version() uint64
}

type ChangeKind string

const (
	CandidateCreated ChangeKind = "candidate.created"
	CandidateUpdated ChangeKind = "candidate.updated"
	ResumeCreated    ChangeKind = "resume.created"
	StoreRestored    ChangeKind = "store.restored"
)

// ChangeEvent describes a completed mutation. Candidate and Resume are copies.
type ChangeEvent struct {
	Kind      ChangeKind
	Version   uint64
	Candidate *candidate.Candidate
	Resume    *candidate.Resume
}

type Listener func(ChangeEvent)
