package usecase

import (
	"context"
	"errors"
	"strings"

	"rerank/internal/repository"
	"rerank/internal/simulation"
)

type SimulationInput struct {
	CandidateIDs []string
	Team         *simulation.Team
}

type SimulationUsecase interface {
	Hiring(ctx context.Context, in SimulationInput) (simulation.Result, error)
}

type Simulations struct {
	repo repository.CandidateRepository
}

func NewSimulationUsecase(repo repository.CandidateRepository) *Simulations {
	return &Simulations{repo: repo}
}

func (u *Simulations) Hiring(ctx context.Context, in SimulationInput) (simulation.Result, error) {
	team := simulation.DefaultTeam()
	if in.Team != nil {
		team = *in.Team
		if team.CurrentSkills == nil {
			team.CurrentSkills = map[string]int{}
		}
	}

	seen := make(map[string]struct{}, len(in.CandidateIDs))
	hires := make([]simulation.Hire, 0, len(in.CandidateIDs))
	for _, id := range in.CandidateIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		c, err := u.repo.GetCandidate(ctx, id)
		if err != nil {
			return simulation.Result{}, mapRepoError(err)
		}
		hires = append(hires, simulation.Hire{
			ID:           c.ID,
			Name:         c.Name,
			OverallScore: c.OverallScore,
			Skills:       c.Skills,
		})
	}

	res, err := simulation.Simulate(team, hires)
	if err != nil {
		if errors.Is(err, simulation.ErrNoHires) || errors.Is(err, simulation.ErrInvalidTeam) {
			return simulation.Result{}, ErrInvalidInput
		}
		return simulation.Result{}, ErrInternal
	}
	return res, nil
}
