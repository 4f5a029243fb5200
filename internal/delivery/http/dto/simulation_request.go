package dto

import (
	"rerank/internal/simulation"
	"rerank/internal/usecase"
)

type HiringSimulationRequest struct {
	CandidateIDs []string         `json:"candidateIds"`
	Team         *simulation.Team `json:"team"`
}

func (r HiringSimulationRequest) ToInput() usecase.SimulationInput {
	return usecase.SimulationInput{CandidateIDs: r.CandidateIDs, Team: r.Team}
}
