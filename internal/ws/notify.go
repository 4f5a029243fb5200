package ws

import (
	"encoding/json"
	"time"

	"rerank/internal/repository"
)

// LeaderboardEvent is pushed to subscribers whenever the store changes.
type LeaderboardEvent struct {
	Type         string `json:"type"`
	Version      uint64 `json:"version"`
	CandidateID  string `json:"candidateId,omitempty"`
	Name         string `json:"name,omitempty"`
	OverallScore *int   `json:"overallScore,omitempty"`
	GlobalRank   *int   `json:"globalRank,omitempty"`
	Timestamp    string `json:"timestamp"`
}

func NewLeaderboardEvent(evt repository.ChangeEvent, now time.Time) LeaderboardEvent {
	out := LeaderboardEvent{
		Type:      string(evt.Kind),
		Version:   evt.Version,
		Timestamp: now.UTC().Format(time.RFC3339),
	}
	switch {
	case evt.Candidate != nil:
		c := evt.Candidate
		score := c.OverallScore
		out.CandidateID = c.ID
		out.Name = c.Name
		out.OverallScore = &score
		out.GlobalRank = c.GlobalRank
	case evt.Resume != nil && evt.Resume.CandidateID != nil:
		out.CandidateID = *evt.Resume.CandidateID
	}
	return out
}

// Listener broadcasts store changes to the hub.
func (h *Hub) Listener() repository.Listener {
	return func(evt repository.ChangeEvent) {
		b, err := json.Marshal(NewLeaderboardEvent(evt, time.Now()))
		if err != nil {
			return
		}
		h.Broadcast(b)
	}
}
