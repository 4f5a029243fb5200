package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"rerank/internal/domain/candidate"
	"rerank/internal/domain/scoring"
	"rerank/internal/ranking"
	"rerank/internal/search"

	"github.com/google/uuid"
)

// MemoryStore keeps candidates and resumes in process memory. Mutations and
// the rank recompute that follows them run under one write lock; readers get
// deep copies.
type MemoryStore struct {
	mu         sync.RWMutex
	candidates map[string]*candidate.Candidate
	order      []string
	resumes    []*candidate.Resume
	version    uint64

	listenersMu sync.RWMutex
	listeners   []Listener

	now   func() time.Time
	newID func() string
}

var _ CandidateRepository = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		candidates: make(map[string]*candidate.Candidate),
		now:        time.Now,
		newID:      func() string { return uuid.NewString() },
	}
}

// Subscribe registers l for change events. Events are delivered synchronously
// after the store lock is released.
func (s *MemoryStore) Subscribe(l Listener) {
	if l == nil {
		return
	}
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, l)
	s.listenersMu.Unlock()
}

// Seed inserts fully formed candidates (overall score included) and
// recomputes ranks. Empty ids are assigned. No events are published.
func (s *MemoryStore) Seed(cands []candidate.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range cands {
		cp := c.Clone()
		if strings.TrimSpace(cp.ID) == "" {
			cp.ID = s.newID()
		}
		if cp.Skills == nil {
			cp.Skills = []string{}
		}
		s.insertLocked(&cp)
	}
	s.recomputeLocked()
	s.version++
}

// Snapshot returns copies of every candidate and resume in insertion order.
func (s *MemoryStore) Snapshot() ([]candidate.Candidate, []candidate.Resume) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cands := make([]candidate.Candidate, 0, len(s.order))
	for _, id := range s.order {
		cands = append(cands, s.candidates[id].Clone())
	}
	resumes := make([]candidate.Resume, 0, len(s.resumes))
	for _, r := range s.resumes {
		resumes = append(resumes, r.Clone())
	}
	return cands, resumes
}

// Restore replaces the whole store content. Ranks are recomputed.
func (s *MemoryStore) Restore(cands []candidate.Candidate, resumes []candidate.Resume) {
	s.mu.Lock()
	s.candidates = make(map[string]*candidate.Candidate, len(cands))
	s.order = make([]string, 0, len(cands))
	for _, c := range cands {
		cp := c.Clone()
		s.insertLocked(&cp)
	}
	s.resumes = make([]*candidate.Resume, 0, len(resumes))
	for _, r := range resumes {
		cp := r.Clone()
		s.resumes = append(s.resumes, &cp)
	}
	s.recomputeLocked()
	s.version++
	ev := ChangeEvent{Kind: StoreRestored, Version: s.version}
	s.mu.Unlock()

	s.publish(ev)
}

func (s *MemoryStore) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

func (s *MemoryStore) GetCandidate(_ context.Context, id string) (candidate.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.candidates[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	return c.Clone(), nil
}

func (s *MemoryStore) GetCandidateByName(_ context.Context, name string) (candidate.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range s.order {
		c := s.candidates[id]
		if strings.EqualFold(c.Name, name) {
			return c.Clone(), nil
		}
	}
	return candidate.Candidate{}, candidate.ErrNotFound
}

func (s *MemoryStore) CreateCandidate(_ context.Context, in candidate.NewCandidate) (candidate.Candidate, error) {
	skills := make([]string, len(in.Skills))
	copy(skills, in.Skills)

	c := &candidate.Candidate{
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
		Skills:              skills,
		Badge:               in.Badge,
		Region:              in.Region,
		Industry:            in.Industry,
	}
	c.OverallScore = scoring.Overall(scoring.SubScores{
		Skills:         in.SkillsScore,
		Certifications: in.CertificationsScore,
		Experience:     in.ExperienceScore,
		Industry:       in.IndustryScore,
	})
	*c = c.Clone()

	s.mu.Lock()
	c.ID = s.newID()
	s.insertLocked(c)
	s.recomputeLocked()
	s.version++
	out := c.Clone()
	ev := ChangeEvent{Kind: CandidateCreated, Version: s.version, Candidate: cloneCandidatePtr(out)}
	s.mu.Unlock()

	s.publish(ev)
	return out, nil
}

func (s *MemoryStore) UpdateCandidate(_ context.Context, id string, patch candidate.Patch) (candidate.Candidate, error) {
	s.mu.Lock()
	c, ok := s.candidates[id]
	if !ok {
		s.mu.Unlock()
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	patch.Apply(c)
	s.recomputeLocked()
	s.version++
	out := c.Clone()
	ev := ChangeEvent{Kind: CandidateUpdated, Version: s.version, Candidate: cloneCandidatePtr(out)}
	s.mu.Unlock()

	s.publish(ev)
	return out, nil
}

func (s *MemoryStore) SearchCandidates(_ context.Context, filters search.Filters) ([]candidate.Candidate, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := search.Apply(s.orderedLocked(), filters)
	ranking.SortByScore(matched)

	out := make([]candidate.Candidate, 0, len(matched))
	for _, c := range matched {
		out = append(out, c.Clone())
	}
	return out, nil
}

func (s *MemoryStore) GlobalLeaderboard(_ context.Context, limit, offset int) ([]candidate.WithRank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ranking.Leaderboard(s.orderedLocked(), limit, offset), nil
}

func (s *MemoryStore) RegionalLeaderboard(_ context.Context, region string, limit, offset int) ([]candidate.WithRank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ranking.Leaderboard(s.scopedLocked(func(c *candidate.Candidate) bool {
		return strings.EqualFold(c.Region, region)
	}), limit, offset), nil
}

func (s *MemoryStore) IndustryLeaderboard(_ context.Context, industry string, limit, offset int) ([]candidate.WithRank, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return ranking.Leaderboard(s.scopedLocked(func(c *candidate.Candidate) bool {
		return strings.EqualFold(c.Industry, industry)
	}), limit, offset), nil
}

func (s *MemoryStore) CreateResume(_ context.Context, in candidate.NewResume) (candidate.Resume, error) {
	r := &candidate.Resume{
		CandidateID: in.CandidateID,
		Filename:    in.Filename,
		Content:     in.Content,
	}
	*r = r.Clone()

	s.mu.Lock()
	r.ID = s.newID()
	r.UploadedAt = s.now().UTC().Format(time.RFC3339)
	s.resumes = append(s.resumes, r)
	s.version++
	out := r.Clone()
	evResume := out.Clone()
	ev := ChangeEvent{Kind: ResumeCreated, Version: s.version, Resume: &evResume}
	s.mu.Unlock()

	s.publish(ev)
	return out, nil
}

func (s *MemoryStore) GetResumesByCandidate(_ context.Context, candidateID string) ([]candidate.Resume, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]candidate.Resume, 0)
	for _, r := range s.resumes {
		if r.CandidateID != nil && *r.CandidateID == candidateID {
			out = append(out, r.Clone())
		}
	}
	return out, nil
}

func (s *MemoryStore) GetTotalCandidateCount(_ context.Context) (int, error) {
	return TotalCandidatePool, nil
}

func (s *MemoryStore) GetAverageScore(_ context.Context) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.order)
	if n == 0 {
		return 0, nil
	}
	total := 0
	for _, id := range s.order {
		total += s.candidates[id].OverallScore
	}
	return roundDiv(total, n), nil
}

func (s *MemoryStore) GetTopSkills(_ context.Context) ([]SkillCount, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make([]SkillCount, 0)
	index := make(map[string]int)
	for _, id := range s.order {
		for _, skill := range s.candidates[id].Skills {
			i, ok := index[skill]
			if !ok {
				index[skill] = len(counts)
				counts = append(counts, SkillCount{Skill: skill, Count: 1})
				continue
			}
			counts[i].Count++
		}
	}

	sortSkillCounts(counts)
	if len(counts) > topSkillsLimit {
		counts = counts[:topSkillsLimit]
	}
	return counts, nil
}

func (s *MemoryStore) insertLocked(c *candidate.Candidate) {
	if _, exists := s.candidates[c.ID]; !exists {
		s.order = append(s.order, c.ID)
	}
	s.candidates[c.ID] = c
}

func (s *MemoryStore) recomputeLocked() {
	ranking.Recompute(s.orderedLocked())
}

func (s *MemoryStore) orderedLocked() []*candidate.Candidate {
	out := make([]*candidate.Candidate, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.candidates[id])
	}
	return out
}

func (s *MemoryStore) scopedLocked(keep func(*candidate.Candidate) bool) []*candidate.Candidate {
	out := make([]*candidate.Candidate, 0)
	for _, id := range s.order {
		c := s.candidates[id]
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s *MemoryStore) publish(ev ChangeEvent) {
	s.listenersMu.RLock()
	ls := make([]Listener, len(s.listeners))
	copy(ls, s.listeners)
	s.listenersMu.RUnlock()

	for _, l := range ls {
		l(ev)
	}
}

func cloneCandidatePtr(c candidate.Candidate) *candidate.Candidate {
	cp := c.Clone()
	return &cp
}

// roundDiv rounds a/b to the nearest integer, halves toward +Inf. b must be
// positive.
func roundDiv(a, b int) int {
	n, d := 2*a+b, 2*b
	q := n / d
	if n%d != 0 && n < 0 {
		q--
	}
	return q
}

// sortSkillCounts orders by count desc; equal counts keep first-seen order.
func sortSkillCounts(counts []SkillCount) {
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
}
