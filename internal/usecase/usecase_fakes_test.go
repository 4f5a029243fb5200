package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"rerank/internal/domain/candidate"
	"rerank/internal/repository"
	"rerank/internal/search"
)

type fakeCache struct {
	mu      sync.Mutex
	values  map[string][]byte
	locks   map[string]bool
	gets    int
	sets    int
	getErr  error
	lockErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{values: map[string][]byte{}, locks: map[string]bool{}}
}

func (c *fakeCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.values[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *fakeCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.sets++
	c.values[key] = b
	return nil
}

func (c *fakeCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.values, key)
	delete(c.locks, key)
	return nil
}

func (c *fakeCache) SetIfNotExists(_ context.Context, key string, _ string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return false, c.lockErr
	}
	if c.locks[key] {
		return false, nil
	}
	c.locks[key] = true
	return true, nil
}

var errStoreDown = errors.New("store down")

// failingRepo fails every read it overrides. Methods it does not override
// panic through the nil embedded interface.
type failingRepo struct {
	repository.CandidateRepository
}

func (failingRepo) Version() uint64 { return 1 }

func (failingRepo) GlobalLeaderboard(context.Context, int, int) ([]candidate.WithRank, error) {
	return nil, errStoreDown
}

func (failingRepo) SearchCandidates(context.Context, search.Filters) ([]candidate.Candidate, error) {
	return nil, errStoreDown
}

func (failingRepo) GetTotalCandidateCount(context.Context) (int, error) {
	return 0, errStoreDown
}

func (failingRepo) CreateResume(context.Context, candidate.NewResume) (candidate.Resume, error) {
	return candidate.Resume{}, errStoreDown
}

func (failingRepo) GetCandidate(context.Context, string) (candidate.Candidate, error) {
	return candidate.Candidate{}, errStoreDown
}

func seededStore() *repository.MemoryStore {
	s := repository.NewMemoryStore()
	s.Seed(repository.SeedCandidates())
	return s
}
