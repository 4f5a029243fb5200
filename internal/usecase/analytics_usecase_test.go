package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestAnalytics_Summary(t *testing.T) {
	cache := newFakeCache()
	uc := NewAnalyticsUsecase(seededStore(), cache, nil)

	got, err := uc.Summary(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got.TotalCandidates != 15000 || got.Countries != 152 || got.AccuracyRate != 98.2 {
		t.Fatalf("unexpected constants %+v", got)
	}
	if got.AverageScore <= 0 {
		t.Fatalf("expected a positive average, got %d", got.AverageScore)
	}
	if len(got.TopSkills) == 0 || len(got.TopSkills) > 10 {
		t.Fatalf("unexpected top skills %v", got.TopSkills)
	}
	for i := 1; i < len(got.TopSkills); i++ {
		if got.TopSkills[i].Count > got.TopSkills[i-1].Count {
			t.Fatalf("top skills not sorted: %v", got.TopSkills)
		}
	}

	if _, err := uc.Summary(context.Background()); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected cached summary, got %d fills", cache.sets)
	}

	broken := NewAnalyticsUsecase(failingRepo{}, nil, nil)
	if _, err := broken.Summary(context.Background()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}
