package seeder

import (
	"context"
	"log"

	"rerank/internal/database"
	"rerank/internal/infrastructure/persistence/postgres"
	"rerank/internal/repository"
)

// CandidatesSeeder writes the boot candidate set into an empty mirror so a
// fresh database restores the same leaderboard the in-memory seed produces.
// It expects migration.Runner to have run first.
type CandidatesSeeder struct {
	Logger *log.Logger
}

func (CandidatesSeeder) Name() string { return "candidates" }

func (s CandidatesSeeder) Run(ctx context.Context, db database.DB) error {
	var n int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		if s.Logger != nil {
			s.Logger.Printf("[Seeder] candidates already present count=%d, skipping", n)
		}
		return nil
	}

	store := repository.NewMemoryStore()
	store.Seed(repository.SeedCandidates())
	cands, resumes := store.Snapshot()

	return postgres.NewCandidateMirror(db, s.Logger).ReplaceAll(ctx, cands, resumes)
}
