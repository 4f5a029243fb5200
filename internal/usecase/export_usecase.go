package usecase

import (
	"context"
	"io"
	"log"
	"time"

	"rerank/internal/domain/candidate"
	"rerank/internal/export"
	"rerank/internal/repository"
)

// ExportRowLimit caps how many leaderboard rows an export contains.
const ExportRowLimit = 1000

type ExportUsecase interface {
	WriteCSV(ctx context.Context, w io.Writer) error
	WriteXLSX(ctx context.Context, w io.Writer) error
}

type Exports struct {
	repo   repository.CandidateRepository
	logger *log.Logger
	now    func() time.Time
}

func NewExportUsecase(repo repository.CandidateRepository, logger *log.Logger) *Exports {
	return &Exports{repo: repo, logger: logger, now: time.Now}
}

func (u *Exports) WriteCSV(ctx context.Context, w io.Writer) error {
	rows, err := u.rows(ctx)
	if err != nil {
		return err
	}
	if err := export.WriteCSV(w, rows); err != nil {
		logf(u.logger, "[Export] csv write failed err=%v", err)
		return ErrInternal
	}
	return nil
}

func (u *Exports) WriteXLSX(ctx context.Context, w io.Writer) error {
	rows, err := u.rows(ctx)
	if err != nil {
		return err
	}
	if err := export.WriteXLSX(w, rows, u.now()); err != nil {
		logf(u.logger, "[Export] xlsx write failed err=%v", err)
		return ErrInternal
	}
	return nil
}

func (u *Exports) rows(ctx context.Context) ([]candidate.WithRank, error) {
	rows, err := u.repo.GlobalLeaderboard(ctx, ExportRowLimit, 0)
	if err != nil {
		logf(u.logger, "[Export] leaderboard load failed err=%v", err)
		return nil, ErrInternal
	}
	return rows, nil
}
