package seeder

import (
	"context"

	"rerank/internal/database"
)

// Seeder fills one table. Implementations must be safe to re-run.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
