package indexer

import (
	"context"

	"github.com/project-tktt/job-market-etl/internal/domain"
)

// Loader persists a built table bundle to a storage backend. Dimensions
// are Type-1: each load overwrites the previous run's tables.
type Loader interface {
	Load(ctx context.Context, tables *domain.TableBundle) error
}

// Indexer pushes denormalized posting documents to a search backend.
type Indexer interface {
	BulkIndex(ctx context.Context, postings []*domain.NormalizedPosting) error
}
