package dedup

import "context"

// Deduplicator tracks posting IDs that have already entered a run.
// Duplicate records are skipped and counted, never processed twice.
//
// The in-memory backend scopes deduplication to one run, which keeps a run
// idempotent. The Redis backend extends the scope across runs for setups
// that re-ingest overlapping source exports.
type Deduplicator interface {
	// Seen reports whether the posting ID was marked before.
	Seen(ctx context.Context, postingID string) (bool, error)
	// Mark records the posting ID as processed.
	Mark(ctx context.Context, postingID string) error
}
