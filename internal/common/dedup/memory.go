package dedup

import (
	"context"
	"sync"
)

// MemoryDeduplicator tracks seen posting IDs in process memory. This is
// the default backend: a fresh one per run keeps re-runs on identical
// input byte-for-byte reproducible.
type MemoryDeduplicator struct {
	mu   sync.Mutex
	seen map[string]struct{}
}

// NewMemoryDeduplicator creates an empty in-memory deduplicator.
func NewMemoryDeduplicator() *MemoryDeduplicator {
	return &MemoryDeduplicator{seen: make(map[string]struct{})}
}

func (d *MemoryDeduplicator) Seen(_ context.Context, postingID string) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.seen[postingID]
	return ok, nil
}

func (d *MemoryDeduplicator) Mark(_ context.Context, postingID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen[postingID] = struct{}{}
	return nil
}
