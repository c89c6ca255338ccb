package store

import (
	"context"
	"sort"
	"sync"

	"github.com/kchason/CDO-Utility-Local-UUID/internal/pkg/pkgerror"
	"github.com/kchason/CDO-Utility-Local-UUID/internal/sample/entity"
)

// InMemoryStore keeps issued batches for the lifetime of the process. The
// demo service deliberately owns no persistence; reproducibility comes from
// the identifier provider, not from stored state.
type InMemoryStore struct {
	mu      sync.RWMutex
	batches map[string]*entity.Batch
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		batches: make(map[string]*entity.Batch),
	}
}

func (s *InMemoryStore) CreateBatch(ctx context.Context, batch entity.Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.batches[batch.ID]; exists {
		return pkgerror.NewBusiness("batch already exists", pkgerror.CodeConflict)
	}

	s.batches[batch.ID] = &batch

	return nil
}

func (s *InMemoryStore) UpdateBatch(ctx context.Context, batchID string, fn func(batch *entity.Batch)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	batch, ok := s.batches[batchID]
	if !ok {
		return pkgerror.ErrNotFound
	}

	fn(batch)

	return nil
}

func (s *InMemoryStore) GetBatch(ctx context.Context, batchID string) (entity.Batch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	batch, ok := s.batches[batchID]
	if !ok {
		return entity.Batch{}, pkgerror.ErrNotFound
	}

	copied := *batch
	copied.IDs = append([]string(nil), batch.IDs...)

	return copied, nil
}

func (s *InMemoryStore) ListBatches(ctx context.Context, page, pageSize int) ([]entity.Batch, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all := make([]entity.Batch, 0, len(s.batches))
	for _, batch := range s.batches {
		summary := *batch
		summary.IDs = nil // summaries stay light; fetch a batch for its ids
		all = append(all, summary)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt != all[j].CreatedAt {
			return all[i].CreatedAt > all[j].CreatedAt
		}
		return all[i].Seq > all[j].Seq
	})

	total := len(all)
	start := (page - 1) * pageSize
	if start >= total {
		return []entity.Batch{}, total, nil
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return all[start:end], total, nil
}

func (s *InMemoryStore) DeleteBatch(ctx context.Context, batchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.batches[batchID]; !ok {
		return pkgerror.ErrNotFound
	}

	delete(s.batches, batchID)

	return nil
}
