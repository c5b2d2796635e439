package ingest

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/storelens/shopdex/internal/domain"
)

const (
	defaultBatchWorkers = 4
	defaultMaxBatchSize = 100
)

// Result is the outcome of processing one item in a batch.
type Result struct {
	ExternalID string
	Err        error
}

// OK reports whether the item was indexed.
func (r Result) OK() bool { return r.Err == nil }

// UpsertBatch indexes products concurrently through a bounded worker pool
// and reports a per-item outcome in input order. A batch over the size limit
// is rejected whole: partial acceptance would make retry semantics on the
// caller's side ambiguous.
func (s *Service) UpsertBatch(ctx context.Context, items []domain.Product) ([]Result, error) {
	if len(items) == 0 {
		return nil, nil
	}
	if len(items) > s.maxBatchSize {
		return nil, fmt.Errorf("%w: batch size %d exceeds %d",
			domain.ErrInvalidProduct, len(items), s.maxBatchSize)
	}

	pool, err := ants.NewPool(s.batchWorkers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]Result, len(items))

	var wg sync.WaitGroup
	for i := range items {
		i := i
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			p := items[i]
			results[i] = Result{ExternalID: p.ExternalID, Err: s.Upsert(ctx, &p)}
		})
		if submitErr != nil {
			wg.Done()
			results[i] = Result{ExternalID: items[i].ExternalID, Err: submitErr}
		}
	}
	wg.Wait()

	return results, nil
}
