// Package storekit provides an in-memory RunStorePort for tests and
// stateless demos. It lives apart from testkit so the record fixtures
// stay importable from the engine and app packages without pulling the
// store's app dependency back in.
package storekit

import (
	"context"
	"sort"
	"sync"

	"veristat/app"
	"veristat/domain/core"
	"veristat/ports"
)

// InMemoryRunStore is a RunStorePort backed by a map
type InMemoryRunStore struct {
	mu   sync.RWMutex
	runs map[core.BatchID]app.BatchRun
}

// NewInMemoryRunStore creates an empty in-memory run store
func NewInMemoryRunStore() *InMemoryRunStore {
	return &InMemoryRunStore{runs: make(map[core.BatchID]app.BatchRun)}
}

var _ ports.RunStorePort = (*InMemoryRunStore)(nil)

// SaveRun stores a batch run
func (s *InMemoryRunStore) SaveRun(ctx context.Context, run app.BatchRun) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[run.ID] = run
	return nil
}

// GetRun loads a batch run by ID
func (s *InMemoryRunStore) GetRun(ctx context.Context, id core.BatchID) (*app.BatchRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, core.ErrBatchNotFound
	}
	return &run, nil
}

// ListRuns returns stored runs, newest first
func (s *InMemoryRunStore) ListRuns(ctx context.Context, limit int) ([]app.BatchRun, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]app.BatchRun, 0, len(s.runs))
	for _, run := range s.runs {
		runs = append(runs, run)
	}
	sort.Slice(runs, func(i, j int) bool {
		return runs[j].CreatedAt.Before(runs[i].CreatedAt)
	})
	if limit > 0 && len(runs) > limit {
		runs = runs[:limit]
	}
	return runs, nil
}
