package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/iconlint/iconlint/pkg/domain"
	"github.com/iconlint/iconlint/pkg/ports"
)

// Store implements ports.RunStore with a mutex-guarded map.
type Store struct {
	mu   sync.RWMutex
	runs map[string]domain.RunResult
}

// NewStore creates an empty in-memory run store.
func NewStore() *Store {
	return &Store{runs: make(map[string]domain.RunResult)}
}

var _ ports.RunStore = (*Store)(nil)

// Save stores a copy of the result.
func (s *Store) Save(ctx context.Context, runID string, result *domain.RunResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[runID] = *result
	return nil
}

// Load returns a copy of the stored result.
func (s *Store) Load(ctx context.Context, runID string) (*domain.RunResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result, ok := s.runs[runID]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return &result, nil
}

// Delete removes a run. Missing runs are silently ignored.
func (s *Store) Delete(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, runID)
	return nil
}

// List returns the stored run IDs, sorted for determinism.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.runs))
	for id := range s.runs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
