package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/ghuser/growthtrack/services/growth/domain"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
	"github.com/ghuser/growthtrack/services/growth/domain/repositories"
)

// RecordStore owns the in-memory record set and writes the whole set through
// to the repository on every change. Order is insertion order and carries no
// meaning; projections sort.
type RecordStore struct {
	mu      sync.RWMutex
	repo    repositories.RecordRepository
	records []models.GrowthRecord
}

// NewRecordStore loads the persisted set. A repository that has never been
// written yields an empty store.
func NewRecordStore(ctx context.Context, repo repositories.RecordRepository) (*RecordStore, error) {
	records, found, err := repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load records: %w", err)
	}
	if !found || records == nil {
		records = []models.GrowthRecord{}
	}
	return &RecordStore{repo: repo, records: records}, nil
}

// List returns a copy of the current set.
func (s *RecordStore) List() []models.GrowthRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.GrowthRecord, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of stored records.
func (s *RecordStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Add appends r and saves the full set. No deduplication is performed. When
// the save fails the set is left unchanged and ErrPersistence is returned.
func (s *RecordStore) Add(ctx context.Context, r models.GrowthRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.GrowthRecord, len(s.records), len(s.records)+1)
	copy(next, s.records)
	next = append(next, r)

	if err := s.repo.Save(ctx, next); err != nil {
		return fmt.Errorf("%w: add record %d: %w", domain.ErrPersistence, r.ID, err)
	}
	s.records = next
	return nil
}

// Remove drops the record with id and saves the full set, even when no record
// matched. It reports whether a record was removed.
func (s *RecordStore) Remove(ctx context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make([]models.GrowthRecord, 0, len(s.records))
	for _, r := range s.records {
		if r.ID != id {
			next = append(next, r)
		}
	}
	removed := len(next) != len(s.records)

	if err := s.repo.Save(ctx, next); err != nil {
		return false, fmt.Errorf("%w: remove record %d: %w", domain.ErrPersistence, id, err)
	}
	s.records = next
	return removed, nil
}
