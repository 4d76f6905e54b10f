// Package kvstore persists the growth record set as one JSON array in a kv.Store.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ghuser/growthtrack/pkg/kv"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

// RecordsKey is the storage key of the serialized record set.
const RecordsKey = "growthRecords"

// RecordRepository implements repositories.RecordRepository over a kv.Store.
type RecordRepository struct {
	store kv.Store
	key   string
}

// NewRecordRepository returns a repository storing under RecordsKey.
func NewRecordRepository(store kv.Store) *RecordRepository {
	return &RecordRepository{store: store, key: RecordsKey}
}

// Load decodes the stored array. A missing key reports found=false.
func (r *RecordRepository) Load(ctx context.Context) ([]models.GrowthRecord, bool, error) {
	raw, err := r.store.Get(ctx, r.key)
	if errors.Is(err, kv.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", r.key, err)
	}

	var records []models.GrowthRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, true, fmt.Errorf("decode %s: %w", r.key, err)
	}
	for i := range records {
		// Older data stored 0 for an absent head circumference.
		if h := records[i].HeadCircumference; h != nil && *h <= 0 {
			records[i].HeadCircumference = nil
		}
	}
	if records == nil {
		records = []models.GrowthRecord{}
	}
	return records, true, nil
}

// Save encodes the whole set and replaces the stored value.
func (r *RecordRepository) Save(ctx context.Context, records []models.GrowthRecord) error {
	if records == nil {
		records = []models.GrowthRecord{}
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	if err := r.store.Set(ctx, r.key, raw); err != nil {
		return fmt.Errorf("save %s: %w", r.key, err)
	}
	return nil
}
