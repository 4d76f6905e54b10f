package repositories

import (
	"context"

	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

// RecordRepository persists the whole record set as one unit.
// The domain layer owns this interface; infrastructure implements it.
type RecordRepository interface {
	// Load returns the stored records. found is false when nothing has ever
	// been saved, which differs from a saved empty set.
	Load(ctx context.Context) (records []models.GrowthRecord, found bool, err error)

	// Save replaces the stored set with records.
	Save(ctx context.Context, records []models.GrowthRecord) error
}
