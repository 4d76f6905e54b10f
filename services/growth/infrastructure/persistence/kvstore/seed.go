package kvstore

import (
	"context"
	"fmt"

	"github.com/ghuser/growthtrack/pkg/logger"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
	"github.com/ghuser/growthtrack/services/growth/domain/repositories"
)

// SeedingRepository wraps a repository and, on a Load that finds nothing
// stored, saves and returns the demo records. An existing value, even an
// empty array, is never replaced.
type SeedingRepository struct {
	repositories.RecordRepository
	log logger.Logger
}

// NewSeedingRepository decorates next with first-run seeding.
func NewSeedingRepository(next repositories.RecordRepository, log logger.Logger) *SeedingRepository {
	return &SeedingRepository{RecordRepository: next, log: log}
}

func (s *SeedingRepository) Load(ctx context.Context) ([]models.GrowthRecord, bool, error) {
	records, found, err := s.RecordRepository.Load(ctx)
	if err != nil || found {
		return records, found, err
	}

	demo := DemoRecords()
	if err := s.RecordRepository.Save(ctx, demo); err != nil {
		return nil, false, fmt.Errorf("seed demo records: %w", err)
	}
	s.log.InfoContext(ctx, "seeded demo records", "count", len(demo))
	return demo, true, nil
}

// DemoRecords returns the first-run example data: one child measured at
// 5, 8 and 11 months.
func DemoRecords() []models.GrowthRecord {
	birth := models.MustParseDate("2023-01-01")
	rows := []struct {
		id     int64
		date   string
		height float64
		weight float64
		head   float64
		age    int
	}{
		{1, "2023-06-01", 75.5, 9.2, 46.0, 5},
		{2, "2023-09-01", 78.2, 10.5, 47.0, 8},
		{3, "2023-12-01", 80.0, 11.0, 47.5, 11},
	}

	out := make([]models.GrowthRecord, 0, len(rows))
	for _, r := range rows {
		head := r.head
		out = append(out, models.GrowthRecord{
			ID:                r.id,
			ChildName:         "Xiaoming",
			ChildGender:       models.GenderMale,
			ChildBirthDate:    birth,
			RecordDate:        models.MustParseDate(r.date),
			Height:            r.height,
			Weight:            r.weight,
			HeadCircumference: &head,
			AgeInMonths:       r.age,
		})
	}
	return out
}
