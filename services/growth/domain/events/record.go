package events

import (
	"time"

	"github.com/google/uuid"
)

// Topics published after a record set mutation has been persisted.
const (
	TopicRecordAdded   = "growth.record.added"
	TopicRecordDeleted = "growth.record.deleted"
)

// RecordAddedEvent is published after a new GrowthRecord is persisted.
type RecordAddedEvent struct {
	EventID     uuid.UUID `json:"event_id"` // Unique publish-time identifier for deduplication
	Version     int       `json:"version"`  // Schema version; increment on breaking changes
	RecordID    int64     `json:"record_id"`
	ChildName   string    `json:"child_name"`
	RecordDate  string    `json:"record_date"`
	AgeInMonths int       `json:"age_in_months"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// RecordDeletedEvent is published after a record is removed.
type RecordDeletedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	RecordID   int64     `json:"record_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewRecordAdded builds a RecordAddedEvent for a persisted record.
func NewRecordAdded(id int64, childName, recordDate string, ageInMonths int) RecordAddedEvent {
	return RecordAddedEvent{
		EventID:     uuid.New(),
		Version:     1,
		RecordID:    id,
		ChildName:   childName,
		RecordDate:  recordDate,
		AgeInMonths: ageInMonths,
		OccurredAt:  time.Now().UTC(),
	}
}

// NewRecordDeleted builds a RecordDeletedEvent.
func NewRecordDeleted(id int64) RecordDeletedEvent {
	return RecordDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		RecordID:   id,
		OccurredAt: time.Now().UTC(),
	}
}
