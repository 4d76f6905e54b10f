// Package subscribers holds observers of growth record events. They never
// mutate the record set.
package subscribers

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/growthtrack/pkg/logger"
	"github.com/ghuser/growthtrack/services/growth/domain/events"
)

// Subscriber is satisfied by *events.EventBus.
type Subscriber interface {
	Subscribe(ctx context.Context, topic string, handler func(context.Context, *message.Message) error) (<-chan error, error)
}

// ActivityLog writes one log line per record event.
type ActivityLog struct {
	log logger.Logger
}

func NewActivityLog(log logger.Logger) *ActivityLog {
	return &ActivityLog{log: log.With("component", "growth_activity")}
}

// Register subscribes to both record topics. Handler errors that exhaust
// their retries are logged until ctx is done.
func (a *ActivityLog) Register(ctx context.Context, bus Subscriber) error {
	handlers := map[string]func(context.Context, *message.Message) error{
		events.TopicRecordAdded:   a.recordAdded,
		events.TopicRecordDeleted: a.recordDeleted,
	}
	for topic, h := range handlers {
		errCh, err := bus.Subscribe(ctx, topic, h)
		if err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
		go a.drain(ctx, topic, errCh)
	}
	return nil
}

func (a *ActivityLog) recordAdded(ctx context.Context, msg *message.Message) error {
	var evt events.RecordAddedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", events.TopicRecordAdded, err)
	}
	a.log.InfoContext(ctx, "growth record added",
		"record_id", evt.RecordID,
		"child_name", evt.ChildName,
		"record_date", evt.RecordDate,
		"age_in_months", evt.AgeInMonths,
	)
	return nil
}

func (a *ActivityLog) recordDeleted(ctx context.Context, msg *message.Message) error {
	var evt events.RecordDeletedEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return fmt.Errorf("decode %s: %w", events.TopicRecordDeleted, err)
	}
	a.log.InfoContext(ctx, "growth record deleted", "record_id", evt.RecordID)
	return nil
}

func (a *ActivityLog) drain(ctx context.Context, topic string, errCh <-chan error) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errCh:
			if !ok {
				return
			}
			a.log.ErrorContext(ctx, "event handler failed", "topic", topic, "error", err)
		}
	}
}
