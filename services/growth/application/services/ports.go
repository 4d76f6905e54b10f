package services

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

// FormInput is the entry form the Controller reads from and resets.
type FormInput interface {
	// Values returns the raw field strings as entered.
	Values() models.RecordInput
	// Reset clears height, weight and head circumference and sets the
	// record date to today. Name, gender and birth date are kept.
	Reset(today models.Date)
}

// NoticeKind distinguishes success from failure notices.
type NoticeKind string

const (
	NoticeSuccess NoticeKind = "success"
	NoticeError   NoticeKind = "error"
)

// Notice is a user-visible message. Fields carries per-field validation text.
type Notice struct {
	Kind    NoticeKind        `json:"kind"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Notifier shows a notice to the user. Notify returns once the notice has
// been delivered.
type Notifier interface {
	Notify(ctx context.Context, n Notice)
}

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

// IDGenerator issues record ids.
type IDGenerator interface {
	Next() int64
}

// EventPublisher is satisfied by *events.EventBus.
type EventPublisher interface {
	Publish(ctx context.Context, topic string, msgs ...*message.Message) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n Notice)

func (f NotifierFunc) Notify(ctx context.Context, n Notice) { f(ctx, n) }

// ConfirmerFunc adapts a function to Confirmer.
type ConfirmerFunc func(ctx context.Context, prompt string) bool

func (f ConfirmerFunc) Confirm(ctx context.Context, prompt string) bool { return f(ctx, prompt) }

// Answer is a Confirmer that returns a fixed reply, for callers that
// collected the answer before invoking the Controller.
type Answer bool

func (a Answer) Confirm(context.Context, string) bool { return bool(a) }
