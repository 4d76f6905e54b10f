package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/growthtrack/pkg/logger"
	"github.com/ghuser/growthtrack/pkg/telemetry"
	"github.com/ghuser/growthtrack/services/growth/application/views"
	"github.com/ghuser/growthtrack/services/growth/domain"
	"github.com/ghuser/growthtrack/services/growth/domain/events"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
	domainsvcs "github.com/ghuser/growthtrack/services/growth/domain/services"
)

// User-visible text.
const (
	RecordAddedMessage = "Record added successfully!"
	CheckFieldsMessage = "Please check the highlighted fields."
	SaveFailedMessage  = "The record could not be saved. Please try again."
	DeletePrompt       = "Are you sure you want to delete this record?"
)

// Controller runs the add and delete actions. Each action holds the
// controller lock from input to final render, so concurrent callers observe
// actions one at a time.
type Controller struct {
	mu        sync.Mutex
	store     *RecordStore
	projector *views.Projector
	chart     views.ChartAdapter
	table     views.TableRenderer
	ids       IDGenerator
	publisher EventPublisher
	now       func() time.Time
	metrics   *controllerMetrics
	log       logger.Logger
}

// ControllerOption customizes a Controller.
type ControllerOption func(*Controller)

// WithPublisher publishes record events after each successful mutation.
func WithPublisher(p EventPublisher) ControllerOption {
	return func(c *Controller) { c.publisher = p }
}

// WithClock overrides the source of "today" used to reset the form.
func WithClock(now func() time.Time) ControllerOption {
	return func(c *Controller) { c.now = now }
}

// NewController wires a Controller over its collaborators.
func NewController(
	store *RecordStore,
	projector *views.Projector,
	chart views.ChartAdapter,
	table views.TableRenderer,
	ids IDGenerator,
	log logger.Logger,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		store:     store,
		projector: projector,
		chart:     chart,
		table:     table,
		ids:       ids,
		now:       time.Now,
		metrics:   newControllerMetrics(),
		log:       log.With("component", "growth_controller"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Refresh renders both views from the current set. Called once at start-up.
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.render(ctx)
}

// AddRecord validates the form, stores a new record, re-renders both views,
// resets the form and notifies success. On validation or save failure the
// user is notified, nothing is mutated and the error is returned.
func (c *Controller) AddRecord(ctx context.Context, form FormInput, notify Notifier) (*models.GrowthRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	m, err := domainsvcs.ValidateRecordInput(form.Values())
	if err != nil {
		c.metrics.reject(ctx, "validation")
		notify.Notify(ctx, validationNotice(err))
		c.log.InfoContext(ctx, "add rejected", "error", err)
		return nil, fmt.Errorf("add record: %w", err)
	}

	age := domainsvcs.AgeInMonths(m.ChildBirthDate, m.RecordDate)
	rec := models.NewGrowthRecord(c.ids.Next(), *m, age)

	if err := c.store.Add(ctx, *rec); err != nil {
		c.metrics.reject(ctx, "persistence")
		c.log.ErrorContext(ctx, "add failed", "error", err, "record_id", rec.ID)
		telemetry.CaptureError(err)
		notify.Notify(ctx, Notice{Kind: NoticeError, Message: SaveFailedMessage})
		return nil, fmt.Errorf("add record: %w", err)
	}

	if err := c.render(ctx); err != nil {
		c.log.ErrorContext(ctx, "render after add failed", "error", err)
	}
	form.Reset(models.DateOf(c.now()))

	c.metrics.added.Add(ctx, 1)
	added := events.NewRecordAdded(rec.ID, rec.ChildName, rec.RecordDate.String(), rec.AgeInMonths)
	c.publish(ctx, events.TopicRecordAdded, added.EventID.String(), added)
	c.log.InfoContext(ctx, "record added", "record_id", rec.ID, "age_in_months", rec.AgeInMonths, "records", c.store.Len())

	notify.Notify(ctx, Notice{Kind: NoticeSuccess, Message: RecordAddedMessage})
	return rec, nil
}

// DeleteRecord asks for confirmation, then removes the record with id and
// re-renders both views. A declined prompt abandons the action with no
// mutation and no render. An id that matches nothing is not an error; the set
// is still saved and the views re-rendered. Reports whether a record was removed.
func (c *Controller) DeleteRecord(ctx context.Context, id int64, confirm Confirmer) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !confirm.Confirm(ctx, DeletePrompt) {
		c.log.DebugContext(ctx, "delete declined", "record_id", id)
		return false, nil
	}

	removed, err := c.store.Remove(ctx, id)
	if err != nil {
		c.log.ErrorContext(ctx, "delete failed", "error", err, "record_id", id)
		telemetry.CaptureError(err)
		return false, fmt.Errorf("delete record: %w", err)
	}

	if err := c.render(ctx); err != nil {
		c.log.ErrorContext(ctx, "render after delete failed", "error", err)
	}

	if removed {
		c.metrics.deleted.Add(ctx, 1)
		deleted := events.NewRecordDeleted(id)
		c.publish(ctx, events.TopicRecordDeleted, deleted.EventID.String(), deleted)
	}
	c.log.InfoContext(ctx, "delete confirmed", "record_id", id, "removed", removed, "records", c.store.Len())
	return removed, nil
}

// Records returns a snapshot of the stored set.
func (c *Controller) Records() []models.GrowthRecord {
	return c.store.List()
}

// render recomputes both projections and hands them to the views.
func (c *Controller) render(ctx context.Context) error {
	records := c.store.List()
	chartErr := c.chart.Render(ctx, c.projector.Chart(records))
	tableErr := c.table.Render(ctx, c.projector.Table(records))
	return errors.Join(chartErr, tableErr)
}

// publish sends evt to topic. Failures are logged; observers never affect
// the outcome of an action.
func (c *Controller) publish(ctx context.Context, topic, eventID string, evt any) {
	if c.publisher == nil {
		return
	}
	payload, err := json.Marshal(evt)
	if err != nil {
		c.log.ErrorContext(ctx, "marshal event", "error", err, "topic", topic)
		return
	}
	if err := c.publisher.Publish(ctx, topic, message.NewMessage(eventID, payload)); err != nil {
		c.log.WarnContext(ctx, "publish event", "error", err, "topic", topic)
	}
}

func validationNotice(err error) Notice {
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		return Notice{Kind: NoticeError, Message: domainsvcs.RequiredFieldsMessage}
	}
	msg := CheckFieldsMessage
	if ve.HasMissing() {
		msg = domainsvcs.RequiredFieldsMessage
	}
	return Notice{Kind: NoticeError, Message: msg, Fields: ve.Fields}
}
