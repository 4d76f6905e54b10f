package services

import (
	"context"
	"errors"
	"sync"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/growthtrack/services/growth/application/views"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

// memRepo is an in-memory RecordRepository that can be told to fail saves.
type memRepo struct {
	mu       sync.Mutex
	records  []models.GrowthRecord
	found    bool
	saves    int
	failSave bool
	loadErr  error
}

func (r *memRepo) Load(context.Context) ([]models.GrowthRecord, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.loadErr != nil {
		return nil, false, r.loadErr
	}
	out := make([]models.GrowthRecord, len(r.records))
	copy(out, r.records)
	return out, r.found, nil
}

func (r *memRepo) Save(_ context.Context, records []models.GrowthRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves++
	if r.failSave {
		return errors.New("disk full")
	}
	r.records = append([]models.GrowthRecord(nil), records...)
	r.found = true
	return nil
}

type fakeChart struct {
	renders int
	last    views.ChartData
}

func (c *fakeChart) Render(_ context.Context, data views.ChartData) error {
	c.renders++
	c.last = data
	return nil
}

type fakeTable struct {
	renders int
	last    views.TableView
}

func (t *fakeTable) Render(_ context.Context, view views.TableView) error {
	t.renders++
	t.last = view
	return nil
}

type fakeForm struct {
	in    models.RecordInput
	reset *models.Date
}

func (f *fakeForm) Values() models.RecordInput { return f.in }

func (f *fakeForm) Reset(today models.Date) {
	f.reset = &today
	f.in.Height, f.in.Weight, f.in.HeadCircumference = "", "", ""
	f.in.RecordDate = today.String()
}

type recordingNotifier struct {
	notices []Notice
}

func (n *recordingNotifier) Notify(_ context.Context, notice Notice) {
	n.notices = append(n.notices, notice)
}

func (n *recordingNotifier) last() Notice {
	if len(n.notices) == 0 {
		return Notice{}
	}
	return n.notices[len(n.notices)-1]
}

type seqIDs struct{ next int64 }

func (s *seqIDs) Next() int64 {
	s.next++
	return s.next
}

type recordingPublisher struct {
	mu     sync.Mutex
	topics []string
}

func (p *recordingPublisher) Publish(_ context.Context, topic string, _ ...*message.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.topics = append(p.topics, topic)
	return nil
}
