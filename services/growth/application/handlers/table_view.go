package handlers

import (
	"context"
	"sync"

	"github.com/ghuser/growthtrack/services/growth/application/views"
)

// TableView is the page's table body. Each Render replaces the previous rows
// wholesale; requests read the latest projection through Current.
type TableView struct {
	mu      sync.RWMutex
	current views.TableView
}

// NewTableView starts with the empty-set placeholder.
func NewTableView() *TableView {
	return &TableView{current: views.TableView{Rows: []views.TableRow{}, Placeholder: views.EmptyTableMessage}}
}

func (t *TableView) Render(_ context.Context, view views.TableView) error {
	rows := make([]views.TableRow, len(view.Rows))
	copy(rows, view.Rows)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = views.TableView{Rows: rows, Placeholder: view.Placeholder}
	return nil
}

// Current returns the last rendered projection.
func (t *TableView) Current() views.TableView {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.current
}

// Row finds the displayed row for id.
func (t *TableView) Row(id int64) (views.TableRow, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	for _, r := range t.current.Rows {
		if r.ID == id {
			return r, true
		}
	}
	return views.TableRow{}, false
}
