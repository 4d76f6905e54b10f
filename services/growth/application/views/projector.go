// Package views derives the chart and table presentations of the record set
// and declares the collaborators that display them.
package views

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/ghuser/growthtrack/pkg/i18n"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
	domainsvcs "github.com/ghuser/growthtrack/services/growth/domain/services"
)

// Display text shared by the chart and table.
const (
	ChartTitle        = "Growth Chart"
	EmptyTableMessage = "No records yet. Add your child's growth data."
	missingValue      = "-"
)

// Series labels and line colors.
const (
	heightLabel = "Height (cm)"
	weightLabel = "Weight (kg)"
	headLabel   = "Head Circumference (cm)"

	heightColor = "#3498db"
	weightColor = "#e74c3c"
	headColor   = "#2ecc71"
)

// ChartDataset is one labeled series aligned index-for-index with
// ChartData.Labels. A nil value is a gap.
type ChartDataset struct {
	Label  string     `json:"label"`
	Color  string     `json:"color"`
	Values []*float64 `json:"data"`
}

// ChartData is the time-series projection: records ascending by record date.
type ChartData struct {
	Title    string         `json:"title"`
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

// Empty reports whether there are no points to plot.
func (c ChartData) Empty() bool {
	return len(c.Labels) == 0
}

// TableRow is one display row, keyed by record id for deletion.
type TableRow struct {
	ID                int64  `json:"id"`
	Date              string `json:"date"`
	Age               string `json:"age"`
	Height            string `json:"height"`
	Weight            string `json:"weight"`
	HeadCircumference string `json:"headCircumference"`
}

// TableView is the chronological listing: records descending by record date.
// Placeholder is set only when Rows is empty.
type TableView struct {
	Rows        []TableRow `json:"rows"`
	Placeholder string     `json:"placeholder,omitempty"`
}

// ChartAdapter owns exactly one current chart and replaces it on each Render.
type ChartAdapter interface {
	Render(ctx context.Context, data ChartData) error
}

// TableRenderer replaces the table body with view on each Render.
type TableRenderer interface {
	Render(ctx context.Context, view TableView) error
}

// Projector computes both projections from a record snapshot. It is stateless
// apart from the display locale.
type Projector struct {
	locale i18n.Locale
}

// NewProjector returns a Projector that formats table dates for locale.
func NewProjector(locale i18n.Locale) *Projector {
	return &Projector{locale: locale}
}

// Chart sorts ascending by record date (stable) and produces three aligned
// datasets. Absent head circumference becomes a gap, never zero.
func (p *Projector) Chart(records []models.GrowthRecord) ChartData {
	sorted := sortedByDate(records, false)

	labels := make([]string, 0, len(sorted))
	heights := make([]*float64, 0, len(sorted))
	weights := make([]*float64, 0, len(sorted))
	heads := make([]*float64, 0, len(sorted))
	for _, r := range sorted {
		labels = append(labels, fmt.Sprintf("%d/%d", int(r.RecordDate.Month), r.RecordDate.Day))
		heights = append(heights, ptr(r.Height))
		weights = append(weights, ptr(r.Weight))
		if r.HeadCircumference != nil {
			heads = append(heads, ptr(*r.HeadCircumference))
		} else {
			heads = append(heads, nil)
		}
	}

	return ChartData{
		Title:  ChartTitle,
		Labels: labels,
		Datasets: []ChartDataset{
			{Label: heightLabel, Color: heightColor, Values: heights},
			{Label: weightLabel, Color: weightColor, Values: weights},
			{Label: headLabel, Color: headColor, Values: heads},
		},
	}
}

// Table sorts descending by record date (stable) and formats each row.
func (p *Projector) Table(records []models.GrowthRecord) TableView {
	sorted := sortedByDate(records, true)
	if len(sorted) == 0 {
		return TableView{Rows: []TableRow{}, Placeholder: EmptyTableMessage}
	}

	rows := make([]TableRow, 0, len(sorted))
	for _, r := range sorted {
		head := missingValue
		if r.HeadCircumference != nil {
			head = formatNumber(*r.HeadCircumference) + " cm"
		}
		rows = append(rows, TableRow{
			ID:                r.ID,
			Date:              p.locale.FormatDate(r.RecordDate.Time()),
			Age:               domainsvcs.FormatAge(r.AgeInMonths),
			Height:            formatNumber(r.Height) + " cm",
			Weight:            formatNumber(r.Weight) + " kg",
			HeadCircumference: head,
		})
	}
	return TableView{Rows: rows}
}

func sortedByDate(records []models.GrowthRecord, desc bool) []models.GrowthRecord {
	sorted := make([]models.GrowthRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		if desc {
			return sorted[j].RecordDate.Before(sorted[i].RecordDate)
		}
		return sorted[i].RecordDate.Before(sorted[j].RecordDate)
	})
	return sorted
}

// formatNumber prints the shortest decimal that round-trips: 80, 75.5.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func ptr(v float64) *float64 { return &v }
