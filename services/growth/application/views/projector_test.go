package views

import (
	"testing"

	"github.com/ghuser/growthtrack/pkg/i18n"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

func record(id int64, date string, height, weight float64, head *float64, age int) models.GrowthRecord {
	return models.GrowthRecord{
		ID:                id,
		ChildName:         "Xiaoming",
		ChildGender:       models.GenderMale,
		ChildBirthDate:    models.MustParseDate("2023-01-01"),
		RecordDate:        models.MustParseDate(date),
		Height:            height,
		Weight:            weight,
		HeadCircumference: head,
		AgeInMonths:       age,
	}
}

func f(v float64) *float64 { return &v }

func demoRecords() []models.GrowthRecord {
	// Deliberately out of order.
	return []models.GrowthRecord{
		record(2, "2023-09-01", 78.2, 10.5, f(47), 8),
		record(3, "2023-12-01", 80, 11, nil, 11),
		record(1, "2023-06-01", 75.5, 9.2, f(46), 5),
	}
}

func TestChart_AscendingWithGaps(t *testing.T) {
	data := NewProjector(i18n.Default()).Chart(demoRecords())

	if data.Title != "Growth Chart" {
		t.Errorf("title: got %q", data.Title)
	}
	wantLabels := []string{"6/1", "9/1", "12/1"}
	if len(data.Labels) != len(wantLabels) {
		t.Fatalf("labels: got %v", data.Labels)
	}
	for i, l := range wantLabels {
		if data.Labels[i] != l {
			t.Errorf("label %d: got %q, want %q", i, data.Labels[i], l)
		}
	}

	if len(data.Datasets) != 3 {
		t.Fatalf("expected 3 datasets, got %d", len(data.Datasets))
	}
	wantMeta := []struct{ label, color string }{
		{"Height (cm)", "#3498db"},
		{"Weight (kg)", "#e74c3c"},
		{"Head Circumference (cm)", "#2ecc71"},
	}
	for i, m := range wantMeta {
		if data.Datasets[i].Label != m.label || data.Datasets[i].Color != m.color {
			t.Errorf("dataset %d: got %q %q", i, data.Datasets[i].Label, data.Datasets[i].Color)
		}
		if len(data.Datasets[i].Values) != len(data.Labels) {
			t.Errorf("dataset %d not aligned with labels", i)
		}
	}

	heights := data.Datasets[0].Values
	if *heights[0] != 75.5 || *heights[2] != 80 {
		t.Errorf("heights not ascending by date: %v %v", *heights[0], *heights[2])
	}
	heads := data.Datasets[2].Values
	if heads[2] != nil {
		t.Errorf("absent head circumference must be a gap, got %v", *heads[2])
	}
	if heads[0] == nil || *heads[0] != 46 {
		t.Error("present head circumference must be plotted")
	}
}

func TestTable_DescendingRows(t *testing.T) {
	view := NewProjector(i18n.Default()).Table(demoRecords())

	if view.Placeholder != "" {
		t.Errorf("placeholder must be empty when rows exist, got %q", view.Placeholder)
	}
	if len(view.Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(view.Rows))
	}

	first := view.Rows[0]
	want := TableRow{ID: 3, Date: "12/1/2023", Age: "11 months", Height: "80 cm", Weight: "11 kg", HeadCircumference: "-"}
	if first != want {
		t.Errorf("first row:\n got %+v\nwant %+v", first, want)
	}

	last := view.Rows[2]
	if last.ID != 1 || last.Height != "75.5 cm" || last.HeadCircumference != "46 cm" || last.Age != "5 months" {
		t.Errorf("last row: %+v", last)
	}
}

func TestTable_Locale(t *testing.T) {
	view := NewProjector(i18n.Resolve("de-DE")).Table(demoRecords()[:1])
	if view.Rows[0].Date != "1.9.2023" {
		t.Errorf("got %q", view.Rows[0].Date)
	}
}

func TestEmptyProjections(t *testing.T) {
	p := NewProjector(i18n.Default())

	view := p.Table(nil)
	if len(view.Rows) != 0 {
		t.Fatalf("expected no rows, got %d", len(view.Rows))
	}
	if view.Placeholder != EmptyTableMessage {
		t.Errorf("placeholder: got %q", view.Placeholder)
	}

	data := p.Chart(nil)
	if !data.Empty() || len(data.Labels) != 0 {
		t.Fatalf("expected empty labels, got %v", data.Labels)
	}
	if len(data.Datasets) != 3 {
		t.Fatalf("expected three empty datasets, got %d", len(data.Datasets))
	}
	for i, ds := range data.Datasets {
		if len(ds.Values) != 0 {
			t.Errorf("dataset %d not empty", i)
		}
	}
}

func TestProjections_StableForEqualDates(t *testing.T) {
	records := []models.GrowthRecord{
		record(10, "2023-06-01", 70, 9, nil, 5),
		record(11, "2023-06-01", 71, 9, nil, 5),
	}
	p := NewProjector(i18n.Default())

	data := p.Chart(records)
	if *data.Datasets[0].Values[0] != 70 {
		t.Error("ascending sort must keep insertion order for equal dates")
	}
	view := p.Table(records)
	if view.Rows[0].ID != 10 {
		t.Error("descending sort must keep insertion order for equal dates")
	}
}

func TestProjections_DoNotMutateInput(t *testing.T) {
	records := demoRecords()
	NewProjector(i18n.Default()).Chart(records)
	if records[0].ID != 2 {
		t.Fatal("Chart must sort a copy")
	}
}
