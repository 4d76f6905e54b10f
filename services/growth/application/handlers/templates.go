package handlers

import (
	"embed"
	"html/template"
	"io"

	appsvcs "github.com/ghuser/growthtrack/services/growth/application/services"
	"github.com/ghuser/growthtrack/services/growth/application/views"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// pageView feeds index.html.
type pageView struct {
	Lang         string
	Notices      []appsvcs.Notice
	Form         models.RecordInput
	Errors       map[string]string
	Table        views.TableView
	ChartVersion uint64
	ChartTitle   string
}

// confirmView feeds confirm.html.
type confirmView struct {
	Lang   string
	Prompt string
	ID     int64
	Row    *views.TableRow
}

func renderPage(v pageView) func(io.Writer) error {
	if v.Errors == nil {
		v.Errors = map[string]string{}
	}
	return func(w io.Writer) error { return pages.ExecuteTemplate(w, "index.html", v) }
}

func renderConfirm(v confirmView) func(io.Writer) error {
	return func(w io.Writer) error { return pages.ExecuteTemplate(w, "confirm.html", v) }
}
