package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/growthtrack/pkg/errhttp"
	"github.com/ghuser/growthtrack/pkg/httpx"
	"github.com/ghuser/growthtrack/pkg/i18n"
	"github.com/ghuser/growthtrack/pkg/logger"
	appsvcs "github.com/ghuser/growthtrack/services/growth/application/services"
	"github.com/ghuser/growthtrack/services/growth/application/views"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

// Page serves the server-rendered UI: the entry form, the chart image and
// the records table.
type Page struct {
	svc    *appsvcs.Services
	table  *TableView
	locale i18n.Locale
	now    func() time.Time
	log    logger.Logger
}

// NewPage returns a Page. now supplies the default record date.
func NewPage(svc *appsvcs.Services, table *TableView, locale i18n.Locale, now func() time.Time, log logger.Logger) *Page {
	return &Page{svc: svc, table: table, locale: locale, now: now, log: log}
}

// Index handles GET /.
func (p *Page) Index(w http.ResponseWriter, r *http.Request) {
	form := models.RecordInput{
		ChildGender: string(models.GenderMale),
		RecordDate:  models.DateOf(p.now()).String(),
	}
	p.write(w, r, http.StatusOK, form, nil)
}

// AddRecord handles POST /records. The page is re-rendered with the
// submitted (or reset) form and the resulting notices.
func (p *Page) AddRecord(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := newWebForm(r)
	notices := &noticeCollector{log: p.log}

	status := http.StatusOK
	if _, err := p.svc.Controller.AddRecord(r.Context(), form, notices); err != nil {
		status = errhttp.Status(err)
	}
	p.write(w, r, status, form.Values(), notices)
}

// ConfirmDelete handles GET /records/{id}/delete with the confirmation prompt.
func (p *Page) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	v := confirmView{Lang: p.locale.String(), Prompt: appsvcs.DeletePrompt, ID: id}
	if row, found := p.table.Row(id); found {
		v.Row = &row
	}
	if err := httpx.HTML(w, http.StatusOK, renderConfirm(v)); err != nil {
		p.log.ErrorContext(r.Context(), "render confirm page", "error", err)
	}
}

// DeleteRecord handles POST /records/{id}/delete. confirm=yes removes the
// record; any other answer leaves the set untouched.
func (p *Page) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	answer := appsvcs.Answer(r.PostFormValue("confirm") == "yes")
	if _, err := p.svc.Controller.DeleteRecord(r.Context(), id, answer); err != nil {
		p.write(w, r, errhttp.Status(err), models.RecordInput{RecordDate: models.DateOf(p.now()).String()}, &noticeCollector{
			notices: []appsvcs.Notice{{Kind: appsvcs.NoticeError, Message: appsvcs.SaveFailedMessage}},
		})
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Chart handles GET /chart.png.
func (p *Page) Chart(w http.ResponseWriter, _ *http.Request) {
	png, _ := p.svc.Chart.Current()
	httpx.PNG(w, png)
}

func (p *Page) write(w http.ResponseWriter, r *http.Request, status int, form models.RecordInput, notices *noticeCollector) {
	_, version := p.svc.Chart.Current()
	v := pageView{
		Lang:         p.locale.String(),
		Form:         form,
		Table:        p.table.Current(),
		ChartVersion: version,
		ChartTitle:   views.ChartTitle,
	}
	if notices != nil {
		v.Notices = notices.notices
		v.Errors = notices.fieldErrors()
	}
	if err := httpx.HTML(w, status, renderPage(v)); err != nil {
		p.log.ErrorContext(r.Context(), "render page", "error", err)
	}
}
