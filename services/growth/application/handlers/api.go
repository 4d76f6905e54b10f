package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/growthtrack/pkg/errhttp"
	"github.com/ghuser/growthtrack/pkg/httpx"
	"github.com/ghuser/growthtrack/pkg/logger"
	pkgvalidator "github.com/ghuser/growthtrack/pkg/validator"
	appsvcs "github.com/ghuser/growthtrack/services/growth/application/services"
	"github.com/ghuser/growthtrack/services/growth/domain"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

// CreateRecordRequest is the request body for POST /api/records. Field-level
// rules are applied by the controller so the page and the API reject the
// same input with the same messages.
type CreateRecordRequest struct {
	ChildName         string   `json:"childName"`
	ChildGender       string   `json:"childGender" validate:"omitempty,oneof=male female unspecified"`
	ChildBirthDate    string   `json:"childBirthDate"`
	RecordDate        string   `json:"recordDate"`
	Height            *float64 `json:"height"`
	Weight            *float64 `json:"weight"`
	HeadCircumference *float64 `json:"headCircumference,omitempty"`
}

func (req CreateRecordRequest) input() models.RecordInput {
	return models.RecordInput{
		ChildName:         req.ChildName,
		ChildGender:       req.ChildGender,
		ChildBirthDate:    req.ChildBirthDate,
		RecordDate:        req.RecordDate,
		Height:            formatOptional(req.Height),
		Weight:            formatOptional(req.Weight),
		HeadCircumference: formatOptional(req.HeadCircumference),
	}
}

// API serves the JSON endpoints under /api.
type API struct {
	svc   *appsvcs.Services
	table *TableView
	log   logger.Logger
}

// NewAPI returns an API backed by the given services.
func NewAPI(svc *appsvcs.Services, table *TableView, log logger.Logger) *API {
	return &API{svc: svc, table: table, log: log}
}

// ListRecords handles GET /api/records with the current table projection.
func (a *API) ListRecords(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, a.table.Current())
}

// ChartData handles GET /api/chart with the current chart projection.
func (a *API) ChartData(w http.ResponseWriter, _ *http.Request) {
	httpx.JSON(w, http.StatusOK, a.svc.Chart.Data())
}

// CreateRecord handles POST /api/records.
func (a *API) CreateRecord(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[CreateRecordRequest](w, r)
	if !ok {
		return
	}

	rec, err := a.svc.Controller.AddRecord(r.Context(), &jsonForm{in: req.input()}, &noticeCollector{log: a.log})
	if err != nil {
		errhttp.WriteError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, rec)
}

// DeleteRecord handles DELETE /api/records/{id}?confirm=true. Without the
// confirmation flag nothing is removed and 428 is returned.
func (a *API) DeleteRecord(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(chi.URLParam(r, "id"))
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, "invalid record id")
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		errhttp.WriteError(w, domain.ErrConfirmationRequired)
		return
	}

	if _, err := a.svc.Controller.DeleteRecord(r.Context(), id, appsvcs.Answer(true)); err != nil {
		errhttp.WriteError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
