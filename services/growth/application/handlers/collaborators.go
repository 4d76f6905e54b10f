package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ghuser/growthtrack/pkg/logger"
	appsvcs "github.com/ghuser/growthtrack/services/growth/application/services"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

// webForm is the submitted HTML form. Reset rewrites the values the next
// page render shows.
type webForm struct {
	in models.RecordInput
}

func newWebForm(r *http.Request) *webForm {
	return &webForm{in: models.RecordInput{
		ChildName:         r.PostFormValue("childName"),
		ChildGender:       r.PostFormValue("childGender"),
		ChildBirthDate:    r.PostFormValue("childBirthDate"),
		RecordDate:        r.PostFormValue("recordDate"),
		Height:            r.PostFormValue("height"),
		Weight:            r.PostFormValue("weight"),
		HeadCircumference: r.PostFormValue("headCircumference"),
	}}
}

func (f *webForm) Values() models.RecordInput { return f.in }

func (f *webForm) Reset(today models.Date) {
	f.in.Height = ""
	f.in.Weight = ""
	f.in.HeadCircumference = ""
	f.in.RecordDate = today.String()
}

// jsonForm adapts an API request body. There is no form to reset.
type jsonForm struct {
	in models.RecordInput
}

func (f *jsonForm) Values() models.RecordInput { return f.in }

func (f *jsonForm) Reset(models.Date) {}

// noticeCollector buffers notices so the response can carry them.
type noticeCollector struct {
	log     logger.Logger
	notices []appsvcs.Notice
}

func (n *noticeCollector) Notify(ctx context.Context, notice appsvcs.Notice) {
	n.log.DebugContext(ctx, "notice", "kind", notice.Kind, "message", notice.Message)
	n.notices = append(n.notices, notice)
}

func (n *noticeCollector) fieldErrors() map[string]string {
	for i := len(n.notices) - 1; i >= 0; i-- {
		if n.notices[i].Fields != nil {
			return n.notices[i].Fields
		}
	}
	return nil
}

func formatOptional(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseID(s string) (int64, bool) {
	id, err := strconv.ParseInt(s, 10, 64)
	return id, err == nil
}
