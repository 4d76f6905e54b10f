package services

import (
	"errors"
	"strconv"
	"strings"

	pkgvalidator "github.com/ghuser/growthtrack/pkg/validator"
	"github.com/ghuser/growthtrack/services/growth/domain"
	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

// RequiredFieldsMessage is shown when an add is rejected.
const RequiredFieldsMessage = "Please fill in all required fields (name, birth date, record date, height, weight)."

// ValidateRecordInput checks the raw form values and converts them into a
// Measurement. Rules:
//   - name, birth date, record date, height and weight are required
//   - dates are YYYY-MM-DD
//   - height, weight and (when given) head circumference are numbers > 0
//   - the record date is not earlier than the birth date
//
// Failures return a *domain.ValidationError, which unwraps to ErrInvalidRecord.
func ValidateRecordInput(in models.RecordInput) (*models.Measurement, error) {
	for _, f := range []*string{
		&in.ChildName, &in.ChildBirthDate, &in.RecordDate,
		&in.Height, &in.Weight, &in.HeadCircumference,
	} {
		*f = strings.TrimSpace(*f)
	}

	if err := pkgvalidator.Validate(&in); err != nil {
		fields := pkgvalidator.FormatValidationErrors(err)
		if len(fields) == 0 {
			return nil, errors.Join(domain.ErrInvalidRecord, err)
		}
		return nil, &domain.ValidationError{Fields: fields, Missing: pkgvalidator.MissingFields(err)}
	}

	// Tags above guarantee these parse.
	birth, _ := models.ParseDate(in.ChildBirthDate)
	recorded, _ := models.ParseDate(in.RecordDate)
	if recorded.Before(birth) {
		return nil, &domain.ValidationError{Fields: map[string]string{
			"recordDate": "Must not be earlier than the birth date",
		}}
	}

	m := &models.Measurement{
		ChildName:      in.ChildName,
		ChildGender:    models.ParseGender(in.ChildGender),
		ChildBirthDate: birth,
		RecordDate:     recorded,
		Height:         parsePositive(in.Height),
		Weight:         parsePositive(in.Weight),
	}
	if in.HeadCircumference != "" {
		head := parsePositive(in.HeadCircumference)
		m.HeadCircumference = &head
	}
	return m, nil
}

func parsePositive(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}
