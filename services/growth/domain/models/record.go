package models

// GrowthRecord is one dated measurement of a child. Records are immutable once
// created; AgeInMonths is derived at creation and never recomputed.
type GrowthRecord struct {
	ID                int64    `json:"id"`
	ChildName         string   `json:"childName"`
	ChildGender       Gender   `json:"childGender"`
	ChildBirthDate    Date     `json:"childBirthDate"`
	RecordDate        Date     `json:"recordDate"`
	Height            float64  `json:"height"`
	Weight            float64  `json:"weight"`
	HeadCircumference *float64 `json:"headCircumference"`
	AgeInMonths       int      `json:"ageInMonths"`
}

// RecordInput holds the raw form strings of an add request.
type RecordInput struct {
	ChildName         string `json:"childName"         validate:"required"`
	ChildGender       string `json:"childGender"`
	ChildBirthDate    string `json:"childBirthDate"    validate:"required,datetime=2006-01-02"`
	RecordDate        string `json:"recordDate"        validate:"required,datetime=2006-01-02"`
	Height            string `json:"height"            validate:"required,positive_number"`
	Weight            string `json:"weight"            validate:"required,positive_number"`
	HeadCircumference string `json:"headCircumference" validate:"omitempty,positive_number"`
}

// Measurement is a validated RecordInput, ready to become a GrowthRecord.
type Measurement struct {
	ChildName         string
	ChildGender       Gender
	ChildBirthDate    Date
	RecordDate        Date
	Height            float64
	Weight            float64
	HeadCircumference *float64
}

// NewGrowthRecord builds a record from a validated measurement, a fresh id and
// the age derived for it.
func NewGrowthRecord(id int64, m Measurement, ageInMonths int) *GrowthRecord {
	var head *float64
	if m.HeadCircumference != nil {
		v := *m.HeadCircumference
		head = &v
	}
	return &GrowthRecord{
		ID:                id,
		ChildName:         m.ChildName,
		ChildGender:       m.ChildGender,
		ChildBirthDate:    m.ChildBirthDate,
		RecordDate:        m.RecordDate,
		Height:            m.Height,
		Weight:            m.Weight,
		HeadCircumference: head,
		AgeInMonths:       ageInMonths,
	}
}

// HasHeadCircumference reports whether the optional measurement is present.
func (r GrowthRecord) HasHeadCircumference() bool {
	return r.HeadCircumference != nil
}
