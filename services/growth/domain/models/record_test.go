package models

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestParseGender(t *testing.T) {
	tests := []struct {
		in   string
		want Gender
	}{
		{"male", GenderMale},
		{" Female ", GenderFemale},
		{"", GenderUnspecified},
		{"other", GenderUnspecified},
	}
	for _, tt := range tests {
		if got := ParseGender(tt.in); got != tt.want {
			t.Errorf("ParseGender(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewGrowthRecord_CopiesHeadCircumference(t *testing.T) {
	head := 46.0
	m := Measurement{
		ChildName:         "Xiaoming",
		ChildGender:       GenderMale,
		ChildBirthDate:    MustParseDate("2023-01-01"),
		RecordDate:        MustParseDate("2023-06-01"),
		Height:            75.5,
		Weight:            9.2,
		HeadCircumference: &head,
	}
	r := NewGrowthRecord(42, m, 5)
	head = 0

	if r.ID != 42 || r.AgeInMonths != 5 {
		t.Fatalf("unexpected record: %+v", r)
	}
	if !r.HasHeadCircumference() || *r.HeadCircumference != 46.0 {
		t.Fatal("head circumference must be copied from the measurement")
	}
}

func TestGrowthRecord_JSON(t *testing.T) {
	r := NewGrowthRecord(1, Measurement{
		ChildName:      "Xiaoming",
		ChildGender:    GenderMale,
		ChildBirthDate: MustParseDate("2023-01-01"),
		RecordDate:     MustParseDate("2023-12-01"),
		Height:         80,
		Weight:         11,
	}, 11)

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(b)
	for _, want := range []string{
		`"id":1`,
		`"childGender":"male"`,
		`"childBirthDate":"2023-01-01"`,
		`"recordDate":"2023-12-01"`,
		`"height":80`,
		`"headCircumference":null`,
		`"ageInMonths":11`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("missing %s in %s", want, s)
		}
	}
}

func TestGender_UnmarshalLegacyValues(t *testing.T) {
	var r GrowthRecord
	if err := json.Unmarshal([]byte(`{"childGender":""}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.ChildGender != GenderUnspecified {
		t.Fatalf("got %q", r.ChildGender)
	}
}
