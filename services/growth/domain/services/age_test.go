package services

import (
	"testing"

	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

func TestAgeInMonths(t *testing.T) {
	tests := []struct {
		birth, obs string
		want       int
	}{
		{"2023-01-01", "2023-06-01", 5},
		{"2023-01-01", "2023-09-01", 8},
		{"2023-01-01", "2023-12-01", 11},
		{"2023-01-15", "2023-02-14", 0},
		{"2023-01-15", "2023-02-15", 1},
		{"2020-02-29", "2021-02-28", 11},
		{"2023-01-31", "2023-03-01", 1},
		{"2023-01-01", "2023-01-01", 0},
		{"2023-06-01", "2023-01-01", -5},
	}

	for _, tt := range tests {
		t.Run(tt.birth+"->"+tt.obs, func(t *testing.T) {
			got := AgeInMonths(models.MustParseDate(tt.birth), models.MustParseDate(tt.obs))
			if got != tt.want {
				t.Errorf("AgeInMonths = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		months int
		want   string
	}{
		{0, "0 months"},
		{5, "5 months"},
		{11, "11 months"},
		{12, "1 years"},
		{13, "1 years 1 months"},
		{24, "2 years"},
		{30, "2 years 6 months"},
	}

	for _, tt := range tests {
		if got := FormatAge(tt.months); got != tt.want {
			t.Errorf("FormatAge(%d) = %q, want %q", tt.months, got, tt.want)
		}
	}
}
