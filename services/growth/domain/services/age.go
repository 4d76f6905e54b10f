// Package services contains stateless domain services for the growth bounded
// context. They operate purely on domain types.
package services

import (
	"fmt"

	"github.com/ghuser/growthtrack/services/growth/domain/models"
)

// AgeInMonths returns the whole months between birth and observation, using
// calendar fields only. A month is not complete until the observation day
// reaches the birth day. The result is negative when observation precedes birth.
func AgeInMonths(birth, observation models.Date) int {
	months := (observation.Year-birth.Year)*12 + int(observation.Month) - int(birth.Month)
	if observation.Day < birth.Day {
		months--
	}
	return months
}

// FormatAge renders an age for display: "5 months", "1 years 1 months", "2 years".
func FormatAge(months int) string {
	if months < 12 {
		return fmt.Sprintf("%d months", months)
	}
	years, rem := months/12, months%12
	if rem > 0 {
		return fmt.Sprintf("%d years %d months", years, rem)
	}
	return fmt.Sprintf("%d years", years)
}
