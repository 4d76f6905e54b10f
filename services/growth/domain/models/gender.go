package models

import (
	"encoding/json"
	"strings"
)

// Gender of the child. Unknown values normalize to GenderUnspecified.
type Gender string

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

// ParseGender maps form input to a Gender; anything unrecognized is unspecified.
func ParseGender(s string) Gender {
	switch Gender(strings.ToLower(strings.TrimSpace(s))) {
	case GenderMale:
		return GenderMale
	case GenderFemale:
		return GenderFemale
	default:
		return GenderUnspecified
	}
}

func (g Gender) String() string {
	return string(g)
}

func (g *Gender) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		*g = GenderUnspecified
		return nil //nolint:nilerr // tolerate legacy non-string values
	}
	*g = ParseGender(s)
	return nil
}
