// Package i18n resolves the configured locale and formats calendar dates for it.
package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// dateLayouts is indexed in the same order as supportedTags.
var (
	supportedTags = []language.Tag{
		language.AmericanEnglish,
		language.BritishEnglish,
		language.SimplifiedChinese,
		language.Japanese,
		language.German,
		language.BrazilianPortuguese,
	}
	dateLayouts = []string{
		"1/2/2006",
		"02/01/2006",
		"2006/1/2",
		"2006/1/2",
		"2.1.2006",
		"02/01/2006",
	}
)

var tagMatcher = language.NewMatcher(supportedTags)

// Locale is a resolved locale with its short date layout.
type Locale struct {
	Tag    language.Tag
	layout string
}

// Default returns the en-US locale.
func Default() Locale {
	return Locale{Tag: supportedTags[0], layout: dateLayouts[0]}
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Resolve matches a BCP 47 tag (e.g. "de-AT", "zh") to the closest supported
// locale. Unparseable or empty input yields Default.
func Resolve(name string) Locale {
	name = strings.TrimSpace(name)
	if name == "" {
		return Default()
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Default()
	}
	_, idx, conf := tagMatcher.Match(tag)
	if conf == language.No {
		return Default()
	}
	return Locale{Tag: supportedTags[idx], layout: dateLayouts[idx]}
}

// FormatDate renders the calendar fields of t in the locale's short layout.
func (l Locale) FormatDate(t time.Time) string {
	layout := l.layout
	if layout == "" {
		layout = dateLayouts[0]
	}
	return t.Format(layout)
}

func (l Locale) String() string {
	return l.Tag.String()
}
