// Package i18n holds the fixed-locale message catalogs used in rendered fragments.
package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys. Each key is registered for every supported locale.
const (
	MsgExpectedPost      = "error.expected_post"
	MsgMissingParameters = "error.missing_parameters"
	MsgNotANumber        = "error.not_a_number"
	MsgMalformedForm     = "error.malformed_form"
	MsgYRange            = "error.y_range"
	MsgRRange            = "error.r_range"
	MsgServerError       = "error.server"
	MsgNotFound          = "error.not_found"
	MsgTooManyRequests   = "error.too_many_requests"
	MsgBodyTooLarge      = "error.body_too_large"
	MsgErrorPrefix       = "fragment.error"
	MsgHit               = "result.hit"
	MsgMiss              = "result.miss"
)

// Supported returns the locales with a registered catalog.
func Supported() []language.Tag {
	return []language.Tag{language.English, language.Russian}
}

// ParseLocale maps a configured locale name onto a supported tag.
func ParseLocale(name string) (language.Tag, error) {
	tag, err := language.Parse(strings.TrimSpace(name))
	if err != nil {
		return language.Und, fmt.Errorf("invalid locale %q: %w", name, err)
	}
	base, _ := tag.Base()
	for _, supported := range Supported() {
		if sb, _ := supported.Base(); sb == base {
			return supported, nil
		}
	}
	return language.Und, fmt.Errorf("unsupported locale %q", name)
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}
