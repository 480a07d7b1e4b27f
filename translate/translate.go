// Package translate formats user-facing messages for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Fallback is the locale used when the system reports none.
const Fallback = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("nade: locale: %v", err)
	}

	printer = NewPrinter(locales...)
}

// NewPrinter returns a printer for the best match of the given locales.
func NewPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{Fallback}
	}

	return message.NewPrinter(message.MatchLanguage(locales...), message.Catalog(message.DefaultCatalog))
}

// Tag returns the language tag selected for this process.
func Tag() language.Tag {
	return message.MatchLanguage(Locales()...)
}

// Locales returns the locales reported by the system, or the fallback.
func Locales() []string {
	locales, err := locale.GetLocales()
	if err != nil || len(locales) == 0 {
		return []string{Fallback}
	}
	return locales
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
