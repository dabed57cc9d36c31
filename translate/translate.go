// Package translate localizes the user-visible strings of the calculator:
// error text, verbose log lines and the home screen.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Home screen keys. They are also the en-US text.
const (
	HomeTitle     = "Key pressed"
	HomeRule      = "--------------------"
	HomeOperators = "A=+  #==  C=clear"
)

// Languages with home screen text. The first is the fallback.
var supported = []language.Tag{
	language.AmericanEnglish,
	language.German,
	language.French,
}

var matcher = language.NewMatcher(supported)

var printer *message.Printer

func init() {
	_ = message.SetString(language.German, HomeTitle, "Taste gedrueckt")
	_ = message.SetString(language.German, HomeOperators, "A=+  #==  C=loeschen")
	_ = message.SetString(language.French, HomeTitle, "Touche appuyee")
	_ = message.SetString(language.French, HomeOperators, "A=+  #==  C=effacer")

	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("padcalc: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the best printer for the given BCP 47 locales, falling back to
// en-US when none are given.
func Use(locales ...string) {
	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	tags := make([]language.Tag, 0, len(locales))
	for _, loc := range locales {
		tag, err := language.Parse(loc)
		if err == nil {
			tags = append(tags, tag)
		}
	}

	_, index, _ := matcher.Match(tags...)

	printer = message.NewPrinter(supported[index])
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
