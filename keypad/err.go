package keypad

import (
	"github.com/ezrec/padcalc/translate"
)

var f = translate.From

// ErrGlyph is a byte that no keypad position produces.
type ErrGlyph byte

func (eg ErrGlyph) Error() string {
	return f("no key for glyph %q", byte(eg))
}
