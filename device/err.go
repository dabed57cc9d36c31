package device

import (
	"github.com/ezrec/padcalc/keypad"
	"github.com/ezrec/padcalc/translate"
)

var f = translate.From

// ErrTick reports the glyph being handled when a tick failed.
type ErrTick struct {
	Glyph keypad.Glyph
	Err   error
}

func (err *ErrTick) Error() string {
	return f("key '%v': %v", err.Glyph, err.Err)
}

func (err *ErrTick) Unwrap() error {
	return err.Err
}
