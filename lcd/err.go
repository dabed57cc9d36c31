package lcd

import (
	"errors"

	"github.com/ezrec/padcalc/translate"
)

var f = translate.From

var (
	ErrLineIndex = errors.New(f("display line out of range"))
)

// ErrStrobe reports a pin failure while latching a byte into the controller.
type ErrStrobe struct {
	Pin string
	Err error
}

func (err *ErrStrobe) Error() string {
	return f("strobe %v: %v", err.Pin, err.Err)
}

func (err *ErrStrobe) Unwrap() error {
	return err.Err
}
