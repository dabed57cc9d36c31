package hw

import (
	"errors"

	"github.com/ezrec/padcalc/translate"
)

var f = translate.From

var (
	ErrLineIndex = errors.New(f("line index out of range"))
)

// ErrLine reports a failed read or write of a single hardware line.
type ErrLine struct {
	Kind  string // "row" or "column"
	Index int
	Err   error
}

func (err *ErrLine) Error() string {
	return f("%v %d: %v", err.Kind, err.Index+1, err.Err)
}

func (err *ErrLine) Unwrap() error {
	return err.Err
}
