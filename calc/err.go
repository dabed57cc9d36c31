package calc

import (
	"errors"

	"github.com/ezrec/padcalc/translate"
)

var f = translate.From

var (
	ErrOperandFull = errors.New(f("operand full"))
)
