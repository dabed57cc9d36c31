// Package calc turns confirmed key glyphs into a two operand addition.
//
// Glyphs are echoed to the display as typed. 'A' closes the first operand,
// '#' closes the second and writes the sum, and 'C' returns to the home
// screen from any state. Every other glyph is buffered as typed; an
// operand's value is its leading run of decimal digits.
package calc

import (
	"log"
	"strconv"

	"github.com/ezrec/padcalc/keypad"
	"github.com/ezrec/padcalc/lcd"
)

// Accumulator is the calculator state machine.
type Accumulator struct {
	Verbose bool // If set, enables verbose logging.

	Sink lcd.Sink
	Home []string // Home screen lines; lcd.DefaultHome() if nil.

	// KeepOnClear leaves the operand buffers untouched by 'C'. The home
	// screen is redrawn either way.
	KeepOnClear bool

	State    State
	Operand1 Buffer // First operand, once captured.
	Input    Buffer // Operand being typed.
	Result   int    // Last computed sum.
}

// NewAccumulator creates an idle accumulator writing to sink.
func NewAccumulator(sink lcd.Sink) *Accumulator {
	return &Accumulator{Sink: sink}
}

func (acc *Accumulator) home() []string {
	if acc.Home == nil {
		return lcd.DefaultHome()
	}
	return acc.Home
}

// Reset clears both operands, draws the home screen and awaits the first
// operand.
func (acc *Accumulator) Reset() (err error) {
	acc.Operand1.Reset()
	acc.Input.Reset()
	acc.setState(AwaitingOperand1)

	return lcd.ShowHome(acc.Sink, acc.home())
}

// OnGlyph applies one confirmed glyph. ErrOperandFull means the glyph was
// dropped and nothing was echoed; the state is unchanged.
func (acc *Accumulator) OnGlyph(g keypad.Glyph) (err error) {
	if g == keypad.GLYPH_CLEAR {
		if !acc.KeepOnClear {
			acc.Operand1.Reset()
			acc.Input.Reset()
		}
		acc.setState(AwaitingOperand1)
		return lcd.ShowHome(acc.Sink, acc.home())
	}

	if acc.State == Idle {
		acc.setState(AwaitingOperand1)
	}

	switch {
	case g == keypad.GLYPH_ADD && acc.State == AwaitingOperand1:
		err = acc.Sink.WriteChar(byte(g))
		if err != nil {
			return
		}
		acc.Operand1.Data = append(acc.Operand1.Data[:0], acc.Input.Data...)
		acc.Input.Reset()
		acc.setState(AwaitingOperand2)
	case g == keypad.GLYPH_EQUAL && acc.State == AwaitingOperand2:
		err = acc.Sink.WriteChar(byte(g))
		if err != nil {
			return
		}
		err = acc.compute()
	default:
		err = acc.Input.Push(g)
		if err != nil {
			if acc.Verbose {
				log.Print(f("calc: '%v' dropped: %v", g, err))
			}
			return
		}
		err = acc.Sink.WriteChar(byte(g))
	}

	return
}

func (acc *Accumulator) compute() (err error) {
	a, b := acc.Operand1.Value(), acc.Input.Value()
	acc.Result = a + b

	if acc.Verbose {
		log.Print(f("calc: %v(%d) + %v(%d) = %d", acc.Operand1.String(), a, acc.Input.String(), b, acc.Result))
	}

	acc.Operand1.Reset()
	acc.Input.Reset()
	acc.setState(AwaitingOperand1)

	return lcd.WriteString(acc.Sink, strconv.Itoa(acc.Result))
}

func (acc *Accumulator) setState(state State) {
	if acc.Verbose && state != acc.State {
		log.Print(f("calc: %v -> %v", acc.State, state))
	}
	acc.State = state
}
