package calc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/padcalc/keypad"
	"github.com/ezrec/padcalc/lcd"
)

var testHome = []string{"Key pressed", "--------------------", "A=+  #==  C=clear"}

func newTestAccumulator(t *testing.T) (acc *Accumulator, screen *lcd.Screen) {
	screen = lcd.NewScreen()
	acc = NewAccumulator(screen)
	acc.Home = testHome
	assert.NoError(t, acc.Reset())
	return
}

func feed(acc *Accumulator, glyphs string) (errs []error) {
	for _, g := range []keypad.Glyph(glyphs) {
		if err := acc.OnGlyph(g); err != nil {
			errs = append(errs, err)
		}
	}
	return
}

func TestAccumulator_Reset(t *testing.T) {
	assert := assert.New(t)

	acc, screen := newTestAccumulator(t)

	assert.Equal(AwaitingOperand1, acc.State)
	assert.Equal(testHome, screen.Lines()[:3])
	assert.Equal("", screen.Line(lcd.INPUT_LINE))
}

func TestAccumulator_Add(t *testing.T) {
	assert := assert.New(t)

	tests := []struct {
		glyphs string
		line   string
		result int
	}{
		{"12A34#", "12A34#46", 46},
		{"7A8#", "7A8#15", 15},
		{"A#", "A#0", 0},
		{"9999A9999#", "9999A9999#19998", 19998},
		{"5A#", "5A#5", 5},
		{"A3#", "A3#3", 3},
	}

	for _, test := range tests {
		acc, screen := newTestAccumulator(t)
		assert.Empty(feed(acc, test.glyphs), test.glyphs)
		assert.Equal(test.line, screen.Line(lcd.INPUT_LINE), test.glyphs)
		assert.Equal(test.result, acc.Result, test.glyphs)
		assert.Equal(AwaitingOperand1, acc.State, test.glyphs)
		assert.True(acc.Operand1.Empty())
		assert.True(acc.Input.Empty())
	}
}

func TestAccumulator_Transitions(t *testing.T) {
	assert := assert.New(t)

	acc, _ := newTestAccumulator(t)

	assert.NoError(acc.OnGlyph('4'))
	assert.Equal(AwaitingOperand1, acc.State)
	assert.Equal("4", acc.Input.String())

	assert.NoError(acc.OnGlyph('A'))
	assert.Equal(AwaitingOperand2, acc.State)
	assert.Equal("4", acc.Operand1.String())
	assert.True(acc.Input.Empty())

	assert.NoError(acc.OnGlyph('2'))
	assert.Equal(AwaitingOperand2, acc.State)
	assert.Equal("2", acc.Input.String())

	assert.NoError(acc.OnGlyph('#'))
	assert.Equal(AwaitingOperand1, acc.State)
	assert.Equal(6, acc.Result)
}

func TestAccumulator_Consecutive(t *testing.T) {
	assert := assert.New(t)

	acc, screen := newTestAccumulator(t)
	assert.Empty(feed(acc, "1A1#2A2#"))
	assert.Equal("1A1#22A2#4", screen.Line(lcd.INPUT_LINE))
	assert.Equal(4, acc.Result)
}

func TestAccumulator_Clear(t *testing.T) {
	assert := assert.New(t)

	for _, glyphs := range []string{"", "12", "12A", "12A3", "1A2#"} {
		acc, screen := newTestAccumulator(t)
		assert.Empty(feed(acc, glyphs+"C"), glyphs)

		assert.Equal(AwaitingOperand1, acc.State, glyphs)
		assert.Equal(testHome, screen.Lines()[:3], glyphs)
		assert.Equal("", screen.Line(lcd.INPUT_LINE), glyphs)
		assert.True(acc.Operand1.Empty(), glyphs)
		assert.True(acc.Input.Empty(), glyphs)
	}

	acc, screen := newTestAccumulator(t)
	assert.Empty(feed(acc, "12A3C4A5#"))
	assert.Equal("4A5#9", screen.Line(lcd.INPUT_LINE))
}

func TestAccumulator_KeepOnClear(t *testing.T) {
	assert := assert.New(t)

	acc, screen := newTestAccumulator(t)
	acc.KeepOnClear = true

	assert.Empty(feed(acc, "12C3A4#"))
	assert.Equal(127, acc.Result)
	assert.Equal("3A4#127", screen.Line(lcd.INPUT_LINE))
}

func TestAccumulator_Overflow(t *testing.T) {
	assert := assert.New(t)

	acc, screen := newTestAccumulator(t)

	errs := feed(acc, "12345")
	assert.Len(errs, 1)
	assert.True(errors.Is(errs[0], ErrOperandFull))
	assert.Equal("1234", screen.Line(lcd.INPUT_LINE))
	assert.Equal("1234", acc.Input.String())

	errs = feed(acc, "A56789#")
	assert.Len(errs, 1)
	assert.Equal("1234A5678#6912", screen.Line(lcd.INPUT_LINE))
	assert.Equal(6912, acc.Result)
}

func TestAccumulator_Permissive(t *testing.T) {
	assert := assert.New(t)

	acc, screen := newTestAccumulator(t)

	// Non-control glyphs are echoed and buffered; the value stops at the
	// first non-digit.
	assert.Empty(feed(acc, "1*2A3B#"))
	assert.Equal("1*2A3B#4", screen.Line(lcd.INPUT_LINE))
	assert.Equal(4, acc.Result)

	// '#' before the operator, and 'A' after it, are ordinary glyphs.
	acc, screen = newTestAccumulator(t)
	assert.Empty(feed(acc, "2#A1A5#"))
	assert.Equal("2#A1A5#3", screen.Line(lcd.INPUT_LINE))
	assert.Equal(3, acc.Result)
}

func TestAccumulator_Idle(t *testing.T) {
	assert := assert.New(t)

	screen := lcd.NewScreen()
	acc := NewAccumulator(screen)
	assert.Equal(Idle, acc.State)

	assert.NoError(acc.OnGlyph('8'))
	assert.Equal(AwaitingOperand1, acc.State)
	assert.Equal("8", screen.Line(0))
}

type failSink struct {
	lcd.Sink
	err error
}

func (fs *failSink) WriteChar(byte) error {
	return fs.err
}

func TestAccumulator_SinkError(t *testing.T) {
	assert := assert.New(t)

	errSink := errors.New("sink")
	acc := NewAccumulator(&failSink{Sink: lcd.NewScreen(), err: errSink})
	acc.Home = []string{}
	assert.NoError(acc.Reset())

	assert.ErrorIs(acc.OnGlyph('1'), errSink)
	assert.ErrorIs(acc.OnGlyph('A'), errSink)
	assert.Equal(AwaitingOperand1, acc.State)
}
