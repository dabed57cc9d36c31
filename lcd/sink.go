// Package lcd drives an HD44780-compatible 20x4 character display.
//
// A Sink accepts the two kinds of byte the controller latches: commands
// (register select low) and character data (register select high). The
// HD44780 type strobes them onto GPIO pins; Screen decodes them into a
// simulated controller for tests and the terminal simulator.
package lcd

import (
	"github.com/ezrec/padcalc/translate"
)

// Sink is the byte interface of a character display.
type Sink interface {
	WriteCommand(command byte) error
	WriteChar(data byte) error
}

// Display geometry.
const (
	COLUMNS    = 20
	LINES      = 4
	INPUT_LINE = LINES - 1 // Line that echoes key input.
)

// Controller commands.
const (
	CMD_CLEAR          = 0x01 // Clear display, address counter to 0.
	CMD_HOME           = 0x02 // Address counter to 0.
	CMD_ENTRY_MODE     = 0x04 // | ENTRY_INCREMENT | ENTRY_SHIFT
	CMD_DISPLAY        = 0x08 // | DISPLAY_ON | DISPLAY_CURSOR | DISPLAY_BLINK
	CMD_SHIFT          = 0x10 // | SHIFT_DISPLAY | SHIFT_RIGHT
	CMD_FUNCTION       = 0x20 // | FUNCTION_8BIT | FUNCTION_2LINE | FUNCTION_5X10
	CMD_SET_CGRAM_ADDR = 0x40
	CMD_SET_DDRAM_ADDR = 0x80

	ENTRY_INCREMENT = 0x02
	ENTRY_SHIFT     = 0x01

	DISPLAY_ON     = 0x04
	DISPLAY_CURSOR = 0x02
	DISPLAY_BLINK  = 0x01

	SHIFT_DISPLAY = 0x08
	SHIFT_RIGHT   = 0x04

	FUNCTION_8BIT  = 0x10
	FUNCTION_2LINE = 0x08
	FUNCTION_5X10  = 0x04
)

// lineAddress is the DDRAM address of the first column of each line.
var lineAddress = [LINES]byte{0x00, 0x40, 0x14, 0x54}

// Initialize puts the controller into 8-bit, 2-line mode with the display on,
// cursor hidden, auto-incrementing entry, cleared, and the cursor home.
func Initialize(sink Sink) (err error) {
	for _, cmd := range []byte{
		CMD_FUNCTION | FUNCTION_8BIT | FUNCTION_2LINE | FUNCTION_5X10,
		CMD_DISPLAY | DISPLAY_ON,
		CMD_CLEAR,
		CMD_ENTRY_MODE | ENTRY_INCREMENT,
		CMD_CLEAR,
		CMD_SET_DDRAM_ADDR | lineAddress[0],
	} {
		err = sink.WriteCommand(cmd)
		if err != nil {
			return
		}
	}

	return
}

// MoveTo places the cursor at the start of line.
func MoveTo(sink Sink, line int) (err error) {
	if line < 0 || line >= LINES {
		return ErrLineIndex
	}

	return sink.WriteCommand(CMD_SET_DDRAM_ADDR | lineAddress[line])
}

// WriteString writes text at the cursor.
func WriteString(sink Sink, text string) (err error) {
	for i := range len(text) {
		err = sink.WriteChar(text[i])
		if err != nil {
			return
		}
	}

	return
}

// DefaultHome returns the localized home screen.
func DefaultHome() []string {
	return []string{
		f(translate.HomeTitle),
		f(translate.HomeRule),
		f(translate.HomeOperators),
	}
}

// ShowHome clears the display, writes up to INPUT_LINE lines of home text,
// and leaves the cursor at the start of the input line.
func ShowHome(sink Sink, home []string) (err error) {
	err = sink.WriteCommand(CMD_CLEAR)
	if err != nil {
		return
	}

	for line, text := range home {
		if line >= INPUT_LINE {
			break
		}
		if len(text) > COLUMNS {
			text = text[:COLUMNS]
		}

		err = MoveTo(sink, line)
		if err == nil {
			err = WriteString(sink, text)
		}
		if err != nil {
			return
		}
	}

	return MoveTo(sink, INPUT_LINE)
}
