// Package keypad scans a 4x4 matrix keypad and confirms key presses.
//
// A scan drives one row at a time and senses the columns. The first
// asserted column of the first responding row wins, and the scan holds
// until that key is released, so one physical press yields one glyph.
package keypad

import (
	"github.com/ezrec/padcalc/hw"
)

// Glyph is the character a confirmed key press stands for.
type Glyph byte

// NoKey is the scan result when no switch is closed.
const NoKey = Glyph(0)

// Control glyphs of the calculator.
const (
	GLYPH_ADD   = Glyph('A') // Operator: add.
	GLYPH_EQUAL = Glyph('#') // Terminator: compute.
	GLYPH_CLEAR = Glyph('C') // Reset to the home screen.
)

// IsDigit reports whether g is one of '0'..'9'.
func (g Glyph) IsDigit() bool {
	return g >= '0' && g <= '9'
}

func (g Glyph) String() string {
	if g == NoKey {
		return "none"
	}
	return string(rune(g))
}

// Layout maps (row, column) to a glyph.
type Layout [hw.ROWS][hw.COLUMNS]Glyph

// DefaultLayout is the printed legend of the common 4x4 membrane keypad.
var DefaultLayout = Layout{
	{'1', '2', '3', 'A'},
	{'4', '5', '6', 'B'},
	{'7', '8', '9', 'C'},
	{'*', '0', '#', 'D'},
}

// Lookup returns the glyph at (row, col), or NoKey when out of range.
func (l *Layout) Lookup(row, col int) Glyph {
	if row < 0 || row >= hw.ROWS || col < 0 || col >= hw.COLUMNS {
		return NoKey
	}
	return l[row][col]
}

// Find returns the position of g.
func (l *Layout) Find(g Glyph) (row, col int, ok bool) {
	for row = range hw.ROWS {
		for col = range hw.COLUMNS {
			if l[row][col] == g {
				ok = true
				return
			}
		}
	}

	return 0, 0, false
}
