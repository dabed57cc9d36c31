// Package hw abstracts the digital lines of a 4x4 matrix keypad and the
// passage of time, so that the scanning logic runs the same against real
// GPIO pins and against the simulated matrix used by tests and the terminal
// simulator.
package hw

import (
	"periph.io/x/conn/v3/gpio"
)

const (
	ROWS    = 4 // Row drive lines, R1..R4.
	COLUMNS = 4 // Column sense lines, C1..C4.
)

// Lines is the row-drive / column-sense view of a keypad. Both are
// active-high.
type Lines interface {
	// SetRow asserts (on) or deasserts row i.
	SetRow(i int, on bool) error
	// ReadColumn reports whether column i is asserted.
	ReadColumn(i int) (bool, error)
}

// PinLines drives Lines through periph.io GPIO pins.
type PinLines struct {
	Rows [ROWS]gpio.PinOut
	Cols [COLUMNS]gpio.PinIn
}

// Configure drives every row low and makes every column a pulled-down input.
func (pl *PinLines) Configure() (err error) {
	for i, row := range pl.Rows {
		err = row.Out(gpio.Low)
		if err != nil {
			return &ErrLine{Kind: "row", Index: i, Err: err}
		}
	}

	for i, col := range pl.Cols {
		err = col.In(gpio.PullDown, gpio.NoEdge)
		if err != nil {
			return &ErrLine{Kind: "column", Index: i, Err: err}
		}
	}

	return
}

func (pl *PinLines) SetRow(i int, on bool) (err error) {
	if i < 0 || i >= ROWS {
		return ErrLineIndex
	}

	err = pl.Rows[i].Out(gpio.Level(on))
	if err != nil {
		err = &ErrLine{Kind: "row", Index: i, Err: err}
	}

	return
}

func (pl *PinLines) ReadColumn(i int) (on bool, err error) {
	if i < 0 || i >= COLUMNS {
		err = ErrLineIndex
		return
	}

	on = pl.Cols[i].Read() == gpio.High
	return
}
