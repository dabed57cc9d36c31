package keypad

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/ezrec/padcalc/hw"
)

const (
	TAPE_HOLD = 150 * time.Millisecond // How long a taped key is held down.
	TAPE_GAP  = 150 * time.Millisecond // Pause after releasing a taped key.
)

// Tape plays a recorded sequence of glyphs into a simulated matrix as
// press, hold and release events. Whitespace in the input is skipped.
type Tape struct {
	Input  io.Reader
	Matrix *hw.Matrix
	Layout *Layout // DefaultLayout if nil.
	Clock  hw.Clock

	Hold time.Duration // TAPE_HOLD if zero.
	Gap  time.Duration // TAPE_GAP if zero.
}

// Next reads the next glyph from the input.
func (tp *Tape) Next() (glyph Glyph, err error) {
	var one [1]byte
	for {
		_, err = io.ReadFull(tp.Input, one[:])
		if err != nil {
			return
		}

		switch one[0] {
		case ' ', '\t', '\r', '\n':
			continue
		}

		glyph = Glyph(one[0])
		return
	}
}

// Play presses every glyph of the input in order. It returns nil at the end
// of the input.
func (tp *Tape) Play(ctx context.Context) (err error) {
	layout := tp.Layout
	if layout == nil {
		layout = &DefaultLayout
	}

	clock := tp.Clock
	if clock == nil {
		clock = hw.SystemClock{}
	}

	hold := tp.Hold
	if hold == 0 {
		hold = TAPE_HOLD
	}

	gap := tp.Gap
	if gap == 0 {
		gap = TAPE_GAP
	}

	for {
		var glyph Glyph
		glyph, err = tp.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return
		}

		row, col, ok := layout.Find(glyph)
		if !ok {
			return ErrGlyph(glyph)
		}

		tp.Matrix.Press(row, col)
		err = clock.Sleep(ctx, hold)
		tp.Matrix.Release(row, col)
		if err != nil {
			return
		}

		err = clock.Sleep(ctx, gap)
		if err != nil {
			return
		}
	}
}
