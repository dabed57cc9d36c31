package keypad

import (
	"context"
	"log"
	"time"

	"github.com/ezrec/padcalc/hw"
)

const (
	SETTLE_DELAY  = 10 * time.Millisecond // Row settle time before sensing.
	RELEASE_DELAY = 1 * time.Millisecond  // Poll interval while a key is held.
)

// Scanner performs full scan cycles over the matrix.
type Scanner struct {
	Verbose bool // If set, enables verbose logging.

	Lines  hw.Lines
	Clock  hw.Clock
	Layout *Layout // DefaultLayout if nil.

	Settle      time.Duration // Row settle time; SETTLE_DELAY if zero.
	ReleasePoll time.Duration // Held-key poll interval; RELEASE_DELAY if zero.
}

func (sc *Scanner) layout() *Layout {
	if sc.Layout == nil {
		return &DefaultLayout
	}
	return sc.Layout
}

func (sc *Scanner) clock() hw.Clock {
	if sc.Clock == nil {
		return hw.SystemClock{}
	}
	return sc.Clock
}

// Scan drives rows R1..R4 in turn and returns the glyph of the first
// asserted column, after that column has been released. NoKey is returned
// when no row responds.
func (sc *Scanner) Scan(ctx context.Context) (glyph Glyph, err error) {
	settle := sc.Settle
	if settle == 0 {
		settle = SETTLE_DELAY
	}

	for row := range hw.ROWS {
		err = sc.Lines.SetRow(row, false)
		if err != nil {
			return
		}
	}

	for row := range hw.ROWS {
		err = sc.Lines.SetRow(row, true)
		if err != nil {
			return
		}

		var col int
		col, err = sc.sense(ctx, settle)
		if err == nil && col >= 0 {
			glyph = sc.layout().Lookup(row, col)
			if sc.Verbose {
				log.Print(f("keypad: R%d C%d '%v' down", row+1, col+1, glyph))
			}
			err = sc.awaitRelease(ctx, col)
		}

		if rerr := sc.Lines.SetRow(row, false); err == nil {
			err = rerr
		}

		if err != nil || glyph != NoKey {
			if err != nil {
				glyph = NoKey
			}
			return
		}
	}

	return
}

// sense waits for the driven row to settle and returns the first asserted
// column, or -1.
func (sc *Scanner) sense(ctx context.Context, settle time.Duration) (col int, err error) {
	err = sc.clock().Sleep(ctx, settle)
	if err != nil {
		return
	}

	for col = range hw.COLUMNS {
		var on bool
		on, err = sc.Lines.ReadColumn(col)
		if err != nil || on {
			return
		}
	}

	return -1, nil
}

func (sc *Scanner) awaitRelease(ctx context.Context, col int) (err error) {
	poll := sc.ReleasePoll
	if poll == 0 {
		poll = RELEASE_DELAY
	}

	for {
		var on bool
		on, err = sc.Lines.ReadColumn(col)
		if err != nil || !on {
			return
		}

		err = sc.clock().Sleep(ctx, poll)
		if err != nil {
			return
		}
	}
}
