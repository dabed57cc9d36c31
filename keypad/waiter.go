package keypad

import (
	"context"
	"time"
)

const (
	POLL_DELAY = 50 * time.Millisecond // Idle time between scans.
)

// Waiter repeats scans until a key is pressed.
type Waiter struct {
	*Scanner
	Poll time.Duration // Idle time between scans; POLL_DELAY if zero.
}

// Wait blocks until a key has been pressed and released, and returns its
// glyph. It never returns NoKey with a nil error; it only gives up when ctx
// ends.
func (w *Waiter) Wait(ctx context.Context) (glyph Glyph, err error) {
	poll := w.Poll
	if poll == 0 {
		poll = POLL_DELAY
	}

	for {
		glyph, err = w.Scan(ctx)
		if err != nil || glyph != NoKey {
			return
		}

		err = w.clock().Sleep(ctx, poll)
		if err != nil {
			return
		}
	}
}
