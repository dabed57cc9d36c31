package hw

import (
	"context"
	"sync"
	"time"
)

// Clock suspends the caller for a fixed interval. Every delay in the keypad
// and display drivers goes through a Clock.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock sleeps in real time.
type SystemClock struct{}

func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// FakeClock advances virtual time only. OnSleep, if set, runs after every
// sleep with the count of sleeps so far; tests use it to press and release
// simulated keys at known points of a scan.
type FakeClock struct {
	mutex   sync.Mutex
	Elapsed time.Duration
	Sleeps  int
	OnSleep func(sleeps int)
}

func (fc *FakeClock) Sleep(ctx context.Context, d time.Duration) (err error) {
	err = ctx.Err()
	if err != nil {
		return
	}

	fc.mutex.Lock()
	fc.Elapsed += d
	fc.Sleeps++
	sleeps := fc.Sleeps
	hook := fc.OnSleep
	fc.mutex.Unlock()

	if hook != nil {
		hook(sleeps)
	}

	return ctx.Err()
}
