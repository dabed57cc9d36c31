// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package device runs the keypad calculator: it waits for confirmed key
// presses and feeds them, in order, to the calculator.
package device

import (
	"context"
	"errors"
	"log"

	"github.com/ezrec/padcalc/calc"
	"github.com/ezrec/padcalc/hw"
	"github.com/ezrec/padcalc/keypad"
	"github.com/ezrec/padcalc/lcd"
)

// Device state. Keypad + calculator + display.
type Device struct {
	verbose bool

	Waiter      *keypad.Waiter    // Confirmed key press source.
	Accumulator *calc.Accumulator // Calculator state machine.
	Sink        lcd.Sink          // Display.

	Presses int // Glyphs handled since reset.
}

// NewDevice creates a device scanning lines and writing to sink. All delays
// go through clock.
func NewDevice(lines hw.Lines, sink lcd.Sink, clock hw.Clock) (dev *Device) {
	dev = &Device{
		Waiter: &keypad.Waiter{
			Scanner: &keypad.Scanner{
				Lines: lines,
				Clock: clock,
			},
		},
		Accumulator: calc.NewAccumulator(sink),
		Sink:        sink,
	}

	return
}

// SetVerbose enables verbose logging on the device and its parts.
func (dev *Device) SetVerbose(verbose bool) {
	dev.verbose = verbose
	dev.Waiter.Verbose = verbose
	dev.Accumulator.Verbose = verbose
}

// Reset initializes the display and shows the home screen.
func (dev *Device) Reset() (err error) {
	err = lcd.Initialize(dev.Sink)
	if err != nil {
		return
	}

	dev.Presses = 0

	return dev.Accumulator.Reset()
}

// Tick waits for one key press and applies it. A dropped digit is logged,
// not returned.
func (dev *Device) Tick(ctx context.Context) (glyph keypad.Glyph, err error) {
	glyph, err = dev.Waiter.Wait(ctx)
	if err != nil {
		return
	}

	dev.Presses++
	if dev.verbose {
		log.Print(f("device: press %d '%v'", dev.Presses, glyph))
	}

	err = dev.Accumulator.OnGlyph(glyph)
	if errors.Is(err, calc.ErrOperandFull) {
		if dev.verbose {
			log.Print(f("device: '%v' ignored: %v", glyph, err))
		}
		err = nil
	}
	if err != nil {
		err = &ErrTick{Glyph: glyph, Err: err}
	}

	return
}

// Run ticks until ctx ends, returning nil then, or until a tick fails.
func (dev *Device) Run(ctx context.Context) (err error) {
	for {
		_, err = dev.Tick(ctx)
		if ctx.Err() != nil {
			return nil
		}
		if err != nil {
			return
		}
	}
}
