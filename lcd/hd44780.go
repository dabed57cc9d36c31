package lcd

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/ezrec/padcalc/hw"
)

const (
	PULSE_WIDTH = 500 * time.Microsecond // Enable high time.
	HOLD_WIDTH  = 500 * time.Microsecond // Settle after enable falls.
	CLEAR_DELAY = 2 * time.Millisecond   // Extra time clear and home need.
)

// HD44780 strobes bytes into an HD44780 controller wired in 8-bit mode.
// R/W is assumed tied low.
type HD44780 struct {
	RS   gpio.PinOut
	E    gpio.PinOut
	Data [8]gpio.PinOut

	Clock hw.Clock      // hw.SystemClock if nil.
	Pulse time.Duration // PULSE_WIDTH if zero.
	Hold  time.Duration // HOLD_WIDTH if zero.
}

// Configure drives every control and data line low.
func (hd *HD44780) Configure() (err error) {
	err = hd.out("E", hd.E, gpio.Low)
	if err == nil {
		err = hd.out("RS", hd.RS, gpio.Low)
	}
	if err == nil {
		err = hd.data(0)
	}

	return
}

// WriteCommand latches a command byte.
func (hd *HD44780) WriteCommand(command byte) (err error) {
	err = hd.strobe(gpio.Low, command)
	if err != nil {
		return
	}

	if command == CMD_CLEAR || command&^0x01 == CMD_HOME {
		err = hd.sleep(CLEAR_DELAY)
	}

	return
}

// WriteChar latches a character byte.
func (hd *HD44780) WriteChar(data byte) (err error) {
	return hd.strobe(gpio.High, data)
}

func (hd *HD44780) strobe(rs gpio.Level, value byte) (err error) {
	pulse := hd.Pulse
	if pulse == 0 {
		pulse = PULSE_WIDTH
	}

	hold := hd.Hold
	if hold == 0 {
		hold = HOLD_WIDTH
	}

	err = hd.out("RS", hd.RS, rs)
	if err != nil {
		return
	}

	err = hd.data(value)
	if err != nil {
		return
	}

	err = hd.out("E", hd.E, gpio.High)
	if err != nil {
		return
	}

	err = hd.sleep(pulse)
	if err != nil {
		return
	}

	err = hd.out("E", hd.E, gpio.Low)
	if err != nil {
		return
	}

	return hd.sleep(hold)
}

func (hd *HD44780) data(value byte) (err error) {
	for i, pin := range hd.Data {
		err = pin.Out(gpio.Level((value>>i)&1 == 1))
		if err != nil {
			return &ErrStrobe{Pin: fmt.Sprintf("D%d", i), Err: err}
		}
	}

	return
}

func (hd *HD44780) out(name string, pin gpio.PinOut, level gpio.Level) (err error) {
	err = pin.Out(level)
	if err != nil {
		err = &ErrStrobe{Pin: name, Err: err}
	}

	return
}

func (hd *HD44780) sleep(d time.Duration) error {
	clock := hd.Clock
	if clock == nil {
		clock = hw.SystemClock{}
	}

	return clock.Sleep(context.Background(), d)
}
