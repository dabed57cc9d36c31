// Package config loads the calculator's wiring and timing from a Starlark
// file.
//
// Every setting is a top-level global; anything left unset keeps its default.
// Durations are integers in nanoseconds, and the predeclared MICROSECOND and
// MILLISECOND constants scale them:
//
//	rows = ["GPIO5", "GPIO6", "GPIO13", "GPIO19"]
//	settle = 10 * MILLISECOND
//	home = ["Adder", "", "A=+  #=="]
//
// Globals whose names start with an underscore are free for helpers.
package config

import (
	"io"
	"os"
	"strings"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/padcalc/calc"
	"github.com/ezrec/padcalc/device"
	"github.com/ezrec/padcalc/hw"
	"github.com/ezrec/padcalc/keypad"
	"github.com/ezrec/padcalc/lcd"
)

// Config is the complete set of settings.
type Config struct {
	Rows    [hw.ROWS]string    // Row output pin names, R1..R4.
	Columns [hw.COLUMNS]string // Column input pin names, C1..C4.
	RS      string             // LCD register select pin name.
	E       string             // LCD enable pin name.
	Data    [8]string          // LCD data pin names, D0..D7.

	Settle      time.Duration // Row settle time.
	Poll        time.Duration // Idle time between scans.
	ReleasePoll time.Duration // Held key poll interval.
	Pulse       time.Duration // LCD enable pulse width.
	Hold        time.Duration // LCD post-strobe settle.

	Layout      keypad.Layout
	Home        []string // nil for the localized default.
	Capacity    int      // Glyphs per operand.
	KeepOnClear bool     // 'C' leaves operands untouched.
	Verbose     bool
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Rows:        [hw.ROWS]string{"GPIO5", "GPIO6", "GPIO13", "GPIO19"},
		Columns:     [hw.COLUMNS]string{"GPIO12", "GPIO16", "GPIO20", "GPIO21"},
		RS:          "GPIO7",
		E:           "GPIO8",
		Data:        [8]string{"GPIO17", "GPIO18", "GPIO22", "GPIO23", "GPIO24", "GPIO25", "GPIO26", "GPIO27"},
		Settle:      keypad.SETTLE_DELAY,
		Poll:        keypad.POLL_DELAY,
		ReleasePoll: keypad.RELEASE_DELAY,
		Pulse:       lcd.PULSE_WIDTH,
		Hold:        lcd.HOLD_WIDTH,
		Layout:      keypad.DefaultLayout,
		Capacity:    calc.OPERAND_LIMIT,
	}
}

// Load reads a configuration file over the defaults.
func Load(path string) (cfg *Config, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	return Parse(path, inf)
}

// Parse executes Starlark source over the defaults. name is used in error
// messages.
func Parse(name string, src io.Reader) (cfg *Config, err error) {
	data, err := io.ReadAll(src)
	if err != nil {
		return
	}

	thread := &starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}
	pred := starlark.StringDict{
		"MICROSECOND": starlark.MakeInt64(int64(time.Microsecond)),
		"MILLISECOND": starlark.MakeInt64(int64(time.Millisecond)),
	}

	globals, err := starlark.ExecFileOptions(&opts, thread, name, data, pred)
	if err != nil {
		return
	}

	cfg = Default()
	for _, key := range globals.Keys() {
		if strings.HasPrefix(key, "_") {
			continue
		}

		err = cfg.set(key, globals[key])
		if err != nil {
			cfg = nil
			return
		}
	}

	return
}

func (cfg *Config) set(key string, value starlark.Value) (err error) {
	switch key {
	case "rows":
		err = setStrings(cfg.Rows[:], value)
	case "columns":
		err = setStrings(cfg.Columns[:], value)
	case "lcd_rs":
		err = setString(&cfg.RS, value)
	case "lcd_e":
		err = setString(&cfg.E, value)
	case "lcd_data":
		err = setStrings(cfg.Data[:], value)
	case "settle":
		err = setDuration(&cfg.Settle, value)
	case "poll":
		err = setDuration(&cfg.Poll, value)
	case "release_poll":
		err = setDuration(&cfg.ReleasePoll, value)
	case "pulse":
		err = setDuration(&cfg.Pulse, value)
	case "hold":
		err = setDuration(&cfg.Hold, value)
	case "layout":
		err = setLayout(&cfg.Layout, value)
	case "home":
		err = setList(&cfg.Home, value)
	case "capacity":
		err = setInt(&cfg.Capacity, value)
		if err == nil && cfg.Capacity <= 0 {
			err = ErrConfigValue
		}
	case "keep_on_clear":
		err = setBool(&cfg.KeepOnClear, value)
	case "verbose":
		err = setBool(&cfg.Verbose, value)
	default:
		return ErrConfigKey(key)
	}

	if err != nil {
		err = &ErrSetting{Key: key, Err: err}
	}

	return
}

func setString(dst *string, value starlark.Value) error {
	str, ok := starlark.AsString(value)
	if !ok {
		return ErrConfigValue
	}
	*dst = str
	return nil
}

func setList(dst *[]string, value starlark.Value) error {
	list, ok := value.(starlark.Indexable)
	if !ok || value.Type() == "string" {
		return ErrConfigValue
	}

	strs := make([]string, list.Len())
	err := setStrings(strs, value)
	if err != nil {
		return err
	}

	*dst = strs
	return nil
}

func setStrings(dst []string, value starlark.Value) error {
	if _, ok := value.(starlark.String); ok {
		return ErrConfigValue
	}

	list, ok := value.(starlark.Indexable)
	if !ok {
		return ErrConfigValue
	}
	if list.Len() != len(dst) {
		return ErrConfigCount
	}

	for i := range dst {
		err := setString(&dst[i], list.Index(i))
		if err != nil {
			return err
		}
	}

	return nil
}

func setInt(dst *int, value starlark.Value) error {
	num, ok := value.(starlark.Int)
	if !ok {
		return ErrConfigValue
	}

	n, ok := num.Int64()
	if !ok {
		return ErrConfigValue
	}

	*dst = int(n)
	return nil
}

func setDuration(dst *time.Duration, value starlark.Value) error {
	var n int
	err := setInt(&n, value)
	if err != nil {
		return err
	}
	if n < 0 {
		return ErrConfigValue
	}

	*dst = time.Duration(n)
	return nil
}

func setBool(dst *bool, value starlark.Value) error {
	b, ok := value.(starlark.Bool)
	if !ok {
		return ErrConfigValue
	}

	*dst = bool(b)
	return nil
}

func setLayout(dst *keypad.Layout, value starlark.Value) error {
	var rows [hw.ROWS]string
	err := setStrings(rows[:], value)
	if err != nil {
		return err
	}

	var layout keypad.Layout
	for row, text := range rows {
		if len(text) != hw.COLUMNS {
			return ErrConfigCount
		}
		for col := range hw.COLUMNS {
			layout[row][col] = keypad.Glyph(text[col])
		}
	}

	*dst = layout
	return nil
}

// Apply copies the keypad, calculator and logging settings onto dev.
func (cfg *Config) Apply(dev *device.Device) {
	layout := cfg.Layout

	dev.Waiter.Poll = cfg.Poll
	dev.Waiter.Settle = cfg.Settle
	dev.Waiter.ReleasePoll = cfg.ReleasePoll
	dev.Waiter.Layout = &layout

	acc := dev.Accumulator
	acc.Home = cfg.Home
	acc.KeepOnClear = cfg.KeepOnClear
	acc.Operand1.Capacity = cfg.Capacity
	acc.Input.Capacity = cfg.Capacity

	dev.SetVerbose(cfg.Verbose)
}
