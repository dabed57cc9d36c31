package config

import (
	"errors"

	"github.com/ezrec/padcalc/translate"
)

var f = translate.From

var (
	ErrConfigValue = errors.New(f("wrong value type"))
	ErrConfigCount = errors.New(f("wrong number of entries"))
)

// ErrConfigKey is a global that no setting uses.
type ErrConfigKey string

func (err ErrConfigKey) Error() string {
	return f("unknown setting '%v'", string(err))
}

// ErrSetting reports which setting failed to convert.
type ErrSetting struct {
	Key string
	Err error
}

func (err *ErrSetting) Error() string {
	return f("setting '%v': %v", err.Key, err.Err)
}

func (err *ErrSetting) Unwrap() error {
	return err.Err
}
