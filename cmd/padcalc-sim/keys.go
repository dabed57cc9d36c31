package main

import (
	"io"

	"github.com/ezrec/padcalc/keypad"
)

const (
	keyCtrlC = 0x03
	keyCtrlD = 0x04
)

// keyReader turns raw keyboard bytes into keypad glyphs. Letters are folded
// to upper case, keys not on the layout are dropped, and 'q', ^C or ^D end
// the input.
type keyReader struct {
	input  io.Reader
	layout *keypad.Layout
}

func (kr *keyReader) Read(buf []byte) (n int, err error) {
	if len(buf) == 0 {
		return
	}

	var one [1]byte
	for {
		_, err = io.ReadFull(kr.input, one[:])
		if err != nil {
			return
		}

		key := one[0]
		switch {
		case key == 'q', key == keyCtrlC, key == keyCtrlD:
			return 0, io.EOF
		case key >= 'a' && key <= 'z':
			key -= 'a' - 'A'
		}

		if _, _, ok := kr.layout.Find(keypad.Glyph(key)); ok {
			buf[0] = key
			return 1, nil
		}
	}
}
