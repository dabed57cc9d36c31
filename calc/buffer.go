package calc

import (
	"github.com/ezrec/padcalc/keypad"
)

const (
	OPERAND_LIMIT = 4 // Glyphs per operand.
)

// Buffer holds the glyphs typed for one operand.
type Buffer struct {
	Capacity int // OPERAND_LIMIT if zero.
	Data     []keypad.Glyph
}

func (b *Buffer) limit() int {
	if b.Capacity <= 0 {
		return OPERAND_LIMIT
	}
	return b.Capacity
}

// Push appends g, or returns ErrOperandFull and leaves the buffer unchanged.
func (b *Buffer) Push(g keypad.Glyph) error {
	if b.Full() {
		return ErrOperandFull
	}

	b.Data = append(b.Data, g)
	return nil
}

func (b *Buffer) Empty() bool {
	return len(b.Data) == 0
}

func (b *Buffer) Full() bool {
	return len(b.Data) >= b.limit()
}

func (b *Buffer) Reset() {
	if len(b.Data) > 0 {
		b.Data = b.Data[:0]
	}
}

// Value is the number spelled by the leading decimal digits of the buffer.
// An empty buffer, or one that starts with a non-digit, is zero.
func (b *Buffer) Value() (value int) {
	for _, g := range b.Data {
		if !g.IsDigit() {
			break
		}
		value = value*10 + int(g-'0')
	}

	return
}

func (b *Buffer) String() string {
	text := make([]byte, len(b.Data))
	for i, g := range b.Data {
		text[i] = byte(g)
	}
	return string(text)
}
