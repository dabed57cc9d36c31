package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/padcalc/keypad"
)

func TestBuffer_Push(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{}
	assert.True(b.Empty())

	for _, g := range []keypad.Glyph("1234") {
		assert.False(b.Full())
		assert.NoError(b.Push(g))
	}

	assert.True(b.Full())
	assert.Equal(ErrOperandFull, b.Push('5'))
	assert.Equal("1234", b.String())
	assert.Equal(1234, b.Value())
}

func TestBuffer_Capacity(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{Capacity: 2}
	assert.NoError(b.Push('9'))
	assert.NoError(b.Push('9'))
	assert.ErrorIs(b.Push('9'), ErrOperandFull)
	assert.Equal(99, b.Value())
}

func TestBuffer_Value(t *testing.T) {
	assert := assert.New(t)

	tests := map[string]int{
		"":     0,
		"0":    0,
		"007":  7,
		"12*3": 12,
		"B12":  0,
		"9999": 9999,
	}

	for text, expect := range tests {
		b := &Buffer{Data: []keypad.Glyph(text)}
		assert.Equal(expect, b.Value(), text)
	}
}

func TestBuffer_Reset(t *testing.T) {
	assert := assert.New(t)

	b := &Buffer{}
	b.Reset()
	assert.True(b.Empty())

	assert.NoError(b.Push('3'))
	b.Reset()
	assert.True(b.Empty())
	assert.Equal("", b.String())
}

func TestState_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("Idle", Idle.String())
	assert.Equal("AwaitingOperand1", AwaitingOperand1.String())
	assert.Equal("AwaitingOperand2", AwaitingOperand2.String())
	assert.Equal("State(7)", State(7).String())
}
