package keypad

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/padcalc/hw"
)

func TestTape_Next(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{Input: strings.NewReader(" 1\t2\nA ")}

	for _, expect := range []Glyph("12A") {
		glyph, err := tp.Next()
		assert.NoError(err)
		assert.Equal(expect, glyph)
	}

	_, err := tp.Next()
	assert.Error(err)
}

func TestTape_Play(t *testing.T) {
	assert := assert.New(t)

	m := hw.NewMatrix()
	var pressed []bool
	fc := &hw.FakeClock{OnSleep: func(int) { pressed = append(pressed, m.Pressed()) }}

	tp := &Tape{
		Input:  strings.NewReader("7A8#\n"),
		Matrix: m,
		Clock:  fc,
	}

	assert.NoError(tp.Play(context.Background()))
	assert.Equal([]bool{true, false, true, false, true, false, true, false}, pressed)
	assert.Equal(4*(TAPE_HOLD+TAPE_GAP), fc.Elapsed)
	assert.False(m.Pressed())
}

func TestTape_Unknown(t *testing.T) {
	assert := assert.New(t)

	tp := &Tape{
		Input:  strings.NewReader("1X"),
		Matrix: hw.NewMatrix(),
		Clock:  &hw.FakeClock{},
	}

	err := tp.Play(context.Background())
	assert.Equal(ErrGlyph('X'), err)
}

func TestTape_Waiter(t *testing.T) {
	assert := assert.New(t)

	m := hw.NewMatrix()
	w := &Waiter{
		Scanner: &Scanner{Lines: m.Lines(), Settle: time.Millisecond},
		Poll:    2 * time.Millisecond,
	}
	tp := &Tape{
		Input:  strings.NewReader("12A"),
		Matrix: m,
		Hold:   50 * time.Millisecond,
		Gap:    50 * time.Millisecond,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	played := make(chan error, 1)
	go func() { played <- tp.Play(ctx) }()

	var got []Glyph
	for range 3 {
		glyph, err := w.Wait(ctx)
		assert.NoError(err)
		got = append(got, glyph)
	}

	assert.NoError(<-played)
	assert.Equal([]Glyph("12A"), got)
}
