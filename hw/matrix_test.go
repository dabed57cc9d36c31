package hw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix_Lines(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix()
	pl := m.Lines()
	assert.NoError(pl.Configure())
	assert.Empty(m.Driven())

	m.Press(1, 2)
	assert.True(m.Pressed())

	// Undriven row: nothing sensed.
	on, err := pl.ReadColumn(2)
	assert.NoError(err)
	assert.False(on)

	assert.NoError(pl.SetRow(1, true))
	assert.Equal([]int{1}, m.Driven())

	for col := range COLUMNS {
		on, err = pl.ReadColumn(col)
		assert.NoError(err)
		assert.Equal(col == 2, on, "column %d", col)
	}

	assert.NoError(pl.SetRow(1, false))
	on, _ = pl.ReadColumn(2)
	assert.False(on)

	m.Release(1, 2)
	assert.False(m.Pressed())
}

func TestMatrix_WrongRow(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix()
	pl := m.Lines()

	m.Press(3, 0)
	assert.NoError(pl.SetRow(0, true))
	on, err := pl.ReadColumn(0)
	assert.NoError(err)
	assert.False(on)
}

func TestMatrix_ReleaseAll(t *testing.T) {
	assert := assert.New(t)

	m := NewMatrix()
	m.Press(0, 0)
	m.Press(3, 3)
	m.Press(9, 9) // ignored
	assert.True(m.Pressed())

	m.ReleaseAll()
	assert.False(m.Pressed())
}

func TestPinLines_Index(t *testing.T) {
	assert := assert.New(t)

	pl := NewMatrix().Lines()

	assert.ErrorIs(pl.SetRow(-1, true), ErrLineIndex)
	assert.ErrorIs(pl.SetRow(ROWS, true), ErrLineIndex)

	_, err := pl.ReadColumn(COLUMNS)
	assert.ErrorIs(err, ErrLineIndex)
}
