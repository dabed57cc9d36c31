package hw

import (
	"fmt"
	"sync"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

// Matrix simulates the switches of a 4x4 keypad wired between row and column
// lines. Its pins plug into PinLines in place of real GPIO.
type Matrix struct {
	mutex   sync.Mutex
	pressed [ROWS][COLUMNS]bool

	rows [ROWS]*gpiotest.Pin
	cols [COLUMNS]*columnPin
}

// columnPin reads High when any closed switch joins it to a driven row.
type columnPin struct {
	gpiotest.Pin
	matrix *Matrix
	index  int
}

func (cp *columnPin) Read() gpio.Level {
	return cp.matrix.column(cp.index)
}

// NewMatrix creates a matrix with every switch open.
func NewMatrix() (m *Matrix) {
	m = &Matrix{}
	for i := range m.rows {
		m.rows[i] = &gpiotest.Pin{N: fmt.Sprintf("R%d", i+1), Num: i}
	}
	for i := range m.cols {
		m.cols[i] = &columnPin{
			Pin:    gpiotest.Pin{N: fmt.Sprintf("C%d", i+1), Num: ROWS + i},
			matrix: m,
			index:  i,
		}
	}

	return
}

// Lines returns PinLines wired to the simulated pins.
func (m *Matrix) Lines() (pl *PinLines) {
	pl = &PinLines{}
	for i, row := range m.rows {
		pl.Rows[i] = row
	}
	for i, col := range m.cols {
		pl.Cols[i] = col
	}

	return
}

// Press closes the switch at (row, col).
func (m *Matrix) Press(row, col int) {
	m.set(row, col, true)
}

// Release opens the switch at (row, col).
func (m *Matrix) Release(row, col int) {
	m.set(row, col, false)
}

// ReleaseAll opens every switch.
func (m *Matrix) ReleaseAll() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.pressed = [ROWS][COLUMNS]bool{}
}

// Pressed reports whether any switch is closed.
func (m *Matrix) Pressed() bool {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, row := range m.pressed {
		for _, on := range row {
			if on {
				return true
			}
		}
	}

	return false
}

// Driven returns the rows currently driven High.
func (m *Matrix) Driven() (rows []int) {
	for i, row := range m.rows {
		if row.Read() == gpio.High {
			rows = append(rows, i)
		}
	}

	return
}

func (m *Matrix) set(row, col int, on bool) {
	if row < 0 || row >= ROWS || col < 0 || col >= COLUMNS {
		return
	}

	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.pressed[row][col] = on
}

func (m *Matrix) column(col int) gpio.Level {
	m.mutex.Lock()
	pressed := m.pressed
	m.mutex.Unlock()

	for row := range ROWS {
		if pressed[row][col] && m.rows[row].Read() == gpio.High {
			return gpio.High
		}
	}

	return gpio.Low
}
