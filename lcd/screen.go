package lcd

import (
	"strings"
	"sync"
)

// Screen simulates the controller and glass of a 20x4 HD44780 display. It
// implements Sink.
type Screen struct {
	mutex sync.Mutex

	ddram   [0x80]byte
	address byte // DDRAM or CGRAM address counter.
	cgram   bool // Data writes go to CGRAM.

	Increment bool // Entry mode I/D.
	Shift     bool // Entry mode S; recorded, not rendered.
	On        bool // Display on.
	Cursor    bool
	Blink     bool
	EightBit  bool
	TwoLine   bool

	Commands int // Commands received.
	Clears   int // Clear commands received.
}

// NewScreen returns a blank screen in the controller's power-on state.
func NewScreen() (sc *Screen) {
	sc = &Screen{Increment: true}
	sc.blank()
	return
}

func (sc *Screen) blank() {
	for i := range sc.ddram {
		sc.ddram[i] = ' '
	}
}

func (sc *Screen) WriteCommand(command byte) error {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	sc.Commands++

	switch {
	case command&CMD_SET_DDRAM_ADDR != 0:
		sc.address = command &^ CMD_SET_DDRAM_ADDR
		sc.cgram = false
	case command&CMD_SET_CGRAM_ADDR != 0:
		sc.address = command &^ CMD_SET_CGRAM_ADDR
		sc.cgram = true
	case command&CMD_FUNCTION != 0:
		sc.EightBit = command&FUNCTION_8BIT != 0
		sc.TwoLine = command&FUNCTION_2LINE != 0
	case command&CMD_SHIFT != 0:
		if command&SHIFT_DISPLAY == 0 {
			sc.step(command&SHIFT_RIGHT != 0)
		}
	case command&CMD_DISPLAY != 0:
		sc.On = command&DISPLAY_ON != 0
		sc.Cursor = command&DISPLAY_CURSOR != 0
		sc.Blink = command&DISPLAY_BLINK != 0
	case command&CMD_ENTRY_MODE != 0:
		sc.Increment = command&ENTRY_INCREMENT != 0
		sc.Shift = command&ENTRY_SHIFT != 0
	case command&CMD_HOME != 0:
		sc.address = 0
		sc.cgram = false
	case command == CMD_CLEAR:
		sc.Clears++
		sc.blank()
		sc.address = 0
		sc.cgram = false
		sc.Increment = true
	}

	return nil
}

func (sc *Screen) WriteChar(data byte) error {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	if !sc.cgram {
		sc.ddram[sc.address&0x7f] = data
	}
	sc.step(sc.Increment)

	return nil
}

// step moves the address counter one place. DDRAM of a two line controller
// is two 40 byte banks at 0x00 and 0x40; the counter wraps between them.
func (sc *Screen) step(forward bool) {
	if sc.cgram {
		if forward {
			sc.address = (sc.address + 1) & 0x3f
		} else {
			sc.address = (sc.address - 1) & 0x3f
		}
		return
	}

	switch {
	case forward && sc.address == 0x27:
		sc.address = 0x40
	case forward && sc.address >= 0x67:
		sc.address = 0x00
	case forward:
		sc.address++
	case sc.address == 0x00:
		sc.address = 0x67
	case sc.address == 0x40:
		sc.address = 0x27
	default:
		sc.address--
	}
}

// Address returns the DDRAM address counter.
func (sc *Screen) Address() byte {
	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	return sc.address
}

// Line returns the visible text of line, without trailing blanks.
func (sc *Screen) Line(line int) string {
	if line < 0 || line >= LINES {
		return ""
	}

	sc.mutex.Lock()
	defer sc.mutex.Unlock()

	start := lineAddress[line]
	return strings.TrimRight(string(sc.ddram[start:start+COLUMNS]), " ")
}

// Lines returns every visible line.
func (sc *Screen) Lines() (lines []string) {
	for line := range LINES {
		lines = append(lines, sc.Line(line))
	}
	return
}

// String renders the glass inside a frame.
func (sc *Screen) String() string {
	var sb strings.Builder

	rule := "+" + strings.Repeat("-", COLUMNS) + "+\n"
	sb.WriteString(rule)
	for _, line := range sc.Lines() {
		sb.WriteString("|")
		sb.WriteString(line)
		sb.WriteString(strings.Repeat(" ", COLUMNS-len(line)))
		sb.WriteString("|\n")
	}
	sb.WriteString(rule)

	return sb.String()
}
