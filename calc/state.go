package calc

// State of the operand entry.
//
//go:generate go tool stringer -type=State
type State int

const (
	Idle             State = iota // Not yet reset.
	AwaitingOperand1              // Typing the first operand.
	AwaitingOperand2              // Typing the second operand.
)
