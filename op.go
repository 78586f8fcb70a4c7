package bfi

import (
	"fmt"
)

// The eight OPs of Brainfuck. Every other byte in a source text is a
// comment. The set is closed: Program only ever holds these values, and
// Execute panics on anything else.

type OP byte

const (
	OP_POINTER_LEFT  = OP('<')
	OP_POINTER_RIGHT = OP('>')
	OP_INC           = OP('+')
	OP_DEC           = OP('-')
	OP_OUT           = OP('.')
	OP_IN            = OP(',')
	OP_WHILE         = OP('[')
	OP_WHILE_END     = OP(']')
)

var OP_SET = [8]OP{
	OP_POINTER_LEFT,
	OP_POINTER_RIGHT,
	OP_INC,
	OP_DEC,
	OP_OUT,
	OP_IN,
	OP_WHILE,
	OP_WHILE_END,
}

func parseOP(b byte) (OP, bool) {
	switch OP(b) {
	case OP_POINTER_LEFT, OP_POINTER_RIGHT, OP_INC, OP_DEC, OP_OUT, OP_IN, OP_WHILE, OP_WHILE_END:
		return OP(b), true
	}
	return 0, false
}

func (o OP) String() string {
	return string(byte(o))
}

// Execute applies a single OP to the machine. Run advances the instruction
// pointer after every dispatch, so the jump cases land exactly on the
// partner bracket and fall through on the next step.
func (o OP) Execute(m *Machine) error {
	switch o {
	case OP_INC:
		m.Tape.Increment()
	case OP_DEC:
		m.Tape.Decrement()
	case OP_POINTER_RIGHT:
		m.Tape.MovePointerRight()
	case OP_POINTER_LEFT:
		if !m.Tape.MovePointerLeft() {
			return &Error{Kind: PointerUnderflow, Offset: m.InstructionPointer}
		}
	case OP_OUT:
		if err := m.writeByte(byte(m.Tape.Current())); err != nil {
			return err
		}
	case OP_IN:
		b, err := m.readByte()
		if err != nil {
			return err
		}
		m.Tape.SetCurrent(uint32(b))
	case OP_WHILE:
		if m.Tape.Current() == 0 {
			m.InstructionPointer = m.Program.Jumps[m.InstructionPointer]
		}
	case OP_WHILE_END:
		if m.Tape.Current() != 0 {
			m.InstructionPointer = m.Program.Jumps[m.InstructionPointer]
		}
	default:
		panic(fmt.Sprintf("Unknown OP [%s] encountered!", o))
	}

	return nil
}
