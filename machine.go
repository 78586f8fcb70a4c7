package bfi

import (
	"bytes"
	"fmt"
	"io"

	cp "github.com/jinzhu/copier"
)

// MachineConfig configures a single Machine. Input supplies one byte per
// OP_IN; a nil Input behaves as an exhausted stream (every read yields a
// zero cell). Output, when set, receives each OP_OUT byte eagerly in
// addition to the accumulated RunResult output.
type MachineConfig struct {
	CellBits uint      `toml:"cell_bits"`
	Input    io.Reader `toml:"-"`
	Output   io.Writer `toml:"-"`
}

// Machine owns the execution state for one program run: the tape, the
// instruction pointer, and the accumulated output. State is created fresh
// by every call to Run and is never shared; there is no process wide
// default machine.
type Machine struct {
	Config             *MachineConfig
	Program            *Program
	Tape               *Tape
	InstructionPointer int
	InstructionCount   uint

	output  bytes.Buffer
	readBuf [1]byte
}

// RunResult is the outcome of a completed run: the output byte stream and
// a snapshot of the final tape, detached from the machine so collaborators
// can format a memory dump without aliasing live state.
type RunResult struct {
	Output           []byte
	Cells            []uint32
	Pointer          int
	InstructionCount uint
}

func NewMachine(mc *MachineConfig) (*Machine, error) {
	if mc == nil {
		mc = &MachineConfig{CellBits: DefaultCellBits}
	}
	tape, err := NewTape(mc.CellBits)
	if err != nil {
		return nil, err
	}
	return &Machine{Config: mc, Tape: tape}, nil
}

// Run executes the program to completion. It halts successfully when the
// instruction pointer exhausts the op sequence, or with an error on
// pointer underflow or a failed read/write against the configured
// streams. There is no step limit: a non terminating program runs until
// the caller discards the goroutine.
func (m *Machine) Run(p *Program) (*RunResult, error) {
	m.Program = p
	m.InstructionPointer = 0
	m.InstructionCount = 0
	m.output.Reset()
	m.Tape.Reset()

	for m.InstructionPointer < len(p.Ops) {
		if err := p.Ops[m.InstructionPointer].Execute(m); err != nil {
			return nil, err
		}
		m.InstructionPointer++
		m.InstructionCount++
	}

	return m.snapshot(), nil
}

// Eval loads and runs source in one call on a fresh machine.
func Eval(source string, mc *MachineConfig) (*RunResult, error) {
	program, err := Load(source)
	if err != nil {
		return nil, err
	}
	machine, err := NewMachine(mc)
	if err != nil {
		return nil, err
	}
	return machine.Run(program)
}

// Output returns the bytes emitted so far. Useful to collaborators that
// want the partial stream after a failed run.
func (m *Machine) Output() []byte {
	return append([]byte(nil), m.output.Bytes()...)
}

func (m *Machine) snapshot() *RunResult {
	result := &RunResult{
		Output:           append([]byte(nil), m.output.Bytes()...),
		Pointer:          m.Tape.Pointer,
		InstructionCount: m.InstructionCount,
	}
	cp.Copy(&result.Cells, &m.Tape.Cells)
	return result
}

func (m *Machine) readByte() (byte, error) {
	if m.Config.Input == nil {
		return 0, nil
	}
	if _, err := io.ReadFull(m.Config.Input, m.readBuf[:]); err != nil {
		if err == io.EOF {
			// Exhausted input is not an error. OP_IN stores a zero.
			return 0, nil
		}
		return 0, fmt.Errorf("Failed to read input at instruction [%d]: %v", m.InstructionPointer, err)
	}
	return m.readBuf[0], nil
}

func (m *Machine) writeByte(b byte) error {
	m.output.WriteByte(b)
	if m.Config.Output != nil {
		if _, err := m.Config.Output.Write([]byte{b}); err != nil {
			return fmt.Errorf("Failed to write output at instruction [%d]: %v", m.InstructionPointer, err)
		}
	}
	return nil
}
