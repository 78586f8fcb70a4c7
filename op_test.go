package bfi

import (
	"strings"
	"testing"
)

func makeMachine(t *testing.T, source string) *Machine {
	t.Helper()
	program, err := Load(source)
	if err != nil {
		t.Fatalf("Unexpected failure calling Load(): %v", err)
	}
	machine, err := NewMachine(nil)
	if err != nil {
		t.Fatalf("Unexpected failure calling NewMachine(): %v", err)
	}
	machine.Program = program
	return machine
}

func TestParseOP(t *testing.T) {
	for _, op := range OP_SET {
		parsed, ok := parseOP(byte(op))
		if !ok || parsed != op {
			t.Errorf("parseOP failed to recognize OP [%s]", op)
		}
	}

	for _, b := range []byte{' ', '\n', 'x', '#', '0'} {
		if _, ok := parseOP(b); ok {
			t.Errorf("parseOP recognized comment byte [%q] as an OP", b)
		}
	}
}

func Test_OP_INC_Execute(t *testing.T) {
	machine := makeMachine(t, "+")

	if err := OP_INC.Execute(machine); err != nil {
		t.Errorf("Unexpected failure when calling OP_INC.Execute(). %v", err)
	}
	if machine.Tape.Current() != 1 {
		t.Errorf("Cell value [%d] is not expected [1]", machine.Tape.Current())
	}
}

func Test_OP_POINTER_LEFT_Execute(t *testing.T) {
	machine := makeMachine(t, "<")

	if err := OP_POINTER_LEFT.Execute(machine); err == nil {
		t.Errorf("Unexpected success when calling OP_POINTER_LEFT.Execute() at cell [0]")
	} else if KindOf(err) != PointerUnderflow {
		t.Errorf("Error kind [%v] is not PointerUnderflow", KindOf(err))
	}

	machine.Tape.MovePointerRight()
	if err := OP_POINTER_LEFT.Execute(machine); err != nil {
		t.Errorf("Unexpected failure when calling OP_POINTER_LEFT.Execute(). %v", err)
	}
}

func Test_OP_WHILE_Execute(t *testing.T) {
	machine := makeMachine(t, "[+]")

	// Zero cell: jump lands on the matching OP_WHILE_END
	if err := OP_WHILE.Execute(machine); err != nil {
		t.Errorf("Unexpected failure when calling OP_WHILE.Execute(). %v", err)
	}
	if machine.InstructionPointer != 2 {
		t.Errorf("Instruction pointer [%d] is not at expected value [2]", machine.InstructionPointer)
	}

	// Non zero cell: fall through
	machine.InstructionPointer = 0
	machine.Tape.Increment()
	if err := OP_WHILE.Execute(machine); err != nil {
		t.Errorf("Unexpected failure when calling OP_WHILE.Execute(). %v", err)
	}
	if machine.InstructionPointer != 0 {
		t.Errorf("Instruction pointer [%d] is not at expected value [0]", machine.InstructionPointer)
	}
}

func Test_OP_WHILE_END_Execute(t *testing.T) {
	machine := makeMachine(t, "[+]")
	machine.InstructionPointer = 2

	// Zero cell: fall through
	if err := OP_WHILE_END.Execute(machine); err != nil {
		t.Errorf("Unexpected failure when calling OP_WHILE_END.Execute(). %v", err)
	}
	if machine.InstructionPointer != 2 {
		t.Errorf("Instruction pointer [%d] is not at expected value [2]", machine.InstructionPointer)
	}

	// Non zero cell: jump back to the matching OP_WHILE
	machine.Tape.Increment()
	if err := OP_WHILE_END.Execute(machine); err != nil {
		t.Errorf("Unexpected failure when calling OP_WHILE_END.Execute(). %v", err)
	}
	if machine.InstructionPointer != 0 {
		t.Errorf("Instruction pointer [%d] is not at expected value [0]", machine.InstructionPointer)
	}
}

func Test_OP_IN_Execute(t *testing.T) {
	machine := makeMachine(t, ",")
	machine.Config.Input = strings.NewReader("A")

	if err := OP_IN.Execute(machine); err != nil {
		t.Errorf("Unexpected failure when calling OP_IN.Execute(). %v", err)
	}
	if machine.Tape.Current() != 65 {
		t.Errorf("Cell value [%d] is not expected [65]", machine.Tape.Current())
	}
}

func TestExecutePanicsOnUnknownOP(t *testing.T) {
	machine := makeMachine(t, "")

	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic when executing an OP outside the closed set")
		}
	}()
	OP('#').Execute(machine)
}
