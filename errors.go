package bfi

import (
	"errors"
	"fmt"
)

type ErrorKind int

const (
	UnmatchedOpenBracket ErrorKind = iota + 1
	UnmatchedCloseBracket
	PointerUnderflow
	InvalidConfiguration
)

func (k ErrorKind) String() string {
	switch k {
	case UnmatchedOpenBracket:
		return "UnmatchedOpenBracket"
	case UnmatchedCloseBracket:
		return "UnmatchedCloseBracket"
	case PointerUnderflow:
		return "PointerUnderflow"
	case InvalidConfiguration:
		return "InvalidConfiguration"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is the single error type surfaced by Load and Run. Offset carries
// the context for a human readable message: the source byte offset for
// bracket errors, the instruction index for pointer errors, and the
// rejected cell width for configuration errors.
type Error struct {
	Kind   ErrorKind
	Offset int
}

func (e *Error) Error() string {
	switch e.Kind {
	case UnmatchedOpenBracket:
		return fmt.Sprintf("Unmatched opening bracket at source offset [%d]", e.Offset)
	case UnmatchedCloseBracket:
		return fmt.Sprintf("Unmatched closing bracket at source offset [%d]", e.Offset)
	case PointerUnderflow:
		return fmt.Sprintf("Failed to move memory pointer left of cell [0] at instruction [%d]", e.Offset)
	case InvalidConfiguration:
		return fmt.Sprintf("Invalid cell width [%d]. Cell width must be between [1] and [%d] bits", e.Offset, MaxCellBits)
	}
	return fmt.Sprintf("Unknown interpreter error kind [%d]", int(e.Kind))
}

// KindOf returns the ErrorKind of err, or zero if err is not an
// interpreter Error.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
