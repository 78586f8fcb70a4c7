package bfi

import (
	"strings"
)

// Program is an immutable, validated Brainfuck script: the op sequence
// with comments stripped, the source byte offset of every op, and the
// precomputed jump table between matching brackets. Load is the only
// constructor.
type Program struct {
	Ops     []OP
	Offsets []int
	Jumps   map[int]int
}

// Load filters source down to the eight OPs and resolves every bracket
// pair. Non-instruction bytes are comments and are discarded without
// error. Bracket mismatches are load time errors carrying the source
// offset; a program that loads can never fail on a bracket at run time.
//
// Load is a pure function of its input. Jumps is bidirectional, so
// Jumps[Jumps[i]] == i for every bracket index i.
func Load(source string) (*Program, error) {
	p := &Program{Jumps: make(map[int]int)}

	var pending []int
	for offset := 0; offset < len(source); offset++ {
		op, ok := parseOP(source[offset])
		if !ok {
			continue
		}

		index := len(p.Ops)
		p.Ops = append(p.Ops, op)
		p.Offsets = append(p.Offsets, offset)

		switch op {
		case OP_WHILE:
			pending = append(pending, index)
		case OP_WHILE_END:
			if len(pending) == 0 {
				return nil, &Error{Kind: UnmatchedCloseBracket, Offset: offset}
			}
			start := pending[len(pending)-1]
			pending = pending[:len(pending)-1]
			p.Jumps[start] = index
			p.Jumps[index] = start
		}
	}

	if len(pending) > 0 {
		return nil, &Error{Kind: UnmatchedOpenBracket, Offset: p.Offsets[pending[0]]}
	}

	return p, nil
}

func (p *Program) String() string {
	var sb strings.Builder
	sb.Grow(len(p.Ops))
	for _, op := range p.Ops {
		sb.WriteByte(byte(op))
	}
	return sb.String()
}
