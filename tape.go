package bfi

// Tape is the interpreter's addressable memory: an extensible array of
// unsigned cells masked to a configurable bit width. The tape grows to the
// right as the pointer advances. Moving left of cell zero is the caller's
// error, not a wraparound.

const (
	DefaultCellBits = 8

	// Cells are stored as uint32, so that is the widest supported cell.
	MaxCellBits = 32
)

type Tape struct {
	Cells    []uint32
	Pointer  int
	CellBits uint

	mask uint32
}

func NewTape(cellBits uint) (*Tape, error) {
	if cellBits < 1 || cellBits > MaxCellBits {
		return nil, &Error{Kind: InvalidConfiguration, Offset: int(cellBits)}
	}
	return &Tape{
		Cells:    make([]uint32, 1),
		CellBits: cellBits,
		mask:     uint32((uint64(1) << cellBits) - 1),
	}, nil
}

func (t *Tape) Reset() {
	t.Cells = make([]uint32, 1)
	t.Pointer = 0
}

func (t *Tape) Current() uint32 {
	return t.Cells[t.Pointer]
}

func (t *Tape) SetCurrent(val uint32) {
	t.Cells[t.Pointer] = val & t.mask
}

func (t *Tape) Increment() {
	t.Cells[t.Pointer] = (t.Cells[t.Pointer] + 1) & t.mask
}

func (t *Tape) Decrement() {
	t.Cells[t.Pointer] = (t.Cells[t.Pointer] - 1) & t.mask
}

// MovePointerRight extends the tape with a zero cell when the pointer
// passes the current extent.
func (t *Tape) MovePointerRight() {
	t.Pointer++
	if t.Pointer == len(t.Cells) {
		t.Cells = append(t.Cells, 0)
	}
}

// MovePointerLeft reports false when the pointer is already at cell zero.
func (t *Tape) MovePointerLeft() bool {
	if t.Pointer == 0 {
		return false
	}
	t.Pointer--
	return true
}
