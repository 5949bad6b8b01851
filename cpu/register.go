package cpu

import (
	"github.com/ezrec/dm32/isa"
)

// Register is one storage cell of the register bank.
type Register interface {
	Get() (value int32)
	Put(value int32)
}

// Cell is an ordinary read/write register.
type Cell int32

func (cell *Cell) Get() (value int32) {
	return int32(*cell)
}

func (cell *Cell) Put(value int32) {
	*cell = Cell(value)
}

// ZeroCell ignores writes and always reads as zero, the r0 behavior.
type ZeroCell struct{}

func (ZeroCell) Get() (value int32) {
	return 0
}

func (ZeroCell) Put(value int32) {
}

// Bank is the register file. Index 0 is wired to a ZeroCell and index 15
// holds the program counter.
type Bank [isa.NumRegs]Register

func NewBank() (bank *Bank) {
	bank = &Bank{}

	bank[isa.REG_ZERO] = ZeroCell{}
	for n := 1; n < len(bank); n++ {
		bank[n] = new(Cell)
	}

	return
}

// Reset clears every writable register.
func (bank *Bank) Reset() {
	for _, reg := range bank {
		reg.Put(0)
	}
}
