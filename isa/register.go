package isa

import (
	"fmt"
	"strings"
)

// Register indices of architectural significance. Register 0 always reads
// as zero, and register 15 is the program counter.
const (
	REG_ZERO = 0
	REG_PC   = 15

	NumRegs = 16
)

var regByName = map[string]int{
	"ZERO": REG_ZERO,
	"PC":   REG_PC,
}

func init() {
	for reg := range NumRegs {
		regByName[fmt.Sprintf("R%d", reg)] = reg
	}
}

// RegOf maps a register name ("r0".."r15", or the aliases "zero" and "pc")
// to its index. The lookup is case-insensitive.
func RegOf(name string) (reg int, err error) {
	reg, ok := regByName[foldName(name)]
	if !ok {
		err = ErrRegisterUnknown(name)
	}
	return
}

// foldName canonicalizes a mnemonic for table lookup. Labels are never
// folded; only opcode, predicate, and register names are.
func foldName(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}
