package isa

// OpCode is the operation selector of an instruction word. It controls the
// ALU and, for some operations, other parts of the CPU.
type OpCode int

//go:generate go tool stringer -linecomment -type=OpCode
const (
	// CPU control (beyond the ALU)
	OP_HALT  = OpCode(0) // HALT
	OP_LOAD  = OpCode(1) // LOAD
	OP_STORE = OpCode(2) // STORE

	// ALU operations; code 4 is unassigned.
	OP_ADD = OpCode(3) // ADD
	OP_SUB = OpCode(5) // SUB
	OP_MUL = OpCode(6) // MUL
	OP_DIV = OpCode(7) // DIV

	// Reserved for the shift unit; not implemented, decode rejects these.
	OP_SHL = OpCode(8) // SHL
	OP_SHR = OpCode(9) // SHR
)

// Valid reports whether the opcode is implemented by the CPU.
func (op OpCode) Valid() bool {
	switch op {
	case OP_HALT, OP_LOAD, OP_STORE, OP_ADD, OP_SUB, OP_MUL, OP_DIV:
		return true
	}
	return false
}

var opCodeByName = map[string]OpCode{
	"HALT":  OP_HALT,
	"LOAD":  OP_LOAD,
	"STORE": OP_STORE,
	"ADD":   OP_ADD,
	"SUB":   OP_SUB,
	"MUL":   OP_MUL,
	"DIV":   OP_DIV,
}

// OpCodeOf maps an opcode mnemonic to its code. The lookup is
// case-insensitive.
func OpCodeOf(name string) (op OpCode, err error) {
	op, ok := opCodeByName[foldName(name)]
	if !ok {
		err = ErrOpCodeUnknown(name)
	}
	return
}
