package cpu

import (
	"math"

	"github.com/ezrec/dm32/isa"
)

// Alu performs one arithmetic operation with wrapping 32-bit semantics and
// derives the condition flags from the result. HALT, LOAD, and STORE share
// ADD's behavior; for those the sum is an effective address and the CPU
// decides what to do with it.
//
// Division is integer division truncating toward zero. Dividing by zero
// does not fault the simulation: the result is 0 with Z and V set, so
// machine programs can test for it through the predicate mechanism.
func Alu(op isa.OpCode, left, right int32) (result int32, flags isa.CondFlag) {
	switch op {
	case isa.OP_SUB:
		result = left - right
	case isa.OP_MUL:
		result = left * right
	case isa.OP_DIV:
		if right == 0 {
			return 0, isa.COND_Z | isa.COND_V
		}
		if left == math.MinInt32 && right == -1 {
			// The one quotient outside int32; wraps, flagged as overflow.
			return math.MinInt32, isa.COND_M | isa.COND_V
		}
		result = left / right
	default:
		result = left + right
	}

	flags = flagsOf(result)
	return
}

// flagsOf maps a result to its sign flag. Exactly one of M, Z, P.
func flagsOf(result int32) isa.CondFlag {
	switch {
	case result < 0:
		return isa.COND_M
	case result > 0:
		return isa.COND_P
	}
	return isa.COND_Z
}
