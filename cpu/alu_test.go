package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/dm32/isa"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     isa.OpCode
		left   int32
		right  int32
		result int32
		flags  isa.CondFlag
	}){
		{"add", isa.OP_ADD, 2, 3, 5, isa.COND_P},
		{"add_negative", isa.OP_ADD, 2, -3, -1, isa.COND_M},
		{"add_zero", isa.OP_ADD, 2, -2, 0, isa.COND_Z},
		{"add_wraps", isa.OP_ADD, math.MaxInt32, 1, math.MinInt32, isa.COND_M},
		{"sub_zero", isa.OP_SUB, 5, 5, 0, isa.COND_Z},
		{"sub_negative", isa.OP_SUB, 3, 5, -2, isa.COND_M},
		{"sub_positive", isa.OP_SUB, 5, 3, 2, isa.COND_P},
		{"mul", isa.OP_MUL, 6, 7, 42, isa.COND_P},
		{"mul_sign", isa.OP_MUL, -6, 7, -42, isa.COND_M},
		{"div", isa.OP_DIV, 42, 6, 7, isa.COND_P},
		{"div_truncates", isa.OP_DIV, 7, 2, 3, isa.COND_P},
		{"div_truncates_toward_zero", isa.OP_DIV, -7, 2, -3, isa.COND_M},
		{"div_negative_divisor", isa.OP_DIV, 7, -2, -3, isa.COND_M},
		{"div_by_zero", isa.OP_DIV, 7, 0, 0, isa.COND_Z | isa.COND_V},
		{"div_min_by_minus_one", isa.OP_DIV, math.MinInt32, -1, math.MinInt32, isa.COND_M | isa.COND_V},

		// Address arithmetic: HALT, LOAD, and STORE behave as ADD.
		{"halt_adds", isa.OP_HALT, 2, 3, 5, isa.COND_P},
		{"load_adds", isa.OP_LOAD, 100, -2, 98, isa.COND_P},
		{"store_adds", isa.OP_STORE, 0, 0, 0, isa.COND_Z},
	}

	for _, entry := range table {
		result, flags := Alu(entry.op, entry.left, entry.right)
		assert.Equal(entry.result, result, entry.name)
		assert.Equal(entry.flags, flags, entry.name)
	}
}

func TestAluSignFlagExclusive(t *testing.T) {
	assert := assert.New(t)

	// Exactly one of M, Z, P for every result.
	for _, left := range []int32{math.MinInt32, -7, -1, 0, 1, 7, math.MaxInt32} {
		for _, right := range []int32{math.MinInt32, -3, -1, 0, 1, 3, math.MaxInt32} {
			for _, op := range []isa.OpCode{isa.OP_ADD, isa.OP_SUB, isa.OP_MUL, isa.OP_DIV} {
				_, flags := Alu(op, left, right)

				count := 0
				for _, sign := range []isa.CondFlag{isa.COND_M, isa.COND_Z, isa.COND_P} {
					if flags&sign != 0 {
						count++
					}
				}
				assert.Equal(1, count, "%v %d,%d -> %v", op, left, right, flags)
			}
		}
	}
}
