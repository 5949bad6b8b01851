package cpu

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/dm32/isa"
	"github.com/ezrec/dm32/mem"
)

func FuzzStep(f *testing.F) {
	f.Add(uint32(0), int32(1), int32(2))
	f.Add(isa.Instruction{Op: isa.OP_HALT, Cond: isa.COND_ALWAYS}.Encode(), int32(0), int32(0))
	f.Add(isa.Instruction{Op: isa.OP_DIV, Cond: isa.COND_ALWAYS, Target: 1, Src1: 1, Src2: 2}.Encode(), int32(7), int32(0))
	f.Add(isa.Instruction{Op: isa.OP_ADD, Cond: isa.COND_ALWAYS, Target: 15, Src2: 15, Offset: -2}.Encode(), int32(-5), int32(5))
	f.Add(isa.Instruction{Op: isa.OP_STORE, Cond: isa.COND_Z, Target: 2, Src1: 1, Offset: 511}.Encode(), int32(3), int32(9))

	f.Fuzz(func(t *testing.T, word uint32, r1, r2 int32) {
		assert := assert.New(t)

		ram := mem.NewRam(16)
		assert.NoError(ram.Put(0, word))

		cpu := NewCpu(ram)
		cpu.Bank[1].Put(r1)
		cpu.Bank[2].Put(r2)

		err := cpu.Step()
		if err != nil {
			// Bad decode or an out-of-range access, never a panic.
			var fault *ErrFault
			assert.True(errors.As(err, &fault))
			assert.Equal(int32(0), fault.Addr)
			return
		}

		// r0 survives every instruction.
		assert.Zero(cpu.Bank[0].Get())

		// After an executed instruction the sign flags are one-hot; a
		// skipped one leaves the power-on ALWAYS untouched.
		sign := cpu.Flags & (isa.COND_M | isa.COND_Z | isa.COND_P)
		switch sign {
		case isa.COND_M, isa.COND_Z, isa.COND_P:
		default:
			assert.Equal(isa.COND_ALWAYS, cpu.Flags)
		}
	})
}
