package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzParseLine(f *testing.F) {
	f.Add("ADD r1,r2,r3")
	f.Add("loop: SUB/Z r3,r3,r4[-2] # x")
	f.Add("DATA 42")
	f.Add("JUMP loop")
	f.Add("")
	f.Add("; c")
	f.Add("HALT ALWAYS r0,r0,r0[0]")
	f.Add("ADD r1,,r3")
	f.Add("STORE r2,buf ; spill")

	f.Fuzz(func(t *testing.T, line string) {
		assert := assert.New(t)

		asm := &Assembler{}
		stmt, err := asm.ParseLine(1, line)
		if err != nil {
			return
		}

		assert.GreaterOrEqual(stmt.Kind, KIND_COMMENT)
		assert.LessOrEqual(stmt.Kind, KIND_SYMBOLIC)

		if stmt.Kind != KIND_FULL {
			return
		}

		// A rendered instruction reparses to the same statement.
		again, err := asm.ParseLine(1, stmt.render())
		assert.NoError(err, stmt.render())
		assert.Equal(stmt.Full, again.Full, stmt.render())
		assert.Equal(stmt.Label, again.Label, stmt.render())
		assert.Equal(stmt.Comment, again.Comment, stmt.render())
	})
}
