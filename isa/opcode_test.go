package isa

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpCodeString(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op   OpCode
		name string
	}){
		{OP_HALT, "HALT"},
		{OP_LOAD, "LOAD"},
		{OP_STORE, "STORE"},
		{OP_ADD, "ADD"},
		{OP_SUB, "SUB"},
		{OP_MUL, "MUL"},
		{OP_DIV, "DIV"},
		{OP_SHL, "SHL"},
		{OP_SHR, "SHR"},
		{OpCode(4), "OpCode(4)"},
		{OpCode(31), "OpCode(31)"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, entry.op.String())
	}
}

func TestOpCodeValid(t *testing.T) {
	assert := assert.New(t)

	for op := range OpCode(32) {
		switch op {
		case OP_HALT, OP_LOAD, OP_STORE, OP_ADD, OP_SUB, OP_MUL, OP_DIV:
			assert.True(op.Valid(), "%v", op)
		default:
			// The gap at 4 and the reserved shift slots stay invalid.
			assert.False(op.Valid(), "%v", op)
		}
	}
}

func TestOpCodeOf(t *testing.T) {
	assert := assert.New(t)

	for _, name := range []string{"ADD", "add", "Add", " add "} {
		op, err := OpCodeOf(name)
		assert.NoError(err, name)
		assert.Equal(OP_ADD, op, name)
	}

	_, err := OpCodeOf("MOVE")
	assert.Error(err)
	var unknown ErrOpCodeUnknown
	assert.True(errors.As(err, &unknown))
	assert.Equal("MOVE", string(unknown))

	// The reserved mnemonics have no table entry.
	_, err = OpCodeOf("SHL")
	assert.Error(err)
	_, err = OpCodeOf("SHR")
	assert.Error(err)
}
