package isa

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegOf(t *testing.T) {
	assert := assert.New(t)

	for want := range NumRegs {
		reg, err := RegOf(fmt.Sprintf("r%d", want))
		assert.NoError(err)
		assert.Equal(want, reg)

		reg, err = RegOf(fmt.Sprintf("R%d", want))
		assert.NoError(err)
		assert.Equal(want, reg)
	}

	reg, err := RegOf("zero")
	assert.NoError(err)
	assert.Equal(REG_ZERO, reg)

	reg, err = RegOf("pc")
	assert.NoError(err)
	assert.Equal(REG_PC, reg)

	for _, name := range []string{"", "r16", "r-1", "sp", "loop"} {
		_, err := RegOf(name)
		assert.Error(err, name)
	}
}
