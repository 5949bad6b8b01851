package device

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTapeRead(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("3 5\n\t-7  2147483647")}

	for _, want := range []int32{3, 5, -7, 2147483647} {
		value, err := tape.Read()
		assert.NoError(err)
		assert.Equal(want, value)
	}

	_, err := tape.Read()
	assert.ErrorIs(err, io.EOF)
}

func TestTapeReadBad(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("duck")}

	_, err := tape.Read()
	assert.Error(err)
}

func TestTapeWrite(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	for _, value := range []int32{42, -1, 0} {
		assert.NoError(tape.Write(value))
	}

	assert.Equal("42\n-1\n0\n", output.String())
}

func TestTapeDefines(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	count := 0
	for range tape.Defines() {
		count++
	}
	assert.Zero(count)
}
