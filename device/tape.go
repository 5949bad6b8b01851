// Package device holds the DM32 peripherals. The only one the machine
// defines is the tape: a stream of decimal integers on each side of the
// memory-mapped I/O addresses.
package device

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

// Tape reads whitespace-separated decimal integers from Input and writes
// one decimal integer per line to Output. The emulator maps Read and Write
// onto the reserved input and output addresses.
type Tape struct {
	Input  io.Reader
	Output io.Writer
}

// Defines returns the assembler predefines contributed by the device.
func (tape *Tape) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// Read consumes the next integer from the input tape. Exhausting the tape
// surfaces io.EOF to the caller.
func (tape *Tape) Read() (value int32, err error) {
	_, err = fmt.Fscan(tape.Input, &value)
	return
}

// Write appends one integer to the output tape.
func (tape *Tape) Write(value int32) (err error) {
	_, err = fmt.Fprintln(tape.Output, value)
	return
}
