package cpu

import (
	"errors"

	"github.com/ezrec/dm32/translate"
)

var f = translate.From

// ErrHalted is returned by Step when the CPU has already halted.
var ErrHalted = errors.New(f("halted"))

// ErrFault wraps an error raised while executing the instruction at Addr:
// a fetch or load/store outside memory, or a word that does not decode.
type ErrFault struct {
	Addr int32
	Err  error
}

func (err *ErrFault) Error() string {
	return f("fault at address %v: %v", err.Addr, err.Err)
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}
