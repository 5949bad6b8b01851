package mem

import (
	"github.com/ezrec/dm32/translate"
)

var f = translate.From

// ErrBounds reports an access outside the address space.
type ErrBounds int32

func (err ErrBounds) Error() string {
	return f("address %v out of bounds", int32(err))
}

func (err ErrBounds) Is(target error) (ok bool) {
	_, ok = target.(ErrBounds)
	return
}
