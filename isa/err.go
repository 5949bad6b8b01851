package isa

import (
	"github.com/ezrec/dm32/translate"
)

var f = translate.From

// ErrDecode reports a memory word whose opcode bits select no implemented
// operation.
type ErrDecode uint32

func (err ErrDecode) Error() string {
	return f("bad instruction word 0x%08x: opcode %d not implemented",
		uint32(err), FieldOpCode.Extract(uint32(err)))
}

func (err ErrDecode) Is(target error) (ok bool) {
	_, ok = target.(ErrDecode)
	return
}

type ErrOpCodeUnknown string

func (err ErrOpCodeUnknown) Error() string {
	return f("opcode '%v' unknown", string(err))
}

type ErrCondUnknown string

func (err ErrCondUnknown) Error() string {
	return f("predicate '%v' unknown", string(err))
}

type ErrRegisterUnknown string

func (err ErrRegisterUnknown) Error() string {
	return f("register '%v' unknown", string(err))
}

type ErrOffsetRange int32

func (err ErrOffsetRange) Error() string {
	return f("offset %v outside [%v, %v]", int32(err), OffsetMin, OffsetMax)
}
