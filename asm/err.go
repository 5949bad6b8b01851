package asm

import (
	"errors"

	"github.com/ezrec/dm32/translate"
)

var f = translate.From

var (
	// Per-line errors
	ErrShapeUnknown  = errors.New(f("unrecognized line"))
	ErrTargetMissing = errors.New(f("target missing"))
	ErrTargetInvalid = errors.New(f("target invalid"))

	// Assembly control
	ErrTooManyErrors = errors.New(f("too many errors"))

	// Object text errors
	ErrObjectWord = errors.New(f("not an object word"))
)

type ErrLabelDuplicate string

func (el ErrLabelDuplicate) Error() string {
	return f("label %v duplicated", string(el))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
