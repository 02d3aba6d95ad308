package simulator

import (
	"errors"

	"github.com/ezrec/ic10/translate"
)

var f = translate.From

var (
	ErrLineIndexOutOfRange = errors.New(f("line index out of range"))
	ErrLabelDuplicate      = errors.New(f("label duplicated"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}

// ErrLabel names a label that could not be recorded.
type ErrLabel struct {
	Name   string
	LineNo int
	Err    error
}

func (err *ErrLabel) Error() string {
	return f("line %d label %v: %v", err.LineNo, err.Name, err.Err)
}

func (err *ErrLabel) Unwrap() error {
	return err.Err
}
