package device

import (
	"errors"

	"github.com/ezrec/ic10/translate"
)

var f = translate.From

var (
	// Parameter access errors
	ErrUnknownParameter = errors.New(f("unknown parameter"))
	ErrReadOnly         = errors.New(f("parameter is read only"))
	ErrWriteOnly        = errors.New(f("parameter is write only"))

	// Catalogue errors
	ErrKindDuplicate = errors.New(f("device kind duplicated"))
	ErrKindMissing   = errors.New(f("device kind missing"))
	ErrKindNameless  = errors.New(f("device kind has no name"))
	ErrFormat        = errors.New(f("catalogue format unknown"))
)

// ErrParameter names the parameter an access failed on.
type ErrParameter struct {
	Name string
	Err  error
}

func (err *ErrParameter) Error() string {
	return f("parameter %v: %v", err.Name, err.Err)
}

func (err *ErrParameter) Unwrap() error {
	return err.Err
}

// ErrKind names the device kind a catalogue operation failed on.
type ErrKind struct {
	Name string
	Err  error
}

func (err *ErrKind) Error() string {
	return f("kind %v: %v", err.Name, err.Err)
}

func (err *ErrKind) Unwrap() error {
	return err.Err
}

type ErrPermissionInvalid string

func (err ErrPermissionInvalid) Error() string {
	return f("'%v' is not Read, Write or ReadWrite", string(err))
}

// ErrCatalogue locates a catalogue load failure.
type ErrCatalogue struct {
	Path string
	Err  error
}

func (err *ErrCatalogue) Error() string {
	return f("catalogue %v: %v", err.Path, err.Err)
}

func (err *ErrCatalogue) Unwrap() error {
	return err.Err
}
