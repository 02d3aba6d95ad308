package chip

import (
	"errors"

	"github.com/ezrec/ic10/translate"
)

var f = translate.From

var (
	// Resolution errors
	ErrAliasUnset     = errors.New(f("alias unset"))
	ErrAliasWrongKind = errors.New(f("alias wrong kind"))
	ErrOutOfBounds    = errors.New(f("out of bounds"))
	ErrArgWrongKind   = errors.New(f("argument wrong kind"))

	// Device errors
	ErrDeviceUnset = errors.New(f("device unset"))

	// Execution errors
	ErrStackOverflow      = errors.New(f("stack overflow"))
	ErrStackUnderflow     = errors.New(f("stack underflow"))
	ErrHaltCatchFire      = errors.New(f("halt and catch fire"))
	ErrOpcodeUnknown      = errors.New(f("opcode unknown"))
	// ErrOpcodeUnsupported is returned by the batch, slot and reagent
	// opcodes (lb, lbn, lbs, lbns, sb, sbn, sbs, ls, lr, ss). They parse,
	// but executing one aborts the run.
	ErrOpcodeUnsupported  = errors.New(f("opcode unsupported"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrChipInvalid        = errors.New(f("chip has no sp and ra cells"))

	// Parse errors
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrProgramOrder       = errors.New(f("program lines out of order"))
	ErrExpression         = errors.New(f("expression invalid"))
)

// Space is an index space the resolver bounds-checks against.
type Space int

//go:generate go tool stringer -linecomment -type=Space
const (
	SPACE_ARGUMENT = Space(0) // argument
	SPACE_MEMORY   = Space(1) // memory
	SPACE_DEVICE   = Space(2) // device
	SPACE_LINE     = Space(3) // line
)

// ErrBounds reports an index outside of its space.
type ErrBounds struct {
	Space Space
	Index int
}

func (err *ErrBounds) Error() string {
	return f("%v index %d out of bounds", err.Space.String(), err.Index)
}

func (err *ErrBounds) Is(target error) bool {
	return target == ErrOutOfBounds
}

// ErrAlias names the alias a lookup failed on.
type ErrAlias struct {
	Name string
	Err  error
}

func (err *ErrAlias) Error() string {
	return f("alias %v: %v", err.Name, err.Err)
}

func (err *ErrAlias) Unwrap() error {
	return err.Err
}

// ErrArgument reports an operand of the wrong kind.
type ErrArgument struct {
	Want Shape
	Got  ArgKind
}

func (err *ErrArgument) Error() string {
	return f("expected %v, got %v", err.Want.String(), err.Got.String())
}

func (err *ErrArgument) Is(target error) bool {
	return target == ErrArgWrongKind
}

// ErrOperand locates a failure at an operand position.
type ErrOperand struct {
	Index int
	Err   error
}

func (err *ErrOperand) Error() string {
	return f("operand %d: %v", err.Index, err.Err)
}

func (err *ErrOperand) Unwrap() error {
	return err.Err
}

// ErrDevice locates a failure at a device slot.
type ErrDevice struct {
	Index uint
	Err   error
}

func (err *ErrDevice) Error() string {
	return f("d%d: %v", err.Index, err.Err)
}

func (err *ErrDevice) Unwrap() error {
	return err.Err
}

// ErrInstruction locates a failure at an instruction.
type ErrInstruction struct {
	Instruction string
	Err         error
}

func (err *ErrInstruction) Error() string {
	return f("'%v' %v", err.Instruction, err.Err)
}

func (err *ErrInstruction) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

// ErrSyntax locates a parse failure in program text.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

// ErrEval reports a failed `$(...)` expression.
type ErrEval struct {
	Expr string
	Err  error
}

func (err *ErrEval) Error() string {
	return f("$(%v): %v", err.Expr, err.Err)
}

func (err *ErrEval) Unwrap() error {
	return err.Err
}

func (err *ErrEval) Is(target error) bool {
	return target == ErrExpression
}
