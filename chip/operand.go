package chip

import (
	"math"
	"strconv"
	"strings"
)

// ArgKind is the variant held by an Argument.
type ArgKind int

//go:generate go tool stringer -linecomment -type=ArgKind
const (
	ARG_MEMORY = ArgKind(0) // memory
	ARG_DEVICE = ArgKind(1) // device
	ARG_VALUE  = ArgKind(2) // value
	ARG_TOKEN  = ArgKind(3) // token
)

// Builtin constants, visible to every chip unless shadowed by an alias.
var builtinConstants = map[string]float64{
	"nan":     math.NaN(),
	"pinf":    math.Inf(1),
	"ninf":    math.Inf(-1),
	"pi":      math.Pi,
	"deg2rad": math.Pi / 180,
	"rad2deg": 180 / math.Pi,
	"epsilon": math.SmallestNonzeroFloat64,
}

// MemoryRef addresses a memory cell, either by alias or as a base register
// followed by a number of indirections. `r3` is {3, 0}, `rrr3` is {3, 2}.
type MemoryRef struct {
	Base         uint
	Indirections uint
	Alias        string
}

// MemoryAlias returns a reference to a named memory alias.
func MemoryAlias(name string) MemoryRef {
	return MemoryRef{Alias: name}
}

// IsAlias returns true for the alias form.
func (ref MemoryRef) IsAlias() bool {
	return len(ref.Alias) != 0
}

func (ref MemoryRef) String() string {
	if ref.IsAlias() {
		return ref.Alias
	}
	return strings.Repeat("r", int(ref.Indirections)+1) + strconv.FormatUint(uint64(ref.Base), 10)
}

// DeviceRef addresses a device slot. `d2` is {2, 0}, `drr2` is {2, 2}:
// the indirection hops read memory, the final index selects a device.
type DeviceRef struct {
	Base         uint
	Indirections uint
	Alias        string
}

// DeviceAlias returns a reference to a named device alias.
func DeviceAlias(name string) DeviceRef {
	return DeviceRef{Alias: name}
}

// IsAlias returns true for the alias form.
func (ref DeviceRef) IsAlias() bool {
	return len(ref.Alias) != 0
}

func (ref DeviceRef) String() string {
	if ref.IsAlias() {
		return ref.Alias
	}
	return "d" + strings.Repeat("r", int(ref.Indirections)) + strconv.FormatUint(uint64(ref.Base), 10)
}

// Value is a numeric operand: a literal, or the contents of a memory cell.
type Value struct {
	Number float64
	Ref    MemoryRef
	IsRef  bool
}

// Number returns a literal value.
func Number(number float64) Value {
	return Value{Number: number}
}

// RefValue returns a value read from memory when resolved.
func RefValue(ref MemoryRef) Value {
	return Value{Ref: ref, IsRef: true}
}

func (val Value) String() string {
	if val.IsRef {
		return val.Ref.String()
	}
	return formatNumber(val.Number)
}

// formatNumber prints a literal so that the grammar reads it back.
func formatNumber(number float64) string {
	switch {
	case math.IsNaN(number):
		return "nan"
	case math.IsInf(number, 1):
		return "pinf"
	case math.IsInf(number, -1):
		return "ninf"
	}
	return strconv.FormatFloat(number, 'f', -1, 64)
}

// Argument is one operand of an instruction.
type Argument struct {
	Kind   ArgKind
	Memory MemoryRef
	Device DeviceRef
	Value  Value
	Token  string
}

// MemoryArg wraps a memory reference.
func MemoryArg(ref MemoryRef) Argument {
	return Argument{Kind: ARG_MEMORY, Memory: ref}
}

// DeviceArg wraps a device reference.
func DeviceArg(ref DeviceRef) Argument {
	return Argument{Kind: ARG_DEVICE, Device: ref}
}

// ValueArg wraps a value.
func ValueArg(val Value) Argument {
	return Argument{Kind: ARG_VALUE, Value: val}
}

// TokenArg wraps a raw name.
func TokenArg(token string) Argument {
	return Argument{Kind: ARG_TOKEN, Token: token}
}

func (arg Argument) String() string {
	switch arg.Kind {
	case ARG_MEMORY:
		return arg.Memory.String()
	case ARG_DEVICE:
		return arg.Device.String()
	case ARG_VALUE:
		return arg.Value.String()
	default:
		return arg.Token
	}
}

// Fits returns true if the argument may stand at a position of the shape.
func (arg Argument) Fits(shape Shape) bool {
	switch shape {
	case SHAPE_MEMORY:
		return arg.Kind == ARG_MEMORY
	case SHAPE_DEVICE:
		return arg.Kind == ARG_DEVICE
	case SHAPE_VALUE:
		return arg.Kind == ARG_VALUE
	case SHAPE_TOKEN:
		return arg.Kind == ARG_TOKEN
	case SHAPE_REF:
		return arg.Kind == ARG_MEMORY || arg.Kind == ARG_DEVICE
	}
	return false
}
