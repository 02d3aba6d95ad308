package chip

import (
	"strings"
)

// Instruction is one decoded line of a program.
type Instruction struct {
	Opcode Opcode
	Name   string // Opcode text, for OP_UNKNOWN.
	Args   []Argument
}

// NewInstruction builds an instruction from an opcode and its arguments.
func NewInstruction(op Opcode, args ...Argument) Instruction {
	return Instruction{Opcode: op, Args: args}
}

// Arg returns the argument at position n.
func (ins *Instruction) Arg(n int) (arg Argument, err error) {
	if n < 0 || n >= len(ins.Args) {
		err = &ErrBounds{Space: SPACE_ARGUMENT, Index: n}
		return
	}

	arg = ins.Args[n]
	return
}

func (ins *Instruction) argOf(n int, shape Shape) (arg Argument, err error) {
	arg, err = ins.Arg(n)
	if err != nil {
		return
	}

	if !arg.Fits(shape) {
		err = &ErrArgument{Want: shape, Got: arg.Kind}
		return
	}

	return
}

// Memory returns the memory reference at position n.
func (ins *Instruction) Memory(n int) (ref MemoryRef, err error) {
	arg, err := ins.argOf(n, SHAPE_MEMORY)
	ref = arg.Memory
	return
}

// Device returns the device reference at position n.
func (ins *Instruction) Device(n int) (ref DeviceRef, err error) {
	arg, err := ins.argOf(n, SHAPE_DEVICE)
	ref = arg.Device
	return
}

// Value returns the value at position n.
func (ins *Instruction) Value(n int) (val Value, err error) {
	arg, err := ins.argOf(n, SHAPE_VALUE)
	val = arg.Value
	return
}

// Token returns the raw name at position n.
func (ins *Instruction) Token(n int) (token string, err error) {
	arg, err := ins.argOf(n, SHAPE_TOKEN)
	token = arg.Token
	return
}

// Ref returns the memory or device reference at position n.
func (ins *Instruction) Ref(n int) (arg Argument, err error) {
	return ins.argOf(n, SHAPE_REF)
}

// Validate checks the arguments against the operand shapes of the opcode.
func (ins *Instruction) Validate() (err error) {
	switch ins.Opcode {
	case OP_NONE:
		if len(ins.Args) != 0 {
			err = ErrOpcodeExtraArgs
		}
		return
	case OP_UNKNOWN:
		return
	}

	if ins.Opcode < 0 || ins.Opcode >= OP_COUNT {
		err = ErrInstructionInvalid
		return
	}

	shapes := ins.Opcode.Shapes()
	for n, shape := range shapes {
		_, err = ins.argOf(n, shape)
		if _, ok := err.(*ErrBounds); ok {
			err = ErrOpcodeValueMissing
			return
		}
		if err != nil {
			err = &ErrOperand{Index: n, Err: err}
			return
		}
	}
	if len(ins.Args) > len(shapes) {
		err = ErrOpcodeExtraArgs
		return
	}

	return
}

// String returns the instruction as program text.
func (ins Instruction) String() string {
	switch ins.Opcode {
	case OP_NONE:
		return ""
	case OP_LABEL:
		if len(ins.Args) == 1 {
			return ins.Args[0].String() + ":"
		}
	}

	words := make([]string, 0, len(ins.Args)+1)
	if ins.Opcode == OP_UNKNOWN {
		words = append(words, ins.Name)
	} else {
		words = append(words, ins.Opcode.String())
	}
	for _, arg := range ins.Args {
		words = append(words, arg.String())
	}

	return strings.Join(words, " ")
}
