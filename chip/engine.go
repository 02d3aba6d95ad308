package chip

import (
	"log"
	"math"

	"github.com/ezrec/ic10/device"
)

const (
	TICK_SECONDS = 0.5 // Game seconds per executed line.
)

// JumpMode selects how a branch target is applied to the program counter.
type JumpMode int

const (
	JUMP_ABSOLUTE = JumpMode(0) // pc = target
	JUMP_RELATIVE = JumpMode(1) // pc = pc + target
)

// Execute performs one instruction. When jumped is false, the caller is
// expected to advance the program counter; when true, it has already been
// set. On error no state has been changed. The chip should come from
// NewChip; a zero Chip fails with ErrChipInvalid.
func (chip *Chip) Execute(ins *Instruction) (jumped bool, err error) {
	if ins.Opcode < 0 || ins.Opcode >= OP_COUNT {
		err = &ErrInstruction{Instruction: ins.String(), Err: ErrInstructionInvalid}
		return
	}

	// A zero Chip has no sp and ra cells.
	if len(chip.Memory) < 2 {
		err = &ErrInstruction{Instruction: ins.String(), Err: ErrChipInvalid}
		return
	}
	if chip.Aliases == nil {
		chip.resetAliases()
	}
	if chip.rand == nil {
		chip.Seed(0)
	}

	if chip.Verbose {
		log.Printf("chip: %d: %v", chip.Pc, ins)
	}

	jumped, err = opcodeTable[ins.Opcode].effect(chip, ins)
	if err != nil {
		jumped = false
		err = &ErrInstruction{Instruction: ins.String(), Err: err}
		return
	}

	return
}

func (chip *Chip) memoryOperand(ins *Instruction, n int) (index uint, err error) {
	ref, err := ins.Memory(n)
	if err == nil {
		index, err = chip.ResolveMemory(ref)
	}
	if err != nil {
		err = &ErrOperand{Index: n, Err: err}
	}
	return
}

func (chip *Chip) valueOperand(ins *Instruction, n int) (number float64, err error) {
	val, err := ins.Value(n)
	if err == nil {
		number, err = chip.ResolveValue(val)
	}
	if err != nil {
		err = &ErrOperand{Index: n, Err: err}
	}
	return
}

// valueOperands resolves consecutive values, starting at position from.
func (chip *Chip) valueOperands(ins *Instruction, from int, numbers []float64) (err error) {
	for n := range numbers {
		numbers[n], err = chip.valueOperand(ins, from+n)
		if err != nil {
			return
		}
	}
	return
}

func (chip *Chip) tokenOperand(ins *Instruction, n int) (token string, err error) {
	token, err = ins.Token(n)
	if err != nil {
		err = &ErrOperand{Index: n, Err: err}
	}
	return
}

// slotOperand resolves a device pin, which may be empty.
func (chip *Chip) slotOperand(ins *Instruction, n int) (slot uint, err error) {
	ref, err := ins.Device(n)
	if err == nil {
		slot, err = chip.ResolveDevice(ref)
	}
	if err != nil {
		err = &ErrOperand{Index: n, Err: err}
	}
	return
}

// deviceOperand resolves a device pin, which must hold a device.
func (chip *Chip) deviceOperand(ins *Instruction, n int) (slot uint, dev *device.Device, err error) {
	slot, err = chip.slotOperand(ins, n)
	if err != nil {
		return
	}

	dev, err = chip.Device(slot)
	if err != nil {
		err = &ErrOperand{Index: n, Err: err}
	}
	return
}

// jump transfers control. The target must be a finite, non-negative line.
func (chip *Chip) jump(target float64, mode JumpMode, link bool) (err error) {
	if mode == JUMP_RELATIVE {
		target += float64(chip.Pc)
	}
	if math.IsNaN(target) || target < 0 || target > math.MaxInt32 {
		err = &ErrBounds{Space: SPACE_LINE, Index: boundsIndex(target)}
		return
	}

	if link {
		chip.Memory[chip.ReturnAddress()] = float64(chip.Pc + 1)
	}
	chip.Pc = uint(math.Floor(target))

	return
}

// condition tests resolved operands.
type condition func(args [3]float64) bool

func truthy(value float64) bool {
	return value > 0
}

// approximately is the in-game relative comparison, with a floor of
// eight epsilons.
func approximately(a, b, c float64) bool {
	return math.Abs(a-b) <= math.Max(c*math.Max(math.Abs(a), math.Abs(b)), math.SmallestNonzeroFloat32*8)
}

func condAlways(args [3]float64) bool { return true }
func condEq(args [3]float64) bool { return args[0] == args[1] }
func condNe(args [3]float64) bool { return args[0] != args[1] }
func condGt(args [3]float64) bool { return args[0] > args[1] }
func condGe(args [3]float64) bool { return args[0] >= args[1] }
func condLt(args [3]float64) bool { return args[0] < args[1] }
func condLe(args [3]float64) bool { return args[0] <= args[1] }
func condAp(args [3]float64) bool { return approximately(args[0], args[1], args[2]) }
func condNa(args [3]float64) bool { return !approximately(args[0], args[1], args[2]) }
func condEqz(args [3]float64) bool { return args[0] == 0 }
func condNez(args [3]float64) bool { return args[0] != 0 }
func condGtz(args [3]float64) bool { return args[0] > 0 }
func condGez(args [3]float64) bool { return args[0] >= 0 }
func condLtz(args [3]float64) bool { return args[0] < 0 }
func condLez(args [3]float64) bool { return args[0] <= 0 }
func condApz(args [3]float64) bool { return approximately(args[0], 0, args[1]) }
func condNaz(args [3]float64) bool { return !approximately(args[0], 0, args[1]) }
func condNan(args [3]float64) bool { return math.IsNaN(args[0]) }
func condNotNan(args [3]float64) bool { return !math.IsNaN(args[0]) }
func condAnd(args [3]float64) bool { return truthy(args[0]) && truthy(args[1]) }
func condOr(args [3]float64) bool { return truthy(args[0]) || truthy(args[1]) }
func condXor(args [3]float64) bool { return truthy(args[0]) != truthy(args[1]) }
func condNor(args [3]float64) bool { return !(truthy(args[0]) || truthy(args[1])) }
func condNot(args [3]float64) bool { return !truthy(args[0]) }

// branch tests arity values, and jumps to the value that follows them.
func branch(arity int, cond condition, mode JumpMode, link bool) effect {
	return func(chip *Chip, ins *Instruction) (jumped bool, err error) {
		var args [3]float64
		err = chip.valueOperands(ins, 0, args[:arity])
		if err != nil {
			return
		}
		target, err := chip.valueOperand(ins, arity)
		if err != nil {
			return
		}

		if !cond(args) {
			return
		}

		err = chip.jump(target, mode, link)
		jumped = err == nil
		return
	}
}

// branchDevice jumps when a device pin is set, or when it is not.
func branchDevice(set bool, mode JumpMode, link bool) effect {
	return func(chip *Chip, ins *Instruction) (jumped bool, err error) {
		slot, err := chip.slotOperand(ins, 0)
		if err != nil {
			return
		}
		target, err := chip.valueOperand(ins, 1)
		if err != nil {
			return
		}

		if (chip.Devices[slot] != nil) != set {
			return
		}

		err = chip.jump(target, mode, link)
		jumped = err == nil
		return
	}
}

func boolValue(value bool) float64 {
	if value {
		return 1
	}
	return 0
}

// setIf stores 1 or 0 depending on a test of arity values.
func setIf(arity int, cond condition) effect {
	return func(chip *Chip, ins *Instruction) (jumped bool, err error) {
		index, err := chip.memoryOperand(ins, 0)
		if err != nil {
			return
		}
		var args [3]float64
		err = chip.valueOperands(ins, 1, args[:arity])
		if err != nil {
			return
		}

		chip.Memory[index] = boolValue(cond(args))
		return
	}
}

// setIfDevice stores 1 or 0 depending on whether a pin is set.
func setIfDevice(set bool) effect {
	return func(chip *Chip, ins *Instruction) (jumped bool, err error) {
		index, err := chip.memoryOperand(ins, 0)
		if err != nil {
			return
		}
		slot, err := chip.slotOperand(ins, 1)
		if err != nil {
			return
		}

		chip.Memory[index] = boolValue((chip.Devices[slot] != nil) == set)
		return
	}
}

func doSelect(chip *Chip, ins *Instruction) (jumped bool, err error) {
	index, err := chip.memoryOperand(ins, 0)
	if err != nil {
		return
	}
	var args [3]float64
	err = chip.valueOperands(ins, 1, args[:])
	if err != nil {
		return
	}

	if args[0] != 0 {
		chip.Memory[index] = args[1]
	} else {
		chip.Memory[index] = args[2]
	}
	return
}

func mathAdd(a, b float64) float64 { return a + b }
func mathSub(a, b float64) float64 { return a - b }
func mathMul(a, b float64) float64 { return a * b }
func mathDiv(a, b float64) float64 { return a / b }

// mathMod is the floored modulus; the result takes the sign of b.
func mathMod(a, b float64) float64 { return a - b*math.Floor(a/b) }

func unary(fn func(float64) float64) effect {
	return func(chip *Chip, ins *Instruction) (jumped bool, err error) {
		index, err := chip.memoryOperand(ins, 0)
		if err != nil {
			return
		}
		a, err := chip.valueOperand(ins, 1)
		if err != nil {
			return
		}

		chip.Memory[index] = fn(a)
		return
	}
}

func binary(fn func(float64, float64) float64) effect {
	return func(chip *Chip, ins *Instruction) (jumped bool, err error) {
		index, err := chip.memoryOperand(ins, 0)
		if err != nil {
			return
		}
		var args [3]float64
		err = chip.valueOperands(ins, 1, args[:2])
		if err != nil {
			return
		}

		chip.Memory[index] = fn(args[0], args[1])
		return
	}
}

func doRandom(chip *Chip, ins *Instruction) (jumped bool, err error) {
	index, err := chip.memoryOperand(ins, 0)
	if err != nil {
		return
	}

	chip.Memory[index] = chip.rand.Float64()
	return
}

func doNoop(chip *Chip, ins *Instruction) (jumped bool, err error) {
	return
}

func doUnknown(chip *Chip, ins *Instruction) (jumped bool, err error) {
	err = ErrOpcodeUnknown
	return
}

func doUnsupported(chip *Chip, ins *Instruction) (jumped bool, err error) {
	err = ErrOpcodeUnsupported
	return
}

func doLabel(chip *Chip, ins *Instruction) (jumped bool, err error) {
	name, err := chip.tokenOperand(ins, 0)
	if err != nil {
		return
	}

	chip.Aliases[name] = LineLabel(chip.Pc)
	return
}

func doLoad(chip *Chip, ins *Instruction) (jumped bool, err error) {
	index, err := chip.memoryOperand(ins, 0)
	if err != nil {
		return
	}
	slot, dev, err := chip.deviceOperand(ins, 1)
	if err != nil {
		return
	}
	name, err := chip.tokenOperand(ins, 2)
	if err != nil {
		return
	}
	value, err := dev.Read(name)
	if err != nil {
		err = &ErrDevice{Index: slot, Err: err}
		return
	}

	chip.Memory[index] = value
	return
}

func doStore(chip *Chip, ins *Instruction) (jumped bool, err error) {
	slot, dev, err := chip.deviceOperand(ins, 0)
	if err != nil {
		return
	}
	name, err := chip.tokenOperand(ins, 1)
	if err != nil {
		return
	}
	value, err := chip.valueOperand(ins, 2)
	if err != nil {
		return
	}

	err = dev.Write(name, value)
	if err != nil {
		err = &ErrDevice{Index: slot, Err: err}
		return
	}

	return
}

func doPush(chip *Chip, ins *Instruction) (jumped bool, err error) {
	value, err := chip.valueOperand(ins, 0)
	if err != nil {
		return
	}

	sp := chip.StackPointer()
	next, err := chip.Stack.Push(chip.Memory[sp], value)
	if err != nil {
		return
	}

	chip.Memory[sp] = next
	return
}

func doPop(chip *Chip, ins *Instruction) (jumped bool, err error) {
	index, err := chip.memoryOperand(ins, 0)
	if err != nil {
		return
	}

	sp := chip.StackPointer()
	value, next, err := chip.Stack.Pop(chip.Memory[sp])
	if err != nil {
		return
	}

	chip.Memory[sp] = next
	chip.Memory[index] = value
	return
}

func doPeek(chip *Chip, ins *Instruction) (jumped bool, err error) {
	index, err := chip.memoryOperand(ins, 0)
	if err != nil {
		return
	}

	value, err := chip.Stack.Peek(chip.Memory[chip.StackPointer()])
	if err != nil {
		return
	}

	chip.Memory[index] = value
	return
}

func doAlias(chip *Chip, ins *Instruction) (jumped bool, err error) {
	name, err := chip.tokenOperand(ins, 0)
	if err != nil {
		return
	}
	arg, err := ins.Ref(1)
	if err != nil {
		err = &ErrOperand{Index: 1, Err: err}
		return
	}

	var bind Binding
	var index uint
	switch {
	case arg.Kind == ARG_MEMORY && arg.Memory.IsAlias():
		// Another alias: copy its binding, memory or device.
		bind, err = chip.Lookup(arg.Memory.Alias)
		if err == nil && bind.Kind != BIND_MEMORY && bind.Kind != BIND_DEVICE {
			err = &ErrAlias{Name: arg.Memory.Alias, Err: ErrAliasWrongKind}
		}
	case arg.Kind == ARG_MEMORY:
		index, err = chip.ResolveMemory(arg.Memory)
		bind = MemorySlot(index)
	default:
		index, err = chip.ResolveDevice(arg.Device)
		bind = DeviceSlot(index)
	}
	if err != nil {
		err = &ErrOperand{Index: 1, Err: err}
		return
	}

	chip.Aliases[name] = bind
	return
}

func doDefine(chip *Chip, ins *Instruction) (jumped bool, err error) {
	name, err := chip.tokenOperand(ins, 0)
	if err != nil {
		return
	}
	value, err := chip.valueOperand(ins, 1)
	if err != nil {
		return
	}

	chip.Aliases[name] = NumericConstant(value)
	return
}

func doHcf(chip *Chip, ins *Instruction) (jumped bool, err error) {
	err = ErrHaltCatchFire
	return
}

func doMove(chip *Chip, ins *Instruction) (jumped bool, err error) {
	index, err := chip.memoryOperand(ins, 0)
	if err != nil {
		return
	}
	value, err := chip.valueOperand(ins, 1)
	if err != nil {
		return
	}

	chip.Memory[index] = value
	return
}

func doSleep(chip *Chip, ins *Instruction) (jumped bool, err error) {
	seconds, err := chip.valueOperand(ins, 0)
	if err != nil {
		return
	}

	ticks := math.Ceil(seconds / TICK_SECONDS)
	switch {
	case math.IsNaN(ticks), ticks <= 0:
		chip.Wait = 0
	case ticks > math.MaxUint32:
		chip.Wait = math.MaxUint32
	default:
		chip.Wait = uint(ticks)
	}
	return
}

func doYield(chip *Chip, ins *Instruction) (jumped bool, err error) {
	chip.Wait = 1
	return
}
