package chip

import (
	"math"
)

// boundsIndex converts a computed address for error reporting.
func boundsIndex(value float64) int {
	switch {
	case math.IsNaN(value), value < math.MinInt32:
		return -1
	case value > math.MaxInt32:
		return math.MaxInt32
	}
	return int(value)
}

// Lookup finds the binding of a name in the alias table, falling back
// to the builtin constants.
func (chip *Chip) Lookup(name string) (bind Binding, err error) {
	bind, ok := chip.Aliases[name]
	if ok {
		return
	}

	if value, ok := builtinConstants[name]; ok {
		bind = NumericConstant(value)
		return
	}

	err = &ErrAlias{Name: name, Err: ErrAliasUnset}
	return
}

// lookupKind finds a binding that must be of the given kind.
func (chip *Chip) lookupKind(name string, kind BindingKind) (index uint, err error) {
	bind, err := chip.Lookup(name)
	if err != nil {
		return
	}

	if bind.Kind != kind {
		err = &ErrAlias{Name: name, Err: ErrAliasWrongKind}
		return
	}

	index = bind.Index
	return
}

// follow walks a chain of relative offsets through memory, starting at
// base. Each hop reads memory[i], and moves to i + floor(memory[i]).
func (chip *Chip) follow(base uint, indirections uint) (index uint, err error) {
	index = base
	for range indirections {
		if index >= uint(len(chip.Memory)) {
			err = &ErrBounds{Space: SPACE_MEMORY, Index: boundsIndex(float64(index))}
			return
		}
		next := float64(index) + math.Floor(chip.Memory[index])
		if math.IsNaN(next) || next < 0 || next >= float64(len(chip.Memory)) {
			err = &ErrBounds{Space: SPACE_MEMORY, Index: boundsIndex(next)}
			return
		}
		index = uint(next)
	}

	return
}

// ResolveMemory resolves a memory reference to a memory index.
func (chip *Chip) ResolveMemory(ref MemoryRef) (index uint, err error) {
	if ref.IsAlias() {
		index, err = chip.lookupKind(ref.Alias, BIND_MEMORY)
	} else {
		index, err = chip.follow(ref.Base, ref.Indirections)
	}
	if err != nil {
		return
	}

	if index >= uint(len(chip.Memory)) {
		err = &ErrBounds{Space: SPACE_MEMORY, Index: boundsIndex(float64(index))}
		return
	}

	return
}

// ResolveDevice resolves a device reference to a device pin. The
// indirection hops read memory, only the final index selects a pin.
func (chip *Chip) ResolveDevice(ref DeviceRef) (index uint, err error) {
	switch {
	case ref.IsAlias():
		index, err = chip.lookupKind(ref.Alias, BIND_DEVICE)
	case ref.Indirections == 0:
		index = ref.Base
	default:
		// The last hop leaves memory, so it is checked against the pins.
		index, err = chip.follow(ref.Base, ref.Indirections-1)
		if err != nil {
			return
		}
		if index >= uint(len(chip.Memory)) {
			err = &ErrBounds{Space: SPACE_MEMORY, Index: boundsIndex(float64(index))}
			return
		}
		next := float64(index) + math.Floor(chip.Memory[index])
		if math.IsNaN(next) || next < 0 || next >= float64(len(chip.Devices)) {
			err = &ErrBounds{Space: SPACE_DEVICE, Index: boundsIndex(next)}
			return
		}
		index = uint(next)
	}
	if err != nil {
		return
	}

	if index >= uint(len(chip.Devices)) {
		err = &ErrBounds{Space: SPACE_DEVICE, Index: boundsIndex(float64(index))}
		return
	}

	return
}

// ResolveValue resolves a value to a number. An alias in value position
// may name a memory cell, a constant, or a label.
func (chip *Chip) ResolveValue(val Value) (number float64, err error) {
	if !val.IsRef {
		number = val.Number
		return
	}

	var index uint
	if val.Ref.IsAlias() {
		var bind Binding
		bind, err = chip.Lookup(val.Ref.Alias)
		if err != nil {
			return
		}
		switch bind.Kind {
		case BIND_CONSTANT:
			number = bind.Value
			return
		case BIND_LABEL:
			number = float64(bind.Index)
			return
		case BIND_MEMORY:
			index = bind.Index
		default:
			err = &ErrAlias{Name: val.Ref.Alias, Err: ErrAliasWrongKind}
			return
		}
		if index >= uint(len(chip.Memory)) {
			err = &ErrBounds{Space: SPACE_MEMORY, Index: boundsIndex(float64(index))}
			return
		}
	} else {
		index, err = chip.ResolveMemory(val.Ref)
		if err != nil {
			return
		}
	}

	number = chip.Memory[index]
	return
}
