package chip

import (
	"fmt"
)

// BindingKind is the kind of thing an alias names.
type BindingKind int

//go:generate go tool stringer -linecomment -type=BindingKind
const (
	BIND_MEMORY   = BindingKind(0) // memory
	BIND_DEVICE   = BindingKind(1) // device
	BIND_LABEL    = BindingKind(2) // label
	BIND_CONSTANT = BindingKind(3) // constant
)

// Binding is the target of an alias.
type Binding struct {
	Kind  BindingKind
	Index uint    // Slot or line index, for all but BIND_CONSTANT.
	Value float64 // Value of a BIND_CONSTANT.
}

// MemorySlot binds to a memory cell.
func MemorySlot(index uint) Binding {
	return Binding{Kind: BIND_MEMORY, Index: index}
}

// DeviceSlot binds to a device slot.
func DeviceSlot(index uint) Binding {
	return Binding{Kind: BIND_DEVICE, Index: index}
}

// LineLabel binds to a program line.
func LineLabel(index uint) Binding {
	return Binding{Kind: BIND_LABEL, Index: index}
}

// NumericConstant binds to a number.
func NumericConstant(value float64) Binding {
	return Binding{Kind: BIND_CONSTANT, Value: value}
}

func (bind Binding) String() string {
	switch bind.Kind {
	case BIND_MEMORY:
		return fmt.Sprintf("r%d", bind.Index)
	case BIND_DEVICE:
		return fmt.Sprintf("d%d", bind.Index)
	case BIND_LABEL:
		return fmt.Sprintf("line %d", bind.Index)
	default:
		return formatNumber(bind.Value)
	}
}
