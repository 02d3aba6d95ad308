package chip

import (
	"fmt"
	"iter"
	"log"
	"math/rand"
	"strings"

	"github.com/ezrec/ic10/device"
	"github.com/ezrec/ic10/internal"
)

const (
	DEFAULT_REGISTERS = 16 // General purpose registers of a stock chip.
	DEFAULT_DEVICES   = 6  // Device pins of a stock chip.
)

// Chip is the architectural state of one IC10 housing.
type Chip struct {
	Verbose bool // Set to enable verbose logging.

	Memory  []float64          // Registers, followed by sp and ra.
	Devices []*device.Device   // Device pins; nil when unset.
	Aliases map[string]Binding // Alias table.
	Pc      uint               // Index of the next line to execute.
	Stack   Stack              // Stack memory, addressed by sp.
	Wait    uint               // Ticks left to sleep before the next line.

	rand *rand.Rand
}

// NewChip creates a chip with the given number of general purpose
// registers and device pins. Two extra memory cells hold sp and ra.
func NewChip(registers, devices uint) (chip *Chip) {
	chip = &Chip{
		Memory:  make([]float64, registers+2),
		Devices: make([]*device.Device, devices),
		rand:    rand.New(rand.NewSource(0)),
	}
	chip.resetAliases()

	return
}

// NewDefaultChip creates a chip of the stock size.
func NewDefaultChip() *Chip {
	return NewChip(DEFAULT_REGISTERS, DEFAULT_DEVICES)
}

func (chip *Chip) resetAliases() {
	chip.Aliases = map[string]Binding{
		"sp": MemorySlot(chip.StackPointer()),
		"ra": MemorySlot(chip.ReturnAddress()),
	}
}

// StackPointer is the memory index of the sp register.
func (chip *Chip) StackPointer() uint {
	return uint(len(chip.Memory) - 2)
}

// ReturnAddress is the memory index of the ra register.
func (chip *Chip) ReturnAddress() uint {
	return uint(len(chip.Memory) - 1)
}

// Seed reseeds the generator used by `rand`.
func (chip *Chip) Seed(seed int64) {
	chip.rand = rand.New(rand.NewSource(seed))
}

// SetDevice attaches a device to a pin. A nil device clears the pin.
func (chip *Chip) SetDevice(slot uint, dev *device.Device) (err error) {
	if slot >= uint(len(chip.Devices)) {
		err = &ErrBounds{Space: SPACE_DEVICE, Index: int(slot)}
		return
	}

	if chip.Verbose {
		log.Printf("chip: d%d = %v", slot, dev)
	}

	chip.Devices[slot] = dev
	return
}

// Device returns the device attached to a pin.
func (chip *Chip) Device(slot uint) (dev *device.Device, err error) {
	if slot >= uint(len(chip.Devices)) {
		err = &ErrBounds{Space: SPACE_DEVICE, Index: int(slot)}
		return
	}

	dev = chip.Devices[slot]
	if dev == nil {
		err = &ErrDevice{Index: slot, Err: ErrDeviceUnset}
		return
	}

	return
}

// Reset clears memory, stack, program counter and aliases.
// Attached devices are kept.
func (chip *Chip) Reset() {
	if chip.Verbose {
		log.Printf("chip: reset")
	}

	clear(chip.Memory)
	chip.Stack.Reset()
	chip.Pc = 0
	chip.Wait = 0
	chip.resetAliases()
}

// Symbols iterates the names visible to the chip: the alias table in
// name order, followed by the builtin constants it does not shadow.
func (chip *Chip) Symbols() iter.Seq2[string, Binding] {
	var builtins iter.Seq2[string, Binding] = func(yield func(string, Binding) bool) {
		for name, value := range internal.IterSorted(builtinConstants) {
			if !yield(name, NumericConstant(value)) {
				return
			}
		}
	}
	shadowed := func(name string) bool {
		_, ok := chip.Aliases[name]
		return ok
	}

	return internal.IterSeq2Concat(
		internal.IterSorted(chip.Aliases),
		internal.IterSeq2Skip(builtins, shadowed),
	)
}

// String returns the chip state as text.
func (chip *Chip) String() string {
	var text strings.Builder

	fmt.Fprintf(&text, "%5s: %d\n", "pc", chip.Pc)
	for n, value := range chip.Memory {
		var reg string
		switch uint(n) {
		case chip.StackPointer():
			reg = "sp"
		case chip.ReturnAddress():
			reg = "ra"
		default:
			reg = fmt.Sprintf("r%d", n)
		}
		fmt.Fprintf(&text, "%5s: %v\n", reg, formatNumber(value))
	}
	for n, dev := range chip.Devices {
		name := "-"
		if dev != nil {
			name = dev.String()
		}
		fmt.Fprintf(&text, "%5s: %v\n", fmt.Sprintf("d%d", n), name)
	}

	return text.String()
}
