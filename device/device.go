package device

import (
	"iter"
	"maps"
	"slices"
)

// ParameterDecl declares one parameter of a device kind.
type ParameterDecl struct {
	Kind Permission `json:"kind" toml:"kind"`
	Name string     `json:"name" toml:"name"`
}

// Kind describes a type of device.
type Kind struct {
	Name   string          `json:"name" toml:"name"`
	Hash   int64           `json:"hash" toml:"hash"`
	Params []ParameterDecl `json:"params" toml:"params"`
}

// Parameter is the stored value of a device parameter.
type Parameter struct {
	Permission Permission
	Value      float64
}

// Device is an instance of a Kind.
type Device struct {
	Kind       *Kind
	Parameters map[string]Parameter
}

// New creates a device with every declared parameter zeroed.
// A nil kind creates a nameless device without parameters.
func New(kind *Kind) (dev *Device) {
	if kind == nil {
		kind = &Kind{}
	}

	dev = &Device{
		Kind:       kind,
		Parameters: make(map[string]Parameter, len(kind.Params)),
	}

	for _, decl := range kind.Params {
		dev.Parameters[decl.Name] = Parameter{Permission: decl.Kind}
	}

	return
}

// String returns the kind name of the device.
func (dev *Device) String() string {
	return dev.Kind.Name
}

// Names iterates the parameter names in sorted order.
func (dev *Device) Names() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(dev.Parameters)))
}

// lookup finds a parameter by name.
func (dev *Device) lookup(name string) (param Parameter, err error) {
	param, ok := dev.Parameters[name]
	if !ok {
		err = &ErrParameter{Name: name, Err: ErrUnknownParameter}
	}
	return
}

// Read returns the value of a readable parameter.
func (dev *Device) Read(name string) (value float64, err error) {
	param, err := dev.lookup(name)
	if err != nil {
		return
	}

	if !param.Permission.Readable() {
		err = &ErrParameter{Name: name, Err: ErrWriteOnly}
		return
	}

	value = param.Value
	return
}

// Write sets the value of a writable parameter.
func (dev *Device) Write(name string, value float64) (err error) {
	param, err := dev.lookup(name)
	if err != nil {
		return
	}

	if !param.Permission.Writable() {
		err = &ErrParameter{Name: name, Err: ErrReadOnly}
		return
	}

	param.Value = value
	dev.Parameters[name] = param
	return
}

// ReadInternal reads a parameter ignoring its permission.
// For inspection tools; opcodes always go through Read.
func (dev *Device) ReadInternal(name string) (value float64, err error) {
	param, err := dev.lookup(name)
	if err != nil {
		return
	}

	value = param.Value
	return
}

// WriteInternal writes a parameter ignoring its permission.
// For inspection tools; opcodes always go through Write.
func (dev *Device) WriteInternal(name string, value float64) (err error) {
	param, err := dev.lookup(name)
	if err != nil {
		return
	}

	param.Value = value
	dev.Parameters[name] = param
	return
}
