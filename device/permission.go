package device

import (
	"strings"
)

// Permission is the access tag of a device parameter.
type Permission int

//go:generate go tool stringer -linecomment -type=Permission
const (
	PERM_READ       = Permission(0) // Read
	PERM_WRITE      = Permission(1) // Write
	PERM_READ_WRITE = Permission(2) // ReadWrite
)

// Readable returns true if opcodes may read a parameter with this permission.
func (perm Permission) Readable() bool {
	return perm == PERM_READ || perm == PERM_READ_WRITE
}

// Writable returns true if opcodes may write a parameter with this permission.
func (perm Permission) Writable() bool {
	return perm == PERM_WRITE || perm == PERM_READ_WRITE
}

// MarshalText encodes the permission as its catalogue name.
func (perm Permission) MarshalText() ([]byte, error) {
	return []byte(perm.String()), nil
}

// UnmarshalText decodes a catalogue permission name.
func (perm *Permission) UnmarshalText(text []byte) (err error) {
	for _, candidate := range []Permission{PERM_READ, PERM_WRITE, PERM_READ_WRITE} {
		if strings.EqualFold(string(text), candidate.String()) {
			*perm = candidate
			return
		}
	}

	err = ErrPermissionInvalid(string(text))
	return
}
