// Package device models the devices an IC10 chip can be wired to.
//
// A Kind describes a device type: its name, prefab hash and the parameters it
// exposes, each tagged Read, Write or ReadWrite. A Device is one instance of a
// Kind holding a value per parameter. Kinds are usually loaded from a
// Catalogue file.
package device
