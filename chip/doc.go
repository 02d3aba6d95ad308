// Package chip implements the IC10 microcontroller: its operands,
// instructions and programs, and the engine that executes them.
//
// A Chip holds a memory register file (r0..rN, then sp and ra), an array
// of device pins, an alias table, a stack and a program counter. Operands
// name memory and devices either through aliases, or through chains of
// relative offsets: `rr3` reads r3, and addresses 3 + floor(r3).
//
// Execute applies one instruction. All of its operands are resolved
// before any state is written, so a failing instruction leaves the chip
// untouched. Whether the program counter advances is left to the caller,
// see the simulator package.
package chip
