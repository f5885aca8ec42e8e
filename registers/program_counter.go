// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package registers

import "fmt"

// ProgramCounter is the PC register of the DCPU-16.
type ProgramCounter struct {
	value uint16
}

// Label returns an identifying string for the PC.
func (pc ProgramCounter) Label() string {
	return "PC"
}

func (pc ProgramCounter) String() string {
	return fmt.Sprintf("%#04x", pc.value)
}

// Value returns the current value of the PC.
func (pc ProgramCounter) Value() uint16 {
	return pc.value
}

// Load sets the PC directly.
func (pc *ProgramCounter) Load(val uint16) {
	pc.value = val
}

// Add advances the PC by val, wrapping modulo 2^16.
func (pc *ProgramCounter) Add(val uint16) {
	pc.value += val
}
