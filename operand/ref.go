// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package operand

import (
	"fmt"

	"github.com/cade16/cade/memory"
	"github.com/cade16/cade/registers"
)

type kind int

const (
	// kindAbsent is the zero value of kind, so a zero-value Ref (in
	// particular CPU.aRef/bRef before any operand has been resolved, or
	// after an instruction completes) is absent rather than a dangling
	// reference to register A.
	kindAbsent kind = iota
	kindRegister
	kindSP
	kindPC
	kindO
	kindMemory
	kindImmediate
)

// Absent returns a Ref that refers to nothing - the state of CPU.aRef/bRef
// between instructions, per spec.md §3's "a_ref, b_ref: resolved operand
// references, or absent." The zero value of Ref is already Absent(); this
// constructor exists so callers can say so explicitly.
func Absent() Ref {
	return Ref{}
}

// Ref is a resolved operand reference: either a mutable location (general
// register, SP, PC, O or a memory cell) or a read-only immediate value.
type Ref struct {
	kind kind

	regs *registers.File
	mem  memory.Bus

	name Name
	addr uint16
	imm  uint16
}

// Name identifies a general register, reusing registers.Name.
type Name = registers.Name

// Register returns a Ref to general register name.
func Register(regs *registers.File, name Name) Ref {
	return Ref{kind: kindRegister, regs: regs, name: name}
}

// SP returns a Ref to the stack pointer.
func SP(regs *registers.File) Ref {
	return Ref{kind: kindSP, regs: regs}
}

// PC returns a Ref to the program counter.
func PC(regs *registers.File) Ref {
	return Ref{kind: kindPC, regs: regs}
}

// O returns a Ref to the overflow register.
func O(regs *registers.File) Ref {
	return Ref{kind: kindO, regs: regs}
}

// Memory returns a Ref to the word at addr.
func Memory(mem memory.Bus, addr uint16) Ref {
	return Ref{kind: kindMemory, mem: mem, addr: addr}
}

// Immediate returns a read-only Ref carrying value.
func Immediate(value uint16) Ref {
	return Ref{kind: kindImmediate, imm: value}
}

// Read returns the value the reference currently points at.
func (r Ref) Read() uint16 {
	switch r.kind {
	case kindAbsent:
		return 0
	case kindRegister:
		return r.regs.Get(r.name)
	case kindSP:
		return r.regs.SP.Value()
	case kindPC:
		return r.regs.PC.Value()
	case kindO:
		return r.regs.O.Value()
	case kindMemory:
		return r.mem.Read(r.addr)
	case kindImmediate:
		return r.imm
	default:
		return 0
	}
}

// Write stores value at the reference's location. Writing to an immediate
// Ref is a silent no-op: the architecture discards writes to literal
// destinations rather than erroring.
func (r Ref) Write(value uint16) {
	switch r.kind {
	case kindRegister:
		r.regs.Set(r.name, value)
	case kindSP:
		r.regs.SP.Load(value)
	case kindPC:
		r.regs.PC.Load(value)
	case kindO:
		r.regs.O.Load(value)
	case kindMemory:
		r.mem.Write(r.addr, value)
	case kindImmediate:
		// discarded
	}
}

// Writable reports whether Write has any effect. Used by diagnostics/state
// printing only; the core never branches on it since Write is already safe
// to call unconditionally.
func (r Ref) Writable() bool {
	return r.kind != kindImmediate && r.kind != kindAbsent
}

func (r Ref) String() string {
	switch r.kind {
	case kindAbsent:
		return "absent"
	case kindRegister:
		return fmt.Sprintf("%s=%#04x", r.name, r.Read())
	case kindSP:
		return fmt.Sprintf("SP=%#04x", r.Read())
	case kindPC:
		return fmt.Sprintf("PC=%#04x", r.Read())
	case kindO:
		return fmt.Sprintf("O=%#04x", r.Read())
	case kindMemory:
		return fmt.Sprintf("[%#04x]=%#04x", r.addr, r.Read())
	case kindImmediate:
		return fmt.Sprintf("#%#04x", r.imm)
	default:
		return "?"
	}
}
