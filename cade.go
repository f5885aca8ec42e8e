// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

// Package cade is the public entry point for the DCPU-16 core: creating an
// emulator instance, loading a program, stepping it, and reading back its
// state. It is a thin wrapper around package cpu; everything here delegates
// immediately and is safe to call on a nil receiver.
package cade

import (
	"github.com/cade16/cade/cpu"
	"github.com/cade16/cade/instance"
	"github.com/cade16/cade/memory"
	"github.com/cade16/cade/registers"
	"github.com/cade16/cade/statsview"
)

// Emulator is a single DCPU-16 core: its memory, registers and cycle
// scheduler. The zero value is not usable; construct one with New.
type Emulator struct {
	core *cpu.CPU
}

// New creates an emulator attached to the given instance. If instance is
// nil, a fresh default instance is created (preferences loaded from disk,
// a non-deterministic random source).
func New(ins *instance.Instance) *Emulator {
	if ins == nil {
		var err error
		ins, err = instance.NewInstance(nil)
		if err != nil {
			ins = &instance.Instance{}
		}
	}
	mem := &memory.Memory{}
	return &Emulator{
		core: cpu.NewCPU(mem, ins),
	}
}

// Reset restores the emulator to its initial architectural state.
func (e *Emulator) Reset() {
	if e == nil || e.core == nil {
		return
	}
	e.core.Reset()
}

// Load copies words into memory starting at address, wrapping at the top
// of the address space if the program overruns it.
func (e *Emulator) Load(address uint16, words []uint16) {
	if e == nil || e.core == nil {
		return
	}
	e.core.Load(address, words)
}

// Register reads a general purpose register by name. An invalid handle, or
// an out of range name, reads as zero.
func (e *Emulator) Register(name registers.Name) uint16 {
	if e == nil || e.core == nil {
		return 0
	}
	return e.core.Register(name)
}

// PC reads the program counter.
func (e *Emulator) PC() uint16 {
	if e == nil || e.core == nil {
		return 0
	}
	return e.core.PC()
}

// SP reads the stack pointer.
func (e *Emulator) SP() uint16 {
	if e == nil || e.core == nil {
		return 0
	}
	return e.core.SP()
}

// O reads the overflow register.
func (e *Emulator) O() uint16 {
	if e == nil || e.core == nil {
		return 0
	}
	return e.core.O()
}

// Memory reads a single word from the given address.
func (e *Emulator) Memory(address uint16) uint16 {
	if e == nil || e.core == nil {
		return 0
	}
	return e.core.Memory(address)
}

// RegisterName returns the conventional single-letter name for a general
// purpose register, or "?" for an out of range name.
func RegisterName(name registers.Name) string {
	return name.String()
}

// StepCycles invokes the scheduler n times. The processor may be left
// mid-instruction.
func (e *Emulator) StepCycles(n int) {
	if e == nil || e.core == nil {
		return
	}
	e.core.StepCycles(n)
	statsview.SetCycleCount(e.core.Cycles())
}

// StepInstruction runs cycles until an instruction has fully completed and
// any resulting skip has been consumed. Returns the number of cycles
// elapsed.
func (e *Emulator) StepInstruction() int {
	if e == nil || e.core == nil {
		return 0
	}
	n := e.core.StepInstruction()
	statsview.SetCycleCount(e.core.Cycles())
	return n
}

// StepUntilStuck runs instructions until one leaves PC unchanged. Returns
// the total number of cycles elapsed.
func (e *Emulator) StepUntilStuck() int {
	if e == nil || e.core == nil {
		return 0
	}
	n := e.core.StepUntilStuck()
	statsview.SetCycleCount(e.core.Cycles())
	return n
}

// Core exposes the underlying CPU for collaborators - the state package and
// the CLI - that need more than the stable accessor surface above.
func (e *Emulator) Core() *cpu.CPU {
	if e == nil {
		return nil
	}
	return e.core
}
