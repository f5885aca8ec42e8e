// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package cpu

import "github.com/cade16/cade/registers"

// StepCycles invokes the scheduler n times. The processor may be left
// mid-instruction when it returns.
func (c *CPU) StepCycles(n int) {
	for i := 0; i < n; i++ {
		c.Cycle()
	}
}

// StepInstruction runs cycles until an instruction has fully completed and
// any resulting skip has been consumed. If called mid-instruction it
// finishes the current instruction only (plus any skip that instruction's
// completion leaves pending). Returns the number of cycles elapsed.
func (c *CPU) StepInstruction() int {
	start := c.cycleCounter
	for {
		done := c.Cycle()
		if done && !c.skip {
			break
		}
	}
	return int(c.cycleCounter - start)
}

// StepUntilStuck runs whole instructions until one leaves PC unchanged - a
// one-instruction infinite loop such as SUB PC, 1. Longer cycles are
// intentionally not detected. Returns the total number of cycles elapsed.
func (c *CPU) StepUntilStuck() int {
	total := 0
	for {
		before := c.Regs.PC.Value()
		total += c.StepInstruction()
		if c.Regs.PC.Value() == before {
			return total
		}
	}
}

// Register reads a general register by name. Out of range names read as 0.
func (c *CPU) Register(name registers.Name) uint16 {
	return c.Regs.Get(name)
}

// PC reads the program counter.
func (c *CPU) PC() uint16 {
	return c.Regs.PC.Value()
}

// SP reads the stack pointer.
func (c *CPU) SP() uint16 {
	return c.Regs.SP.Value()
}

// O reads the overflow register.
func (c *CPU) O() uint16 {
	return c.Regs.O.Value()
}

// Memory reads a single word from the given address.
func (c *CPU) Memory(address uint16) uint16 {
	return c.Mem.Read(address)
}
