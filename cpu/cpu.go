// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package cpu

import (
	"github.com/cade16/cade/instance"
	"github.com/cade16/cade/logger"
	"github.com/cade16/cade/memory"
	"github.com/cade16/cade/operand"
	"github.com/cade16/cade/registers"
	"github.com/cade16/cade/result"
)

// CPU is the DCPU-16 decode/execute core. It owns a register file and talks
// to memory only through the Bus interface, so it can be driven against a
// plain memory.Memory or any test double that satisfies memory.Bus.
type CPU struct {
	Regs registers.File
	Mem  memory.Bus

	ins *instance.Instance

	stage Stage
	skip  bool

	inst     uint16
	extended bool
	opcode   int
	xop      int
	aCode    uint16
	bCode    uint16

	aRef operand.Ref
	bRef operand.Ref

	burnRemaining int
	failedTest    bool

	cycleCounter int64

	LastResult result.Instruction
}

// NewCPU is the preferred method of initialisation for the CPU type. ins
// may be nil, in which case random-fill-on-reset is unavailable and no
// preferences are consulted. If ins is not nil, the CPU attaches itself as
// ins.Random's tick source.
func NewCPU(mem memory.Bus, ins *instance.Instance) *CPU {
	c := &CPU{
		Mem: mem,
		ins: ins,
	}
	if ins != nil && ins.Random != nil {
		ins.Random.Attach(c)
	}
	c.Reset()
	return c
}

// Count satisfies random.Ticks, letting the CPU's own cycle counter drive
// an attached instance's random number generator.
func (c *CPU) Count() int64 {
	return c.cycleCounter
}

// Cycles reports the total number of clock cycles this CPU has run since
// the last Reset.
func (c *CPU) Cycles() int64 {
	return c.cycleCounter
}

// Reset restores the CPU to its initial state: S0, inst=0, no operand
// references, skip clear, all registers and the cycle counter zeroed
// (SP set to 0xFFFF per the register file's own reset semantics). If the
// attached instance's RandomFillOnReset preference is set, registers and
// memory are filled with pseudo-random values instead of zeroed.
func (c *CPU) Reset() {
	c.Regs.Reset()
	c.Mem.Reset()

	c.stage = StageFetch
	c.skip = false

	c.clearInstructionState()
	c.extended = false
	c.opcode = 0
	c.xop = 0
	c.aCode = 0
	c.bCode = 0

	c.burnRemaining = 0
	c.failedTest = false

	c.LastResult.Reset()

	// fill before the cycle counter is zeroed: the counter is the attached
	// random source's tick count, so each reset draws from a different seed.
	if c.randomFillOnReset() {
		c.fillRandom()
	}

	c.cycleCounter = 0
}

// clearInstructionState returns inst and both operand references to their
// between-instructions state: inst = 0, a_ref and b_ref absent. Called
// wherever an instruction (or a skip) finishes, not only from Reset - see
// spec.md §3's invariant that this holds between any two completed
// instructions, not just at startup.
func (c *CPU) clearInstructionState() {
	c.inst = 0
	c.aRef = operand.Absent()
	c.bRef = operand.Absent()
}

func (c *CPU) randomFillOnReset() bool {
	if c.ins == nil || c.ins.Prefs == nil {
		return false
	}
	v, ok := c.ins.Prefs.RandomFillOnReset.Get().(bool)
	return ok && v
}

func (c *CPU) fillRandom() {
	for i := 0; i < registers.NumGeneral; i++ {
		c.Regs.Set(registers.Name(i), uint16(c.ins.Random.Intn(0x10000)))
	}
	for addr := 0; addr < memory.Words; addr++ {
		c.Mem.Write(uint16(addr), uint16(c.ins.Random.Intn(0x10000)))
	}
}

// Load copies words into memory starting at address, wrapping at the top of
// the address space.
func (c *CPU) Load(address uint16, words []uint16) {
	addr := address
	for _, w := range words {
		c.Mem.Write(addr, w)
		addr++
	}
}

// Cycle advances the scheduler by exactly one clock cycle and reports
// whether this cycle completed an instruction (or consumed a pending
// skip). See §4.4 of the design notes for the state machine this
// implements.
func (c *CPU) Cycle() bool {
	c.cycleCounter++
	c.LastResult.Cycles++

	consumedReal := false

	for {
		switch c.stage {
		case StageFetch:
			if c.skip {
				c.doSkip()
				return true
			}
			terminal := c.doFetchDecode()
			if terminal {
				return true
			}
			consumedReal = true
			c.stage = StageResolveA
			continue

		case StageResolveA:
			if c.resolveStep(c.aCode, &c.aRef, &consumedReal) {
				return false
			}
			if c.extended {
				c.stage = StageExecute
			} else {
				c.stage = StageResolveB
			}
			continue

		case StageResolveB:
			if c.resolveStep(c.bCode, &c.bRef, &consumedReal) {
				return false
			}
			c.stage = StageExecute
			continue

		case StageExecute:
			extra := c.opcodeExtraCycles()
			if extra == 0 {
				c.applyEffect()
				c.LastResult.Final = true
				c.stage = StageFetch
				c.clearInstructionState()
				return true
			}
			if consumedReal {
				return false
			}
			c.applyEffect()
			consumedReal = true

			burn := extra - 1
			if c.failedTest {
				burn++
			}
			c.burnRemaining = burn

			if c.burnRemaining <= 0 {
				c.LastResult.Final = true
				c.stage = StageFetch
				c.clearInstructionState()
				return true
			}
			c.stage = StageBurn
			return false

		case StageBurn:
			c.burnRemaining--
			if c.burnRemaining <= 0 {
				c.LastResult.Final = true
				c.stage = StageFetch
				c.clearInstructionState()
				return true
			}
			return false
		}
	}
}

// doSkip discards the instruction at PC without executing it: it reads just
// enough to compute its length, advances PC by that length, and clears
// skip. This is the Skip sub-stage; it always consumes exactly one cycle.
func (c *CPU) doSkip() {
	addr := c.Regs.PC.Value()
	w := c.Mem.Read(addr)
	_, _, a, b, extended := decode(w)
	l := instructionLength(a, b, extended)
	c.Regs.PC.Add(uint16(l))
	c.skip = false

	c.LastResult.Reset()
	c.LastResult.Address = addr
	c.LastResult.ByteCount = l
	c.LastResult.Cycles = 1
	c.LastResult.Skipped = true
	c.LastResult.Final = true

	c.clearInstructionState()
}

// doFetchDecode reads and decodes the instruction word at PC, advancing PC
// by one word. It reports true if the instruction is a malformed extended
// opcode, in which case it is a complete, terminal no-op: no resolve or
// execute stage follows.
func (c *CPU) doFetchDecode() bool {
	addr := c.Regs.PC.Value()
	w := c.Mem.Read(addr)
	c.Regs.PC.Add(1)

	op, xop, a, b, extended := decode(w)

	c.LastResult.Reset()
	c.LastResult.Address = addr
	c.LastResult.ByteCount = 1
	c.LastResult.Cycles = 1

	c.inst = w
	c.extended = extended
	c.opcode = op
	c.xop = xop
	c.aCode = a
	c.bCode = b
	c.burnRemaining = 0
	c.failedTest = false

	if extended {
		if xop != xopJSR {
			logger.Logf(logger.Allow, "cpu", "unrecognised extended opcode %#x at address %#04x", xop, addr)
			c.LastResult.Opcode = "???"
			c.LastResult.Error = "unrecognised extended opcode"
			c.LastResult.Final = true
			c.clearInstructionState()
			return true
		}
		c.LastResult.Opcode = xopName(xop)
		return false
	}

	c.LastResult.Opcode = basicName(op)
	return false
}

// resolveStep resolves one operand field. It returns true if this cycle's
// real-work budget is already spent and the resolution (which needs an
// extra program word) must be deferred to the next cycle; the caller
// should then stop and return from Cycle without advancing the stage.
func (c *CPU) resolveStep(code uint16, ref *operand.Ref, consumedReal *bool) bool {
	if !operand.NeedsNextWord(code) {
		*ref = operand.Resolve(code, 0, &c.Regs, c.Mem)
		return false
	}
	if *consumedReal {
		return true
	}
	nw := c.Mem.Read(c.Regs.PC.Value())
	c.Regs.PC.Add(1)
	*ref = operand.Resolve(code, nw, &c.Regs, c.Mem)
	c.LastResult.ByteCount++
	*consumedReal = true
	return false
}
