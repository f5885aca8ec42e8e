// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package state

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"

	"github.com/cade16/cade/cpu"
)

// Snapshot is a point-in-time copy of a CPU's decoding working set,
// detached from the live CPU so it can be printed or rendered without
// racing a CPU that keeps stepping.
type Snapshot struct {
	Registers string
	Stage     string
	Skip      bool
	Inst      uint16

	OperandA string
	OperandB string

	LastAddress uint16
	LastOpcode  string
	LastCycles  int
	LastFinal   bool
	LastSkipped bool
	LastError   string
}

// Capture takes a snapshot of a CPU's current working set.
func Capture(c *cpu.CPU) Snapshot {
	result := c.LastResult
	return Snapshot{
		Registers: c.Regs.String(),
		Stage:     c.Stage().String(),
		Skip:      c.Skip(),
		Inst:      c.Inst(),

		OperandA: c.OperandA().String(),
		OperandB: c.OperandB().String(),

		LastAddress: result.Address,
		LastOpcode:  result.Opcode,
		LastCycles:  result.Cycles,
		LastFinal:   result.Final,
		LastSkipped: result.Skipped,
		LastError:   result.Error,
	}
}

// String renders the snapshot as a short plain text dump over four lines:
// scheduler state, registers, operand references, and the last result.
func (s Snapshot) String() string {
	return fmt.Sprintf("stage=%s skip=%v inst=%#04x\n%s\na=%s b=%s\nlast: addr=%#04x op=%s cycles=%d final=%v skipped=%v error=%q",
		s.Stage, s.Skip, s.Inst,
		s.Registers,
		s.OperandA, s.OperandB,
		s.LastAddress, s.LastOpcode, s.LastCycles, s.LastFinal, s.LastSkipped, s.LastError)
}

// Dump writes the plain text rendering of a CPU's current working set to
// output.
func Dump(output io.Writer, c *cpu.CPU) error {
	snap := Capture(c)
	_, err := io.WriteString(output, snap.String()+"\n")
	return err
}

// Graphviz writes a Graphviz DOT rendering of a CPU's current working set
// to output, suitable for piping into `dot -Tpng`.
func Graphviz(output io.Writer, c *cpu.CPU) {
	snap := Capture(c)
	memviz.Map(output, &snap)
}
