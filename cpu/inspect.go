// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package cpu

import "github.com/cade16/cade/operand"

// Inst returns the instruction word currently being decoded, or 0 between
// instructions.
func (c *CPU) Inst() uint16 {
	return c.inst
}

// Skip reports whether a skip is pending - the next fetch will discard an
// instruction rather than decode it.
func (c *CPU) Skip() bool {
	return c.skip
}

// OperandA returns the operand reference resolved for the current
// instruction's A field, if resolution has reached that far.
func (c *CPU) OperandA() operand.Ref {
	return c.aRef
}

// OperandB returns the operand reference resolved for the current
// instruction's B field. Always the zero Ref for extended instructions,
// which have no B operand.
func (c *CPU) OperandB() operand.Ref {
	return c.bRef
}
