// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package operand_test

import (
	"testing"

	"github.com/cade16/cade/memory"
	"github.com/cade16/cade/operand"
	"github.com/cade16/cade/registers"
)

func TestNeedsNextWord(t *testing.T) {
	yes := []uint16{0x10, 0x13, 0x17, 0x1E, 0x1F}
	no := []uint16{0x00, 0x07, 0x08, 0x18, 0x19, 0x1A, 0x1B, 0x1C, 0x1D, 0x20, 0x3F}

	for _, c := range yes {
		if !operand.NeedsNextWord(c) {
			t.Errorf("NeedsNextWord(%#02x) = false, want true", c)
		}
	}
	for _, c := range no {
		if operand.NeedsNextWord(c) {
			t.Errorf("NeedsNextWord(%#02x) = true, want false", c)
		}
	}
}

func TestResolveRegister(t *testing.T) {
	var regs registers.File
	regs.Set(registers.B, 0x42)

	ref := operand.Resolve(0x01, 0, &regs, &memory.Memory{})
	if got := ref.Read(); got != 0x42 {
		t.Errorf("Read() = %#04x, want 0x42", got)
	}

	ref.Write(0x99)
	if got := regs.Get(registers.B); got != 0x99 {
		t.Errorf("register B after write = %#04x, want 0x99", got)
	}
}

func TestResolveMemoryAtRegister(t *testing.T) {
	var regs registers.File
	var mem memory.Memory
	regs.Set(registers.A, 0x100)
	mem.Write(0x100, 0xABCD)

	ref := operand.Resolve(0x08, 0, &regs, &mem)
	if got := ref.Read(); got != 0xABCD {
		t.Errorf("Read() = %#04x, want 0xabcd", got)
	}
}

func TestResolveMemoryAtNextWordPlusRegister(t *testing.T) {
	var regs registers.File
	var mem memory.Memory
	regs.Set(registers.X, 5)
	mem.Write(0x105, 0x77)

	ref := operand.Resolve(0x13, 0x100, &regs, &mem)
	if got := ref.Read(); got != 0x77 {
		t.Errorf("Read() = %#04x, want 0x77", got)
	}
}

func TestResolvePushPopPeek(t *testing.T) {
	var regs registers.File
	var mem memory.Memory
	regs.SP.Load(0xFFFF)

	push := operand.Resolve(0x1A, 0, &regs, &mem)
	push.Write(0x55)
	if regs.SP.Value() != 0xFFFE {
		t.Errorf("SP after PUSH = %#04x, want 0xfffe", regs.SP.Value())
	}

	peek := operand.Resolve(0x19, 0, &regs, &mem)
	if got := peek.Read(); got != 0x55 {
		t.Errorf("PEEK Read() = %#04x, want 0x55", got)
	}
	if regs.SP.Value() != 0xFFFE {
		t.Errorf("SP after PEEK = %#04x, want unchanged 0xfffe", regs.SP.Value())
	}

	pop := operand.Resolve(0x18, 0, &regs, &mem)
	if got := pop.Read(); got != 0x55 {
		t.Errorf("POP Read() = %#04x, want 0x55", got)
	}
	if regs.SP.Value() != 0xFFFF {
		t.Errorf("SP after POP = %#04x, want 0xffff", regs.SP.Value())
	}
}

func TestResolveSpecialRegisters(t *testing.T) {
	var regs registers.File
	var mem memory.Memory
	regs.SP.Load(0x1111)
	regs.PC.Load(0x2222)
	regs.O.Load(0x3333)

	if got := operand.Resolve(0x1B, 0, &regs, &mem).Read(); got != 0x1111 {
		t.Errorf("SP ref = %#04x, want 0x1111", got)
	}
	if got := operand.Resolve(0x1C, 0, &regs, &mem).Read(); got != 0x2222 {
		t.Errorf("PC ref = %#04x, want 0x2222", got)
	}
	if got := operand.Resolve(0x1D, 0, &regs, &mem).Read(); got != 0x3333 {
		t.Errorf("O ref = %#04x, want 0x3333", got)
	}
}

func TestResolveMemoryAtNextWord(t *testing.T) {
	var regs registers.File
	var mem memory.Memory
	mem.Write(0x400, 0xCAFE)

	ref := operand.Resolve(0x1E, 0x400, &regs, &mem)
	if got := ref.Read(); got != 0xCAFE {
		t.Errorf("Read() = %#04x, want 0xcafe", got)
	}
}

func TestResolveNextWordLiteralIsReadOnly(t *testing.T) {
	var regs registers.File
	var mem memory.Memory

	ref := operand.Resolve(0x1F, 0x99, &regs, &mem)
	if got := ref.Read(); got != 0x99 {
		t.Errorf("Read() = %#04x, want 0x99", got)
	}
	ref.Write(0x12)
	if got := ref.Read(); got != 0x99 {
		t.Errorf("Read() after Write() = %#04x, want unchanged 0x99", got)
	}
	if ref.Writable() {
		t.Errorf("Writable() = true for a literal ref, want false")
	}
}

// A zero-value Ref - CPU.aRef/bRef before anything has resolved them, or
// after an instruction completes - must not dereference a nil regs/mem, and
// must read as absent.
func TestZeroRefIsAbsentAndSafe(t *testing.T) {
	var ref operand.Ref

	if got := ref.Read(); got != 0 {
		t.Errorf("Read() = %#04x, want 0", got)
	}
	if ref.Writable() {
		t.Errorf("Writable() = true for an absent ref, want false")
	}
	if got := ref.String(); got != "absent" {
		t.Errorf("String() = %q, want %q", got, "absent")
	}

	ref.Write(0x42) // must not panic

	if got := operand.Absent().String(); got != "absent" {
		t.Errorf("Absent().String() = %q, want %q", got, "absent")
	}
}

func TestResolveSmallLiteralIsReadOnly(t *testing.T) {
	var regs registers.File
	var mem memory.Memory

	for v := uint16(0); v <= 31; v++ {
		ref := operand.Resolve(0x20+v, 0, &regs, &mem)
		if got := ref.Read(); got != v {
			t.Errorf("Resolve(%#02x).Read() = %#04x, want %#04x", 0x20+v, got, v)
		}
		ref.Write(0xFFFF)
		if got := ref.Read(); got != v {
			t.Errorf("small literal mutated by Write(): got %#04x, want %#04x", got, v)
		}
	}
}
