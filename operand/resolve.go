// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package operand

import (
	"github.com/cade16/cade/memory"
	"github.com/cade16/cade/registers"
)

// Operand code ranges, per the DCPU-16 operand encoding.
const (
	codeRegisterLo     = 0x00
	codeRegisterHi     = 0x07
	codeMemRegisterLo  = 0x08
	codeMemRegisterHi  = 0x0F
	codeMemNextPlusRLo = 0x10
	codeMemNextPlusRHi = 0x17
	codePOP            = 0x18
	codePEEK           = 0x19
	codePUSH           = 0x1A
	codeSP             = 0x1B
	codePC             = 0x1C
	codeO              = 0x1D
	codeMemNextWord    = 0x1E
	codeNextWordLit    = 0x1F
	codeLiteralLo      = 0x20
	codeLiteralHi      = 0x3F
)

// NeedsNextWord reports whether resolving code requires consuming an extra
// program word (and, per §4.4, the one extra cycle that goes with it).
func NeedsNextWord(code uint16) bool {
	switch {
	case code >= codeMemNextPlusRLo && code <= codeMemNextPlusRHi:
		return true
	case code == codeMemNextWord:
		return true
	case code == codeNextWordLit:
		return true
	}
	return false
}

// Resolve turns a 6 bit operand code into a Ref. nextWord is only consulted
// for codes that NeedsNextWord reports true for; callers must supply it
// having already read and consumed the program word at PC.
func Resolve(code uint16, nextWord uint16, regs *registers.File, mem memory.Bus) Ref {
	switch {
	case code >= codeRegisterLo && code <= codeRegisterHi:
		return Register(regs, registers.Name(code))

	case code >= codeMemRegisterLo && code <= codeMemRegisterHi:
		reg := registers.Name(code - codeMemRegisterLo)
		return Memory(mem, regs.Get(reg))

	case code >= codeMemNextPlusRLo && code <= codeMemNextPlusRHi:
		reg := registers.Name(code - codeMemNextPlusRLo)
		return Memory(mem, nextWord+regs.Get(reg))

	case code == codePOP:
		return Memory(mem, regs.SP.Pop())

	case code == codePEEK:
		return Memory(mem, regs.SP.Value())

	case code == codePUSH:
		return Memory(mem, regs.SP.Push())

	case code == codeSP:
		return SP(regs)

	case code == codePC:
		return PC(regs)

	case code == codeO:
		return O(regs)

	case code == codeMemNextWord:
		return Memory(mem, nextWord)

	case code == codeNextWordLit:
		return Immediate(nextWord)

	case code >= codeLiteralLo && code <= codeLiteralHi:
		return Immediate(code - codeLiteralLo)
	}

	// unreachable for any value in 0x00-0x3F, the full range of the 6 bit
	// operand field, but return a harmless immediate rather than panicking.
	return Immediate(0)
}
