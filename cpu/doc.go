// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

// Package cpu implements the DCPU-16 decode/execute core as an explicit,
// single-cycle state machine. A CPU's Cycle method advances the machine by
// exactly one clock cycle, dispatching between fetch, skip, operand
// resolution and opcode execution sub-stages, so that a caller can observe
// or halt the machine between any two cycles.
//
// Everything outside this package - register and memory getters, the
// stepping facade, state pretty-printing - talks to a CPU only through its
// exported methods and fields (see cpu.go, stepping.go, inspect.go and
// stage.go).
package cpu
