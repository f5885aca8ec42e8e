// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

// Package operand resolves a 6 bit DCPU-16 operand code into a Ref: a
// tagged union standing in for the raw pointer the reference implementation
// hands out. A Ref is either a mutable location (a general register, SP, PC,
// O, or a memory cell) or a read-only immediate. Reading an immediate Ref
// returns its value; writing to one is a silent no-op, which is how the
// architecture's "writes to literal destinations are discarded" rule is
// realised without a shared scratch word.
package operand
