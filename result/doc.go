// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

// Package result holds the interesting information from a single CPU step:
// the instruction's address, decoded opcode name, length, cycle count and
// completion/skip state. It is built up incrementally by the cpu package as
// an instruction's cycles are consumed and is read by the state package and
// the CLI for diagnostics; it plays no part in the architectural semantics.
package result
