// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

// Package state renders a CPU's decoding working set - registers, the
// scheduler's current stage, the in-flight operand references - as plain
// text or as a Graphviz graph. It is an external collaborator: nothing in
// the core depends on it, and it plays no part in architectural semantics.
package state
