// Copyright (c) cade contributors.
// Licensed under the MIT license. See LICENSE for details.

package main

import (
	"encoding/binary"
	"os"

	"github.com/cade16/cade/curated"
)

// loadProgram reads a raw binary of little-endian 16-bit words, the
// convention spec.md uses for loaded programs.
func loadProgram(path string) ([]uint16, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf("cannot read program file: %v", err)
	}
	if len(raw)%2 != 0 {
		return nil, curated.Errorf("program file %s has an odd number of bytes", path)
	}

	words := make([]uint16, len(raw)/2)
	for i := range words {
		words[i] = binary.LittleEndian.Uint16(raw[i*2 : i*2+2])
	}
	return words, nil
}
