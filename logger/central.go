// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package logger

import (
	"io"
)

// only allowing one central log for the entire application. there's no need
// to allow more than one log.
var central = NewLogger(maxCentral)

// maximum number of entries in the central logger.
const maxCentral = 256

// Log adds an entry to the central logger.
func Log(perm Permission, tag string, detail interface{}) {
	central.Log(perm, tag, detail)
}

// Logf adds a formatted entry to the central logger.
func Logf(perm Permission, tag string, pattern string, args ...interface{}) {
	central.Logf(perm, tag, pattern, args...)
}

// Clear removes all entries from the central logger.
func Clear() {
	central.Clear()
}

// Write writes the contents of the central logger to output.
func Write(output io.Writer) bool {
	return central.Write(output)
}

// Tail writes the last number entries from the central logger to output.
func Tail(output io.Writer, number int) {
	central.Tail(output, number)
}
