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

package statsview

import "sync/atomic"

// Address the dashboard listens on, when available.
const Address = "localhost:12600"

// cycles is the most recently reported emulator cycle count. It is updated
// by SetCycleCount from the stepping façade regardless of build tag, so
// callers don't need to guard the call behind the statsview tag themselves.
// Read back by the cycles handler registered in Launch.
var cycles int64

// SetCycleCount records the emulator's current cycle count for display.
func SetCycleCount(n int64) {
	atomic.StoreInt64(&cycles, n)
}

// CycleCount returns the most recently recorded cycle count.
func CycleCount() int64 {
	return atomic.LoadInt64(&cycles)
}
