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

package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Ticks is a source of a monotonic count that Random can use to vary its
// seed within a single emulator run. The emulator's cycle counter satisfies
// this interface.
type Ticks interface {
	Count() int64
}

// Random is a random number generator that is sensitive to the number of
// elapsed clock cycles of the emulation it is attached to. Used by the
// optional random-fill-on-reset preference so that repeated resets of the
// same instance don't produce the same memory contents.
type Random struct {
	ticks Ticks

	// use zero seed rather than the random base seed. this is only really
	// useful for normalised instances where random numbers must be
	// predictable, such as in regression tests.
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
// ticks may be nil if no tick source exists yet; attach one later with
// Attach once it does.
func NewRandom(ticks Ticks) *Random {
	return &Random{
		ticks: ticks,
	}
}

// Attach replaces the tick source. Used when the Random is created before
// the object that will supply ticks, e.g. an instance.Instance created
// before the Emulator that owns the cycle counter.
func (rnd *Random) Attach(ticks Ticks) {
	rnd.ticks = ticks
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	var t int64
	if rnd.ticks != nil {
		t = rnd.ticks.Count()
	}
	if rnd.ZeroSeed {
		return rand.New(rand.NewSource(t))
	}
	return rand.New(rand.NewSource(baseSeed + t))
}

// Intn returns, as an int, a non-negative random number in [0,n).
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}
