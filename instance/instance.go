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

package instance

import (
	"github.com/cade16/cade/preferences"
	"github.com/cade16/cade/random"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the core, but are not the core itself.
type Instance struct {
	Random *random.Random

	// Prefs are the preferences of the running instance. Can be shared with
	// other running instances.
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance
// type. prefs may be nil, in which case a fresh Preferences value is
// created and loaded from disk.
func NewInstance(prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Random: random.NewRandom(nil),
	}

	if prefs == nil {
		var err error
		prefs, err = preferences.NewPreferences()
		if err != nil {
			return nil, err
		}
	}
	ins.Prefs = prefs

	return ins, nil
}

// Normalise puts the instance into a known, deterministic state. Useful for
// regression tests, where repeated runs must be bit-for-bit identical.
func (ins *Instance) Normalise() {
	ins.Random.ZeroSeed = true
	ins.Prefs.SetDefaults()
}
