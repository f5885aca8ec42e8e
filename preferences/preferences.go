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

package preferences

import (
	"github.com/cade16/cade/curated"
	"github.com/cade16/cade/paths"
	"github.com/cade16/cade/prefs"
)

// Preferences collates all the preference values used by the emulator.
type Preferences struct {
	dsk *prefs.Disk

	// TraceVerbosity is a persisted trace detail level. It is stored and
	// loaded with the other preferences; the state printer does not read it.
	TraceVerbosity prefs.Int

	// LogFetches is a persisted flag, set by the run command's --trace flag.
	// It is stored and loaded with the other preferences; StepUntilStuck
	// does not read it and logs nothing for fetched instructions.
	LogFetches prefs.Bool

	// RandomFillOnReset, when true, fills registers and memory with
	// pseudo-random values on Reset instead of zeroing them. Default off,
	// so the deterministic reset semantics of the core hold unless a caller
	// opts in; useful for fuzzing stuck-loop detection.
	RandomFillOnReset prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. It loads existing values from disk, ignoring a missing
// preferences file.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{}

	pth, err := paths.ResourcePath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("emulator.traceverbosity", &p.TraceVerbosity); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("emulator.logfetches", &p.LogFetches); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("emulator.randomfillonreset", &p.RandomFillOnReset); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults resets every preference value to its default (zero) value
// without touching the file on disk.
func (p *Preferences) SetDefaults() {
	_ = p.TraceVerbosity.Set(0)
	_ = p.LogFetches.Set(false)
	_ = p.RandomFillOnReset.Set(false)
}

// Reset restores every preference to its default and rewrites the disk
// file accordingly.
func (p *Preferences) Reset() error {
	if err := p.dsk.Reset(); err != nil {
		return err
	}
	return p.dsk.Save()
}

// Load re-reads preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save writes the current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
