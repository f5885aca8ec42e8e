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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cade16/cade/curated"
)

// DefaultPrefsFile is the filename (relative to the resource path) that a
// Disk is conventionally created with.
const DefaultPrefsFile = "prefs"

// NoPrefsFile is the curated error pattern returned by Load() when the
// backing file does not exist.
const NoPrefsFile = "prefs: no prefs file (%s)"

// separator between key and value in the persisted file.
const sep = " :: "

// Disk associates named preference values with a backing file, and knows
// how to load and save them.
type Disk struct {
	path string

	// keys preserves insertion order; entries mirrors it by key.
	keys    []string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. It
// does not load or save anything; use Add() to register values and then
// Load()/Save() to synchronise with the backing file.
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, curated.Errorf("prefs: disk path cannot be empty")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Add registers a preference value under key. Subsequent Load()/Save()
// calls will read/write this value.
func (d *Disk) Add(key string, v pref) error {
	if v == nil {
		return curated.Errorf("prefs: cannot add nil preference for %s", key)
	}
	if _, ok := d.entries[key]; !ok {
		d.keys = append(d.keys, key)
	}
	d.entries[key] = v
	return nil
}

// String returns every registered preference as "key :: value" lines.
func (d *Disk) String() string {
	s := strings.Builder{}
	for _, k := range d.keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, sep, d.entries[k].String()))
	}
	return s.String()
}

// Reset every registered preference to its zero value.
func (d *Disk) Reset() error {
	for _, k := range d.keys {
		if err := d.entries[k].Reset(); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	return nil
}

// Load reads the backing file and applies values to every registered
// preference named in it. Unrecognised and defunct keys are ignored.
//
// If merge is true, any value pushed onto the command line stack (see
// PushCommandLineStack) for a registered key overrides the value loaded
// from disk for that key.
func (d *Disk) Load(merge bool) error {
	f, err := os.Open(d.path)
	if err != nil {
		if os.IsNotExist(err) {
			return curated.Errorf(NoPrefsFile, d.path)
		}
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, sep, 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := parts[1]

		if isDefunct(key) {
			continue
		}

		p, ok := d.entries[key]
		if !ok {
			continue
		}
		if err := p.Set(val); err != nil {
			return curated.Errorf("prefs: %v", err)
		}
	}
	if err := sc.Err(); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	if merge {
		for _, key := range d.keys {
			if ok, v := GetCommandLinePref(key); ok {
				if err := d.entries[key].Set(v); err != nil {
					return curated.Errorf("prefs: %v", err)
				}
			}
		}
	}

	return nil
}

// Save writes every registered preference to the backing file.
func (d *Disk) Save() error {
	f, err := os.Create(d.path)
	if err != nil {
		return curated.Errorf("prefs: %v", err)
	}
	defer f.Close()

	if _, err := f.WriteString(d.String()); err != nil {
		return curated.Errorf("prefs: %v", err)
	}

	return nil
}
