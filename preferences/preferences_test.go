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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cade16/cade/preferences"
)

func TestNewPreferencesDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := preferences.NewPreferences()
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}

	if p.RandomFillOnReset.Get().(bool) {
		t.Errorf("RandomFillOnReset default = true, want false")
	}
	if p.LogFetches.Get().(bool) {
		t.Errorf("LogFetches default = true, want false")
	}
	if p.TraceVerbosity.Get().(int) != 0 {
		t.Errorf("TraceVerbosity default = %v, want 0", p.TraceVerbosity.Get())
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	p, err := preferences.NewPreferences()
	if err != nil {
		t.Fatalf("NewPreferences() error = %v", err)
	}

	if err := p.RandomFillOnReset.Set(true); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := p.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(dir, ".cade", "*"))
	if err != nil {
		t.Fatalf("Glob() error = %v", err)
	}
	if len(matches) == 0 {
		t.Fatalf("expected a preferences file to have been written under %s", dir)
	}

	q, err := preferences.NewPreferences()
	if err != nil {
		t.Fatalf("second NewPreferences() error = %v", err)
	}
	if !q.RandomFillOnReset.Get().(bool) {
		t.Errorf("RandomFillOnReset after reload = false, want true")
	}

	_ = os.RemoveAll(dir)
}
