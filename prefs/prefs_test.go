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

package prefs_test

import (
	"fmt"
	"os"
	"path"
	"testing"

	"github.com/cade16/cade/curated"
	"github.com/cade16/cade/prefs"
	"github.com/cade16/cade/test"
)

func tmpPrefsFile(t *testing.T) string {
	t.Helper()
	return path.Join(os.TempDir(), fmt.Sprintf("cade_prefs_test_%d", os.Getpid()))
}

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.ExpectedSuccess(t, err)
	test.ExpectEquality(t, string(data), expected)
}

func TestDiskBool(t *testing.T) {
	fn := tmpPrefsFile(t)
	defer os.Remove(fn)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test", &v))
	test.ExpectedSuccess(t, dsk.Add("testB", &w))
	test.ExpectedSuccess(t, dsk.Add("testC", &x))

	test.ExpectedSuccess(t, v.Set(true))
	test.ExpectedSuccess(t, w.Set("foo"))
	test.ExpectedSuccess(t, x.Set("true"))

	test.ExpectedSuccess(t, dsk.Save())

	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestDiskString(t *testing.T) {
	fn := tmpPrefsFile(t)
	defer os.Remove(fn)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.String
	test.ExpectedSuccess(t, dsk.Add("foo", &v))
	test.ExpectedSuccess(t, v.Set("bar"))
	test.ExpectedSuccess(t, dsk.Save())

	cmpFile(t, fn, "foo :: bar\n")
}

func TestDiskInt(t *testing.T) {
	fn := tmpPrefsFile(t)
	defer os.Remove(fn)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v, w prefs.Int
	test.ExpectedSuccess(t, dsk.Add("number", &v))
	test.ExpectedSuccess(t, dsk.Add("numberB", &w))

	test.ExpectedSuccess(t, v.Set(10))
	test.ExpectedSuccess(t, w.Set("99"))
	test.ExpectedSuccess(t, dsk.Save())

	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectedFailure(t, v.Set("---"))
}

func TestDiskGeneric(t *testing.T) {
	fn := tmpPrefsFile(t)
	defer os.Remove(fn)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var w, h int

	v := prefs.NewGeneric(
		func(s prefs.Value) error {
			_, err := fmt.Sscanf(s.(string), "%d,%d", &w, &h)
			return err
		},
		func() prefs.Value {
			return fmt.Sprintf("%d,%d", w, h)
		},
	)

	test.ExpectedSuccess(t, dsk.Add("generic", v))

	w, h = 1, 2
	test.ExpectedSuccess(t, dsk.Save())
	cmpFile(t, fn, "generic :: 1,2\n")

	w, h = 0, 0
	test.ExpectedSuccess(t, dsk.Load(false))
	test.Equate(t, w, 1)
	test.Equate(t, h, 2)
}

func TestDiskLoadMissingFile(t *testing.T) {
	fn := tmpPrefsFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("test", &v))

	err = dsk.Load(false)
	test.ExpectedFailure(t, err)
	if !curated.Is(err, prefs.NoPrefsFile) {
		t.Errorf("expected a NoPrefsFile error, got: %v", err)
	}
}

func TestDiskLoadMerge(t *testing.T) {
	fn := tmpPrefsFile(t)
	defer os.Remove(fn)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Bool
	test.ExpectedSuccess(t, dsk.Add("cpu.logfetches", &v))
	test.ExpectedSuccess(t, v.Set(false))
	test.ExpectedSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("cpu.logfetches::true")
	defer prefs.PopCommandLineStack()

	test.ExpectedSuccess(t, dsk.Load(true))
	test.Equate(t, v.Get().(bool), true)
}

func TestDiskReset(t *testing.T) {
	fn := tmpPrefsFile(t)
	defer os.Remove(fn)

	dsk, err := prefs.NewDisk(fn)
	test.ExpectedSuccess(t, err)

	var v prefs.Int
	test.ExpectedSuccess(t, dsk.Add("number", &v))
	test.ExpectedSuccess(t, v.Set(42))
	test.ExpectedSuccess(t, dsk.Reset())
	test.Equate(t, v.Get().(int), 0)
}
