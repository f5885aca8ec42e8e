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
//
// *** NOTE: all historical versions of this file, as found in any
// git repository, are also covered by the licence, even when this
// notice is not present ***

package paths

import (
	"os"
	"path"
)

// the base path for all resources. note that we don't use this value directly
// except in the getBasePath() function. that function should be used instead.
const baseResourcePath = ".cade"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with operating system specific details, creating any
// missing directories along the way.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := make([]string, 0, len(resource)+1)
	p = append(p, base)
	p = append(p, resource...)

	return path.Join(p...), nil
}

// getBasePath returns baseResourcePath if it is a directory in the current
// directory. Otherwise it returns the user's config directory (see
// os.UserConfigDir) joined with baseResourcePath minus its leading dot,
// creating that directory if necessary.
//
// note that we're not checking for the existence of the resource requested
// by the caller, only of 'baseResourcePath' itself.
func getBasePath() (string, error) {
	if info, err := os.Stat(baseResourcePath); err == nil && info.IsDir() {
		return baseResourcePath, nil
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath, nil
	}

	p := path.Join(home, baseResourcePath[1:])
	if err := os.MkdirAll(p, 0o700); err != nil {
		return "", err
	}
	return p, nil
}
