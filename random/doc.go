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

// Package random should be used in preference to the math/rand package
// whenever a random number is required inside the emulator, specifically by
// the optional random-fill-on-reset preference.
//
// Random.Intn() returns numbers seeded from the attached Ticks source (the
// emulator's elapsed cycle count) so that two instances at the same point in
// a run produce the same sequence.
//
// If the same random numbers are required every single time then set
// ZeroSeed to true. This is useful for testing purposes.
package random
