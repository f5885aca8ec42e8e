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

// Package preferences collates the persisted, non-architectural preference
// values of the emulator: trace verbosity, a log-fetches flag, and an opt-in
// random-fill-on-reset mode. Of these, only RandomFillOnReset is read by the
// core (in cpu.CPU.Reset); the other two are stored and loaded but have no
// effect on the core or the state printer.
//
// None of these affect the deterministic reset semantics mandated by the
// core (spec.md §5) unless a caller explicitly opts in to RandomFillOnReset.
package preferences
