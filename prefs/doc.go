// This file is part of Gopher65C02.
//
// Gopher65C02 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65C02 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65C02.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the storage of preferential values in the
// application. Preference values are typed (Bool, Int, String) and can be
// set from a Go value of the correct type or from a string. Hooks can be
// attached to each value, which are run before and after the value changes.
// An error from the pre-hook prevents the change.
//
// Values can be associated with a key and collected in a Disk instance,
// which can save and load the values to and from a file.
//
// The command line stack allows preference values to be specified on the
// command line, overriding the values found on disk. For example:
//
//	prefs.PushCommandLineStack("cpu.stackdiagnostics::true; machine.instructionlimit::1000")
//
// Values on the top of the stack are consumed when a preference with a
// matching key is added to a Disk.
package prefs
