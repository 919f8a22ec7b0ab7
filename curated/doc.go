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

// Package curated is a helper package for the plain Go language error type.
// Errors are created with Errorf(), which takes a pattern and placeholder
// values in the same way as fmt.Errorf(). The pattern is what identifies the
// error.
//
//	const UnassignedOpcode = "cpu: unassigned opcode (%#02x) at %#04x"
//
//	err := curated.Errorf(UnassignedOpcode, 0x02, 0x0100)
//
//	if curated.Is(err, UnassignedOpcode) {
//		fmt.Println("true")
//	}
//
// Has() is like Is() but searches the entire error chain. An error created
// with the pattern "machine: %v" and a wrapped UnassignedOpcode error will
// answer true to Has(err, UnassignedOpcode) but false to Is(err,
// UnassignedOpcode).
//
// IsAny() answers whether an error was created by Errorf() at all. We can
// think of curated errors as being expected and uncurated errors as being
// unexpected.
//
// The Error() implementation normalises the message chain by removing
// duplicate adjacent parts. Parts are separated by the sub-string ": ". So
// wrapping an error with "cpu: %v" when the wrapped error already begins with
// "cpu: " does not result in "cpu: cpu: ..."
//
// Sentinal patterns should be stored as exported constants in the package
// that creates the error.
package curated
