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

// Package symbols helps keep track of address symbols. A symbols file is
// optional and sits alongside the program with the extension ".sym". Each
// line of the file is a symbol followed by a hexadecimal address:
//
//	start    0000
//	loop     0010
//	counter  0080
//
// Lines that cannot be parsed are ignored. The standard 65C02 symbols, the
// interrupt vectors and the stack page, are always present in a table
// created by ReadSymbolsFile().
package symbols
