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

package symbols

import (
	"github.com/jetsetilly/gopher65c02/hardware/memory/cpubus"
)

// the symbols that are present in every table created by ReadSymbolsFile()
var standardSymbols = map[uint16]string{
	cpubus.StackPage: "STACK",
	0xfffa:           "NMI_VECTOR",
	0xfffc:           "RESET_VECTOR",
	0xfffe:           "IRQ_VECTOR",
}

// StandardSymbolTable initialises a symbols table with the standard 65C02
// symbols.
func StandardSymbolTable() *Table {
	t := NewTable()
	for a, s := range standardSymbols {
		t.Add(a, s, false)
	}
	return t
}
