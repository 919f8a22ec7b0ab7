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

package disassembly

import (
	"github.com/jetsetilly/gopher65c02/hardware/memory"
	"github.com/jetsetilly/gopher65c02/hardware/memory/cpubus"
)

// disasmMemory is a copy of the memory being disassembled. Writes are
// ignored so that the act of disassembly does not change what is being
// disassembled.
type disasmMemory struct {
	data [memory.Size]uint8
}

func newDisasmMemory(mem cpubus.Debugger) *disasmMemory {
	dm := &disasmMemory{}
	for i := range dm.data {
		dm.data[i] = mem.Peek(uint16(i))
	}
	return dm
}

func (dm *disasmMemory) Read(address uint16) (uint8, error) {
	return dm.data[address], nil
}

func (dm *disasmMemory) Write(_ uint16, _ uint8) error {
	return nil
}
