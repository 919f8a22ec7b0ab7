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

// Package cpubus defines the interface the CPU uses to access memory, along
// with the fixed locations in the 65C02 address space.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. An error from either function indicates a fault in the memory
// implementation and will halt the CPU.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Debugger defines the operations for the memory system when accessed
// outside of the emulation. Peek and Poke have no side effects.
type Debugger interface {
	Peek(address uint16) uint8
	Poke(address uint16, value uint8)
}

// Fixed regions of the address space.
const (
	ZeroPage  = uint16(0x0000)
	StackPage = uint16(0x0100)
	Top       = uint16(0xffff)
)
