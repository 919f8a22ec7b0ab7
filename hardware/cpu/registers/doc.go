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

// Package registers implements the three types of registers found in the
// 65C02. Register is used for the accumulator and the X and Y index
// registers. ProgramCounter is the 16 bit PC. StackPointer is an 8 bit
// register that knows how to form an address in the stack page.
//
// StatusRegister holds the processor flags as explicit booleans. The Value()
// and Load() functions convert to and from the packed byte, which is the
// form used by the PHP and PLP instructions and by the Status() accessor of
// the machine.
//
// The Register type implements the arithmetic and logical operations of the
// CPU. Flag side effects are the responsibility of the caller. Functions
// that can produce a carry or overflow return them.
package registers
