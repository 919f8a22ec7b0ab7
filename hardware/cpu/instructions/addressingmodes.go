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

package instructions

import "fmt"

// AddressingMode describes the method data for the instruction should be
// received.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	ZeroPage         // zp
	ZeroPageIndexedX // zp,X
	ZeroPageIndexedY // zp,Y

	Absolute         // abs
	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	IndexedIndirect  // (zp,X)
	IndirectIndexed  // (zp),Y
	ZeroPageIndirect // (zp)

	// JMP only
	AbsoluteIndirect        // (abs)
	AbsoluteIndexedIndirect // (abs,X)
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case ZeroPage:
		return "ZeroPage"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	case Absolute:
		return "Absolute"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case ZeroPageIndirect:
		return "ZeroPageIndirect"
	case AbsoluteIndirect:
		return "AbsoluteIndirect"
	case AbsoluteIndexedIndirect:
		return "AbsoluteIndexedIndirect"
	}
	return "unknown addressing mode"
}

// GoString is used by the generator when writing the definitions table.
func (m AddressingMode) GoString() string {
	return fmt.Sprintf("instructions.%s", m.String())
}

// Bytes returns the number of bytes an instruction using the addressing
// mode occupies, including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Absolute, AbsoluteIndexedX, AbsoluteIndexedY, AbsoluteIndirect, AbsoluteIndexedIndirect:
		return 3
	}
	return 2
}

// IsZeroPage returns true if the effective address of the mode is always in
// page zero.
func (m AddressingMode) IsZeroPage() bool {
	return m == ZeroPage || m == ZeroPageIndexedX || m == ZeroPageIndexedY
}
