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

package cpu

import (
	"github.com/jetsetilly/gopher65c02/hardware/cpu/instructions"
)

// resolve the effective address for the instruction's addressing mode,
// consuming operand bytes and advancing the PC as it goes. for immediate
// addressing the address is that of the operand byte. for relative
// addressing the address is the branch target. implied and accumulator
// addressing return zero.
//
// the result is also recorded in LastResult. the status register is never
// touched.
func (mc *CPU) resolve(defn *instructions.Definition) (uint16, error) {
	var address uint16

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		return 0, nil

	case instructions.Immediate:
		address = mc.PC.Address()
		if _, err := mc.read8BitPC(); err != nil {
			return 0, err
		}

	case instructions.Relative:
		offset, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}

		// the displacement is signed and is added to the PC after the
		// displacement byte has been consumed
		target := mc.PC
		target.AddSigned(offset)
		address = target.Address()

	case instructions.ZeroPage:
		zp, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		address = uint16(zp)

	case instructions.ZeroPageIndexedX:
		zp, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}

		// 8 bit addition. the index never carries into the stack page
		address = uint16(zp + mc.X.Value())

	case instructions.ZeroPageIndexedY:
		zp, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		address = uint16(zp + mc.Y.Value())

	case instructions.Absolute:
		v, err := mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		address = v

	case instructions.AbsoluteIndexedX:
		v, err := mc.read16BitPC()
		if err != nil {
			return 0, err
		}

		// the index is added to the assembled word. may cross a page
		address = v + mc.X.Address()

	case instructions.AbsoluteIndexedY:
		v, err := mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		address = v + mc.Y.Address()

	case instructions.IndexedIndirect:
		zp, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		address, err = mc.readZeroPagePointer(zp + mc.X.Value())
		if err != nil {
			return 0, err
		}

	case instructions.IndirectIndexed:
		zp, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		ptr, err := mc.readZeroPagePointer(zp)
		if err != nil {
			return 0, err
		}
		address = ptr + mc.Y.Address()

	case instructions.ZeroPageIndirect:
		zp, err := mc.read8BitPC()
		if err != nil {
			return 0, err
		}
		address, err = mc.readZeroPagePointer(zp)
		if err != nil {
			return 0, err
		}

	case instructions.AbsoluteIndirect:
		// the page boundary bug of the NMOS 6502 is fixed in the 65C02
		ptr, err := mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		address, err = mc.read16Bit(ptr)
		if err != nil {
			return 0, err
		}

	case instructions.AbsoluteIndexedIndirect:
		ptr, err := mc.read16BitPC()
		if err != nil {
			return 0, err
		}
		address, err = mc.read16Bit(ptr + mc.X.Address())
		if err != nil {
			return 0, err
		}
	}

	mc.LastResult.EffectiveAddress = address

	return address, nil
}
