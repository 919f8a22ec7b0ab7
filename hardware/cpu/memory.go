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

// read8Bit returns the 8 bit value from the specified address.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

// read16Bit returns the 16 bit little-endian value from the specified
// address. the address of the high byte wraps at the top of memory.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// readZeroPagePointer returns the 16 bit value at the zero page address. the
// high byte is read from the next zero page address, wrapping from 0xff to
// 0x00. the pointer never leaves the zero page.
func (mc *CPU) readZeroPagePointer(zp uint8) (uint16, error) {
	lo, err := mc.mem.Read(uint16(zp))
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(uint16(zp + 1))
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read8BitPC reads 8 bits from the memory location pointed to by PC. the PC
// is advanced and the byte is added to the instruction data as appropriate.
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return 0, err
	}

	// the PC wraps at the top of memory
	mc.PC.Add(1)

	// bump the number of bytes read during instruction decode
	mc.LastResult.ByteCount++

	// the first byte is the opcode and is not part of the instruction data
	switch mc.LastResult.ByteCount {
	case 2:
		mc.LastResult.InstructionData = uint16(v)
	case 3:
		mc.LastResult.InstructionData |= uint16(v) << 8
	}

	return v, nil
}

// read16BitPC reads a little-endian 16 bit value from the memory location
// pointed to by PC.
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}
