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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher65c02/hardware/cpu/instructions"
)

// Operand returns the operand of the instruction formatted in the
// conventional assembler style for the addressing mode. Relative operands
// are shown as the branch target.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		return ""
	case instructions.Accumulator:
		return "A"
	case instructions.Immediate:
		return fmt.Sprintf("#$%02x", r.InstructionData)
	case instructions.Relative:
		return fmt.Sprintf("$%04x", r.EffectiveAddress)
	case instructions.ZeroPage:
		return fmt.Sprintf("$%02x", r.InstructionData)
	case instructions.ZeroPageIndexedX:
		return fmt.Sprintf("$%02x,X", r.InstructionData)
	case instructions.ZeroPageIndexedY:
		return fmt.Sprintf("$%02x,Y", r.InstructionData)
	case instructions.Absolute:
		return fmt.Sprintf("$%04x", r.InstructionData)
	case instructions.AbsoluteIndexedX:
		return fmt.Sprintf("$%04x,X", r.InstructionData)
	case instructions.AbsoluteIndexedY:
		return fmt.Sprintf("$%04x,Y", r.InstructionData)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("($%02x,X)", r.InstructionData)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("($%02x),Y", r.InstructionData)
	case instructions.ZeroPageIndirect:
		return fmt.Sprintf("($%02x)", r.InstructionData)
	case instructions.AbsoluteIndirect:
		return fmt.Sprintf("($%04x)", r.InstructionData)
	case instructions.AbsoluteIndexedIndirect:
		return fmt.Sprintf("($%04x,X)", r.InstructionData)
	}

	return ""
}

// Bytes returns the instruction bytes as a space separated hex string.
func (r Result) Bytes() string {
	if r.Defn == nil {
		return ""
	}

	s := []string{fmt.Sprintf("%02x", r.Defn.OpCode)}
	switch r.Defn.Bytes {
	case 2:
		s = append(s, fmt.Sprintf("%02x", r.InstructionData&0xff))
	case 3:
		s = append(s, fmt.Sprintf("%02x", r.InstructionData&0xff))
		s = append(s, fmt.Sprintf("%02x", r.InstructionData>>8))
	}

	return strings.Join(s, " ")
}

func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%04x  ??        ???", r.Address)
	}

	s := fmt.Sprintf("%04x  %-8s  %s", r.Address, r.Bytes(), r.Defn.Operator)
	if op := r.Operand(); op != "" {
		s = fmt.Sprintf("%s %s", s, op)
	}

	return s
}
