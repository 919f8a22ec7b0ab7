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
	"fmt"

	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/instructions"
)

// Entry is a disassambled instruction. The Result field is the result of
// executing the instruction with a NoFlowControl CPU.
type Entry struct {
	Result execution.Result

	// the label for the address of the entry. empty if the address is not
	// referenced by any other entry and has no symbol
	Label string

	// the label of the address the instruction refers to. only set for
	// branch, JMP and JSR instructions with a labelled target
	Target string

	// the byte read from memory when the opcode is unassigned
	opcode uint8
}

func (e Entry) String() string {
	return e.Result.String()
}

// Mnemonic returns the operator of the instruction or "???" if the opcode is
// unassigned.
func (e Entry) Mnemonic() string {
	if e.Result.Defn == nil {
		return "???"
	}
	return e.Result.Defn.Operator.String()
}

// Operand returns the operand of the instruction. The Target label is used in
// preference to a numeric address when it is available.
func (e Entry) Operand() string {
	if e.Target != "" {
		return e.Target
	}
	return e.Result.Operand()
}

// Bytes returns the instruction bytes. Unassigned opcodes show the single
// byte that was read.
func (e Entry) Bytes() string {
	if e.Result.Defn == nil {
		return fmt.Sprintf("%02x", e.opcode)
	}
	return e.Result.Bytes()
}

// the address referred to by the instruction if it changes the flow of
// execution. returns false if the instruction does not change flow or if the
// target is not known without executing the instruction
func (e Entry) flowTarget() (uint16, bool) {
	defn := e.Result.Defn
	if defn == nil {
		return 0, false
	}

	if defn.IsBranch() {
		return e.Result.EffectiveAddress, true
	}

	switch defn.Operator {
	case instructions.JMP, instructions.JSR:
		if defn.AddressingMode == instructions.Absolute {
			return e.Result.InstructionData, true
		}
	}

	return 0, false
}
