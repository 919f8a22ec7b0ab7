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
	"github.com/jetsetilly/gopher65c02/hardware/cpu/instructions"
)

// Result records the state/result of each instruction executed on the CPU.
// Including the address it was read from, a reference to the instruction
// definition, and other execution details.
//
// The Result type is updated every cycle during the execution of the
// instruction. The Final field indicates that all information is valid.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// a reference to the instruction definition. nil if the opcode is
	// unassigned
	Defn *instructions.Definition

	// the number of bytes read during instruction decode
	ByteCount int

	// the operand as read from memory. for relative addressing this is the
	// unsigned offset. for two byte operands it is the little-endian word
	InstructionData uint16

	// the address resolved by the addressing mode. for branch instructions
	// this is the branch target whether or not the branch is taken
	EffectiveAddress uint16

	// nominal number of cycles taken by the instruction. branch
	// instructions take an additional cycle when the branch succeeds
	Cycles int

	// whether a branch instruction's condition was met
	BranchSuccess bool

	// whether the stack pointer wrapped around the stack page
	StackWrap bool

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
