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

// HaltCondition describes why the CPU stopped executing instructions.
type HaltCondition int

// List of valid HaltCondition values.
const (
	// the CPU has not halted
	Running HaltCondition = iota

	// a BRK instruction was executed
	Break

	// the program counter reached the top of memory
	EndOfMemory

	// the instruction limit for a single run was reached
	InstructionLimit
)

func (h HaltCondition) String() string {
	switch h {
	case Running:
		return "running"
	case Break:
		return "break"
	case EndOfMemory:
		return "end of memory"
	case InstructionLimit:
		return "instruction limit"
	}
	return "unknown halt condition"
}
