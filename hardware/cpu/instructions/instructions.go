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

//go:generate go run ./generator

// Category is used to indicate the nature of the instruction's effect.
type Category int

// List of valid Category values.
const (
	Read Category = iota
	Write
	RMW

	// flow consists of the branch and JMP instructions. branch instructions
	// can be distinguished by the Relative addressing mode
	Flow

	Subroutine
	Interrupt
)

func (c Category) String() string {
	switch c {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown category"
}

// GoString is used by the generator when writing the definitions table.
func (c Category) GoString() string {
	return fmt.Sprintf("instructions.%s", c.String())
}

// Definition defines each instruction in the instruction set.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Bytes          int
	Cycles         int
	AddressingMode AddressingMode
	PageSensitive  bool
	Effect         Category
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes, defn.Cycles, defn.AddressingMode, defn.PageSensitive, defn.Effect)
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// Lookup returns the definition for an opcode. The boolean is false for an
// unassigned opcode.
func Lookup(opcode uint8) (*Definition, bool) {
	defn := Definitions[opcode]
	return defn, defn != nil
}
