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

// Package cpu emulates the 65C02 microprocessor. Like all 8-bit processors of
// the era, the 65C02 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction table. The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface. An
// instance of memory.RAM is the usual choice.
//
// The bread-and-butter of the CPU type is the ExecuteInstruction() function.
// Its sole argument is a callback function to be called once the instruction
// has completed. The callback is given a copy of the LastResult field.
//
//	mc := cpu.NewCPU(nil, mem)
//
//	for mc.Halted == execution.Running {
//		err := mc.ExecuteInstruction(func(r execution.Result) error {
//			fmt.Println(r)
//			return nil
//		})
//		if err != nil {
//			return err
//		}
//	}
//
// An opcode with no definition in the instruction table causes
// ExecuteInstruction() to return a curated error with the UnassignedOpcode
// pattern. LastResult is still finalised in that case so that the caller can
// report where the problem occurred.
//
// The Halted field records why execution should stop. The BRK instruction
// sets it to execution.Break. An instruction whose fetch would carry the
// program counter past the top of memory is not executed and sets it to
// execution.EndOfMemory. Neither of these are errors.
//
// The NoFlowControl flag is used by the disassembly package to prevent the
// CPU from honouring "flow control" instructions (ie. JMP, BNE, JSR, BRK,
// etc.). See the instructions package for classifications.
package cpu
