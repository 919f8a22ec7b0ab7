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

// Package disassembly produces the disassembly of a 65C02 program.
//
// Disassembly is performed by a CPU with the NoFlowControl flag set. The
// instructions are executed linearly from the start of the program, in a
// copy of memory that ignores writes, and the execution.Result of each
// instruction is stored as an Entry.
//
// For quick disassemblies the FromProgram() function can be used. Debuggers
// will find it more useful to disassemble from the memory of an already
// instantiated machine with FromMemory().
//
// Unassigned opcodes do not stop the disassembly. They are recorded as a one
// byte Entry with a nil instruction definition.
package disassembly
