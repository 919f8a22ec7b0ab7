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

// Package script runs Lua test scripts against a Machine. Scripts are
// executed with "github.com/yuin/gopher-lua" and have access to the
// following functions:
//
//	load(table|string)  load a program. a string is hex text
//	loadfile(filename)  load a program from a file
//	reset()             reset the CPU
//	run()               run until the CPU halts. returns the halt condition
//	step()              execute one instruction. returns the halt condition
//	reg(name)           value of register A, X, Y, SP, PC or SR
//	flag(name)          value of flag N, V, U, B, D, I, Z or C
//	peek(addr)          value in memory
//	poke(addr, v...)    set consecutive values in memory starting at addr
//	count()             number of instructions executed since reset
//	cycles()            nominal number of cycles since reset
//	expect(got, want [, msg])
//
// The expect() function stops the script if got and want are not equal. The
// error returned by Run() or RunFile() in that case is an ExpectationFailed
// error.
//
// An example script:
//
//	load({0xa9, 0x50, 0x69, 0x50, 0x00})
//	expect(run(), "break")
//	expect(reg("A"), 0xa0, "sum")
//	expect(flag("V"), true, "overflow")
package script
