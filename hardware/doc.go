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

// Package hardware is the base package for the 65C02 machine emulation. It
// and its sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the machine sub-systems. From here, the emulation can
// be reset, loaded with a program and run.
//
//	m, _ := hardware.NewMachine(nil)
//	_ = m.LoadProgram([]byte{0xa9, 0x42, 0x00})
//	halt, _ := m.Run(nil)
//	fmt.Println(halt, m.A())
//
// The Run() function executes instructions until the CPU halts. The Step()
// function executes a single instruction. Both take an optional trace
// function that is called once per instruction with the result of that
// instruction.
package hardware
