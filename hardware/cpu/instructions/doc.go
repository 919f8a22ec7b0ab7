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

// Package instructions defines the instruction set of the 65C02. The
// Definitions table is indexed by opcode and is generated from the
// instructions.csv file in the generator directory. Run "go generate" in
// this package after changing the CSV file.
//
// Each Definition names the Operator, the AddressingMode, the number of
// bytes occupied by the instruction, the nominal cycle count and the broad
// Category of the instruction's effect.
package instructions
