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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher65c02/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65c02/test"
)

func TestDefinitionsTable(t *testing.T) {
	var count int
	for i, defn := range instructions.Definitions {
		if defn == nil {
			continue
		}
		count++

		// table is indexed by opcode
		test.ExpectEquality(t, defn.OpCode, uint8(i))

		// bytes is a function of the addressing mode
		test.ExpectEquality(t, defn.Bytes, defn.AddressingMode.Bytes(), defn.Operator)

		test.ExpectInequality(t, defn.Operator, instructions.NoOperator)
		test.ExpectSuccess(t, defn.Cycles >= 2, defn.Operator)
	}
	test.ExpectEquality(t, count, 178)
}

func TestLookup(t *testing.T) {
	defn, ok := instructions.Lookup(0xa9)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Operator, instructions.LDA)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Immediate)
	test.ExpectEquality(t, defn.Bytes, 2)

	defn, ok = instructions.Lookup(0x80)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.Operator, instructions.BRA)
	test.ExpectSuccess(t, defn.IsBranch())

	defn, ok = instructions.Lookup(0x7c)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, defn.AddressingMode, instructions.AbsoluteIndexedIndirect)

	// unassigned opcodes
	for _, op := range []uint8{0x02, 0x03, 0x07, 0xcb, 0xdb, 0xff} {
		_, ok = instructions.Lookup(op)
		test.ExpectFailure(t, ok)
	}
}

func TestStackAndBitInstructions(t *testing.T) {
	ops := map[uint8]instructions.Operator{
		0x48: instructions.PHA, 0x08: instructions.PHP,
		0xda: instructions.PHX, 0x5a: instructions.PHY,
		0x68: instructions.PLA, 0x28: instructions.PLP,
		0xfa: instructions.PLX, 0x7a: instructions.PLY,
		0xba: instructions.TSX, 0x9a: instructions.TXS,
		0x04: instructions.TSB, 0x0c: instructions.TSB,
		0x14: instructions.TRB, 0x1c: instructions.TRB,
		0x64: instructions.STZ, 0x74: instructions.STZ,
		0x9c: instructions.STZ, 0x9e: instructions.STZ,
	}
	for op, operator := range ops {
		defn, ok := instructions.Lookup(op)
		if test.ExpectSuccess(t, ok, op) {
			test.ExpectEquality(t, defn.Operator, operator, op)
		}
	}
}

func TestOperatorNames(t *testing.T) {
	test.ExpectEquality(t, instructions.LDA.String(), "LDA")
	test.ExpectEquality(t, instructions.TYA.String(), "TYA")
	test.ExpectEquality(t, instructions.NoOperator.String(), "???")
	test.ExpectEquality(t, instructions.Operator(1000).String(), "???")

	op, ok := instructions.ParseOperator("STZ")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, op, instructions.STZ)

	_, ok = instructions.ParseOperator("???")
	test.ExpectFailure(t, ok)
}

func TestAddressingModeBytes(t *testing.T) {
	test.ExpectEquality(t, instructions.Implied.Bytes(), 1)
	test.ExpectEquality(t, instructions.Accumulator.Bytes(), 1)
	test.ExpectEquality(t, instructions.Relative.Bytes(), 2)
	test.ExpectEquality(t, instructions.ZeroPageIndirect.Bytes(), 2)
	test.ExpectEquality(t, instructions.AbsoluteIndirect.Bytes(), 3)
	test.ExpectSuccess(t, instructions.ZeroPageIndexedY.IsZeroPage())
	test.ExpectFailure(t, instructions.IndexedIndirect.IsZeroPage())
}
