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

package cpu_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/hardware/cpu"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65c02/hardware/preferences"
	"github.com/jetsetilly/gopher65c02/test"
)

type mockMem struct {
	internal []uint8

	// reads from this address will fail. zero means no failure
	faultAddress uint16
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

var errMockFault = errors.New("mock memory fault")

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) Clear() {
	clear(mem.internal)
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if mem.faultAddress != 0 && address == mem.faultAddress {
		return 0, errMockFault
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func step(t *testing.T, mc *cpu.CPU) execution.Result {
	t.Helper()
	err := mc.ExecuteInstruction(cpu.NilTrace)
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
	return mc.LastResult
}

// run until the CPU halts. the limit prevents a broken test looping forever
func run(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	for range 10000 {
		step(t, mc)
		if mc.Halted != execution.Running {
			return
		}
	}
	t.Fatalf("cpu did not halt")
}

func newCPU() (*cpu.CPU, *mockMem) {
	mem := newMockMem()
	return cpu.NewCPU(nil, mem), mem
}

func TestScenarios(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$42; BRK
	mem.putInstructions(0, 0xa9, 0x42, 0x00)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)
	test.ExpectEquality(t, mc.Halted, execution.Break)

	// LDA #$0F; AND #$F0; BRK
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xa9, 0x0f, 0x29, 0xf0, 0x00)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)

	// LDA #$84; LSR A; BRK
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xa9, 0x84, 0x4a, 0x00)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectFailure(t, mc.Status.Carry)

	// LDA #$42; PHA; LDA #$00; PLA; BRK
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68, 0x00)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)

	// TSX; BRK
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xba, 0x00)
	run(t, mc)
	test.ExpectEquality(t, mc.X.Value(), mc.SP.Value())
	test.ExpectEquality(t, mc.X.Value(), 0x00)

	// LDA #$FF; STA $20; INC $20; BRK
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xa9, 0xff, 0x85, 0x20, 0xe6, 0x20, 0x00)
	run(t, mc)
	test.ExpectEquality(t, mem.internal[0x20], 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectEquality(t, mc.InstructionCount(), 4)
}

func TestEveryOpcode(t *testing.T) {
	mc, mem := newCPU()

	for _, defn := range instructions.Definitions {
		if defn == nil {
			continue
		}

		mem.Clear()
		mc.Reset()
		mc.SP.Load(0xff)
		mem.putInstructions(0x0200, defn.OpCode, 0x10, 0x00)
		mc.PC.Load(0x0200)

		err := mc.ExecuteInstruction(cpu.NilTrace)
		test.ExpectSuccess(t, err, defn)
		test.ExpectFailure(t, curated.Is(err, cpu.UnknownOperator), defn)
		test.ExpectSuccess(t, mc.LastResult.IsValid(), defn)
		test.ExpectEquality(t, mc.LastResult.ByteCount, defn.Bytes, defn)
		test.ExpectEquality(t, mc.InstructionCount(), 1, defn)
	}
}

func TestUnassignedOpcode(t *testing.T) {
	mc, mem := newCPU()

	for _, opcode := range []uint8{0x02, 0x03, 0x07, 0xcb, 0xdb, 0xff} {
		mem.Clear()
		mc.Reset()
		mem.putInstructions(0x0300, opcode)
		mc.PC.Load(0x0300)

		err := mc.ExecuteInstruction(cpu.NilTrace)
		test.ExpectSuccess(t, curated.Is(err, cpu.UnassignedOpcode), opcode)
		test.ExpectSuccess(t, mc.LastResult.Final, opcode)
		test.ExpectEquality(t, mc.LastResult.ByteCount, 1, opcode)
		test.ExpectEquality(t, mc.LastResult.Address, 0x0300, opcode)
		test.ExpectSuccess(t, mc.LastResult.Defn == nil, opcode)
		test.ExpectEquality(t, mc.InstructionCount(), 0, opcode)
	}
}

func TestEndOfMemory(t *testing.T) {
	mc, mem := newCPU()

	// NOP at the very top of memory is never executed
	mem.putInstructions(0xffff, 0xea)
	mc.PC.Load(0xffff)

	err := mc.ExecuteInstruction(cpu.NilTrace)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.Halted, execution.EndOfMemory)
	test.ExpectEquality(t, mc.PC.Address(), 0xffff)
	test.ExpectEquality(t, mc.InstructionCount(), 0)

	// a NOP just below the top of memory is executed and leaves the PC at
	// the top of memory
	mc.Reset()
	mem.putInstructions(0xfffe, 0xea)
	mc.PC.Load(0xfffe)
	step(t, mc)
	test.ExpectEquality(t, mc.Halted, execution.Running)
	test.ExpectEquality(t, mc.PC.Address(), 0xffff)
	err = mc.ExecuteInstruction(cpu.NilTrace)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.Halted, execution.EndOfMemory)
}

func TestEndOfMemoryOperand(t *testing.T) {
	mc, mem := newCPU()

	// LDA # just below the top of memory. the operand is in memory but the
	// fetch would carry the PC past the top
	mem.putInstructions(0xfffe, 0xa9, 0x42)
	mc.PC.Load(0xfffe)

	var traced bool
	err := mc.ExecuteInstruction(func(_ execution.Result) error {
		traced = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.Halted, execution.EndOfMemory)
	test.ExpectEquality(t, mc.PC.Address(), 0xfffe)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectEquality(t, mc.InstructionCount(), 0)
	test.ExpectFailure(t, traced)

	// JMP abs with its last operand byte at the top of memory
	mc.Reset()
	mem.putInstructions(0xfffd, 0x4c, 0x00, 0x02)
	mc.PC.Load(0xfffd)
	err = mc.ExecuteInstruction(cpu.NilTrace)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, mc.Halted, execution.EndOfMemory)
	test.ExpectEquality(t, mc.PC.Address(), 0xfffd)
}

func TestStatusInstructions(t *testing.T) {
	mc, mem := newCPU()
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")

	// SEC; CLC; CLI; SEI; SED; CLD; CLV
	origin := mem.putInstructions(0, 0x38, 0x18, 0x58, 0x78, 0xf8, 0xd8, 0xb8)
	step(t, mc) // SEC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizC")
	step(t, mc) // CLC
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // CLI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdizc")
	step(t, mc) // SEI
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	step(t, mc) // SED
	test.ExpectEquality(t, mc.Status.String(), "sv-bDIzc")
	step(t, mc) // CLD
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")
	mc.Status.Overflow = true
	step(t, mc) // CLV
	test.ExpectEquality(t, mc.Status.String(), "sv-bdIzc")

	// PHP; PLP
	mc.SP.Load(0xff)
	mem.putInstructions(origin, 0x08, 0x28)
	step(t, mc) // PHP
	test.ExpectEquality(t, mc.SP.Value(), 0xfe)

	// the break and unused bits are forced in the pushed value
	test.ExpectEquality(t, mem.internal[0x01ff], 0x34)

	// mangle status register
	mc.Status.Sign = true
	mc.Status.Overflow = true

	// PLP restores the raw byte
	step(t, mc) // PLP
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mc.Status.String(), "sv*BdIzc")
	test.ExpectEquality(t, mc.Status.Value(), 0x34)
}

func TestArithmetic(t *testing.T) {
	mc, mem := newCPU()

	// LDA #1; ADC #10; SEC; SBC #8
	mem.putInstructions(0, 0xa9, 1, 0x69, 10, 0x38, 0xe9, 8)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 11)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 3)
	test.ExpectSuccess(t, mc.Status.Carry)

	// LDA #$50; ADC #$50
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xa9, 0x50, 0x69, 0x50)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)

	// LDA #$ff; ADC #$01
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xa9, 0xff, 0x69, 0x01)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Overflow)

	// SEC; LDA #$50; SBC #$B0
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0x38, 0xa9, 0x50, 0xe9, 0xb0)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xa0)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectFailure(t, mc.Status.Carry)

	// CLC; LDA #$05; SBC #$03. carry clear means borrow
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0x18, 0xa9, 0x05, 0xe9, 0x03)
	step(t, mc)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectSuccess(t, mc.Status.Carry)
}

func TestCompare(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$10; CMP #$10; CMP #$20; CMP #$05
	mem.putInstructions(0, 0xa9, 0x10, 0xc9, 0x10, 0xc9, 0x20, 0xc9, 0x05)
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectSuccess(t, mc.Status.Sign)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Carry)

	// compare does not change the register
	test.ExpectEquality(t, mc.A.Value(), 0x10)

	// LDX #$80; CPX #$80; LDY #$01; CPY #$02
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xa2, 0x80, 0xe0, 0x80, 0xa0, 0x01, 0xc0, 0x02)
	step(t, mc)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectEquality(t, mc.Y.Value(), 0x01)
}

func TestBitwiseInstructions(t *testing.T) {
	mc, mem := newCPU()

	// ORA #$FF; EOR #$F0; AND #$01
	mem.putInstructions(0, 0x09, 0xff, 0x49, 0xf0, 0x29, 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	test.ExpectSuccess(t, mc.Status.Sign)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x0f)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)

	// ROL A; ROR A with carry in
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xa9, 0x81, 0x38, 0x2a, 0x6a, 0x0a)
	step(t, mc) // LDA #$81
	step(t, mc) // SEC
	step(t, mc) // ROL A
	test.ExpectEquality(t, mc.A.Value(), 0x03)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc) // ROR A
	test.ExpectEquality(t, mc.A.Value(), 0x81)
	test.ExpectSuccess(t, mc.Status.Carry)
	step(t, mc) // ASL A
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectSuccess(t, mc.Status.Carry)

	// ASL $20 (read-modify-write on memory)
	mem.Clear()
	mc.Reset()
	mem.internal[0x20] = 0x40
	mem.putInstructions(0, 0x06, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x20], 0x80)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Carry)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
}

func TestBIT(t *testing.T) {
	mc, mem := newCPU()

	// BIT #$C0 only affects the zero flag
	mem.putInstructions(0, 0x89, 0xc0)
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	test.ExpectFailure(t, mc.Status.Sign)
	test.ExpectFailure(t, mc.Status.Overflow)

	// LDA #$40; BIT $20
	mem.Clear()
	mc.Reset()
	mem.internal[0x20] = 0xc0
	mem.putInstructions(0, 0xa9, 0x40, 0x24, 0x20)
	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Sign)
	test.ExpectSuccess(t, mc.Status.Overflow)
	test.ExpectEquality(t, mc.A.Value(), 0x40)
}

func TestTestAndSetBits(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$0F; TSB $20
	mem.internal[0x20] = 0xf0
	mem.putInstructions(0, 0xa9, 0x0f, 0x04, 0x20)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x20], 0xff)
	test.ExpectEquality(t, mc.A.Value(), 0x0f)
	test.ExpectFailure(t, mc.Status.Zero)
	test.ExpectSuccess(t, mc.Status.Sign)

	// TRB $20
	mem.putInstructions(4, 0x14, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x20], 0xf0)
	test.ExpectEquality(t, mc.A.Value(), 0x0f)
	test.ExpectSuccess(t, mc.Status.Sign)

	// TRB $1234 clearing every bit
	mem.internal[0x1234] = 0x0f
	mem.putInstructions(6, 0x1c, 0x34, 0x12)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x1234], 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestIncrementDecrement(t *testing.T) {
	mc, mem := newCPU()

	// DEX; INY; DEC A; INC A; INC A
	mem.putInstructions(0, 0xca, 0xc8, 0x3a, 0x1a, 0x1a)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0xff)
	test.ExpectSuccess(t, mc.Status.Sign)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x01)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xff)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)

	// DEC $20
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0xc6, 0x20)
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x20], 0xff)
	test.ExpectSuccess(t, mc.Status.Sign)
}

func TestStoreInstructions(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$11; LDX #$22; LDY #$33; STA $10; STX $11; STY $12; STZ $10
	mem.putInstructions(0, 0xa9, 0x11, 0xa2, 0x22, 0xa0, 0x33,
		0x85, 0x10, 0x86, 0x11, 0x84, 0x12, 0x64, 0x10)
	for range 6 {
		step(t, mc)
	}
	test.ExpectEquality(t, mem.internal[0x10], 0x11)
	test.ExpectEquality(t, mem.internal[0x11], 0x22)
	test.ExpectEquality(t, mem.internal[0x12], 0x33)

	// stores do not affect the status register
	status := mc.Status.Value()
	step(t, mc)
	test.ExpectEquality(t, mem.internal[0x10], 0x00)
	test.ExpectEquality(t, mc.Status.Value(), status)
}

func TestTransfers(t *testing.T) {
	mc, mem := newCPU()

	// LDA #$80; TAX; TAY; LDA #$00; TXA; TYA; LDX #$00; TXS
	mem.putInstructions(0, 0xa9, 0x80, 0xaa, 0xa8, 0xa9, 0x00, 0x8a, 0x98, 0xa2, 0x00, 0x9a)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x80)
	test.ExpectSuccess(t, mc.Status.Sign)
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x80)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x80)

	// TXS does not affect the flags
	mc.SP.Load(0x55)
	step(t, mc) // LDX #$00
	test.ExpectSuccess(t, mc.Status.Zero)
	mc.Status.Zero = false
	step(t, mc) // TXS
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	test.ExpectFailure(t, mc.Status.Zero)
}

func TestStackInstructions(t *testing.T) {
	mc, mem := newCPU()
	mc.SP.Load(0xff)

	// LDX #$01; LDY #$02; PHX; PHY; PLX; PLY
	mem.putInstructions(0, 0xa2, 0x01, 0xa0, 0x02, 0xda, 0x5a, 0xfa, 0x7a)
	for range 4 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mem.internal[0x01ff], 0x01)
	test.ExpectEquality(t, mem.internal[0x01fe], 0x02)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x02)
	test.ExpectEquality(t, mc.Y.Value(), 0x01)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	// PLA sets the zero flag
	mem.putInstructions(8, 0xa9, 0x00, 0x48, 0xa9, 0x01, 0x68)
	for range 4 {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A.Value(), 0x00)
	test.ExpectSuccess(t, mc.Status.Zero)
}

func TestStackWrap(t *testing.T) {
	// without preferences the wrap is silent
	mc, mem := newCPU()
	mem.putInstructions(0, 0xa9, 0x99, 0x48, 0x68)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
	test.ExpectEquality(t, mem.internal[0x0100], 0x99)
	test.ExpectFailure(t, r.StackWrap)
	r = step(t, mc)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	test.ExpectFailure(t, r.StackWrap)

	// with stack diagnostics the wrap is noted in the result
	prefs, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, prefs.StackDiagnostics.Set(true))

	mc = cpu.NewCPU(prefs, mem)
	r = step(t, mc)
	test.ExpectFailure(t, r.StackWrap)
	r = step(t, mc)
	test.ExpectSuccess(t, r.StackWrap)
	r = step(t, mc)
	test.ExpectSuccess(t, r.StackWrap)
	test.ExpectEquality(t, mc.A.Value(), 0x99)
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU()
	mc.SP.Load(0xff)

	// JSR $0010; BRK
	mem.putInstructions(0, 0x20, 0x10, 0x00, 0x00)

	// LDA #$01; RTS
	mem.putInstructions(0x10, 0xa9, 0x01, 0x60)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0010)
	test.ExpectEquality(t, mc.SP.Value(), 0xfd)
	test.ExpectEquality(t, mem.internal[0x01ff], 0x00)
	test.ExpectEquality(t, mem.internal[0x01fe], 0x02)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0003)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)

	step(t, mc)
	test.ExpectEquality(t, mc.Halted, execution.Break)
	test.ExpectEquality(t, mc.A.Value(), 0x01)

	// BRK leaves the PC one past the opcode
	test.ExpectEquality(t, mc.PC.Address(), 0x0004)
}

func TestRTI(t *testing.T) {
	mc, mem := newCPU()

	// interrupt frame: status, PC low, PC high
	mc.SP.Load(0xfc)
	mem.internal[0x01fd] = 0xc3
	mem.internal[0x01fe] = 0x34
	mem.internal[0x01ff] = 0x12
	mem.putInstructions(0, 0x40)

	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)
	test.ExpectEquality(t, mc.Status.Value(), 0xc3)
	test.ExpectEquality(t, mc.SP.Value(), 0xff)
}

func TestJumps(t *testing.T) {
	mc, mem := newCPU()

	// JMP $1234
	mem.putInstructions(0, 0x4c, 0x34, 0x12)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x1234)

	// JMP ($10FF). no page boundary bug
	mem.internal[0x10ff] = 0x78
	mem.internal[0x1100] = 0x56
	mem.internal[0x1000] = 0xee
	mem.putInstructions(0x1234, 0x6c, 0xff, 0x10)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x5678)

	// LDX #$02; JMP ($2000,X)
	mem.internal[0x2002] = 0xcd
	mem.internal[0x2003] = 0xab
	mem.putInstructions(0x5678, 0xa2, 0x02, 0x7c, 0x00, 0x20)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0xabcd)
}

func TestBranching(t *testing.T) {
	mc, mem := newCPU()

	// LDX #3; DEX; BNE -3; BRK
	mem.putInstructions(0, 0xa2, 0x03, 0xca, 0xd0, 0xfd, 0x00)
	run(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x00)
	test.ExpectEquality(t, mc.InstructionCount(), 8)

	// 2 (LDX) + 3 * 2 (DEX) + 2 * 3 (BNE taken) + 2 (BNE not taken) + 7 (BRK)
	test.ExpectEquality(t, mc.Cycles(), 23)

	// BRA forward
	mem.Clear()
	mc.Reset()
	mem.putInstructions(0, 0x80, 0x02, 0xa9, 0x01, 0xa9, 0x02, 0x00)
	r := step(t, mc)
	test.ExpectSuccess(t, r.BranchSuccess)
	test.ExpectEquality(t, r.EffectiveAddress, 0x0004)
	run(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x02)

	// each conditional branch against the status register
	branches := []struct {
		opcode uint8
		status uint8
		taken  bool
	}{
		{0x90, 0x00, true},  // BCC
		{0x90, 0x01, false}, // BCC
		{0xb0, 0x01, true},  // BCS
		{0xf0, 0x02, true},  // BEQ
		{0xd0, 0x02, false}, // BNE
		{0x30, 0x80, true},  // BMI
		{0x10, 0x80, false}, // BPL
		{0x50, 0x00, true},  // BVC
		{0x70, 0x40, true},  // BVS
		{0x70, 0x00, false}, // BVS
	}

	for _, b := range branches {
		mem.Clear()
		mc.Reset()
		mc.Status.Load(b.status)
		mem.putInstructions(0x80, b.opcode, 0x80)
		mc.PC.Load(0x80)
		r := step(t, mc)
		test.ExpectEquality(t, r.BranchSuccess, b.taken, b.opcode)
		if b.taken {
			test.ExpectEquality(t, mc.PC.Address(), 0x0002, b.opcode)
		} else {
			test.ExpectEquality(t, mc.PC.Address(), 0x0082, b.opcode)
		}
	}
}

func TestAddressingModes(t *testing.T) {
	mc, mem := newCPU()

	// LDX #$10; LDA $F8,X. the zero page index wraps within the zero page
	mem.internal[0x0008] = 0x77
	mem.internal[0x0108] = 0x11
	mem.putInstructions(0x0200, 0xa2, 0x10, 0xb5, 0xf8)
	mc.PC.Load(0x0200)
	step(t, mc)
	r := step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x77)
	test.ExpectEquality(t, r.EffectiveAddress, 0x0008)

	// LDY #$20; LDA $10F0,Y. absolute indexing crosses the page
	mem.internal[0x1110] = 0x42
	mem.putInstructions(0x0204, 0xa0, 0x20, 0xb9, 0xf0, 0x10)
	step(t, mc)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	test.ExpectEquality(t, r.EffectiveAddress, 0x1110)
	test.ExpectEquality(t, r.InstructionData, 0x10f0)

	// LDX #$FF; LDA ($01,X). pointer at $00
	mem.Clear()
	mc.Reset()
	mem.internal[0x0000] = 0x00
	mem.internal[0x0001] = 0x30
	mem.internal[0x3000] = 0x5a
	mem.putInstructions(0x0200, 0xa2, 0xff, 0xa1, 0x01)
	mc.PC.Load(0x0200)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x5a)

	// LDY #$01; LDA ($FF),Y. the pointer high byte comes from $00
	mem.Clear()
	mc.Reset()
	mem.internal[0x00ff] = 0x00
	mem.internal[0x0000] = 0x40
	mem.internal[0x4001] = 0xa5
	mem.putInstructions(0x0200, 0xa0, 0x01, 0xb1, 0xff)
	mc.PC.Load(0x0200)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xa5)

	// LDA ($40)
	mem.Clear()
	mc.Reset()
	mem.internal[0x0040] = 0x21
	mem.internal[0x0041] = 0x43
	mem.internal[0x4321] = 0x66
	mem.putInstructions(0x0200, 0xb2, 0x40)
	mc.PC.Load(0x0200)
	r = step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x66)
	test.ExpectEquality(t, r.EffectiveAddress, 0x4321)

	// LDY #$05; LDX $FE,Y
	mem.Clear()
	mc.Reset()
	mem.internal[0x0003] = 0x12
	mem.putInstructions(0x0200, 0xa0, 0x05, 0xb6, 0xfe)
	mc.PC.Load(0x0200)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x12)
}

func TestReset(t *testing.T) {
	mc, mem := newCPU()
	mem.putInstructions(0, 0xa9, 0x42, 0xa2, 0x01, 0x38)
	run(t, mc)

	mc.Reset()
	once := mc.String()
	test.ExpectEquality(t, mc.InstructionCount(), 0)
	test.ExpectEquality(t, mc.Cycles(), 0)
	test.ExpectEquality(t, mc.Halted, execution.Running)

	mc.Reset()
	test.ExpectEquality(t, mc.String(), once)
	test.ExpectEquality(t, mc.String(), "PC=0x0000 A=0x00 X=0x00 Y=0x00 SP=0x00 SR=sv-bdizc")

	// memory is not touched by a reset
	test.ExpectEquality(t, mem.internal[0x0001], 0x42)
}

func TestTrace(t *testing.T) {
	mc, mem := newCPU()
	mem.putInstructions(0, 0xa9, 0x42, 0xea, 0x00)

	var results []execution.Result
	trace := func(r execution.Result) error {
		results = append(results, r)
		return nil
	}

	for mc.Halted == execution.Running {
		test.DemandSuccess(t, mc.ExecuteInstruction(trace))
	}

	test.DemandEquality(t, len(results), 3)
	test.ExpectEquality(t, results[0].Defn.Operator, instructions.LDA)
	test.ExpectEquality(t, results[0].String(), "0000  a9 42     LDA #$42")
	test.ExpectEquality(t, results[1].Defn.Operator, instructions.NOP)
	test.ExpectEquality(t, results[2].Defn.Operator, instructions.BRK)

	// an error from the trace function is returned by ExecuteInstruction()
	mc.Reset()
	errTrace := errors.New("trace error")
	err := mc.ExecuteInstruction(func(_ execution.Result) error {
		return errTrace
	})
	test.ExpectSuccess(t, errors.Is(err, errTrace))
}

func TestMemoryFault(t *testing.T) {
	mc, mem := newCPU()
	mem.faultAddress = 0x1234

	// LDA $1234
	mem.putInstructions(0, 0xad, 0x34, 0x12)
	err := mc.ExecuteInstruction(cpu.NilTrace)
	test.ExpectSuccess(t, errors.Is(err, errMockFault))
	test.ExpectEquality(t, mc.InstructionCount(), 0)
}

func TestNoFlowControl(t *testing.T) {
	mc, mem := newCPU()
	mc.NoFlowControl = true

	// JMP $1234; BEQ +2; JSR $5678; BRK
	mem.putInstructions(0, 0x4c, 0x34, 0x12, 0xf0, 0x02, 0x20, 0x78, 0x56, 0x00)
	mc.Status.Zero = true

	r := step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0003)
	test.ExpectEquality(t, r.EffectiveAddress, 0x1234)
	r = step(t, mc)
	test.ExpectFailure(t, r.BranchSuccess)
	test.ExpectEquality(t, mc.PC.Address(), 0x0005)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x0008)
	test.ExpectEquality(t, mc.SP.Value(), 0x00)
	step(t, mc)
	test.ExpectEquality(t, mc.Halted, execution.Running)
}
