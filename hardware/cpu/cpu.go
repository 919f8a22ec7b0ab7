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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65c02/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher65c02/hardware/preferences"
	"github.com/jetsetilly/gopher65c02/logger"
)

// Sentinal error patterns returned by ExecuteInstruction().
const (
	UnassignedOpcode = "cpu: unassigned opcode (%#02x) at %#04x"
	UnknownOperator  = "cpu: unknown operator (%s) for opcode %#02x"
)

// CPU implements the 65C02 microprocessor.
type CPU struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister

	mem   cpubus.Memory
	prefs *preferences.Preferences

	// the result of the most recently executed instruction
	LastResult execution.Result

	// the reason the CPU should not be asked to execute any more
	// instructions. reset to execution.Running at the start of every call
	// to ExecuteInstruction()
	Halted execution.HaltCondition

	// NoFlowControl sets whether the cpu responds accurately to instructions
	// that affect the flow of the program (branches, JSR, JMP, etc.). the
	// resolved address is still recorded in LastResult
	NoFlowControl bool

	// number of instructions and the number of nominal cycles consumed since
	// the last reset
	instructionCount int
	cycles           int
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// preferences argument can be nil in which case the defaults are assumed.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) *CPU {
	mc := &CPU{
		mem:   mem,
		prefs: prefs,
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status,
	)
}

// Reset puts every register, including the stack pointer and the status
// register, into the zero state. Memory is not touched.
func (mc *CPU) Reset() {
	mc.PC = registers.NewProgramCounter(0)
	mc.A = registers.NewRegister(0, "A")
	mc.X = registers.NewRegister(0, "X")
	mc.Y = registers.NewRegister(0, "Y")
	mc.SP = registers.NewStackPointer(0)
	mc.Status.Reset()

	mc.LastResult.Reset()
	mc.LastResult.Final = true
	mc.Halted = execution.Running
	mc.instructionCount = 0
	mc.cycles = 0
}

// InstructionCount returns the number of instructions executed since the
// last reset.
func (mc *CPU) InstructionCount() int {
	return mc.instructionCount
}

// Cycles returns the nominal number of cycles consumed since the last reset.
// Page crossing penalties are not counted.
func (mc *CPU) Cycles() int {
	return mc.cycles
}

// NilTrace can be used as an argument to ExecuteInstruction() when no
// per-instruction callback is required.
func NilTrace(_ execution.Result) error {
	return nil
}

// ExecuteInstruction steps CPU forward one instruction. The trace callback is
// called once the instruction has completed and can be nil.
func (mc *CPU) ExecuteInstruction(trace func(execution.Result) error) error {
	mc.Halted = execution.Running

	// the opcode fetch would carry the program counter past the top of the
	// address space
	if mc.PC.Address() == cpubus.Top {
		mc.Halted = execution.EndOfMemory
		return nil
	}

	// prepare new round of results
	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()

	opcode, err := mc.read8BitPC()
	if err != nil {
		mc.LastResult.Final = true
		return err
	}

	defn, ok := instructions.Lookup(opcode)
	if !ok {
		// even when there is an error we need to finalise LastResult. the
		// calling function might still want to make use of it (see the
		// disassembly package for an example of this)
		mc.LastResult.ByteCount = 1
		mc.LastResult.Final = true
		logger.Logf(logger.Allow, "cpu", "unassigned opcode (%#02x) at %#04x", opcode, mc.LastResult.Address)
		return curated.Errorf(UnassignedOpcode, opcode, mc.LastResult.Address)
	}
	mc.LastResult.Defn = defn

	// the operand fetch would also carry the program counter past the top of
	// the address space. the instruction is not executed and the program
	// counter is left pointing at the opcode
	if int(mc.LastResult.Address)+defn.Bytes > int(cpubus.Top) {
		mc.PC.Load(mc.LastResult.Address)
		mc.Halted = execution.EndOfMemory
		return nil
	}

	address, err := mc.resolve(defn)
	if err != nil {
		return err
	}

	// the value is read from memory for instructions that need it. for the
	// accumulator addressing mode the value is the accumulator itself
	var value uint8

	switch defn.Effect {
	case instructions.Read, instructions.RMW:
		switch defn.AddressingMode {
		case instructions.Implied:
		case instructions.Accumulator:
			value = mc.A.Value()
		default:
			value, err = mc.read8Bit(address)
			if err != nil {
				return err
			}
		}
	}

	err = mc.execute(defn, address, value)
	if err != nil {
		return err
	}

	// nominal cycle count. the additional cycle for a successful branch is
	// the only variation modelled
	mc.LastResult.Cycles = defn.Cycles
	if mc.LastResult.BranchSuccess {
		mc.LastResult.Cycles++
	}

	mc.LastResult.Final = true
	mc.instructionCount++
	mc.cycles += mc.LastResult.Cycles

	if trace != nil {
		return trace(mc.LastResult)
	}

	return nil
}

// setZeroSign sets the Zero and Sign flags according to the value in the
// register.
func (mc *CPU) setZeroSign(r registers.Register) {
	mc.Status.Zero = r.IsZero()
	mc.Status.Sign = r.IsNegative()
}

// writeBack stores the result of a read-modify-write instruction.
func (mc *CPU) writeBack(defn *instructions.Definition, address uint16, r registers.Register) error {
	if defn.AddressingMode == instructions.Accumulator {
		mc.A.Load(r.Value())
		return nil
	}
	return mc.write8Bit(address, r.Value())
}

func (mc *CPU) branch(flag bool, address uint16) {
	if !flag || mc.NoFlowControl {
		return
	}
	mc.LastResult.BranchSuccess = true
	mc.PC.Load(address)
}

// execute the operation of the instruction. the switch is exhaustive over
// the operators in the instructions package.
func (mc *CPU) execute(defn *instructions.Definition, address uint16, value uint8) error {
	switch defn.Operator {
	case instructions.NOP:
		// does nothing

	// status flags
	case instructions.CLC:
		mc.Status.Carry = false
	case instructions.SEC:
		mc.Status.Carry = true
	case instructions.CLD:
		mc.Status.DecimalMode = false
	case instructions.SED:
		mc.Status.DecimalMode = true
	case instructions.CLI:
		mc.Status.InterruptDisable = false
	case instructions.SEI:
		mc.Status.InterruptDisable = true
	case instructions.CLV:
		mc.Status.Overflow = false

	// loads
	case instructions.LDA:
		mc.A.Load(value)
		mc.setZeroSign(mc.A)
	case instructions.LDX:
		mc.X.Load(value)
		mc.setZeroSign(mc.X)
	case instructions.LDY:
		mc.Y.Load(value)
		mc.setZeroSign(mc.Y)

	// stores
	case instructions.STA:
		return mc.write8Bit(address, mc.A.Value())
	case instructions.STX:
		return mc.write8Bit(address, mc.X.Value())
	case instructions.STY:
		return mc.write8Bit(address, mc.Y.Value())
	case instructions.STZ:
		return mc.write8Bit(address, 0)

	// transfers
	case instructions.TAX:
		mc.X.Load(mc.A.Value())
		mc.setZeroSign(mc.X)
	case instructions.TAY:
		mc.Y.Load(mc.A.Value())
		mc.setZeroSign(mc.Y)
	case instructions.TXA:
		mc.A.Load(mc.X.Value())
		mc.setZeroSign(mc.A)
	case instructions.TYA:
		mc.A.Load(mc.Y.Value())
		mc.setZeroSign(mc.A)
	case instructions.TSX:
		mc.X.Load(mc.SP.Value())
		mc.setZeroSign(mc.X)
	case instructions.TXS:
		// TXS does not affect the status register
		mc.SP.Load(mc.X.Value())

	// arithmetic. decimal mode is not considered
	case instructions.ADC:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Add(value, mc.Status.Carry)
		mc.setZeroSign(mc.A)
	case instructions.SBC:
		mc.Status.Carry, mc.Status.Overflow = mc.A.Subtract(value, mc.Status.Carry)
		mc.setZeroSign(mc.A)

	// comparisons
	case instructions.CMP:
		mc.compare(mc.A, value)
	case instructions.CPX:
		mc.compare(mc.X, value)
	case instructions.CPY:
		mc.compare(mc.Y, value)

	// logical
	case instructions.AND:
		mc.A.AND(value)
		mc.setZeroSign(mc.A)
	case instructions.ORA:
		mc.A.ORA(value)
		mc.setZeroSign(mc.A)
	case instructions.EOR:
		mc.A.EOR(value)
		mc.setZeroSign(mc.A)

	case instructions.BIT:
		r := registers.NewAnonRegister(mc.A.Value())
		r.AND(value)
		mc.Status.Zero = r.IsZero()

		// the immediate form of BIT only affects the zero flag
		if defn.AddressingMode != instructions.Immediate {
			m := registers.NewAnonRegister(value)
			mc.Status.Sign = m.IsNegative()
			mc.Status.Overflow = m.IsBitV()
		}

	case instructions.TSB:
		r := registers.NewAnonRegister(value)
		r.ORA(mc.A.Value())
		mc.setZeroSign(r)
		return mc.writeBack(defn, address, r)
	case instructions.TRB:
		r := registers.NewAnonRegister(mc.A.Value())
		r.EOR(0xff)
		r.AND(value)
		mc.setZeroSign(r)
		return mc.writeBack(defn, address, r)

	// increment and decrement
	case instructions.INC:
		r := registers.NewAnonRegister(value)
		r.Add(1, false)
		mc.setZeroSign(r)
		return mc.writeBack(defn, address, r)
	case instructions.DEC:
		r := registers.NewAnonRegister(value)
		r.Subtract(1, true)
		mc.setZeroSign(r)
		return mc.writeBack(defn, address, r)
	case instructions.INX:
		mc.X.Add(1, false)
		mc.setZeroSign(mc.X)
	case instructions.INY:
		mc.Y.Add(1, false)
		mc.setZeroSign(mc.Y)
	case instructions.DEX:
		mc.X.Subtract(1, true)
		mc.setZeroSign(mc.X)
	case instructions.DEY:
		mc.Y.Subtract(1, true)
		mc.setZeroSign(mc.Y)

	// shifts and rotates
	case instructions.ASL:
		r := registers.NewAnonRegister(value)
		mc.Status.Carry = r.ASL()
		mc.setZeroSign(r)
		return mc.writeBack(defn, address, r)
	case instructions.LSR:
		r := registers.NewAnonRegister(value)
		mc.Status.Carry = r.LSR()
		mc.setZeroSign(r)
		return mc.writeBack(defn, address, r)
	case instructions.ROL:
		r := registers.NewAnonRegister(value)
		mc.Status.Carry = r.ROL(mc.Status.Carry)
		mc.setZeroSign(r)
		return mc.writeBack(defn, address, r)
	case instructions.ROR:
		r := registers.NewAnonRegister(value)
		mc.Status.Carry = r.ROR(mc.Status.Carry)
		mc.setZeroSign(r)
		return mc.writeBack(defn, address, r)

	// stack
	case instructions.PHA:
		return mc.push(mc.A.Value())
	case instructions.PHX:
		return mc.push(mc.X.Value())
	case instructions.PHY:
		return mc.push(mc.Y.Value())
	case instructions.PHP:
		return mc.push(mc.Status.PushValue())
	case instructions.PLA:
		return mc.pullRegister(&mc.A)
	case instructions.PLX:
		return mc.pullRegister(&mc.X)
	case instructions.PLY:
		return mc.pullRegister(&mc.Y)
	case instructions.PLP:
		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(v)

	// branches
	case instructions.BCC:
		mc.branch(!mc.Status.Carry, address)
	case instructions.BCS:
		mc.branch(mc.Status.Carry, address)
	case instructions.BEQ:
		mc.branch(mc.Status.Zero, address)
	case instructions.BNE:
		mc.branch(!mc.Status.Zero, address)
	case instructions.BMI:
		mc.branch(mc.Status.Sign, address)
	case instructions.BPL:
		mc.branch(!mc.Status.Sign, address)
	case instructions.BVC:
		mc.branch(!mc.Status.Overflow, address)
	case instructions.BVS:
		mc.branch(mc.Status.Overflow, address)
	case instructions.BRA:
		mc.branch(true, address)

	// flow control
	case instructions.JMP:
		if !mc.NoFlowControl {
			mc.PC.Load(address)
		}

	case instructions.JSR:
		if mc.NoFlowControl {
			return nil
		}

		// the address pushed is the address of the last byte of the JSR
		// instruction
		ret := mc.PC.Address() - 1
		err := mc.push(uint8(ret >> 8))
		if err != nil {
			return err
		}
		err = mc.push(uint8(ret))
		if err != nil {
			return err
		}
		mc.PC.Load(address)

	case instructions.RTS:
		if mc.NoFlowControl {
			return nil
		}

		ret, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Load(ret)
		mc.PC.Add(1)

	case instructions.RTI:
		if mc.NoFlowControl {
			return nil
		}

		v, err := mc.pull()
		if err != nil {
			return err
		}
		mc.Status.Load(v)

		ret, err := mc.pull16()
		if err != nil {
			return err
		}
		mc.PC.Load(ret)

	case instructions.BRK:
		if !mc.NoFlowControl {
			mc.Halted = execution.Break
		}

	default:
		return curated.Errorf(UnknownOperator, defn.Operator, defn.OpCode)
	}

	return nil
}

// compare the register with the value. the register is not changed.
func (mc *CPU) compare(reg registers.Register, value uint8) {
	r := registers.NewAnonRegister(reg.Value())
	mc.Status.Carry, _ = r.Subtract(value, true)
	mc.setZeroSign(r)
}
