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

package hardware

import (
	"fmt"

	"github.com/jetsetilly/gopher65c02/hardware/cpu"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65c02/hardware/instance"
	"github.com/jetsetilly/gopher65c02/hardware/memory"
	"github.com/jetsetilly/gopher65c02/logger"
)

// Machine struct is the main container for the emulated components.
type Machine struct {
	Instance *instance.Instance

	CPU *cpu.CPU
	Mem *memory.RAM
}

// NewMachine creates a new machine and everything associated with the
// hardware. The instance argument can be nil in which case a new instance
// with default preferences is created.
func NewMachine(ins *instance.Instance) (*Machine, error) {
	if ins == nil {
		var err error
		ins, err = instance.NewInstance(instance.Main, nil)
		if err != nil {
			return nil, err
		}
	}

	m := &Machine{
		Instance: ins,
		Mem:      memory.NewRAM(),
	}

	m.CPU = cpu.NewCPU(ins.Prefs, m.Mem)

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Reset puts the CPU into a known state. Memory is not cleared.
func (m *Machine) Reset() {
	m.CPU.Reset()
	logger.Log(logger.Allow, "machine", "reset")
}

// LoadProgram copies the program into memory starting at address zero. A
// program that is larger than the address space is rejected before any
// byte is copied. The CPU is not reset.
func (m *Machine) LoadProgram(program []byte) error {
	err := m.Mem.Load(program, 0)
	if err != nil {
		return err
	}
	logger.Logf(logger.Allow, "machine", "loaded %d bytes", len(program))
	return nil
}

// A returns the value of the accumulator.
func (m *Machine) A() uint8 {
	return m.CPU.A.Value()
}

// X returns the value of the X index register.
func (m *Machine) X() uint8 {
	return m.CPU.X.Value()
}

// Y returns the value of the Y index register.
func (m *Machine) Y() uint8 {
	return m.CPU.Y.Value()
}

// SP returns the value of the stack pointer.
func (m *Machine) SP() uint8 {
	return m.CPU.SP.Value()
}

// PC returns the value of the program counter.
func (m *Machine) PC() uint16 {
	return m.CPU.PC.Address()
}

// Status returns the packed value of the status register.
func (m *Machine) Status() uint8 {
	return m.CPU.Status.Value()
}

// Flags returns a copy of the status register.
func (m *Machine) Flags() registers.StatusRegister {
	return m.CPU.Status
}

// Peek returns the value at the memory address without side effects.
func (m *Machine) Peek(address uint16) uint8 {
	return m.Mem.Peek(address)
}

// Poke sets the value at the memory address without side effects.
func (m *Machine) Poke(address uint16, value uint8) {
	m.Mem.Poke(address, value)
}

// InstructionCount returns the number of instructions executed since the
// last reset.
func (m *Machine) InstructionCount() int {
	return m.CPU.InstructionCount()
}

// Cycles returns the nominal number of cycles consumed since the last reset.
func (m *Machine) Cycles() int {
	return m.CPU.Cycles()
}

// Halted returns the halt condition of the most recent instruction.
func (m *Machine) Halted() execution.HaltCondition {
	return m.CPU.Halted
}

// Summary returns a multi-line description of the machine state, suitable
// for printing at the end of a run.
func (m *Machine) Summary() string {
	return fmt.Sprintf("%s\ninstructions=%d cycles=%d halt=%s",
		m.CPU, m.InstructionCount(), m.Cycles(), m.Halted())
}
