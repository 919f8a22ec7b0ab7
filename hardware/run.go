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
	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
)

// InstructionLimit is returned by Run() when the machine.instructionlimit
// preference is non-zero and the limit has been reached before the CPU
// halted.
const InstructionLimit = "machine: instruction limit (%d) reached"

// Run sets the emulation running as quickly as possible. Instructions are
// executed until the CPU halts, an error occurs or the instruction limit is
// reached. The trace function can be nil.
//
// A program that halted with BRK can be resumed by calling Run() again. The
// program continues from the instruction following the BRK.
func (m *Machine) Run(trace func(execution.Result) error) (execution.HaltCondition, error) {
	limit := m.Instance.Prefs.InstructionLimit.Get().(int)

	for n := 0; ; n++ {
		if limit > 0 && n >= limit {
			return execution.InstructionLimit, curated.Errorf(InstructionLimit, limit)
		}

		halt, err := m.Step(trace)
		if err != nil {
			return halt, err
		}

		if halt != execution.Running {
			return halt, nil
		}
	}
}

// Step the emulation forward one instruction. The trace function can be nil.
func (m *Machine) Step(trace func(execution.Result) error) (execution.HaltCondition, error) {
	err := m.CPU.ExecuteInstruction(trace)
	if err != nil {
		return m.CPU.Halted, curated.Errorf("machine: %v", err)
	}
	return m.CPU.Halted, nil
}
