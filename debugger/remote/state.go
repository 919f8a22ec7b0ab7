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

package remote

import (
	"github.com/jetsetilly/gopher65c02/hardware"
	"google.golang.org/protobuf/types/known/structpb"
)

// State is the state of the remote machine after a Step, Run or Registers
// request.
type State struct {
	PC     uint16
	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	Status uint8

	Instructions int
	Cycles       int

	// the halt condition of the most recent instruction
	Halt string

	// the most recent instruction executed. empty if no instruction has
	// been executed since the last reset
	Last string
}

func stateFromMachine(m *hardware.Machine) State {
	s := State{
		PC:           m.PC(),
		A:            m.A(),
		X:            m.X(),
		Y:            m.Y(),
		SP:           m.SP(),
		Status:       m.Status(),
		Instructions: m.InstructionCount(),
		Cycles:       m.Cycles(),
		Halt:         m.Halted().String(),
	}
	if m.CPU.LastResult.Defn != nil {
		s.Last = m.CPU.LastResult.String()
	}
	return s
}

func (s State) toStruct() (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"pc":           int(s.PC),
		"a":            int(s.A),
		"x":            int(s.X),
		"y":            int(s.Y),
		"sp":           int(s.SP),
		"status":       int(s.Status),
		"instructions": s.Instructions,
		"cycles":       s.Cycles,
		"halt":         s.Halt,
		"last":         s.Last,
	})
}

func stateFromStruct(st *structpb.Struct) State {
	f := st.GetFields()
	num := func(key string) float64 {
		return f[key].GetNumberValue()
	}
	return State{
		PC:           uint16(num("pc")),
		A:            uint8(num("a")),
		X:            uint8(num("x")),
		Y:            uint8(num("y")),
		SP:           uint8(num("sp")),
		Status:       uint8(num("status")),
		Instructions: int(num("instructions")),
		Cycles:       int(num("cycles")),
		Halt:         f["halt"].GetStringValue(),
		Last:         f["last"].GetStringValue(),
	}
}
