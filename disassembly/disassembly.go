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

package disassembly

import (
	"fmt"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/hardware/cpu"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/hardware/memory"
	"github.com/jetsetilly/gopher65c02/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher65c02/logger"
	"github.com/jetsetilly/gopher65c02/programloader"
	"github.com/jetsetilly/gopher65c02/symbols"
)

// Sentinal error patterns.
const (
	DisasmError = "disassembly: %v"
)

// Disassembly represents the annotated disassembly of a 65C02 program.
type Disassembly struct {
	// symbols used to label the disassembly
	Symtable *symbols.Table

	// entries in address order
	Entries []*Entry

	// indexed by address
	reference map[uint16]*Entry
}

// FromProgram disassembles the program in the loader. The program is placed
// at the origin address. Symbols are taken from the symbols file of the
// program if it exists.
func FromProgram(loader programloader.Loader, origin uint16) (*Disassembly, error) {
	if !loader.HasLoaded() {
		err := loader.Load()
		if err != nil {
			return nil, curated.Errorf(DisasmError, err)
		}
	}

	// ignore errors caused by loading of symbols table. we always get a
	// standard symbols table even in the event of an error
	symtable, _ := symbols.ReadSymbolsFile(loader.Filename)

	mem := memory.NewRAM()
	err := mem.Load(loader.Data, origin)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	dsm, err := FromMemory(mem, symtable, origin, len(loader.Data))
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "disassembly", "%s: %d entries", loader.ShortName(), len(dsm.Entries))

	return dsm, nil
}

// FromMemory disassembles length bytes of memory starting at the origin
// address using a CPU with no flow control. The memory is not altered.
//
// The symtable argument can be nil.
func FromMemory(mem cpubus.Debugger, symtable *symbols.Table, origin uint16, length int) (*Disassembly, error) {
	if symtable == nil {
		symtable = symbols.NewTable()
	}

	dsm := &Disassembly{
		Symtable:  symtable,
		reference: make(map[uint16]*Entry),
	}

	// create a new NoFlowControl CPU to help disassemble memory
	dm := newDisasmMemory(mem)
	mc := cpu.NewCPU(nil, dm)
	mc.NoFlowControl = true
	mc.PC.Load(origin)

	err := dsm.decode(mc, dm, origin, length)
	if err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	dsm.label()

	return dsm, nil
}

func (dsm *Disassembly) decode(mc *cpu.CPU, dm *disasmMemory, origin uint16, length int) error {
	end := int(origin) + length

	for int(mc.PC.Address()) < end {
		err := mc.ExecuteInstruction(cpu.NilTrace)
		if err != nil && !curated.Is(err, cpu.UnassignedOpcode) {
			return err
		}

		if mc.Halted == execution.EndOfMemory {
			break // for loop
		}

		e := &Entry{Result: mc.LastResult}
		if e.Result.Defn == nil {
			e.opcode = dm.data[e.Result.Address]
		}
		dsm.Entries = append(dsm.Entries, e)
		dsm.reference[e.Result.Address] = e

		// the address has wrapped around after an instruction that ended at
		// the top of memory
		if mc.PC.Address() < e.Result.Address {
			break // for loop
		}
	}

	return nil
}

// label entries that are referred to by other entries and entries that have
// an entry in the symbols table.
func (dsm *Disassembly) label() {
	for _, e := range dsm.Entries {
		if s, ok := dsm.Symtable.Get(e.Result.Address); ok {
			e.Label = s
		}
	}

	for _, e := range dsm.Entries {
		address, ok := e.flowTarget()
		if !ok {
			continue // for loop
		}

		if t, ok := dsm.reference[address]; ok {
			if t.Label == "" {
				t.Label = fmt.Sprintf("L%04x", address)
			}
			e.Target = t.Label
		} else if s, ok := dsm.Symtable.Get(address); ok {
			e.Target = s
		}
	}
}

// GetEntryByAddress returns the disassembly entry at the specified address.
func (dsm *Disassembly) GetEntryByAddress(address uint16) (*Entry, bool) {
	e, ok := dsm.reference[address]
	return e, ok
}
