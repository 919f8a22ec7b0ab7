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

// Package preferences holds the preference values that affect the
// behaviour of the emulated hardware.
package preferences

import (
	"github.com/jetsetilly/gopher65c02/prefs"
)

// Preferences for the emulated hardware.
type Preferences struct {
	dsk *prefs.Disk

	// log wraparound of the stack pointer. wraparound is never an error
	StackDiagnostics prefs.Bool

	// the maximum number of instructions executed by a single call to
	// Machine.Run(). a value of zero means no limit
	InstructionLimit prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the named preferences file. An
// empty filename means the values are never loaded or saved. Values on the
// command line stack override values in the file.
func NewPreferences(filename string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.dsk = prefs.NewDisk(filename)

	err := p.dsk.Add("cpu.stackdiagnostics", &p.StackDiagnostics)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("machine.instructionlimit", &p.InstructionLimit)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.StackDiagnostics.Set(false)
	p.InstructionLimit.Set(0)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
