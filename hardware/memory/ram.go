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

package memory

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher65c02/curated"
)

// Size of the 65C02 address space.
const Size = 0x10000

// Sentinal error patterns.
const (
	ProgramTooLarge = "memory: program too large (%d bytes at %#04x)"
)

// RAM is the entire 64KB address space of the machine.
type RAM struct {
	data [Size]uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. All
// memory is zero.
func NewRAM() *RAM {
	return &RAM{}
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	return ram.data[address], nil
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.data[address] = data
	return nil
}

// Peek implements the cpubus.Debugger interface.
func (ram *RAM) Peek(address uint16) uint8 {
	return ram.data[address]
}

// Poke implements the cpubus.Debugger interface.
func (ram *RAM) Poke(address uint16, value uint8) {
	ram.data[address] = value
}

// Clear sets every byte of memory to zero.
func (ram *RAM) Clear() {
	clear(ram.data[:])
}

// Load copies the program into memory starting at origin. Returns a
// ProgramTooLarge error if the program does not fit between origin and the
// top of memory, in which case memory is unchanged.
func (ram *RAM) Load(program []byte, origin uint16) error {
	if len(program) > Size-int(origin) {
		return curated.Errorf(ProgramTooLarge, len(program), origin)
	}
	copy(ram.data[origin:], program)
	return nil
}

// Dump writes a hex dump of the memory between the from and to addresses
// (inclusive) to io.Writer. Rows are aligned to 16 byte boundaries.
func (ram *RAM) Dump(w io.Writer, from uint16, to uint16) {
	if to < from {
		from, to = to, from
	}

	s := strings.Builder{}
	for row := int(from) &^ 0x0f; row <= int(to); row += 16 {
		s.WriteString(fmt.Sprintf("%04x |", row))
		for col := 0; col < 16; col++ {
			a := row + col
			if a < int(from) || a > int(to) {
				s.WriteString("   ")
			} else {
				s.WriteString(fmt.Sprintf(" %02x", ram.data[a]))
			}
		}
		s.WriteString("\n")
	}

	io.WriteString(w, s.String())
}
