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

package registers

import (
	"fmt"

	"github.com/jetsetilly/gopher65c02/hardware/memory/cpubus"
)

// StackPointer is the 8 bit stack pointer. The stack grows downwards
// through the stack page.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for
// StackPointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns an identifying string for the SP.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%#02x", sp.value)
}

// Value returns the current value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in the stack page that the SP points to.
func (sp StackPointer) Address() uint16 {
	return cpubus.StackPage | uint16(sp.value)
}

// Load a value into the SP.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement moves the SP down one position. Returns true if the SP wrapped
// from the bottom of the stack page to the top.
func (sp *StackPointer) Decrement() bool {
	sp.value--
	return sp.value == 0xff
}

// Increment moves the SP up one position. Returns true if the SP wrapped
// from the top of the stack page to the bottom.
func (sp *StackPointer) Increment() bool {
	sp.value++
	return sp.value == 0x00
}
