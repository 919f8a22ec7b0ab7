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
	"github.com/jetsetilly/gopher65c02/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65c02/logger"
)

// push a value onto the stack. the value is written to the current stack
// address and then the stack pointer is decremented.
func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(mc.SP.Address(), value)
	if err != nil {
		return err
	}

	if mc.SP.Decrement() {
		mc.stackWrap("push")
	}

	return nil
}

// pull a value from the stack. the stack pointer is incremented and then the
// value is read from the new stack address.
func (mc *CPU) pull() (uint8, error) {
	if mc.SP.Increment() {
		mc.stackWrap("pull")
	}

	return mc.read8Bit(mc.SP.Address())
}

// pull16 pulls the low byte and then the high byte of a 16 bit value.
func (mc *CPU) pull16() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}

	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// pullRegister pulls a value into the register and sets the zero and sign
// flags accordingly.
func (mc *CPU) pullRegister(r *registers.Register) error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	r.Load(v)
	mc.setZeroSign(*r)
	return nil
}

// stackWrap notes that the stack pointer has wrapped around the stack page.
// this is not an error but it's sometimes useful to know about.
func (mc *CPU) stackWrap(op string) {
	if mc.prefs == nil || !mc.prefs.StackDiagnostics.Get().(bool) {
		return
	}

	mc.LastResult.StackWrap = true
	logger.Logf(logger.Allow, "cpu", "stack pointer wrapped during %s (instruction at %#04x)", op, mc.LastResult.Address)
}
