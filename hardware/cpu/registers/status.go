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
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of
// the CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	Unused           bool
	Break            bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Bit masks for the flags in the packed status value.
const (
	CarryBit     = uint8(0x01)
	ZeroBit      = uint8(0x02)
	InterruptBit = uint8(0x04)
	DecimalBit   = uint8(0x08)
	BreakBit     = uint8(0x10)
	UnusedBit    = uint8(0x20)
	OverflowBit  = uint8(0x40)
	SignBit      = uint8(0x80)
)

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SR"
}

// String returns the status register as a string of flag letters. Upper
// case indicates a set flag. The unused bit is shown as a hyphen when clear
// and an asterisk when set.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r)
		} else {
			s.WriteRune(r + ('a' - 'A'))
		}
	}

	flag(sr.Sign, 'S')
	flag(sr.Overflow, 'V')
	if sr.Unused {
		s.WriteRune('*')
	} else {
		s.WriteRune('-')
	}
	flag(sr.Break, 'B')
	flag(sr.DecimalMode, 'D')
	flag(sr.InterruptDisable, 'I')
	flag(sr.Zero, 'Z')
	flag(sr.Carry, 'C')

	return s.String()
}

// Reset clears every flag, including the unused and break bits.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister to the packed byte. No bits are forced.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= SignBit
	}
	if sr.Overflow {
		v |= OverflowBit
	}
	if sr.Unused {
		v |= UnusedBit
	}
	if sr.Break {
		v |= BreakBit
	}
	if sr.DecimalMode {
		v |= DecimalBit
	}
	if sr.InterruptDisable {
		v |= InterruptBit
	}
	if sr.Zero {
		v |= ZeroBit
	}
	if sr.Carry {
		v |= CarryBit
	}

	return v
}

// PushValue is the value of the status register as it is pushed to the
// stack by PHP. The break and unused bits are always set.
func (sr StatusRegister) PushValue() uint8 {
	return sr.Value() | BreakBit | UnusedBit
}

// Load sets every flag from the packed byte.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&SignBit == SignBit
	sr.Overflow = v&OverflowBit == OverflowBit
	sr.Unused = v&UnusedBit == UnusedBit
	sr.Break = v&BreakBit == BreakBit
	sr.DecimalMode = v&DecimalBit == DecimalBit
	sr.InterruptDisable = v&InterruptBit == InterruptBit
	sr.Zero = v&ZeroBit == ZeroBit
	sr.Carry = v&CarryBit == CarryBit
}
