// This file is part of Gopher1626.
//
// Gopher1626 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher1626 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher1626.  If not, see <https://www.gnu.org/licenses/>.

package registers

import (
	"strings"
)

// Bit numbers of the flags in the status register. The BSET, BCLR, BRBS and
// BRBC instructions address a flag by these numbers.
const (
	FlagC = iota
	FlagZ
	FlagN
	FlagV
	FlagS
	FlagH
	FlagT
	FlagI
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	Interrupt bool
	T         bool
	HalfCarry bool
	Sign      bool
	Overflow  bool
	Negative  bool
	Zero      bool
	Carry     bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "SREG"
}

// String returns the flags in bit order, most significant first. A set flag
// is upper case.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(set bool, r rune) {
		if set {
			s.WriteRune(r - 'a' + 'A')
		} else {
			s.WriteRune(r)
		}
	}

	flag(sr.Interrupt, 'i')
	flag(sr.T, 't')
	flag(sr.HalfCarry, 'h')
	flag(sr.Sign, 's')
	flag(sr.Overflow, 'v')
	flag(sr.Negative, 'n')
	flag(sr.Zero, 'z')
	flag(sr.Carry, 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(0)
}

// Value converts the StatusRegister struct into the value seen in I/O space.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Interrupt {
		v |= 0x80
	}
	if sr.T {
		v |= 0x40
	}
	if sr.HalfCarry {
		v |= 0x20
	}
	if sr.Sign {
		v |= 0x10
	}
	if sr.Overflow {
		v |= 0x08
	}
	if sr.Negative {
		v |= 0x04
	}
	if sr.Zero {
		v |= 0x02
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// Load converts an 8 bit value (written to I/O space, for example) to the
// StatusRegister struct receiver.
func (sr *StatusRegister) Load(v uint8) {
	sr.Interrupt = v&0x80 == 0x80
	sr.T = v&0x40 == 0x40
	sr.HalfCarry = v&0x20 == 0x20
	sr.Sign = v&0x10 == 0x10
	sr.Overflow = v&0x08 == 0x08
	sr.Negative = v&0x04 == 0x04
	sr.Zero = v&0x02 == 0x02
	sr.Carry = v&0x01 == 0x01
}

// Flag returns the state of the numbered flag.
func (sr StatusRegister) Flag(bit uint8) bool {
	return sr.Value()&(1<<(bit&0x07)) != 0
}

// SetFlag sets the state of the numbered flag.
func (sr *StatusRegister) SetFlag(bit uint8, set bool) {
	v := sr.Value()
	if set {
		v |= 1 << (bit & 0x07)
	} else {
		v &^= 1 << (bit & 0x07)
	}
	sr.Load(v)
}

// SetNZS sets the negative and zero flags according to the result and then
// sets the sign flag from the negative and overflow flags. The overflow flag
// must already have been set.
func (sr *StatusRegister) SetNZS(result uint8) {
	sr.Negative = result&0x80 == 0x80
	sr.Zero = result == 0
	sr.Sign = sr.Negative != sr.Overflow
}
