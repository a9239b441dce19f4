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

package cpu

// add sets the flags for an 8bit addition and returns the result.
func (mc *CPU) add(d uint8, s uint8, carry bool) uint8 {
	r := d + s
	if carry {
		r++
	}

	carries := d&s | s&^r | ^r&d
	mc.SREG.HalfCarry = carries&0x08 == 0x08
	mc.SREG.Carry = carries&0x80 == 0x80
	mc.SREG.Overflow = (d&s&^r|^d&^s&r)&0x80 == 0x80
	mc.SREG.SetNZS(r)

	return r
}

// sub sets the flags for an 8bit subtraction and returns the result. if
// chain is true the zero flag can only be cleared, which is how SBC, SBCI and
// CPC allow multi-byte comparisons.
func (mc *CPU) sub(d uint8, s uint8, carry bool, chain bool) uint8 {
	r := d - s
	if carry {
		r--
	}

	borrows := ^d&s | s&r | r&^d
	mc.SREG.HalfCarry = borrows&0x08 == 0x08
	mc.SREG.Carry = borrows&0x80 == 0x80
	mc.SREG.Overflow = (d&^s&^r|^d&s&r)&0x80 == 0x80

	zero := mc.SREG.Zero
	mc.SREG.SetNZS(r)
	if chain {
		mc.SREG.Zero = zero && r == 0
	}

	return r
}

// logic sets the flags for the result of AND, OR and EOR.
func (mc *CPU) logic(r uint8) uint8 {
	mc.SREG.Overflow = false
	mc.SREG.SetNZS(r)
	return r
}

// shift sets the flags for the result of a right shift. bit is the value of
// bit zero before the shift.
func (mc *CPU) shift(r uint8, bit uint8) uint8 {
	mc.SREG.Carry = bit&0x01 == 0x01
	mc.SREG.Negative = r&0x80 == 0x80
	mc.SREG.Overflow = mc.SREG.Negative != mc.SREG.Carry
	mc.SREG.SetNZS(r)
	return r
}

// addWord sets the flags for ADIW and returns the result.
func (mc *CPU) addWord(d uint16, k uint16) uint16 {
	r := d + k
	mc.SREG.Overflow = d&0x8000 == 0 && r&0x8000 == 0x8000
	mc.SREG.Carry = r&0x8000 == 0 && d&0x8000 == 0x8000
	mc.setWordNZS(r)
	return r
}

// subWord sets the flags for SBIW and returns the result.
func (mc *CPU) subWord(d uint16, k uint16) uint16 {
	r := d - k
	mc.SREG.Overflow = d&0x8000 == 0x8000 && r&0x8000 == 0
	mc.SREG.Carry = r&0x8000 == 0x8000 && d&0x8000 == 0
	mc.setWordNZS(r)
	return r
}

func (mc *CPU) setWordNZS(r uint16) {
	mc.SREG.Negative = r&0x8000 == 0x8000
	mc.SREG.Zero = r == 0
	mc.SREG.Sign = mc.SREG.Negative != mc.SREG.Overflow
}

// product stores the result of a multiplication in R1:R0 and sets the flags.
// fractional products are shifted left by one.
func (mc *CPU) product(p uint16, fractional bool) {
	mc.SREG.Carry = p&0x8000 == 0x8000
	if fractional {
		p <<= 1
	}
	mc.SREG.Zero = p == 0
	mc.R.SetPair(0, p)
}
