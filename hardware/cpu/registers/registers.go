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
	"fmt"
	"strings"
)

// Indexes of the lower byte of the pointer registers.
const (
	X = 26
	Y = 28
	Z = 30
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 32

// File is the general purpose register file.
type File [NumRegisters]uint8

// Pair returns the 16bit value of the register pair starting at the even
// numbered register lo.
func (f *File) Pair(lo int) uint16 {
	return uint16(f[lo+1])<<8 | uint16(f[lo])
}

// SetPair sets the register pair starting at the even numbered register lo.
func (f *File) SetPair(lo int, v uint16) {
	f[lo] = uint8(v)
	f[lo+1] = uint8(v >> 8)
}

// Reset all registers to zero.
func (f *File) Reset() {
	for i := range f {
		f[i] = 0
	}
}

// PointerName returns the name of the pointer register for the register
// index. Returns the empty string if the index is not X, Y or Z.
func PointerName(lo int) string {
	switch lo {
	case X:
		return "X"
	case Y:
		return "Y"
	case Z:
		return "Z"
	}
	return ""
}

func (f File) String() string {
	s := strings.Builder{}
	for i, v := range f {
		if i > 0 {
			if i%8 == 0 {
				s.WriteString("\n")
			} else {
				s.WriteString(" ")
			}
		}
		s.WriteString(fmt.Sprintf("R%02d=%02x", i, v))
	}
	return s.String()
}
