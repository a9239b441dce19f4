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

package device

import (
	"fmt"
	"io"

	"github.com/jetsetilly/gopher1626/hardware/cpu/registers"
)

// DumpRegs writes the value of every general purpose register.
func (dev *Device) DumpRegs(w io.Writer) {
	for i := 0; i < registers.NumRegisters; i++ {
		fmt.Fprintf(w, "R%02d: 0x%02X\n", i, dev.CPU.GetR(i))
	}
}

// DumpStack writes the contents of the stack, from the top of the stack
// to RAMEND. The stack is read through the address space because the stack
// pointer is a data space address. Nothing is written if the stack is empty.
func (dev *Device) DumpStack(w io.Writer) {
	for sp := int(dev.CPU.GetSP()) + 1; sp <= int(dev.RAMEND); sp++ {
		v, _ := dev.Mem.Read(uint16(sp))
		fmt.Fprintf(w, "STACK+%03X: 0x%02X\n", int(dev.RAMEND)-sp, v)
	}
}
