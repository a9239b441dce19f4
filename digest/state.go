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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher1626/hardware/device"
	"github.com/jetsetilly/gopher1626/hardware/memory/memorymap"
)

// State returns the hash of the register file, the status register, the
// stack pointer, the program counter and SRAM.
func State(dev *device.Device) string {
	h := sha1.New()

	r := dev.CPU.R
	h.Write(r[:])
	sp := dev.CPU.GetSP()
	pc := dev.CPU.GetPC()
	h.Write([]byte{dev.CPU.SREG.Value(), uint8(sp), uint8(sp >> 8), uint8(pc), uint8(pc >> 8)})

	for a := int(memorymap.OriginSRAM); a <= int(dev.RAMEND); a++ {
		v, _ := dev.Peek(uint16(a))
		h.Write([]byte{v})
	}

	return fmt.Sprintf("%x", h.Sum(nil))
}
