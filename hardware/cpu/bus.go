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

import (
	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/memory/addrspace"
	"github.com/jetsetilly/gopher1626/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher1626/logger"
)

// flashAddress returns the data space address of the flash word.
func (mc *CPU) flashAddress(pc uint16) uint16 {
	return mc.cfg.FlashOrigin + pc*2
}

// fetch the instruction word at the word address in flash. words are little
// endian.
func (mc *CPU) fetch(pc uint16) (uint16, bool) {
	address := mc.flashAddress(pc)
	lo, ok := mc.mem.Read(address)
	if !ok {
		return 0, false
	}
	hi, ok := mc.mem.Read(address + 1)
	if !ok {
		return 0, false
	}
	return uint16(hi)<<8 | uint16(lo), true
}

// busError records an error that doesn't stop the CPU.
func (mc *CPU) busError(err error) {
	mc.LastResult.Error = err
	logger.Log(logger.Allow, "cpu", err)
}

// read a byte from the data space. the stack pointer and status register are
// served by the CPU.
func (mc *CPU) read(address uint16) uint8 {
	switch address {
	case memorymap.SPL:
		return uint8(mc.SP)
	case memorymap.SPH:
		return uint8(mc.SP >> 8)
	case memorymap.SREG:
		return mc.SREG.Value()
	}

	v, ok := mc.mem.Read(address)
	if !ok {
		mc.busError(curated.Errorf(addrspace.UnmappedAccess, address))
	}
	return v
}

// write a byte to the data space. the stack pointer and status register are
// served by the CPU.
func (mc *CPU) write(address uint16, data uint8) {
	switch address {
	case memorymap.SPL:
		mc.SP = mc.SP&0xff00 | uint16(data)
		return
	case memorymap.SPH:
		mc.SP = mc.SP&0x00ff | uint16(data)<<8
		return
	case memorymap.SREG:
		mc.SREG.Load(data)
		return
	}

	if err := mc.mem.Write(address, data); err != nil {
		mc.busError(err)
	}
}

// Peek reads a byte from the data space as the CPU sees it. Unlike an
// instruction read, an unmapped address is not a bus error.
func (mc *CPU) Peek(address uint16) (uint8, bool) {
	switch address {
	case memorymap.SPL, memorymap.SPH, memorymap.SREG:
		return mc.read(address), true
	}
	return mc.mem.Read(address)
}

// Poke writes a byte to the data space as the CPU sees it. Writes to the
// stack pointer and status register change the CPU state.
func (mc *CPU) Poke(address uint16, data uint8) error {
	switch address {
	case memorymap.SPL, memorymap.SPH, memorymap.SREG:
		mc.write(address, data)
		return nil
	}
	return mc.mem.Write(address, data)
}
