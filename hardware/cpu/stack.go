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

import "github.com/jetsetilly/gopher1626/curated"

// checkPush returns an error if pushing n bytes would write outside of SRAM.
// The stack pointer may have been moved outside of SRAM by writing to SPL
// and SPH.
func (mc *CPU) checkPush(n int) error {
	if int(mc.SP) > int(mc.cfg.RAMEND) || int(mc.SP)-n+1 < int(mc.cfg.RAMStart) {
		return curated.Errorf(StackOverflow, mc.SP)
	}
	return nil
}

// checkPop returns an error if popping n bytes would read outside of SRAM.
func (mc *CPU) checkPop(n int) error {
	if int(mc.SP)+n > int(mc.cfg.RAMEND) {
		return curated.Errorf(StackUnderflow, mc.SP)
	}
	if int(mc.SP)+1 < int(mc.cfg.RAMStart) {
		return curated.Errorf(StackOverflow, mc.SP)
	}
	return nil
}

// push writes to the stack without checking. use checkPush() first.
func (mc *CPU) push(data uint8) {
	mc.write(mc.SP, data)
	mc.SP--
}

// pop reads from the stack without checking. use checkPop() first.
func (mc *CPU) pop() uint8 {
	mc.SP++
	return mc.read(mc.SP)
}

// pushPC pushes a return address. the low byte is pushed first.
func (mc *CPU) pushPC(pc uint16) error {
	if err := mc.checkPush(2); err != nil {
		return err
	}
	mc.push(uint8(pc))
	mc.push(uint8(pc >> 8))
	return nil
}

// popPC pops a return address pushed by pushPC().
func (mc *CPU) popPC() (uint16, error) {
	if err := mc.checkPop(2); err != nil {
		return 0, err
	}
	hi := mc.pop()
	lo := mc.pop()
	return uint16(hi)<<8 | uint16(lo), nil
}
