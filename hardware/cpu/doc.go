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

// Package cpu emulates the AVRxt core found in the ATtiny1626. The CPU
// executes instructions fetched from flash, which is reached through the
// data space like any other memory. Instructions are sixteen bits wide and a
// handful of instructions have a second word.
//
// The instance of the CPU type requires an implementation of the Memory
// interface and a Config describing where flash and SRAM are in the data
// space. The addrspace package provides a suitable Memory implementation.
//
// The bread-and-butter of the CPU type is the Step() function. Each call
// fetches, decodes and executes exactly one instruction. Step() returns false
// when the CPU has halted, after which the reason can be retrieved with
// Fault().
//
//	mc := cpu.NewCPU(mem, cfg)
//	for mc.Step() {
//	}
//	if err := mc.Fault(); err != nil {
//		...
//	}
//
// Decoding is done by the instructions package. Execution is through a
// dispatch table keyed on the decoded operator, one function per operator.
//
// The stack pointer and status register are part of the I/O space of the
// AVRxt (addresses 0x3d, 0x3e and 0x3f). Accesses to those addresses are
// served by the CPU itself and never reach the Memory implementation.
//
// The LastResult field can be inspected for information about the last
// instruction executed. See the execution package for more information.
// Very useful for debuggers.
package cpu
