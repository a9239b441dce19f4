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

// Package script drives a device from a Lua script. The script is run with
// the device in its current state and has the following functions available:
//
//	step([n])        execute n instructions (default 1). returns false if
//	                 the CPU has halted
//	reg(i)           value of general purpose register i
//	sp()             stack pointer
//	pc()             program counter (word address)
//	cycles()         cycles executed since reset
//	peek(addr)       value at data space address and whether it is mapped
//	poke(addr, v)    write to the data space. returns false if the write
//	                 was refused
//	trace(on)        turn the CPU trace on or off
//	log(msg)         add an entry to the log under the "script" tag
//	fault()          reason the CPU halted or nil
//
// The Lua print function writes to the output given to NewScript().
//
// For example, a script that runs a firmware image until it halts and
// checks that the last value pushed to the stack is 0x42:
//
//	while step(1000) do end
//	local v, ok = peek(sp() + 1)
//	assert(ok and v == 0x42, fault())
package script
