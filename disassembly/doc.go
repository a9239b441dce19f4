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

// Package disassembly produces a disassembly of flash.
//
// Every word of flash is decoded as though it were the first word of an
// instruction. The entries are then "blessed" by following the flow of
// execution from the reset address (word zero). Flow is followed through
// jumps, branches, calls and skips. Indirect jumps and calls (IJMP and ICALL)
// cannot be followed because the target depends on the Z register.
//
// Entries that have not been blessed are probably data but might also be
// code that is only reached indirectly. The Write() function marks them.
//
// Trailing erased flash (0xffff words) is not included in the disassembly.
package disassembly
