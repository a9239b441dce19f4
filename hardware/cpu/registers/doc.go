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

// Package registers implements the register file and the status register
// (SREG) of the AVRxt CPU.
//
// The register file is 32 general purpose 8bit registers, R0 to R31. The
// upper six registers can be used in pairs as the 16bit pointer registers X
// (R27:R26), Y (R29:R28) and Z (R31:R30).
package registers
