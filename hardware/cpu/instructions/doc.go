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

// Package instructions defines the AVRxt instruction set. The Definitions
// table describes every operator (mnemonic, length in words, base cycle
// count and category) and the Decode() function turns an opcode word (and
// the following word, for the two-word instructions) into an Instruction.
//
// The Instruction type carries the operator and every operand field
// extracted from the opcode. It is decoded in one place and executed in
// another (the cpu package), which means that decoding can be tested
// independently of execution and that the disassembly package can reuse the
// decoder without a CPU.
//
// Opcodes that are not part of the AVRxt instruction set decode to the
// Illegal operator. This includes the instructions that exist in other AVR
// cores but not in AVRxt (ELPM, EIJMP, EICALL, DES, XCH, LAS, LAC and LAT).
package instructions
