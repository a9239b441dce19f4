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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher1626/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher1626/hardware/cpu/registers"
	"github.com/jetsetilly/gopher1626/test"
)

func TestDefinitionsTable(t *testing.T) {
	for i, defn := range instructions.Definitions {
		test.ExpectEquality(t, int(defn.Operator), i, defn.Mnemonic)
		test.ExpectInequality(t, defn.Mnemonic, "", i)
		test.ExpectSuccess(t, defn.Words == 1 || defn.Words == 2, defn.Mnemonic)
		test.ExpectSuccess(t, defn.Cycles >= 1, defn.Mnemonic)
	}
}

func TestDisassembly(t *testing.T) {
	var tests = []struct {
		opcode  uint16
		operand uint16
		expect  string
	}{
		{0x0000, 0, "NOP"},
		{0x0c01, 0, "ADD R0, R1"},
		{0x01c0, 0, "MOVW R24, R0"},
		{0x9c12, 0, "MUL R1, R2"},
		{0xef0f, 0, "LDI R16, 0xff"},
		{0xcfff, 0, "RJMP .-2"},
		{0xd000, 0, "RCALL .+0"},
		{0xf7f1, 0, "BRNE .-4"},
		{0x9478, 0, "SEI"},
		{0x94f8, 0, "CLI"},
		{0x940c, 0x0100, "JMP 0x0200"},
		{0x940e, 0x0080, "CALL 0x0100"},
		{0x9100, 0x3400, "LDS R16, 0x3400"},
		{0x9310, 0x3400, "STS 0x3400, R17"},
		{0x921f, 0, "PUSH R1"},
		{0x901f, 0, "POP R1"},
		{0x901d, 0, "LD R1, X+"},
		{0x922a, 0, "ST -Y, R2"},
		{0x803d, 0, "LDD R3, Y+5"},
		{0xae07, 0, "STD Z+63, R0"},
		{0x8048, 0, "LD R4, Y"},
		{0xb70f, 0, "IN R16, 0x3f"},
		{0xbfcd, 0, "OUT 0x3d, R28"},
		{0x9a0b, 0, "SBI 0x01, 3"},
		{0x9601, 0, "ADIW R24, 1"},
		{0x97ff, 0, "SBIW R30, 63"},
		{0xfa13, 0, "BST R1, 3"},
		{0xfc13, 0, "SBRC R1, 3"},
		{0x95c8, 0, "LPM"},
		{0x9055, 0, "LPM R5, Z+"},
		{0x9508, 0, "RET"},
		{0x9518, 0, "RETI"},
		{0x9588, 0, "SLEEP"},
		{0x9598, 0, "BREAK"},
		{0x9409, 0, "IJMP"},
		{0x9509, 0, "ICALL"},
	}

	for _, tt := range tests {
		ins := instructions.Decode(tt.opcode, tt.operand)
		test.ExpectEquality(t, ins.String(), tt.expect, tt.opcode)
	}
}

func TestIllegal(t *testing.T) {
	// reserved encodings and instructions from other AVR cores
	for _, op := range []uint16{0x0001, 0x00ff, 0xffff, 0xf80f, 0x9006, 0x9204, 0x9419, 0x940b, 0x9519} {
		ins := instructions.Decode(op, 0)
		test.ExpectEquality(t, ins.Operator, instructions.Illegal, op)
	}
}

func TestOperands(t *testing.T) {
	ins := instructions.Decode(0xae07, 0)
	test.ExpectEquality(t, ins.Operator, instructions.STD)
	test.ExpectEquality(t, ins.Q, uint8(63))
	test.ExpectEquality(t, ins.Pointer, registers.Z)

	ins = instructions.Decode(0x922a, 0)
	test.ExpectEquality(t, ins.Pointer, registers.Y)
	test.ExpectEquality(t, ins.Mode, instructions.PreDecrement)

	ins = instructions.Decode(0xc800, 0)
	test.ExpectEquality(t, ins.Offset, int16(-2048))

	ins = instructions.Decode(0xf3f9, 0)
	test.ExpectEquality(t, ins.Operator, instructions.BRBS)
	test.ExpectEquality(t, ins.Offset, int16(-1))
	test.ExpectEquality(t, ins.Bit, uint8(1))

	// 22 bit address
	ins = instructions.Decode(0x95fd, 0xffff)
	test.ExpectEquality(t, ins.Operator, instructions.JMP)
	test.ExpectEquality(t, ins.K, uint32(0x3fffff))
}

func TestTwoWord(t *testing.T) {
	for op := 0; op <= 0xffff; op++ {
		ins := instructions.Decode(uint16(op), 0)
		test.ExpectEquality(t, ins.Words() == 2, instructions.IsTwoWord(uint16(op)), ins.String())
	}
}
