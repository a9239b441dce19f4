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

package instructions

import "github.com/jetsetilly/gopher1626/hardware/cpu/registers"

// PointerMode describes how a pointer register is adjusted by an indirect
// load or store.
type PointerMode int

// List of valid PointerMode values.
const (
	Unchanged PointerMode = iota
	PostIncrement
	PreDecrement
)

// Instruction is a decoded opcode. Only the fields relevant to the operator
// are meaningful.
type Instruction struct {
	Operator Operator
	Opcode   uint16

	// second word of a two-word instruction
	Operand uint16

	// destination and source register numbers
	Rd uint8
	Rr uint8

	// immediate value or absolute address. for JMP and CALL this is a word
	// address in flash; for LDS and STS it is a data address
	K uint32

	// relative offset in words for RJMP, RCALL, BRBS and BRBC
	Offset int16

	// I/O address for IN, OUT, CBI, SBI, SBIC and SBIS
	A uint8

	// bit number. for BSET, BCLR, BRBS and BRBC this is the SREG bit
	Bit uint8

	// displacement for LDD and STD
	Q uint8

	// pointer register (registers.X, Y or Z) and how it is adjusted
	Pointer int
	Mode    PointerMode
}

// Definition returns the Definition for the instruction's operator.
func (ins Instruction) Definition() Definition {
	return Definitions[ins.Operator]
}

// Words returns the length of the instruction in words.
func (ins Instruction) Words() int {
	return Definitions[ins.Operator].Words
}

// IsTwoWord returns true if the opcode is the first word of a two-word
// instruction. It is used by the skip instructions, which need to know the
// length of the next instruction without decoding it fully.
func IsTwoWord(opcode uint16) bool {
	// LDS and STS
	if opcode&0xfc0f == 0x9000 {
		return true
	}
	// JMP and CALL
	if opcode&0xfe0c == 0x940c {
		return true
	}
	return false
}

// operand field extraction

func fieldD5(op uint16) uint8 {
	return uint8(op>>4) & 0x1f
}

func fieldR5(op uint16) uint8 {
	return uint8(op&0x0f) | uint8(op>>5)&0x10
}

func fieldD4(op uint16) uint8 {
	return 16 + uint8(op>>4)&0x0f
}

func fieldK8(op uint16) uint32 {
	return uint32(op&0x0f | (op>>4)&0xf0)
}

func fieldQ(op uint16) uint8 {
	return uint8(op&0x07 | (op>>7)&0x18 | (op>>8)&0x20)
}

// Decode an opcode. The operand word is only used by the two-word
// instructions and can be anything for other opcodes.
func Decode(opcode uint16, operand uint16) Instruction {
	ins := Instruction{Opcode: opcode}

	switch opcode & 0xf000 {
	case 0x0000:
		decode0(&ins)
	case 0x1000, 0x2000:
		ins.Rd = fieldD5(opcode)
		ins.Rr = fieldR5(opcode)
		switch opcode & 0x3c00 {
		case 0x1000:
			ins.Operator = CPSE
		case 0x1400:
			ins.Operator = CP
		case 0x1800:
			ins.Operator = SUB
		case 0x1c00:
			ins.Operator = ADC
		case 0x2000:
			ins.Operator = AND
		case 0x2400:
			ins.Operator = EOR
		case 0x2800:
			ins.Operator = OR
		case 0x2c00:
			ins.Operator = MOV
		}
	case 0x3000, 0x4000, 0x5000, 0x6000, 0x7000, 0xe000:
		ins.Rd = fieldD4(opcode)
		ins.K = fieldK8(opcode)
		switch opcode & 0xf000 {
		case 0x3000:
			ins.Operator = CPI
		case 0x4000:
			ins.Operator = SBCI
		case 0x5000:
			ins.Operator = SUBI
		case 0x6000:
			ins.Operator = ORI
		case 0x7000:
			ins.Operator = ANDI
		case 0xe000:
			ins.Operator = LDI
		}
	case 0x8000, 0xa000:
		ins.Rd = fieldD5(opcode)
		ins.Rr = ins.Rd
		ins.Q = fieldQ(opcode)
		if opcode&0x0008 != 0 {
			ins.Pointer = registers.Y
		} else {
			ins.Pointer = registers.Z
		}
		store := opcode&0x0200 != 0
		switch {
		case store && ins.Q == 0:
			ins.Operator = ST
		case store:
			ins.Operator = STD
		case ins.Q == 0:
			ins.Operator = LD
		default:
			ins.Operator = LDD
		}
	case 0x9000:
		decode9(&ins, operand)
	case 0xb000:
		ins.Rd = fieldD5(opcode)
		ins.Rr = ins.Rd
		ins.A = uint8(opcode&0x0f) | uint8(opcode>>5)&0x30
		if opcode&0x0800 == 0 {
			ins.Operator = IN
		} else {
			ins.Operator = OUT
		}
	case 0xc000, 0xd000:
		ins.Offset = int16(opcode<<4) >> 4
		if opcode&0xf000 == 0xc000 {
			ins.Operator = RJMP
		} else {
			ins.Operator = RCALL
		}
	case 0xf000:
		decodeF(&ins)
	}

	return ins
}

func decode0(ins *Instruction) {
	op := ins.Opcode

	switch op & 0x0c00 {
	case 0x0000:
		switch op & 0x0300 {
		case 0x0000:
			if op == 0x0000 {
				ins.Operator = NOP
			}
		case 0x0100:
			ins.Operator = MOVW
			ins.Rd = uint8(op>>4) & 0x0f * 2
			ins.Rr = uint8(op) & 0x0f * 2
		case 0x0200:
			ins.Operator = MULS
			ins.Rd = 16 + uint8(op>>4)&0x0f
			ins.Rr = 16 + uint8(op)&0x0f
		case 0x0300:
			ins.Rd = 16 + uint8(op>>4)&0x07
			ins.Rr = 16 + uint8(op)&0x07
			switch op & 0x0088 {
			case 0x0000:
				ins.Operator = MULSU
			case 0x0008:
				ins.Operator = FMUL
			case 0x0080:
				ins.Operator = FMULS
			case 0x0088:
				ins.Operator = FMULSU
			}
		}
	case 0x0400:
		ins.Operator = CPC
		ins.Rd = fieldD5(op)
		ins.Rr = fieldR5(op)
	case 0x0800:
		ins.Operator = SBC
		ins.Rd = fieldD5(op)
		ins.Rr = fieldR5(op)
	case 0x0c00:
		ins.Operator = ADD
		ins.Rd = fieldD5(op)
		ins.Rr = fieldR5(op)
	}
}

func decode9(ins *Instruction, operand uint16) {
	op := ins.Opcode

	switch op & 0x0e00 {
	case 0x0000, 0x0200:
		ins.Rd = fieldD5(op)
		ins.Rr = ins.Rd
		load := op&0x0200 == 0

		switch op & 0x000f {
		case 0x0:
			ins.Operand = operand
			ins.K = uint32(operand)
			if load {
				ins.Operator = LDS
			} else {
				ins.Operator = STS
			}
			return
		case 0xf:
			if load {
				ins.Operator = POP
			} else {
				ins.Operator = PUSH
			}
			return
		case 0x4, 0x5:
			if !load {
				// XCH and LAS
				return
			}
			ins.Operator = LPM
			ins.Pointer = registers.Z
			if op&0x0001 == 0x0001 {
				ins.Mode = PostIncrement
			}
			return
		case 0x1:
			ins.Pointer, ins.Mode = registers.Z, PostIncrement
		case 0x2:
			ins.Pointer, ins.Mode = registers.Z, PreDecrement
		case 0x9:
			ins.Pointer, ins.Mode = registers.Y, PostIncrement
		case 0xa:
			ins.Pointer, ins.Mode = registers.Y, PreDecrement
		case 0xc:
			ins.Pointer, ins.Mode = registers.X, Unchanged
		case 0xd:
			ins.Pointer, ins.Mode = registers.X, PostIncrement
		case 0xe:
			ins.Pointer, ins.Mode = registers.X, PreDecrement
		default:
			// ELPM and the atomic read-modify-write instructions
			return
		}
		if load {
			ins.Operator = LD
		} else {
			ins.Operator = ST
		}

	case 0x0400:
		decode94(ins, operand)

	case 0x0600:
		ins.Rd = 24 + uint8(op>>4)&0x03*2
		ins.K = uint32(op&0x0f | (op>>2)&0x30)
		if op&0x0100 == 0 {
			ins.Operator = ADIW
		} else {
			ins.Operator = SBIW
		}

	case 0x0800, 0x0a00:
		ins.A = uint8(op>>3) & 0x1f
		ins.Bit = uint8(op) & 0x07
		switch op & 0x0300 {
		case 0x0000:
			ins.Operator = CBI
		case 0x0100:
			ins.Operator = SBIC
		case 0x0200:
			ins.Operator = SBI
		case 0x0300:
			ins.Operator = SBIS
		}

	case 0x0c00, 0x0e00:
		ins.Operator = MUL
		ins.Rd = fieldD5(op)
		ins.Rr = fieldR5(op)
	}
}

func decode94(ins *Instruction, operand uint16) {
	op := ins.Opcode
	ins.Rd = fieldD5(op)

	switch op & 0x000f {
	case 0x0:
		ins.Operator = COM
	case 0x1:
		ins.Operator = NEG
	case 0x2:
		ins.Operator = SWAP
	case 0x3:
		ins.Operator = INC
	case 0x5:
		ins.Operator = ASR
	case 0x6:
		ins.Operator = LSR
	case 0x7:
		ins.Operator = ROR
	case 0xa:
		ins.Operator = DEC
	case 0x8:
		ins.Rd = 0
		if op&0x0100 == 0 {
			ins.Bit = uint8(op>>4) & 0x07
			if op&0x0080 == 0 {
				ins.Operator = BSET
			} else {
				ins.Operator = BCLR
			}
			return
		}
		switch op {
		case 0x9508:
			ins.Operator = RET
		case 0x9518:
			ins.Operator = RETI
		case 0x9588:
			ins.Operator = SLEEP
		case 0x9598:
			ins.Operator = BREAK
		case 0x95a8:
			ins.Operator = WDR
		case 0x95c8:
			ins.Operator = LPM
		case 0x95e8, 0x95f8:
			ins.Operator = SPM
		}
	case 0x9:
		ins.Rd = 0
		switch op {
		case 0x9409:
			ins.Operator = IJMP
		case 0x9509:
			ins.Operator = ICALL
		}
	case 0xc, 0xd, 0xe, 0xf:
		ins.Rd = 0
		ins.Operand = operand
		ins.K = uint32((op>>4)&0x1f)<<17 | uint32(op&0x01)<<16 | uint32(operand)
		if op&0x0002 == 0 {
			ins.Operator = JMP
		} else {
			ins.Operator = CALL
		}
	}
}

func decodeF(ins *Instruction) {
	op := ins.Opcode

	switch op & 0x0c00 {
	case 0x0000, 0x0400:
		ins.Bit = uint8(op) & 0x07
		ins.Offset = int16(op<<6) >> 9
		if op&0x0400 == 0 {
			ins.Operator = BRBS
		} else {
			ins.Operator = BRBC
		}
	case 0x0800, 0x0c00:
		if op&0x0008 != 0 {
			return
		}
		ins.Rd = fieldD5(op)
		ins.Rr = ins.Rd
		ins.Bit = uint8(op) & 0x07
		switch op & 0x0e00 {
		case 0x0800:
			ins.Operator = BLD
		case 0x0a00:
			ins.Operator = BST
		case 0x0c00:
			ins.Operator = SBRC
		case 0x0e00:
			ins.Operator = SBRS
		}
	}
}
