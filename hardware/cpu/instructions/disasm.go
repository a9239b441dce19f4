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

import (
	"fmt"

	"github.com/jetsetilly/gopher1626/hardware/cpu/registers"
)

// mnemonics for BRBS and BRBC indexed by SREG bit
var branchSet = [8]string{"BRCS", "BREQ", "BRMI", "BRVS", "BRLT", "BRHS", "BRTS", "BRIE"}
var branchClear = [8]string{"BRCC", "BRNE", "BRPL", "BRVC", "BRGE", "BRHC", "BRTC", "BRID"}

// mnemonics for BSET and BCLR indexed by SREG bit
var flagSet = [8]string{"SEC", "SEZ", "SEN", "SEV", "SES", "SEH", "SET", "SEI"}
var flagClear = [8]string{"CLC", "CLZ", "CLN", "CLV", "CLS", "CLH", "CLT", "CLI"}

func relative(offset int16) string {
	// offsets are shown in bytes in the style of avr-objdump
	return fmt.Sprintf(".%+d", int(offset)*2)
}

func pointer(p int, mode PointerMode) string {
	switch mode {
	case PostIncrement:
		return registers.PointerName(p) + "+"
	case PreDecrement:
		return "-" + registers.PointerName(p)
	}
	return registers.PointerName(p)
}

// String returns the disassembly of the instruction. The aliases for the
// SREG branch and flag instructions are used where they exist.
func (ins Instruction) String() string {
	mnemonic := ins.Operator.String()

	switch ins.Operator {
	case Illegal:
		return fmt.Sprintf(".word 0x%04x", ins.Opcode)

	case NOP, RET, RETI, SLEEP, BREAK, WDR, IJMP, ICALL:
		return mnemonic

	case SPM:
		if ins.Opcode == 0x95f8 {
			return "SPM Z+"
		}
		return mnemonic

	case MOVW, MULS, MULSU, FMUL, FMULS, FMULSU, CPC, SBC, ADD, CPSE, CP,
		SUB, ADC, AND, EOR, OR, MOV, MUL:
		return fmt.Sprintf("%s R%d, R%d", mnemonic, ins.Rd, ins.Rr)

	case CPI, SBCI, SUBI, ORI, ANDI, LDI:
		return fmt.Sprintf("%s R%d, 0x%02x", mnemonic, ins.Rd, ins.K)

	case ADIW, SBIW:
		return fmt.Sprintf("%s R%d, %d", mnemonic, ins.Rd, ins.K)

	case COM, NEG, SWAP, INC, ASR, LSR, ROR, DEC, POP, PUSH:
		return fmt.Sprintf("%s R%d", mnemonic, ins.Rd)

	case LDD:
		return fmt.Sprintf("LDD R%d, %s+%d", ins.Rd, registers.PointerName(ins.Pointer), ins.Q)
	case STD:
		return fmt.Sprintf("STD %s+%d, R%d", registers.PointerName(ins.Pointer), ins.Q, ins.Rr)
	case LD:
		return fmt.Sprintf("LD R%d, %s", ins.Rd, pointer(ins.Pointer, ins.Mode))
	case ST:
		return fmt.Sprintf("ST %s, R%d", pointer(ins.Pointer, ins.Mode), ins.Rr)
	case LDS:
		return fmt.Sprintf("LDS R%d, 0x%04x", ins.Rd, ins.K)
	case STS:
		return fmt.Sprintf("STS 0x%04x, R%d", ins.K, ins.Rr)

	case LPM:
		if ins.Opcode == 0x95c8 {
			return mnemonic
		}
		return fmt.Sprintf("LPM R%d, %s", ins.Rd, pointer(ins.Pointer, ins.Mode))

	case BSET:
		return flagSet[ins.Bit&0x07]
	case BCLR:
		return flagClear[ins.Bit&0x07]
	case BRBS:
		return fmt.Sprintf("%s %s", branchSet[ins.Bit&0x07], relative(ins.Offset))
	case BRBC:
		return fmt.Sprintf("%s %s", branchClear[ins.Bit&0x07], relative(ins.Offset))

	case RJMP, RCALL:
		return fmt.Sprintf("%s %s", mnemonic, relative(ins.Offset))
	case JMP, CALL:
		// byte address
		return fmt.Sprintf("%s 0x%04x", mnemonic, ins.K*2)

	case IN:
		return fmt.Sprintf("IN R%d, 0x%02x", ins.Rd, ins.A)
	case OUT:
		return fmt.Sprintf("OUT 0x%02x, R%d", ins.A, ins.Rr)
	case CBI, SBI, SBIC, SBIS:
		return fmt.Sprintf("%s 0x%02x, %d", mnemonic, ins.A, ins.Bit)

	case BLD, BST, SBRC, SBRS:
		return fmt.Sprintf("%s R%d, %d", mnemonic, ins.Rd, ins.Bit)
	}

	return mnemonic
}
