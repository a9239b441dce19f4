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
	"fmt"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher1626/hardware/cpu/registers"
)

type operation func(mc *CPU, ins instructions.Instruction) error

// dispatch is indexed by operator. every operator must have an entry.
var dispatch = [instructions.NumOperators]operation{
	instructions.Illegal: opIllegal,
	instructions.NOP:     opNone,
	instructions.WDR:     opNone,
	instructions.SPM:     opNone,
	instructions.SLEEP:   opHalt,
	instructions.BREAK:   opHalt,

	instructions.MOVW:   opMOVW,
	instructions.MUL:    opMultiply,
	instructions.MULS:   opMultiply,
	instructions.MULSU:  opMultiply,
	instructions.FMUL:   opMultiply,
	instructions.FMULS:  opMultiply,
	instructions.FMULSU: opMultiply,

	instructions.ADD:  opArithmetic,
	instructions.ADC:  opArithmetic,
	instructions.SUB:  opArithmetic,
	instructions.SBC:  opArithmetic,
	instructions.CP:   opArithmetic,
	instructions.CPC:  opArithmetic,
	instructions.AND:  opArithmetic,
	instructions.OR:   opArithmetic,
	instructions.EOR:  opArithmetic,
	instructions.MOV:  opArithmetic,
	instructions.CPI:  opArithmetic,
	instructions.SBCI: opArithmetic,
	instructions.SUBI: opArithmetic,
	instructions.ORI:  opArithmetic,
	instructions.ANDI: opArithmetic,
	instructions.LDI:  opArithmetic,

	instructions.COM:  opSingle,
	instructions.NEG:  opSingle,
	instructions.SWAP: opSingle,
	instructions.INC:  opSingle,
	instructions.ASR:  opSingle,
	instructions.LSR:  opSingle,
	instructions.ROR:  opSingle,
	instructions.DEC:  opSingle,

	instructions.ADIW: opWord,
	instructions.SBIW: opWord,

	instructions.BSET: opStatus,
	instructions.BCLR: opStatus,
	instructions.BLD:  opStatus,
	instructions.BST:  opStatus,

	instructions.LDD: opLoadStore,
	instructions.STD: opLoadStore,
	instructions.LDS: opLoadStore,
	instructions.STS: opLoadStore,
	instructions.LD:  opLoadStore,
	instructions.ST:  opLoadStore,
	instructions.LPM: opLPM,
	instructions.IN:  opLoadStore,
	instructions.OUT: opLoadStore,
	instructions.CBI: opIOBit,
	instructions.SBI: opIOBit,

	instructions.PUSH: opStack,
	instructions.POP:  opStack,

	instructions.CPSE: opSkip,
	instructions.SBRC: opSkip,
	instructions.SBRS: opSkip,
	instructions.SBIC: opSkip,
	instructions.SBIS: opSkip,

	instructions.RJMP:  opFlow,
	instructions.JMP:   opFlow,
	instructions.IJMP:  opFlow,
	instructions.BRBS:  opFlow,
	instructions.BRBC:  opFlow,
	instructions.RCALL: opSubroutine,
	instructions.CALL:  opSubroutine,
	instructions.ICALL: opSubroutine,
	instructions.RET:   opSubroutine,
	instructions.RETI:  opSubroutine,
}

func opIllegal(mc *CPU, ins instructions.Instruction) error {
	return curated.Errorf(IllegalOpcode, ins.Opcode, mc.PC*2)
}

func opNone(mc *CPU, ins instructions.Instruction) error {
	return nil
}

// no interrupt sources are emulated so SLEEP can never wake up
func opHalt(mc *CPU, ins instructions.Instruction) error {
	return curated.Errorf(Halted, ins.Operator, mc.PC*2)
}

func opMOVW(mc *CPU, ins instructions.Instruction) error {
	mc.R[ins.Rd] = mc.R[ins.Rr]
	mc.R[ins.Rd+1] = mc.R[ins.Rr+1]
	return nil
}

func opMultiply(mc *CPU, ins instructions.Instruction) error {
	d := mc.R[ins.Rd]
	s := mc.R[ins.Rr]

	switch ins.Operator {
	case instructions.MUL:
		mc.product(uint16(d)*uint16(s), false)
	case instructions.MULS:
		mc.product(uint16(int16(int8(d))*int16(int8(s))), false)
	case instructions.MULSU:
		mc.product(uint16(int16(int8(d))*int16(s)), false)
	case instructions.FMUL:
		mc.product(uint16(d)*uint16(s), true)
	case instructions.FMULS:
		mc.product(uint16(int16(int8(d))*int16(int8(s))), true)
	case instructions.FMULSU:
		mc.product(uint16(int16(int8(d))*int16(s)), true)
	}

	return nil
}

// two operand instructions. the second operand is either a register or an
// immediate value.
func opArithmetic(mc *CPU, ins instructions.Instruction) error {
	d := mc.R[ins.Rd]
	s := mc.R[ins.Rr]
	k := uint8(ins.K)

	switch ins.Operator {
	case instructions.ADD:
		mc.R[ins.Rd] = mc.add(d, s, false)
	case instructions.ADC:
		mc.R[ins.Rd] = mc.add(d, s, mc.SREG.Carry)
	case instructions.SUB:
		mc.R[ins.Rd] = mc.sub(d, s, false, false)
	case instructions.SBC:
		mc.R[ins.Rd] = mc.sub(d, s, mc.SREG.Carry, true)
	case instructions.CP:
		mc.sub(d, s, false, false)
	case instructions.CPC:
		mc.sub(d, s, mc.SREG.Carry, true)
	case instructions.AND:
		mc.R[ins.Rd] = mc.logic(d & s)
	case instructions.OR:
		mc.R[ins.Rd] = mc.logic(d | s)
	case instructions.EOR:
		mc.R[ins.Rd] = mc.logic(d ^ s)
	case instructions.MOV:
		mc.R[ins.Rd] = s
	case instructions.CPI:
		mc.sub(d, k, false, false)
	case instructions.SBCI:
		mc.R[ins.Rd] = mc.sub(d, k, mc.SREG.Carry, true)
	case instructions.SUBI:
		mc.R[ins.Rd] = mc.sub(d, k, false, false)
	case instructions.ORI:
		mc.R[ins.Rd] = mc.logic(d | k)
	case instructions.ANDI:
		mc.R[ins.Rd] = mc.logic(d & k)
	case instructions.LDI:
		mc.R[ins.Rd] = k
	}

	return nil
}

// single register instructions.
func opSingle(mc *CPU, ins instructions.Instruction) error {
	d := mc.R[ins.Rd]
	var r uint8

	switch ins.Operator {
	case instructions.COM:
		r = ^d
		mc.SREG.Carry = true
		mc.SREG.Overflow = false
		mc.SREG.SetNZS(r)
	case instructions.NEG:
		r = -d
		mc.SREG.HalfCarry = (r|d)&0x08 == 0x08
		mc.SREG.Carry = r != 0
		mc.SREG.Overflow = r == 0x80
		mc.SREG.SetNZS(r)
	case instructions.SWAP:
		r = d<<4 | d>>4
	case instructions.INC:
		r = d + 1
		mc.SREG.Overflow = r == 0x80
		mc.SREG.SetNZS(r)
	case instructions.DEC:
		r = d - 1
		mc.SREG.Overflow = r == 0x7f
		mc.SREG.SetNZS(r)
	case instructions.ASR:
		r = mc.shift(d>>1|d&0x80, d)
	case instructions.LSR:
		r = mc.shift(d>>1, d)
	case instructions.ROR:
		var c uint8
		if mc.SREG.Carry {
			c = 0x80
		}
		r = mc.shift(d>>1|c, d)
	}

	mc.R[ins.Rd] = r
	return nil
}

func opWord(mc *CPU, ins instructions.Instruction) error {
	d := mc.R.Pair(int(ins.Rd))
	switch ins.Operator {
	case instructions.ADIW:
		mc.R.SetPair(int(ins.Rd), mc.addWord(d, uint16(ins.K)))
	case instructions.SBIW:
		mc.R.SetPair(int(ins.Rd), mc.subWord(d, uint16(ins.K)))
	}
	return nil
}

func opStatus(mc *CPU, ins instructions.Instruction) error {
	mask := uint8(1) << (ins.Bit & 0x07)

	switch ins.Operator {
	case instructions.BSET:
		mc.SREG.SetFlag(ins.Bit, true)
	case instructions.BCLR:
		mc.SREG.SetFlag(ins.Bit, false)
	case instructions.BST:
		mc.SREG.T = mc.R[ins.Rd]&mask == mask
	case instructions.BLD:
		if mc.SREG.T {
			mc.R[ins.Rd] |= mask
		} else {
			mc.R[ins.Rd] &^= mask
		}
	}

	return nil
}

// indirect returns the address for an indirect load or store and updates
// the pointer register according to the pointer mode.
func (mc *CPU) indirect(ins instructions.Instruction) uint16 {
	p := mc.R.Pair(ins.Pointer)
	switch ins.Mode {
	case instructions.PreDecrement:
		p--
		mc.R.SetPair(ins.Pointer, p)
	case instructions.PostIncrement:
		mc.R.SetPair(ins.Pointer, p+1)
	}
	return p
}

func opLoadStore(mc *CPU, ins instructions.Instruction) error {
	switch ins.Operator {
	case instructions.LDD:
		mc.R[ins.Rd] = mc.read(mc.R.Pair(ins.Pointer) + uint16(ins.Q))
	case instructions.STD:
		mc.write(mc.R.Pair(ins.Pointer)+uint16(ins.Q), mc.R[ins.Rr])
	case instructions.LDS:
		mc.R[ins.Rd] = mc.read(uint16(ins.K))
	case instructions.STS:
		mc.write(uint16(ins.K), mc.R[ins.Rr])
	case instructions.LD:
		mc.R[ins.Rd] = mc.read(mc.indirect(ins))
	case instructions.ST:
		// value is taken before the pointer changes
		v := mc.R[ins.Rr]
		mc.write(mc.indirect(ins), v)
	case instructions.IN:
		mc.R[ins.Rd] = mc.read(uint16(ins.A))
	case instructions.OUT:
		mc.write(uint16(ins.A), mc.R[ins.Rr])
	}
	return nil
}

// LPM reads a byte of flash addressed by Z.
func opLPM(mc *CPU, ins instructions.Instruction) error {
	z := mc.R.Pair(registers.Z)
	v := mc.read(mc.cfg.FlashOrigin + uint16(int(z)%(mc.flashWords*2)))

	// the form without operands loads R0
	if ins.Opcode == 0x95c8 {
		mc.R[0] = v
		return nil
	}

	mc.R[ins.Rd] = v
	if ins.Mode == instructions.PostIncrement {
		mc.R.SetPair(registers.Z, z+1)
	}
	return nil
}

func opIOBit(mc *CPU, ins instructions.Instruction) error {
	mask := uint8(1) << (ins.Bit & 0x07)
	v := mc.read(uint16(ins.A))
	switch ins.Operator {
	case instructions.SBI:
		mc.write(uint16(ins.A), v|mask)
	case instructions.CBI:
		mc.write(uint16(ins.A), v&^mask)
	}
	return nil
}

func opStack(mc *CPU, ins instructions.Instruction) error {
	switch ins.Operator {
	case instructions.PUSH:
		if err := mc.checkPush(1); err != nil {
			return err
		}
		mc.push(mc.R[ins.Rd])
	case instructions.POP:
		if err := mc.checkPop(1); err != nil {
			return err
		}
		mc.R[ins.Rd] = mc.pop()
	}
	return nil
}

// skip the next instruction. the cost depends on the length of the skipped
// instruction.
func (mc *CPU) skip() {
	words := 1
	if next, ok := mc.fetch(mc.nextPC); ok && instructions.IsTwoWord(next) {
		words = 2
	}
	mc.nextPC = mc.wrapPC(int(mc.nextPC) + words)
	mc.cycleCount += words
}

func opSkip(mc *CPU, ins instructions.Instruction) error {
	mask := uint8(1) << (ins.Bit & 0x07)

	var skip bool
	switch ins.Operator {
	case instructions.CPSE:
		skip = mc.R[ins.Rd] == mc.R[ins.Rr]
	case instructions.SBRC:
		skip = mc.R[ins.Rd]&mask == 0
	case instructions.SBRS:
		skip = mc.R[ins.Rd]&mask == mask
	case instructions.SBIC:
		skip = mc.read(uint16(ins.A))&mask == 0
	case instructions.SBIS:
		skip = mc.read(uint16(ins.A))&mask == mask
	}

	if skip {
		mc.skip()
	}
	return nil
}

// jump sets the next PC. a jump to the current instruction with interrupts
// disabled can never be left and halts the CPU.
func (mc *CPU) jump(target uint16, ins instructions.Instruction) error {
	if target == mc.PC && !mc.SREG.Interrupt {
		return curated.Errorf(Stuck, fmt.Sprintf("%s at %#04x", ins, mc.PC*2))
	}
	mc.nextPC = target
	return nil
}

func opFlow(mc *CPU, ins instructions.Instruction) error {
	relative := mc.wrapPC(int(mc.PC) + 1 + int(ins.Offset))

	switch ins.Operator {
	case instructions.RJMP:
		return mc.jump(relative, ins)
	case instructions.JMP:
		return mc.jump(mc.wrapPC(int(ins.K)), ins)
	case instructions.IJMP:
		return mc.jump(mc.wrapPC(int(mc.R.Pair(registers.Z))), ins)
	case instructions.BRBS:
		if mc.SREG.Flag(ins.Bit) {
			mc.cycleCount++
			return mc.jump(relative, ins)
		}
	case instructions.BRBC:
		if !mc.SREG.Flag(ins.Bit) {
			mc.cycleCount++
			return mc.jump(relative, ins)
		}
	}
	return nil
}

// RETI does not set the I flag on the AVRxt core.
func opSubroutine(mc *CPU, ins instructions.Instruction) error {
	switch ins.Operator {
	case instructions.RCALL:
		if err := mc.pushPC(mc.nextPC); err != nil {
			return err
		}
		mc.nextPC = mc.wrapPC(int(mc.PC) + 1 + int(ins.Offset))
	case instructions.CALL:
		if err := mc.pushPC(mc.nextPC); err != nil {
			return err
		}
		mc.nextPC = mc.wrapPC(int(ins.K))
	case instructions.ICALL:
		if err := mc.pushPC(mc.nextPC); err != nil {
			return err
		}
		mc.nextPC = mc.wrapPC(int(mc.R.Pair(registers.Z)))
	case instructions.RET, instructions.RETI:
		pc, err := mc.popPC()
		if err != nil {
			return err
		}
		mc.nextPC = mc.wrapPC(int(pc))
	}
	return nil
}
