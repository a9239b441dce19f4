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

import "fmt"

// Operator identifies an instruction.
type Operator int

// List of valid Operator values.
const (
	Illegal Operator = iota
	NOP
	MOVW
	MULS
	MULSU
	FMUL
	FMULS
	FMULSU
	CPC
	SBC
	ADD
	CPSE
	CP
	SUB
	ADC
	AND
	EOR
	OR
	MOV
	CPI
	SBCI
	SUBI
	ORI
	ANDI
	LDD
	STD
	LDS
	STS
	LD
	ST
	LPM
	POP
	PUSH
	COM
	NEG
	SWAP
	INC
	ASR
	LSR
	ROR
	DEC
	BSET
	BCLR
	RET
	RETI
	SLEEP
	BREAK
	WDR
	SPM
	IJMP
	ICALL
	JMP
	CALL
	ADIW
	SBIW
	CBI
	SBIC
	SBI
	SBIS
	MUL
	IN
	OUT
	RJMP
	RCALL
	LDI
	BRBS
	BRBC
	BLD
	BST
	SBRC
	SBRS

	// NumOperators is the number of operators including Illegal
	NumOperators
)

func (op Operator) String() string {
	if op < 0 || op >= NumOperators {
		return "undefined operator"
	}
	return Definitions[op].Mnemonic
}

// Category of an instruction describes its effect.
type Category int

// List of valid Category values.
const (
	Modify Category = iota
	Read
	Write
	Flow
	Skip
	Subroutine
	Interrupt
	Control
)

func (c Category) String() string {
	switch c {
	case Modify:
		return "Modify"
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Flow:
		return "Flow"
	case Skip:
		return "Skip"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	case Control:
		return "Control"
	}
	return "unknown category"
}

// Definition describes an operator.
type Definition struct {
	Operator Operator
	Mnemonic string

	// length of the instruction in 16bit words
	Words int

	// cycles is the number of cycles taken by the instruction on an AVRxt
	// core. branches take an additional cycle when the branch is taken and
	// skip instructions take an additional cycle for each word skipped
	Cycles int

	Category Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%s +%dwords (%d cycles) [%s]", defn.Mnemonic, defn.Words, defn.Cycles, defn.Category)
}

// Definitions is indexed by Operator.
var Definitions = [NumOperators]Definition{
	Illegal: {Illegal, "???", 1, 1, Control},
	NOP:     {NOP, "NOP", 1, 1, Control},
	MOVW:    {MOVW, "MOVW", 1, 1, Modify},
	MULS:    {MULS, "MULS", 1, 2, Modify},
	MULSU:   {MULSU, "MULSU", 1, 2, Modify},
	FMUL:    {FMUL, "FMUL", 1, 2, Modify},
	FMULS:   {FMULS, "FMULS", 1, 2, Modify},
	FMULSU:  {FMULSU, "FMULSU", 1, 2, Modify},
	CPC:     {CPC, "CPC", 1, 1, Modify},
	SBC:     {SBC, "SBC", 1, 1, Modify},
	ADD:     {ADD, "ADD", 1, 1, Modify},
	CPSE:    {CPSE, "CPSE", 1, 1, Skip},
	CP:      {CP, "CP", 1, 1, Modify},
	SUB:     {SUB, "SUB", 1, 1, Modify},
	ADC:     {ADC, "ADC", 1, 1, Modify},
	AND:     {AND, "AND", 1, 1, Modify},
	EOR:     {EOR, "EOR", 1, 1, Modify},
	OR:      {OR, "OR", 1, 1, Modify},
	MOV:     {MOV, "MOV", 1, 1, Modify},
	CPI:     {CPI, "CPI", 1, 1, Modify},
	SBCI:    {SBCI, "SBCI", 1, 1, Modify},
	SUBI:    {SUBI, "SUBI", 1, 1, Modify},
	ORI:     {ORI, "ORI", 1, 1, Modify},
	ANDI:    {ANDI, "ANDI", 1, 1, Modify},
	LDD:     {LDD, "LDD", 1, 2, Read},
	STD:     {STD, "STD", 1, 1, Write},
	LDS:     {LDS, "LDS", 2, 3, Read},
	STS:     {STS, "STS", 2, 2, Write},
	LD:      {LD, "LD", 1, 2, Read},
	ST:      {ST, "ST", 1, 1, Write},
	LPM:     {LPM, "LPM", 1, 3, Read},
	POP:     {POP, "POP", 1, 2, Read},
	PUSH:    {PUSH, "PUSH", 1, 1, Write},
	COM:     {COM, "COM", 1, 1, Modify},
	NEG:     {NEG, "NEG", 1, 1, Modify},
	SWAP:    {SWAP, "SWAP", 1, 1, Modify},
	INC:     {INC, "INC", 1, 1, Modify},
	ASR:     {ASR, "ASR", 1, 1, Modify},
	LSR:     {LSR, "LSR", 1, 1, Modify},
	ROR:     {ROR, "ROR", 1, 1, Modify},
	DEC:     {DEC, "DEC", 1, 1, Modify},
	BSET:    {BSET, "BSET", 1, 1, Modify},
	BCLR:    {BCLR, "BCLR", 1, 1, Modify},
	RET:     {RET, "RET", 1, 4, Subroutine},
	RETI:    {RETI, "RETI", 1, 4, Interrupt},
	SLEEP:   {SLEEP, "SLEEP", 1, 1, Control},
	BREAK:   {BREAK, "BREAK", 1, 1, Control},
	WDR:     {WDR, "WDR", 1, 1, Control},
	SPM:     {SPM, "SPM", 1, 1, Control},
	IJMP:    {IJMP, "IJMP", 1, 2, Flow},
	ICALL:   {ICALL, "ICALL", 1, 2, Subroutine},
	JMP:     {JMP, "JMP", 2, 3, Flow},
	CALL:    {CALL, "CALL", 2, 3, Subroutine},
	ADIW:    {ADIW, "ADIW", 1, 2, Modify},
	SBIW:    {SBIW, "SBIW", 1, 2, Modify},
	CBI:     {CBI, "CBI", 1, 1, Write},
	SBIC:    {SBIC, "SBIC", 1, 1, Skip},
	SBI:     {SBI, "SBI", 1, 1, Write},
	SBIS:    {SBIS, "SBIS", 1, 1, Skip},
	MUL:     {MUL, "MUL", 1, 2, Modify},
	IN:      {IN, "IN", 1, 1, Read},
	OUT:     {OUT, "OUT", 1, 1, Write},
	RJMP:    {RJMP, "RJMP", 1, 2, Flow},
	RCALL:   {RCALL, "RCALL", 1, 2, Subroutine},
	LDI:     {LDI, "LDI", 1, 1, Modify},
	BRBS:    {BRBS, "BRBS", 1, 1, Flow},
	BRBC:    {BRBC, "BRBC", 1, 1, Flow},
	BLD:     {BLD, "BLD", 1, 1, Modify},
	BST:     {BST, "BST", 1, 1, Modify},
	SBRC:    {SBRC, "SBRC", 1, 1, Skip},
	SBRS:    {SBRS, "SBRS", 1, 1, Skip},
}
