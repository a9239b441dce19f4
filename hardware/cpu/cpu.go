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
	"io"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/cpu/execution"
	"github.com/jetsetilly/gopher1626/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher1626/hardware/cpu/registers"
	"github.com/jetsetilly/gopher1626/logger"
)

// Memory is the bus as seen by the CPU. Both flash and data are reached
// through it.
type Memory interface {
	Read(address uint16) (uint8, bool)
	Write(address uint16, data uint8) error
}

// Config describes where the CPU finds flash and SRAM in the data space.
type Config struct {
	// origin of flash in the data space and its size in bytes
	FlashOrigin uint16
	FlashSize   int

	// first and last addresses of SRAM. the stack must stay within them
	RAMStart uint16
	RAMEND   uint16
}

// CPU implements the AVRxt core.
type CPU struct {
	R    registers.File
	SREG registers.StatusRegister

	// word address of the next instruction in flash
	PC uint16

	// data address of the next free byte on the stack
	SP uint16

	mem Memory
	cfg Config

	// number of words in flash. the PC wraps at this value
	flashWords int

	// the total number of cycles executed since the last reset
	cycles uint64

	// the PC after the current instruction and the cycles it has used. both
	// can be changed by the functions in the dispatch table
	nextPC      uint16
	cycleCount  int
	instruction instructions.Instruction

	// last result of Step()
	LastResult execution.Result

	// the reason for a halt. Step() does nothing until Reset() is called
	fault  error
	halted bool

	tracer logger.Tracer
	trace  io.Writer
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem Memory, cfg Config) *CPU {
	mc := &CPU{
		mem:        mem,
		cfg:        cfg,
		flashWords: cfg.FlashSize / 2,
	}
	if mc.flashWords == 0 {
		mc.flashWords = 1
	}
	mc.Reset()
	return mc
}

func (mc *CPU) String() string {
	return fmt.Sprintf("PC=%04x SP=%04x %s=%s", mc.PC*2, mc.SP, mc.SREG.Label(), mc.SREG)
}

// Plumb a new Memory into the CPU.
func (mc *CPU) Plumb(mem Memory) {
	mc.mem = mem
}

// Reset the CPU to its power-on state. The stack pointer is set to RAMEND.
func (mc *CPU) Reset() {
	mc.R.Reset()
	mc.SREG.Reset()
	mc.PC = 0
	mc.SP = mc.cfg.RAMEND
	mc.cycles = 0
	mc.fault = nil
	mc.halted = false
	mc.LastResult.Reset()
}

// Debug turns the per-instruction trace on or off. The trace is sent to the
// central logger under the "cpu" tag and to the trace writer if one has
// been set.
func (mc *CPU) Debug(enabled bool) {
	mc.tracer.Enabled = enabled
}

// SetTraceWriter sets the destination for the trace. A nil writer means the
// trace is only sent to the logger.
func (mc *CPU) SetTraceWriter(w io.Writer) {
	mc.trace = w
}

// GetR returns the value of the general purpose register. The index must be
// in the range 0 to 31.
func (mc *CPU) GetR(i int) uint8 {
	if i < 0 || i >= registers.NumRegisters {
		panic(fmt.Sprintf("cpu: register index out of range: %d", i))
	}
	return mc.R[i]
}

// GetSP returns the stack pointer.
func (mc *CPU) GetSP() uint16 {
	return mc.SP
}

// GetPC returns the program counter as a word address.
func (mc *CPU) GetPC() uint16 {
	return mc.PC
}

// Cycles returns the number of cycles executed since the last reset.
func (mc *CPU) Cycles() uint64 {
	return mc.cycles
}

// Halted returns true if the CPU has stopped.
func (mc *CPU) Halted() bool {
	return mc.halted
}

// Fault returns the reason the CPU halted. Returns nil if the CPU has not
// halted.
func (mc *CPU) Fault() error {
	return mc.fault
}

func (mc *CPU) halt(err error) {
	mc.halted = true
	mc.fault = err
	logger.Log(logger.Allow, "cpu", err)
}

func (mc *CPU) wrapPC(pc int) uint16 {
	pc %= mc.flashWords
	if pc < 0 {
		pc += mc.flashWords
	}
	return uint16(pc)
}

// Step executes the next instruction. Returns false if the CPU has halted,
// either by this instruction or by an earlier one.
func (mc *CPU) Step() bool {
	if mc.halted {
		return false
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC

	opcode, ok := mc.fetch(mc.PC)
	if !ok {
		mc.halt(curated.Errorf(FetchFailed, mc.flashAddress(mc.PC)))
		return false
	}

	var operand uint16
	if instructions.IsTwoWord(opcode) {
		operand, ok = mc.fetch(mc.wrapPC(int(mc.PC) + 1))
		if !ok {
			mc.halt(curated.Errorf(FetchFailed, mc.flashAddress(mc.wrapPC(int(mc.PC)+1))))
			return false
		}
	}

	mc.instruction = instructions.Decode(opcode, operand)
	mc.LastResult.Instruction = mc.instruction

	mc.nextPC = mc.wrapPC(int(mc.PC) + mc.instruction.Words())
	mc.cycleCount = mc.instruction.Definition().Cycles

	var before registers.File
	var beforeSREG uint8
	var beforeSP uint16
	if mc.tracer.Enabled {
		before = mc.R
		beforeSREG = mc.SREG.Value()
		beforeSP = mc.SP
	}

	if err := dispatch[mc.instruction.Operator](mc, mc.instruction); err != nil {
		mc.halt(err)
		return false
	}

	mc.PC = mc.nextPC
	mc.cycles += uint64(mc.cycleCount)

	mc.LastResult.Cycles = mc.cycleCount
	mc.LastResult.Final = true

	if mc.tracer.Enabled {
		mc.recordChanges(&before, beforeSREG, beforeSP)
		logger.Log(&mc.tracer, "cpu", mc.LastResult)
		if mc.trace != nil {
			fmt.Fprintf(mc.trace, "%s\n", mc.LastResult.String())
		}
	}

	return true
}

// recordChanges adds the registers that differ from the values before the
// instruction to LastResult.
func (mc *CPU) recordChanges(before *registers.File, sreg uint8, sp uint16) {
	for i := range mc.R {
		if mc.R[i] != before[i] {
			mc.LastResult.AddChange(execution.Change{
				Name: fmt.Sprintf("R%d", i),
				Old:  uint16(before[i]),
				New:  uint16(mc.R[i]),
			})
		}
	}
	if v := mc.SREG.Value(); v != sreg {
		mc.LastResult.AddChange(execution.Change{Name: "SREG", Old: uint16(sreg), New: uint16(v)})
	}
	if mc.SP != sp {
		mc.LastResult.AddChange(execution.Change{Name: "SP", Old: sp, New: mc.SP, Wide: true})
	}
}
