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

package execution

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/cpu/instructions"
)

// Result records the execution of an instruction.
type Result struct {
	// word address of the instruction in flash
	Address uint16

	Instruction instructions.Instruction

	// cycles consumed by the instruction, including any additional cycles
	// for a taken branch or a skip
	Cycles int

	// Final is true once the instruction has completed. It is false when the
	// instruction could not be fetched
	Final bool

	// non-fatal errors raised on the bus during execution. the CPU does not
	// stop for these
	Error error

	// registers changed by the instruction. only recorded when the CPU trace
	// is enabled
	Changes    [MaxChanges]Change
	NumChanges int
}

// MaxChanges is the most changes that a Result will record. No instruction
// changes more than three general purpose registers along with SREG and SP.
const MaxChanges = 6

// Change of value in a register. The Wide field is true for 16bit registers.
type Change struct {
	Name string
	Old  uint16
	New  uint16
	Wide bool
}

func (c Change) String() string {
	if c.Wide {
		return fmt.Sprintf("%s %04x->%04x", c.Name, c.Old, c.New)
	}
	return fmt.Sprintf("%s %02x->%02x", c.Name, c.Old, c.New)
}

// AddChange records a change. Changes beyond MaxChanges are ignored.
func (r *Result) AddChange(c Change) {
	if r.NumChanges >= MaxChanges {
		return
	}
	r.Changes[r.NumChanges] = c
	r.NumChanges++
}

// Reset the result to its zero value.
func (r *Result) Reset() {
	*r = Result{}
}

// String returns the address, the opcode and the disassembly.
func (r Result) String() string {
	s := strings.Builder{}

	s.WriteString(fmt.Sprintf("%04x: %04x", r.Address*2, r.Instruction.Opcode))
	if r.Instruction.Words() == 2 {
		s.WriteString(fmt.Sprintf(" %04x", r.Instruction.Operand))
	} else {
		s.WriteString("     ")
	}
	s.WriteString(fmt.Sprintf("  %s", r.Instruction.String()))

	if r.Final {
		s.WriteString(fmt.Sprintf(" [%d]", r.Cycles))
	}

	for _, c := range r.Changes[:r.NumChanges] {
		s.WriteString(" ")
		s.WriteString(c.String())
	}

	if r.Error != nil {
		s.WriteString(fmt.Sprintf(" (%v)", r.Error))
	}

	return s.String()
}

// IsValid checks whether the result is consistent with the instruction's
// definition. The number of cycles must not be below the base cycle count and
// can exceed it by at most two (a skip over a two-word instruction).
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: not finalised")
	}

	defn := r.Instruction.Definition()
	if r.Cycles < defn.Cycles || r.Cycles > defn.Cycles+2 {
		return curated.Errorf("execution: %s: cycles (%d) not consistent with definition (%d)", defn.Mnemonic, r.Cycles, defn.Cycles)
	}

	return nil
}
