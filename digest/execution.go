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

package digest

import (
	"crypto/sha1"
	"fmt"

	"github.com/jetsetilly/gopher1626/hardware/cpu"
)

// the length of the buffer isn't important but it must be at least sha1.Size
// bytes longer than one record
const executionBufferLength = 1024 + sha1.Size

// the previous digest value is stored at the start of the buffer so that it
// is included in the next digest value
const executionBufferStart = sha1.Size

// bytes recorded per instruction
const recordLength = 8

// Execution produces a chained hash of executed instructions.
type Execution struct {
	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewExecution is the preferred method of initialisation for the Execution
// type.
func NewExecution() *Execution {
	dig := &Execution{
		buffer: make([]uint8, executionBufferLength),
	}
	dig.ResetDigest()
	return dig
}

// Hash implements the Digest interface. Instructions still in the buffer are
// included.
func (dig *Execution) Hash() string {
	if dig.bufferCt == executionBufferStart {
		return fmt.Sprintf("%x", dig.digest)
	}
	d := sha1.Sum(dig.buffer[:dig.bufferCt])
	return fmt.Sprintf("%x", d)
}

// ResetDigest implements the Digest interface.
func (dig *Execution) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = executionBufferStart
}

// Step records the most recent instruction executed by the CPU and the
// machine state that resulted from it.
func (dig *Execution) Step(mc *cpu.CPU) {
	r := mc.LastResult
	if !r.Final {
		return
	}

	if dig.bufferCt+recordLength > len(dig.buffer) {
		dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
		copy(dig.buffer, dig.digest[:])
		dig.bufferCt = executionBufferStart
	}

	b := dig.buffer[dig.bufferCt:]
	b[0] = uint8(r.Address)
	b[1] = uint8(r.Address >> 8)
	b[2] = uint8(r.Instruction.Opcode)
	b[3] = uint8(r.Instruction.Opcode >> 8)
	b[4] = uint8(r.Cycles)
	b[5] = mc.SREG.Value()
	b[6] = uint8(mc.SP)
	b[7] = uint8(mc.SP >> 8)
	dig.bufferCt += recordLength
}
