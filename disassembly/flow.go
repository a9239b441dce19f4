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

package disassembly

import (
	"github.com/jetsetilly/gopher1626/hardware/cpu/instructions"
)

// successors returns the word addresses that execution can continue from
// after the entry.
func (dsm *Disassembly) successors(e *Entry) []uint16 {
	ins := e.Instruction
	next := int(e.Address) + ins.Words()
	relative := int(e.Address) + 1 + int(ins.Offset)

	switch ins.Operator {
	case instructions.Illegal, instructions.BREAK, instructions.SLEEP,
		instructions.RET, instructions.RETI, instructions.IJMP:
		return nil

	case instructions.RJMP:
		return []uint16{uint16(relative)}

	case instructions.JMP:
		return []uint16{uint16(ins.K)}

	case instructions.BRBS, instructions.BRBC:
		return []uint16{uint16(next), uint16(relative)}

	case instructions.RCALL:
		return []uint16{uint16(relative), uint16(next)}

	case instructions.CALL:
		return []uint16{uint16(ins.K), uint16(next)}

	case instructions.CPSE, instructions.SBRC, instructions.SBRS,
		instructions.SBIC, instructions.SBIS:
		skip := next + 1
		if n := dsm.Get(uint16(next)); n != nil {
			skip = next + n.Instruction.Words()
		}
		return []uint16{uint16(next), uint16(skip)}
	}

	return []uint16{uint16(next)}
}

// bless follows the flow of execution from the reset address.
func (dsm *Disassembly) bless() {
	queue := []uint16{0}

	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]

		e := dsm.Get(a)
		if e == nil || e.Level == EntryLevelBlessed {
			continue
		}

		e.Level = EntryLevelBlessed
		e.Next = dsm.successors(e)
		queue = append(queue, e.Next...)
	}
}
