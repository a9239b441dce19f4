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
	"fmt"
	"io"
)

// WriteAttr controls what is printed by the Write() function.
type WriteAttr struct {
	ByteCode bool
	FlowInfo bool
}

// Write the disassembly to io.Writer. Entries are written in address order,
// each entry followed by the entry after all of its words.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) {
	for a := 0; a < len(dsm.Entries); {
		e := dsm.Entries[a]
		dsm.WriteLine(output, attr, e)
		a += e.Instruction.Words()
	}
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) {
	if e == nil {
		return
	}

	fmt.Fprintf(output, "%04x:", e.Address*2)

	if attr.ByteCode {
		if e.Instruction.Words() == 2 {
			fmt.Fprintf(output, " %04x %04x", e.Instruction.Opcode, e.Instruction.Operand)
		} else {
			fmt.Fprintf(output, " %04x     ", e.Instruction.Opcode)
		}
	}

	fmt.Fprintf(output, " %s", e.Instruction.String())

	if e.Level != EntryLevelBlessed {
		fmt.Fprint(output, " (unreached)")
	}

	if attr.FlowInfo && len(e.Next) > 0 {
		fmt.Fprint(output, " ->")
		for _, n := range e.Next {
			fmt.Fprintf(output, " %04x", n*2)
		}
	}

	fmt.Fprint(output, "\n")
}
