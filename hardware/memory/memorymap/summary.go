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

package memorymap

import (
	"fmt"
	"strings"
)

// Reserved is the name used by Summary() for addresses that are not in any
// block.
const Reserved = "reserved"

func name(address uint16) string {
	if b, ok := Lookup(address); ok {
		return b.Name
	}
	return Reserved
}

// Summary returns a single multiline string detailing all the areas in memory.
// Useful for reference.
func Summary() string {
	s := strings.Builder{}

	// look up area of first address in memory
	current := name(0)
	start := 0

	// for every address in the 16bit address space...
	for a := 1; a <= 0xffff; a++ {
		// ...get the area name of that address.
		area := name(uint16(a))

		// if the area has changed print out the summary line...
		if area != current {
			s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, a-1, current))

			// ...update current area and start address of the area
			current = area
			start = a
		}
	}

	// write last line of summary
	s.WriteString(fmt.Sprintf("%04x -> %04x\t%s\n", start, 0xffff, current))

	return s.String()
}
