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

// Package memorymap describes the memory map of the ATtiny1626 as given by
// the datasheet. The Blocks list contains every memory area and peripheral
// register block that is placed in the address space, with its origin,
// its size and its initial contents.
//
// The list is data only. The device package turns it into an address space
// of storage blocks. Peripherals that are not yet emulated are still present
// in the list so that a read of their addresses behaves plausibly.
//
// The Summary() function prints the map, including the reserved gaps, in a
// form that is easy to compare with the datasheet.
package memorymap
