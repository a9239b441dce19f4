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

// Package storage implements the addressable storage blocks that make up the
// memory of the emulated device. Flash, SRAM and every peripheral register
// block are instances of the Memory type, registered into an address space
// (see the addrspace package) at the address given by the datasheet.
//
// Storage is addressed with a local offset, starting at zero. A read from an
// offset outside of the block returns the fill value and a validity flag of
// false. This allows a caller to distinguish between an offset that exists
// but holds the fill value and an offset that doesn't exist at all.
//
// Writes to a read-only block are dropped and a ReadOnlyViolation error is
// returned. The contents of the block are never changed. Read-only blocks can
// still be initialised with the Load() function, which is how firmware is
// placed into flash.
//
// The Shared type wraps any Storage implementation and enforces a single
// writer/multiple reader discipline at runtime. A region that is reachable
// from more than one owner (flash is reachable from both the firmware loader
// and the CPU) should be shared through a Shared instance.
package storage
