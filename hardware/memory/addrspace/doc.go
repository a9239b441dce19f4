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

// Package addrspace composes storage blocks into a single address space. Each
// block is registered at an origin address and from then on is reached with
// a global address. The Space type translates the global address into the
// local offset of the owning block (address - origin) and delegates the
// access.
//
// Space itself implements the storage.Storage interface and so a complete
// address space can be registered as a single block inside another address
// space. This is useful for building a bus from smaller maps that can be
// tested independently.
//
// Overlapping registrations are rejected by the Add() function with a
// MappingConflict error. For the rare occasion where overlaps need to be
// inspected, the AddUnchecked() function registers a block regardless and
// the Validate() function reports every overlap. In all cases addresses are
// resolved by searching the blocks in the order they were registered, the
// first block that contains the address being the owner.
package addrspace
