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

package storage

import (
	"fmt"

	"github.com/jetsetilly/gopher1626/curated"
)

// Sentinel error patterns.
const (
	UnmappedAccess    = "storage: unmapped access: offset %#04x outside of %d bytes"
	ReadOnlyViolation = "storage: read-only: write to %#04x dropped"
)

// Storage defines the operations required of any addressable block of memory.
// The address space type in the addrspace package also implements this
// interface so that one address space can be nested inside another.
type Storage interface {
	// Read returns the byte at the offset. The second return value is false
	// if the offset is not present in the storage, in which case the
	// returned byte is a default value for the storage
	Read(offset uint16) (uint8, bool)

	// Write the byte at the offset. Errors returned by Write() are not fatal
	// to the emulation and state is never corrupted by a failed write
	Write(offset uint16, data uint8) error

	// Size of the storage in bytes
	Size() int
}

// Memory is the basic implementation of the Storage interface. It is used
// for flash, SRAM and for every peripheral stub.
type Memory struct {
	data     []uint8
	fill     uint8
	readOnly bool
}

// NewRAM is the preferred method of initialisation for a writable Memory
// block. Every byte is initialised with the fill value.
func NewRAM(size int, fill uint8) *Memory {
	mem := &Memory{
		data: make([]uint8, size),
		fill: fill,
	}
	for i := range mem.data {
		mem.data[i] = fill
	}
	return mem
}

// NewROM is the preferred method of initialisation for a read-only Memory
// block. The size of the block is the length of the data argument. The data
// is copied.
func NewROM(data []uint8, fill uint8) *Memory {
	mem := &Memory{
		data:     make([]uint8, len(data)),
		fill:     fill,
		readOnly: true,
	}
	copy(mem.data, data)
	return mem
}

func (mem *Memory) String() string {
	if mem.readOnly {
		return fmt.Sprintf("ROM %d bytes (fill %#02x)", len(mem.data), mem.fill)
	}
	return fmt.Sprintf("RAM %d bytes (fill %#02x)", len(mem.data), mem.fill)
}

// Read implements the Storage interface.
func (mem *Memory) Read(offset uint16) (uint8, bool) {
	if int(offset) >= len(mem.data) {
		return mem.fill, false
	}
	return mem.data[offset], true
}

// Write implements the Storage interface.
func (mem *Memory) Write(offset uint16, data uint8) error {
	if int(offset) >= len(mem.data) {
		return curated.Errorf(UnmappedAccess, offset, len(mem.data))
	}
	if mem.readOnly {
		return curated.Errorf(ReadOnlyViolation, offset)
	}
	mem.data[offset] = data
	return nil
}

// Size implements the Storage interface.
func (mem *Memory) Size() int {
	return len(mem.data)
}

// Fill returns the default value of the storage.
func (mem *Memory) Fill() uint8 {
	return mem.fill
}

// ReadOnly returns true if the storage is read-only.
func (mem *Memory) ReadOnly() bool {
	return mem.readOnly
}

// Load writes the data to the storage starting at the offset, ignoring the
// read-only flag. It is an error for the data to extend beyond the end of
// the storage, in which case nothing is written.
func (mem *Memory) Load(offset uint16, data []uint8) error {
	if int(offset)+len(data) > len(mem.data) {
		return curated.Errorf(UnmappedAccess, int(offset)+len(data)-1, len(mem.data))
	}
	copy(mem.data[offset:], data)
	return nil
}

// Reset sets every byte to the fill value. Read-only storage is unaffected.
func (mem *Memory) Reset() {
	if mem.readOnly {
		return
	}
	for i := range mem.data {
		mem.data[i] = mem.fill
	}
}

// Snapshot returns a copy of the storage contents.
func (mem *Memory) Snapshot() []uint8 {
	c := make([]uint8, len(mem.data))
	copy(c, mem.data)
	return c
}
