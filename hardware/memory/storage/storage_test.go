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

package storage_test

import (
	"testing"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/memory/storage"
	"github.com/jetsetilly/gopher1626/test"
)

func TestRAM(t *testing.T) {
	ram := storage.NewRAM(16, 0xaa)
	test.ExpectEquality(t, ram.Size(), 16)
	test.ExpectSuccess(t, !ram.ReadOnly())

	// every byte starts as the fill value
	for i := uint16(0); i < 16; i++ {
		v, ok := ram.Read(i)
		test.ExpectSuccess(t, ok, i)
		test.ExpectEquality(t, v, 0xaa, i)
	}

	test.ExpectSuccess(t, ram.Write(0x0f, 0x12))
	v, ok := ram.Read(0x0f)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x12)

	ram.Reset()
	v, _ = ram.Read(0x0f)
	test.ExpectEquality(t, v, 0xaa)
}

func TestOutOfRange(t *testing.T) {
	ram := storage.NewRAM(16, 0xff)

	v, ok := ram.Read(16)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, v, 0xff)

	v, ok = ram.Read(0xffff)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, v, 0xff)

	err := ram.Write(16, 0x00)
	test.ExpectSuccess(t, curated.Is(err, storage.UnmappedAccess))
}

func TestROM(t *testing.T) {
	rom := storage.NewROM([]uint8{0x00, 0x04}, 0x00)
	test.ExpectEquality(t, rom.Size(), 2)
	test.ExpectSuccess(t, rom.ReadOnly())

	v, ok := rom.Read(1)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, 0x04)

	// write is dropped and the contents are unchanged
	err := rom.Write(1, 0x55)
	test.ExpectSuccess(t, curated.Is(err, storage.ReadOnlyViolation))
	v, _ = rom.Read(1)
	test.ExpectEquality(t, v, 0x04)

	// reset does not affect read-only storage
	rom.Reset()
	v, _ = rom.Read(1)
	test.ExpectEquality(t, v, 0x04)
}

func TestROMCopiesData(t *testing.T) {
	data := []uint8{0x01, 0x02}
	rom := storage.NewROM(data, 0x00)
	data[0] = 0xff
	v, _ := rom.Read(0)
	test.ExpectEquality(t, v, 0x01)
}

func TestLoad(t *testing.T) {
	flash := storage.NewROM(make([]uint8, 8), 0xff)

	// loading ignores the read-only flag
	test.ExpectSuccess(t, flash.Load(2, []uint8{0x01, 0x02, 0x03}))
	test.ExpectEquality(t, string(flash.Snapshot()), string([]uint8{0, 0, 1, 2, 3, 0, 0, 0}))

	// data that overruns the storage is not written at all
	err := flash.Load(6, []uint8{0x04, 0x05, 0x06})
	test.ExpectSuccess(t, curated.Is(err, storage.UnmappedAccess))
	v, _ := flash.Read(6)
	test.ExpectEquality(t, v, 0x00)
}
