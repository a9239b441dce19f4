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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher1626/hardware/cpu/registers"
	"github.com/jetsetilly/gopher1626/test"
)

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	test.ExpectEquality(t, sr.String(), "ithsvnzc")
	test.ExpectEquality(t, sr.Value(), 0x00)

	sr.Load(0x83)
	test.ExpectEquality(t, sr.String(), "IthsvnZC")
	test.ExpectSuccess(t, sr.Interrupt)
	test.ExpectSuccess(t, sr.Zero)
	test.ExpectSuccess(t, sr.Carry)
	test.ExpectEquality(t, sr.Value(), 0x83)

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0x00)
}

func TestFlags(t *testing.T) {
	var sr registers.StatusRegister

	for bit := uint8(0); bit < 8; bit++ {
		sr.SetFlag(bit, true)
		test.ExpectSuccess(t, sr.Flag(bit), bit)
		test.ExpectEquality(t, sr.Value(), uint8(1)<<bit, bit)
		sr.SetFlag(bit, false)
		test.ExpectFailure(t, sr.Flag(bit), bit)
	}

	sr.SetFlag(registers.FlagT, true)
	test.ExpectSuccess(t, sr.T)
}

func TestSetNZS(t *testing.T) {
	var sr registers.StatusRegister

	sr.SetNZS(0x80)
	test.ExpectEquality(t, sr.String(), "ithSvNzc")

	sr.Overflow = true
	sr.SetNZS(0x80)
	test.ExpectEquality(t, sr.String(), "ithsVNzc")

	sr.Overflow = false
	sr.SetNZS(0x00)
	test.ExpectEquality(t, sr.String(), "ithsvnZc")
}

func TestPairs(t *testing.T) {
	var f registers.File
	f.SetPair(registers.Z, 0x1234)
	test.ExpectEquality(t, f[30], 0x34)
	test.ExpectEquality(t, f[31], 0x12)
	test.ExpectEquality(t, f.Pair(registers.Z), 0x1234)

	test.ExpectEquality(t, registers.PointerName(registers.Y), "Y")
	test.ExpectEquality(t, registers.PointerName(2), "")

	f.Reset()
	test.ExpectEquality(t, f.Pair(registers.Z), 0x0000)
}
