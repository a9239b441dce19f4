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

	"github.com/jetsetilly/gopher1626/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher1626/hardware/device"
)

// EntryLevel describes the reliability of the Entry.
type EntryLevel int

// List of valid EntryLevel values in increasing reliability.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

// Entry is a disassembled instruction.
type Entry struct {
	// word address of the instruction
	Address uint16

	Instruction instructions.Instruction
	Level       EntryLevel

	// word addresses that execution can continue from after the instruction.
	// only set for blessed entries
	Next []uint16
}

func (e *Entry) String() string {
	return fmt.Sprintf("%04x: %s", e.Address*2, e.Instruction.String())
}

// Disassembly of flash.
type Disassembly struct {
	// one entry for every word up to and including the last word that is
	// not erased
	Entries []*Entry
}

// erased is the value of an erased word of flash
const erased = 0xffff

func word(data []uint8, address int) uint16 {
	if address*2+1 >= len(data) {
		return erased
	}
	return uint16(data[address*2+1])<<8 | uint16(data[address*2])
}

// FromFlash disassembles the contents of flash.
func FromFlash(data []uint8) *Disassembly {
	dsm := &Disassembly{}

	words := len(data) / 2
	for words > 0 && word(data, words-1) == erased {
		words--
	}

	dsm.Entries = make([]*Entry, words)
	for a := 0; a < words; a++ {
		dsm.Entries[a] = &Entry{
			Address:     uint16(a),
			Instruction: instructions.Decode(word(data, a), word(data, a+1)),
		}
	}

	dsm.bless()

	return dsm
}

// FromDevice disassembles the flash of the device.
func FromDevice(dev *device.Device) (*Disassembly, error) {
	data, err := dev.FlashContents()
	if err != nil {
		return nil, err
	}
	return FromFlash(data), nil
}

// Get returns the entry at the word address. Returns nil if there is no
// entry at the address.
func (dsm *Disassembly) Get(address uint16) *Entry {
	if int(address) >= len(dsm.Entries) {
		return nil
	}
	return dsm.Entries[address]
}
