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

package device

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/cpu"
	"github.com/jetsetilly/gopher1626/hardware/memory/addrspace"
	"github.com/jetsetilly/gopher1626/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher1626/hardware/memory/storage"
	"github.com/jetsetilly/gopher1626/hexfile"
	"github.com/jetsetilly/gopher1626/logger"
)

// Type identifies a part.
type Type string

// List of supported parts.
const (
	ATtiny1626 Type = "ATtiny1626"
)

// ClockHz is the CPU clock after reset. The 20MHz oscillator is divided by
// six.
const ClockHz = 20000000 / 6

// Types is the list of all supported parts.
var Types = []Type{ATtiny1626}

// ParseType returns the Type matching the string. The match is case
// insensitive.
func ParseType(s string) (Type, error) {
	for _, t := range Types {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
	}
	return "", curated.Errorf("device: unsupported part: %s", s)
}

// Device is a microcontroller with its memory and CPU.
type Device struct {
	Type Type

	CPU *cpu.CPU
	Mem *addrspace.Space

	// flash is also mapped into Mem
	Flash *storage.Shared

	RAMEND uint16
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(t Type) (*Device, error) {
	if t != ATtiny1626 {
		return nil, curated.Errorf("device: unsupported part: %s", t)
	}

	dev := &Device{
		Type:   t,
		Mem:    addrspace.NewSpace(string(t)),
		RAMEND: memorymap.RAMEND,
	}

	for _, b := range memorymap.Blocks {
		var region storage.Storage
		if b.ReadOnly {
			region = storage.NewROM(b.Contents(), b.Fill)
		} else {
			region = storage.NewRAM(b.Size, b.Fill)
		}

		if b.Name == "FLASH" {
			dev.Flash = storage.NewShared(b.Name, region)
			region = dev.Flash
		}

		if err := dev.Mem.Add(b.Origin, b.Name, region); err != nil {
			return nil, curated.Errorf("device: %v", err)
		}
	}

	dev.CPU = cpu.NewCPU(dev.Mem, cpu.Config{
		FlashOrigin: memorymap.OriginFlash,
		FlashSize:   memorymap.SizeFlash,
		RAMStart:    memorymap.OriginSRAM,
		RAMEND:      dev.RAMEND,
	})

	logger.Logf(logger.Allow, "device", "%s: %d regions mapped", t, len(dev.Mem.Mappings()))

	return dev, nil
}

func (dev *Device) String() string {
	return fmt.Sprintf("%s: %s", dev.Type, dev.CPU)
}

// LoadHex loads the Intel HEX file into flash and resets the CPU. Nothing is
// written to flash if any data record lies outside of flash.
func (dev *Device) LoadHex(filename string) error {
	f, err := hexfile.ReadFile(filename)
	if err != nil {
		return err
	}

	records := f.DataRecords()
	for _, r := range records {
		if int(r.Offset)+len(r.Data) > dev.Flash.Size() {
			return curated.Errorf("device: %v (%s)", curated.Errorf(hexfile.FormatError, r.Line,
				fmt.Sprintf("data at %#04x (%d bytes) lies outside of flash", r.Offset, len(r.Data))), filename)
		}
	}

	for _, r := range records {
		logger.Logf(logger.Allow, "hex", "0x%04X Writing %d bytes.", r.Offset, len(r.Data))
		if err := dev.Flash.Load(r.Offset, r.Data); err != nil {
			return curated.Errorf("device: %v", err)
		}
	}

	logger.Logf(logger.Allow, "hex", "%s (sha1 %s)", filename, f.Hash)

	dev.CPU.Reset()

	return nil
}

// Tick executes one instruction. Returns false if the CPU has halted.
func (dev *Device) Tick() bool {
	return dev.CPU.Step()
}

// Debug turns the CPU trace on or off.
func (dev *Device) Debug(enabled bool) {
	dev.CPU.Debug(enabled)
}

// Fault returns the reason the CPU halted, if it has halted.
func (dev *Device) Fault() error {
	return dev.CPU.Fault()
}

// Reset the CPU. Memory is not changed.
func (dev *Device) Reset() {
	dev.CPU.Reset()
}

// Summary returns the memory map of the device.
func (dev *Device) Summary() string {
	return dev.Mem.Summary()
}

// Peek reads a byte from the data space. The stack pointer and status
// register are read from the CPU.
func (dev *Device) Peek(address uint16) (uint8, bool) {
	return dev.CPU.Peek(address)
}

// Poke writes a byte to the data space. The stack pointer and status register
// are written to the CPU.
func (dev *Device) Poke(address uint16, data uint8) error {
	return dev.CPU.Poke(address, data)
}

// FlashContents returns a copy of flash.
func (dev *Device) FlashContents() ([]uint8, error) {
	var data []uint8
	err := dev.Flash.BorrowRead(func(s storage.Storage) error {
		if m, ok := s.(*storage.Memory); ok {
			data = m.Snapshot()
			return nil
		}
		data = make([]uint8, s.Size())
		for i := range data {
			data[i], _ = s.Read(uint16(i))
		}
		return nil
	})
	return data, err
}
