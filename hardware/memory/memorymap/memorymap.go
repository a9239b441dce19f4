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

// Origin and size of the main memory areas of the ATtiny1626. Flash is
// mapped into data space at OriginFlash.
const (
	OriginSRAM  = uint16(0x3400)
	SizeSRAM    = 2048
	RAMEND      = OriginSRAM + SizeSRAM - 1
	OriginFlash = uint16(0x8000)
	SizeFlash   = 16384
	MemtopFlash = OriginFlash + SizeFlash - 1
)

// Fill values for the main memory areas. Erased flash reads as 0xff.
const (
	FillFlash = uint8(0xff)
	FillSRAM  = uint8(0x00)
)

// Addresses of the CPU registers that are in I/O space. These are part of
// the CPU register block but are implemented by the CPU itself.
const (
	CCP  = uint16(0x0034)
	SPL  = uint16(0x003d)
	SPH  = uint16(0x003e)
	SREG = uint16(0x003f)
)

// Origins of the PORT peripherals and the offset of the OUT register in
// each.
const (
	OriginPORTA = uint16(0x0400)
	OriginPORTB = uint16(0x0420)
	OriginPORTC = uint16(0x0440)
	PortOUT     = uint16(0x04)
)

// Origins of the virtual ports and the offset of the OUT register in each.
// VPORTx.OUT is an alias of PORTx.OUT that can be reached by the SBI and CBI
// instructions.
const (
	OriginVPORTA = uint16(0x0000)
	OriginVPORTB = uint16(0x0004)
	OriginVPORTC = uint16(0x0008)
	VPortOUT     = uint16(0x01)
)

// Status of a block in the emulation.
type Status int

// List of valid Status values.
const (
	// the block is fully emulated
	Done Status = iota

	// the block is a read/write stub waiting for a proper implementation
	Stub

	// the block is read-only and will probably never be implemented
	NotImplemented
)

func (s Status) String() string {
	switch s {
	case Done:
		return "done"
	case Stub:
		return "stub"
	case NotImplemented:
		return "not implemented"
	}
	return "undefined"
}

// Block describes a single area of memory.
type Block struct {
	Name   string
	Origin uint16
	Size   int

	// read-only blocks are initialised with Init. if Init is shorter than
	// Size then the remaining bytes are set to Fill
	ReadOnly bool
	Init     []uint8
	Fill     uint8

	Status Status
}

// Memtop returns the address of the last byte in the block.
func (b Block) Memtop() uint16 {
	return uint16(int(b.Origin) + b.Size - 1)
}

// Contents returns the initial contents of a read-only block.
func (b Block) Contents() []uint8 {
	c := make([]uint8, b.Size)
	for i := range c {
		c[i] = b.Fill
	}
	copy(c, b.Init)
	return c
}

// Blocks is the memory map of the ATtiny1626. NVMCTRL is at its datasheet
// address of 0x1000 and not at 0x08a0 where it would clash with TWI0.
//
// Whether EEPROM and USERROW should read as erased (0xff) is unresolved. They
// currently read as zero.
var Blocks = []Block{
	{Name: "VPORTA", Origin: OriginVPORTA, Size: 0x04, Status: Stub},
	{Name: "VPORTB", Origin: OriginVPORTB, Size: 0x04, Status: Stub},
	{Name: "VPORTC", Origin: OriginVPORTC, Size: 0x04, Status: Stub},
	{Name: "GPIO", Origin: 0x001c, Size: 0x04, Status: Done},
	{Name: "CPU", Origin: 0x0030, Size: 0x10, Status: Stub},
	{Name: "RSTCTRL", Origin: 0x0040, Size: 0x02, Status: Stub},
	{Name: "SLPCTRL", Origin: 0x0050, Size: 0x01, ReadOnly: true, Status: NotImplemented},
	{Name: "CLKCTRL", Origin: 0x0060, Size: 0x1d, Status: Stub},
	{Name: "BOD", Origin: 0x0080, Size: 0x0c, ReadOnly: true, Status: NotImplemented},
	{Name: "VREF", Origin: 0x00a0, Size: 0x02, Status: Stub},
	{Name: "WDT", Origin: 0x0100, Size: 0x02, Status: Stub},
	{Name: "CPUINT", Origin: 0x0110, Size: 0x04, Status: Stub},
	{Name: "CRCSCAN", Origin: 0x0120, Size: 0x03, ReadOnly: true, Status: NotImplemented},
	{Name: "RTC", Origin: 0x0140, Size: 0x16, Status: Stub},
	{Name: "EVSYS", Origin: 0x0180, Size: 0x2e, Status: Stub},
	{Name: "CCL", Origin: 0x01c0, Size: 0x18, Status: Stub},
	{Name: "PORTA", Origin: OriginPORTA, Size: 0x18, Status: Stub},
	{Name: "PORTB", Origin: OriginPORTB, Size: 0x18, Status: Stub},
	{Name: "PORTC", Origin: OriginPORTC, Size: 0x18, Status: Stub},
	{Name: "PORTMUX", Origin: 0x05e0, Size: 0x06, Status: Stub},
	{Name: "ADC0", Origin: 0x0600, Size: 0x20, Status: Stub},
	{Name: "AC0", Origin: 0x0680, Size: 0x08, ReadOnly: true, Status: NotImplemented},
	{Name: "USART0", Origin: 0x0800, Size: 0x0f, Status: Stub},
	{Name: "USART1", Origin: 0x0820, Size: 0x0f, Status: Stub},
	{Name: "TWI0", Origin: 0x08a0, Size: 0x0f, ReadOnly: true, Status: NotImplemented},
	{Name: "SPI0", Origin: 0x08c0, Size: 0x05, Status: Stub},
	{Name: "TCA0", Origin: 0x0a00, Size: 0x40, Status: Stub},
	{Name: "TCB0", Origin: 0x0a80, Size: 0x10, Status: Stub},
	{Name: "TCB1", Origin: 0x0a90, Size: 0x10, Status: Stub},

	// revision E (0x04) is the initial release
	{Name: "SYSCFG", Origin: 0x0f00, Size: 0x02, ReadOnly: true, Init: []uint8{0x00, 0x04}, Status: Done},

	{Name: "NVMCTRL", Origin: 0x1000, Size: 0x09, ReadOnly: true, Status: NotImplemented},
	{Name: "SIGROW", Origin: 0x1100, Size: 0x40, ReadOnly: true, Init: []uint8{0x1e, 0x94, 0x25}, Status: Done},
	{Name: "FUSE", Origin: 0x1280, Size: 0x03, ReadOnly: true, Init: []uint8{0x00, 0x00, 0x7e}, Status: Done},
	{Name: "LOCKBIT", Origin: 0x128a, Size: 0x01, ReadOnly: true, Init: []uint8{0xc5}, Status: Done},
	{Name: "USERROW", Origin: 0x1300, Size: 0x80, ReadOnly: true, Status: Stub},
	{Name: "EEPROM", Origin: 0x1400, Size: 0x100, ReadOnly: true, Status: Stub},
	{Name: "SRAM", Origin: OriginSRAM, Size: SizeSRAM, Fill: FillSRAM, Status: Done},
	{Name: "FLASH", Origin: OriginFlash, Size: SizeFlash, ReadOnly: true, Fill: FillFlash, Status: Done},
}

// Lookup returns the block containing the address.
func Lookup(address uint16) (Block, bool) {
	for _, b := range Blocks {
		if address >= b.Origin && address <= b.Memtop() {
			return b, true
		}
	}
	return Block{}, false
}

// Find returns the block with the name.
func Find(name string) (Block, bool) {
	for _, b := range Blocks {
		if b.Name == name {
			return b, true
		}
	}
	return Block{}, false
}
