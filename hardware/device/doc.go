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

// Package device assembles a complete microcontroller from the memory map in
// the memorymap package, the address space in the addrspace package and the
// CPU. It is the type that a host program works with.
//
//	dev, err := device.NewDevice(device.ATtiny1626)
//	if err != nil {
//		...
//	}
//	if err := dev.LoadHex("firmware.hex"); err != nil {
//		...
//	}
//	for dev.Tick() {
//	}
//	dev.DumpStack(os.Stdout)
//	dev.DumpRegs(os.Stdout)
//
// Flash is held by the device as a storage.Shared instance. The firmware
// loader writes to flash through that handle and not through the address
// space, where flash is read-only.
package device
