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

// Package hexfile decodes firmware images in the Intel HEX format. The
// ReadFile() function is the usual entry point. It reads the named file and
// returns a File containing every record in the image.
//
// All six record types are recognised but only data records carry anything
// that is written to flash. The address records (types 02 to 05) are kept in
// the File so that the caller can see them but they are not applied to the
// offsets of the data records. Images larger than 64k will therefore load
// incorrectly. The ATtiny1626 has 16k of flash so this is not a problem in
// practice.
package hexfile
