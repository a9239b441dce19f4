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

// Package logger is the central log for the emulator. Log entries are made
// with a tag (usually the name of the package making the entry) and a detail
// string.
//
//	logger.Logf(logger.Allow, "hex", "0x%04X Writing %d bytes.", offset, len(data))
//
// The first argument to Log() and Logf() is a Permission. Logging only takes
// place if the permission allows it. The Allow value is used for entries that
// should always be made. The Tracer type is useful for entries that should
// only be made when a component is in a verbose mode.
//
// Entries are held in memory and written out with Write() or Tail(). They can
// also be echoed to an io.Writer as they are made with SetEcho().
package logger
