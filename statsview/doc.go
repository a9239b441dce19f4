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

// Package statsview runs an HTTP server offering runtime statistics of the
// emulator process, using "github.com/go-echarts/statsview". The server is
// only built with the statsview build tag.
//
// The server listens on the address in the Config, DefaultAddr if none is
// given on the command line with -statsviewaddr. Charts are at Path on that
// address and the Go pprof pages at /debug/pprof/.
//
// Without the build tag Available() returns false and Launch() returns the
// NotAvailable error, after checking the Config.
package statsview
