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

// Package modalflag wraps the flag package from the standard library so that
// a program can have several modes of operation, each with its own flags.
//
// Arguments are given once with NewArgs() and then consumed by successive
// calls to Parse(). A call to Parse() handles the flags for the current mode
// and, if sub-modes have been added, selects the next mode from the first
// argument following those flags:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM", "MAP", "SCRIPT", "STEP")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// Sub-mode comparisons are case insensitive and the first sub-mode is the
// default. The default is selected when the argument does not name a
// sub-mode, in which case the argument is left in place. This means that
//
//	gopher1626 firmware.hex
//
// is the same as
//
//	gopher1626 run firmware.hex
//
// Once a mode has been selected, NewMode() clears the flags and sub-modes
// and the flags for the selected mode can be added:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		cycles := md.AddUint64("cycles", 0, "stop after this many cycles")
//		switch p, err := md.Parse(); p {
//		...
//		}
//		filename := md.GetArg(0)
//	}
//
// Path() returns the chain of selected modes and is used as the banner for
// help messages. For example, "gopher1626 step -help" prints:
//
//	Usage: for STEP mode
//	...
//
// In addition to the usual flag types, AddAddress() accepts a 16 bit address
// in any base understood by strconv.ParseUint.
package modalflag
