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

// Package stepper runs a device one instruction at a time under the control
// of single key presses.
//
//	space/enter   step one instruction
//	r             dump registers
//	s             dump stack
//	c             continue until halt, the breakpoint or ContinueLimit cycles
//	q             quit
//
// Interactive() puts the controlling terminal into cbreak mode so that keys
// take effect without waiting for the return key. When standard input is not
// a terminal, input is read a line at a time and an empty line is a step.
package stepper
