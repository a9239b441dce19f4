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

package cpu

// Sentinel patterns for the conditions that halt the CPU. Test with the
// curated.Is() function.
const (
	IllegalOpcode  = "cpu: illegal opcode: %#04x at %#04x"
	StackOverflow  = "cpu: stack overflow: SP %#04x"
	StackUnderflow = "cpu: stack underflow: SP %#04x"
	Stuck          = "cpu: stuck: %s loops on itself with interrupts disabled"
	Halted         = "cpu: halted: %s at %#04x"
	FetchFailed    = "cpu: fetch failed: no memory at %#04x"
)
