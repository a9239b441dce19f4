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

// Package wavwriter records the level of an output pin as a WAV file. The
// pin is sampled as the emulation runs and the audio is buffered in memory
// in its entirety, being written to disk when Close() is called. It is
// therefore only suitable for short recordings.
//
// The QUTy board drives a piezo buzzer from PB0 so recording that pin lets
// the sound produced by firmware be heard without the hardware.
package wavwriter
