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

// Package performance contains helper functions relating to performance.
//
// Check() runs the emulation for a fixed duration and reports the effective
// clock rate of the emulated CPU, compared to the rate of the real part.
//
// RunProfiler() wraps a function with one of the profiles provided by
// github.com/pkg/profile. It places no limit on how long the function runs
// for so it is useful for real-world situations.
//
// The limiter sub-package can be used to hold the emulation to the speed of
// the real part.
package performance
