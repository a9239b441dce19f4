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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/device"
)

// how often the run loop checks whether time is up
const checkInterval = 10000

// Check runs the device for the specified duration, or until it halts, and
// writes the effective clock rate to output.
func Check(output io.Writer, dev *device.Device, duration time.Duration, p Profile, dir string) error {
	if duration <= 0 {
		return curated.Errorf(ProfileError, curated.Errorf("duration must be positive: %v", duration))
	}

	startCycles := dev.CPU.Cycles()
	var elapsed time.Duration

	err := RunProfiler(p, dir, func() error {
		timesUp := time.After(duration)
		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		for {
			for i := 0; i < checkInterval; i++ {
				if !dev.Tick() {
					return nil
				}
			}

			select {
			case <-timesUp:
				return nil
			default:
			}
		}
	})
	if err != nil {
		return curated.Errorf(ProfileError, err)
	}

	cycles := dev.CPU.Cycles() - startCycles
	mhz, accuracy := CalcMHz(cycles, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, elapsed.Seconds(), accuracy)

	if dev.CPU.Halted() {
		fmt.Fprintf(output, "halted early: %v\n", dev.Fault())
	}

	return nil
}

// CalcMHz returns the effective clock rate in MHz along with its accuracy as
// a percentage of the clock rate of the real part.
func CalcMHz(cycles uint64, seconds float64) (float64, float64) {
	if seconds <= 0 {
		return 0, 0
	}
	hz := float64(cycles) / seconds
	return hz / 1000000, 100 * hz / device.ClockHz
}
