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

// Package limiter holds an emulation to a fixed clock rate.
//
// The clock is divided into slices. The Wait() function blocks until the
// start of the next slice and returns the number of cycles that can be
// executed in that slice:
//
//	lim := limiter.NewLimiter(device.ClockHz, 100)
//	for {
//		budget := lim.Wait()
//		...
//	}
package limiter

import (
	"time"
)

// Limiter triggers at a fixed rate.
type Limiter struct {
	clock    int
	slices   int
	interval time.Duration

	tick chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// The clock rate is in Hz and slices is the number of times per second that
// Wait() returns.
func NewLimiter(clock int, slices int) *Limiter {
	if slices <= 0 {
		slices = 1
	}

	lim := &Limiter{
		clock:    clock,
		slices:   slices,
		interval: time.Second / time.Duration(slices),
		tick:     make(chan bool),
	}

	// the sleep time is adjusted by the amount of time the previous sleep
	// overran
	go func() {
		adjusted := lim.interval
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.interval
			t = nt
		}
	}()

	return lim
}

// Budget returns the number of cycles in one slice.
func (lim *Limiter) Budget() int {
	return lim.clock / lim.slices
}

// Wait blocks until the start of the next slice. Returns the cycle budget
// for the slice.
func (lim *Limiter) Wait() int {
	<-lim.tick
	return lim.Budget()
}

// HasWaited returns true if the next slice has already started.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
