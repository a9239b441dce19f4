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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher1626/performance/limiter"
	"github.com/jetsetilly/gopher1626/test"
)

func TestBudget(t *testing.T) {
	lim := limiter.NewLimiter(3333333, 100)
	test.ExpectEquality(t, lim.Budget(), 33333)

	lim = limiter.NewLimiter(1000, 0)
	test.ExpectEquality(t, lim.Budget(), 1000)
}

func TestWait(t *testing.T) {
	lim := limiter.NewLimiter(1000, 50)

	start := time.Now()
	for i := 0; i < 5; i++ {
		test.ExpectEquality(t, lim.Wait(), 20)
	}

	// five slices of 20ms. the first slice starts immediately
	test.ExpectSuccess(t, time.Since(start) >= 60*time.Millisecond)
}
