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

package statsview_test

import (
	"testing"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/statsview"
	"github.com/jetsetilly/gopher1626/test"
)

func TestConfig(t *testing.T) {
	cfg := statsview.NewConfig("")
	test.ExpectEquality(t, cfg.Addr, statsview.DefaultAddr)
	test.ExpectSuccess(t, cfg.Validate())
	test.ExpectEquality(t, cfg.URL(), "http://localhost:11626/debug/statsview")

	cfg = statsview.NewConfig(":8080")
	test.ExpectSuccess(t, cfg.Validate())

	for _, bad := range []string{"localhost", "localhost:http", "localhost:0", "localhost:70000"} {
		err := statsview.NewConfig(bad).Validate()
		test.ExpectSuccess(t, curated.Is(err, statsview.BadConfig), bad)
	}

	cfg = statsview.NewConfig("")
	cfg.Interval = 0
	test.ExpectFailure(t, cfg.Validate())
	cfg = statsview.NewConfig("")
	cfg.MaxPoints = -1
	test.ExpectFailure(t, cfg.Validate())
}
