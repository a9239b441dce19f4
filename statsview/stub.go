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

//go:build !statsview
// +build !statsview

package statsview

import (
	"io"

	"github.com/jetsetilly/gopher1626/curated"
)

// Launch always fails without the statsview build tag. The Config is still
// validated so that a bad address is reported first.
func Launch(_ io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	return curated.Errorf(NotAvailable)
}

// Available returns true if the stats server can be launched.
func Available() bool {
	return false
}
