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

//go:build statsview
// +build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/jetsetilly/gopher1626/logger"
)

// Launch the stats server in a new goroutine. The server runs until the
// program exits.
func Launch(output io.Writer, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	viewer.SetConfiguration(
		viewer.WithAddr(cfg.Addr),
		viewer.WithInterval(cfg.Interval),
		viewer.WithMaxPoints(cfg.MaxPoints),
	)

	go func() {
		err := statsview.New().Start()
		if err != nil {
			logger.Log(logger.Allow, "statsview", err)
		}
	}()

	logger.Logf(logger.Allow, "statsview", "listening on %s", cfg.Addr)
	fmt.Fprintf(output, "[STATS] %s\n", cfg.URL())

	return nil
}

// Available returns true if the stats server can be launched.
func Available() bool {
	return true
}
