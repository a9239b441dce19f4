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

package statsview

import (
	"net"
	"strconv"

	"github.com/jetsetilly/gopher1626/curated"
)

// Sentinel error patterns.
const (
	NotAvailable = "statsview: not available in this build"
	BadConfig    = "statsview: %v"
)

// DefaultAddr is the address the stats server listens on if none is given.
const DefaultAddr = "localhost:11626"

// Path of the stats page on the server.
const Path = "/debug/statsview"

// Config for the stats server.
type Config struct {
	Addr string

	// sampling interval in milliseconds
	Interval int

	// number of samples shown in each chart
	MaxPoints int
}

// NewConfig returns a Config for the address with the default sampling
// values. An empty address is replaced with DefaultAddr.
func NewConfig(addr string) Config {
	if addr == "" {
		addr = DefaultAddr
	}
	return Config{
		Addr:      addr,
		Interval:  1000,
		MaxPoints: 60,
	}
}

// Validate returns an error if the server can't be started with the Config.
func (cfg Config) Validate() error {
	_, port, err := net.SplitHostPort(cfg.Addr)
	if err != nil {
		return curated.Errorf(BadConfig, err)
	}
	p, err := strconv.Atoi(port)
	if err != nil || p <= 0 || p > 65535 {
		return curated.Errorf(BadConfig, "bad port: "+port)
	}
	if cfg.Interval <= 0 {
		return curated.Errorf(BadConfig, "interval must be positive")
	}
	if cfg.MaxPoints <= 0 {
		return curated.Errorf(BadConfig, "max points must be positive")
	}
	return nil
}

// URL of the stats page.
func (cfg Config) URL() string {
	return "http://" + cfg.Addr + Path
}
