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

package performance_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/device"
	"github.com/jetsetilly/gopher1626/performance"
	"github.com/jetsetilly/gopher1626/test"
)

func TestCalcMHz(t *testing.T) {
	mhz, accuracy := performance.CalcMHz(device.ClockHz, 1.0)
	test.ExpectEquality(t, int(mhz*100), 333)
	test.ExpectEquality(t, int(accuracy), 100)

	mhz, accuracy = performance.CalcMHz(100, 0)
	test.ExpectEquality(t, mhz, 0.0)
	test.ExpectEquality(t, accuracy, 0.0)
}

func TestParseProfile(t *testing.T) {
	p, err := performance.ParseProfile("CPU")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfile("")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfile("gpu")
	test.ExpectSuccess(t, curated.Is(err, performance.ProfileError))
}

func TestRunProfiler(t *testing.T) {
	ran := false
	err := performance.RunProfiler(performance.ProfileNone, "", func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)

	dir := t.TempDir()
	err = performance.RunProfiler(performance.ProfileCPU, dir, func() error {
		return nil
	})
	test.ExpectSuccess(t, err)
	_, err = os.Stat(filepath.Join(dir, "cpu.pprof"))
	test.ExpectSuccess(t, err)
}

func TestCheckHalts(t *testing.T) {
	dev, err := device.NewDevice(device.ATtiny1626)
	test.DemandSuccess(t, err)

	// LDI R16, 0x42; PUSH R16; BREAK
	fn := filepath.Join(t.TempDir(), "firmware.hex")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(":0600000002E40F93989545\n"), 0o600))
	test.DemandSuccess(t, dev.LoadHex(fn))

	tw := &test.CompareWriter{}
	err = performance.Check(tw, dev, time.Second, performance.ProfileNone, "")
	test.ExpectSuccess(t, err)

	lines := tw.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.Contains(lines[0], "(2 cycles in"))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "halted early: cpu: halted"))

	err = performance.Check(tw, dev, 0, performance.ProfileNone, "")
	test.ExpectFailure(t, err)
}
