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

package digest_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher1626/digest"
	"github.com/jetsetilly/gopher1626/hardware/device"
	"github.com/jetsetilly/gopher1626/test"
)

// LDI R16, 0x42; PUSH R16; BREAK
const firmware = ":0600000002E40F93989545\n"

// LDI R16, 0x43; PUSH R16; BREAK
const altered = ":0600000003E40F93989544\n"

func run(t *testing.T, hex string) (*device.Device, *digest.Execution) {
	t.Helper()
	dev, err := device.NewDevice(device.ATtiny1626)
	test.DemandSuccess(t, err)
	fn := filepath.Join(t.TempDir(), "firmware.hex")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(hex), 0o600))
	test.DemandSuccess(t, dev.LoadHex(fn))

	dig := digest.NewExecution()
	for dev.Tick() {
		dig.Step(dev.CPU)
	}
	return dev, dig
}

func TestExecution(t *testing.T) {
	var _ digest.Digest = digest.NewExecution()

	empty := digest.NewExecution().Hash()
	test.ExpectEquality(t, empty, "0000000000000000000000000000000000000000")

	_, a := run(t, firmware)
	_, b := run(t, firmware)
	_, c := run(t, altered)

	test.ExpectInequality(t, a.Hash(), empty)
	test.ExpectEquality(t, a.Hash(), b.Hash())
	test.ExpectInequality(t, a.Hash(), c.Hash())

	a.ResetDigest()
	test.ExpectEquality(t, a.Hash(), empty)
}

func TestExecutionChaining(t *testing.T) {
	dev, err := device.NewDevice(device.ATtiny1626)
	test.DemandSuccess(t, err)

	// erased flash decodes as an illegal opcode so run NOPs from a zeroed
	// flash instead
	test.DemandSuccess(t, dev.Flash.Load(0, make([]uint8, 4096)))
	dev.Reset()

	dig := digest.NewExecution()
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		test.DemandSuccess(t, dev.Tick())
		dig.Step(dev.CPU)
		h := dig.Hash()
		test.ExpectFailure(t, seen[h], i)
		seen[h] = true
	}
}

func TestState(t *testing.T) {
	devA, _ := run(t, firmware)
	devB, _ := run(t, firmware)
	devC, _ := run(t, altered)

	test.ExpectEquality(t, digest.State(devA), digest.State(devB))
	test.ExpectInequality(t, digest.State(devA), digest.State(devC))
}
