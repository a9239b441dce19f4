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

package stepper_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher1626/hardware/device"
	"github.com/jetsetilly/gopher1626/stepper"
	"github.com/jetsetilly/gopher1626/test"
)

// LDI R16, 0x42; PUSH R16; BREAK
const firmware = ":0600000002E40F93989545\n:00000001FF\n"

// SEI; RJMP .-1
const loopFirmware = ":040000007894FFCF22\n:00000001FF\n"

func newDevice(t *testing.T) *device.Device {
	t.Helper()
	return newDeviceWith(t, firmware)
}

func newDeviceWith(t *testing.T, hex string) *device.Device {
	t.Helper()
	dev, err := device.NewDevice(device.ATtiny1626)
	test.DemandSuccess(t, err)
	fn := filepath.Join(t.TempDir(), "firmware.hex")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(hex), 0o600))
	test.DemandSuccess(t, dev.LoadHex(fn))
	return dev
}

func TestStepAndDump(t *testing.T) {
	dev := newDevice(t)
	tw := &test.CompareWriter{}

	err := stepper.Run(dev, strings.NewReader("\n\nr\ns\n"), tw)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, dev.CPU.GetPC(), uint16(2))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "LDI"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "PUSH"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "R16: 0x42\n"))
	test.ExpectSuccess(t, strings.HasSuffix(tw.String(), "STACK+000: 0x42\n"))
}

func TestContinueToHalt(t *testing.T) {
	dev := newDevice(t)
	tw := &test.CompareWriter{}

	err := stepper.Run(dev, strings.NewReader("c\nq\n"), tw)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, dev.CPU.Halted())

	lines := tw.Lines()
	test.DemandSuccess(t, len(lines) > 0)
	test.ExpectSuccess(t, strings.HasPrefix(lines[len(lines)-1], "[HALT] cpu: halted"))
}

func TestBreakpoint(t *testing.T) {
	dev := newDevice(t)
	tw := &test.CompareWriter{}

	st := stepper.NewStepper(dev, strings.NewReader("c\nq\n\n"), tw)
	st.SetBreak(2)
	test.ExpectSuccess(t, st.Run())
	test.ExpectEquality(t, dev.CPU.GetPC(), uint16(1))
	test.ExpectFailure(t, dev.CPU.Halted())
	test.ExpectSuccess(t, strings.Contains(tw.String(), "break at 0002\n"))
}

func TestContinueLimit(t *testing.T) {
	dev := newDeviceWith(t, loopFirmware)
	tw := &test.CompareWriter{}

	st := stepper.NewStepper(dev, strings.NewReader("c\nc\nq\n"), tw)
	test.ExpectEquality(t, st.ContinueLimit, stepper.DefaultContinueLimit)
	st.ContinueLimit = 1000
	test.ExpectSuccess(t, st.Run())
	test.ExpectFailure(t, dev.CPU.Halted())

	// one cycle for SEI then two for each RJMP
	test.ExpectSuccess(t, strings.Contains(tw.String(), "continue stopped after 1001 cycles\n"))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "continue stopped after 1000 cycles\n"))
	test.ExpectEquality(t, dev.CPU.Cycles(), uint64(2001))
}

func TestUnknownKey(t *testing.T) {
	dev := newDevice(t)
	tw := &test.CompareWriter{}

	test.ExpectSuccess(t, stepper.Run(dev, strings.NewReader("x\n"), tw))
	test.ExpectEquality(t, dev.CPU.GetPC(), uint16(0))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "unknown key 'x'\n"))
}
