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

package wavwriter_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher1626/test"
	"github.com/jetsetilly/gopher1626/wavwriter"
)

func TestRecording(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pin.wav")

	aw, err := wavwriter.New(fn, 1000, 100)
	test.DemandSuccess(t, err)

	// one sample every ten cycles
	aw.Step(true, 25)
	test.ExpectEquality(t, aw.Samples(), 2)
	aw.Step(false, 5)
	test.ExpectEquality(t, aw.Samples(), 3)
	test.DemandSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	test.ExpectEquality(t, int(dec.SampleRate), 100)
	test.ExpectEquality(t, int(dec.NumChans), 1)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(buf.Data), 3)
	test.ExpectEquality(t, buf.Data[0] > 0, true)
	test.ExpectEquality(t, buf.Data[1] > 0, true)
	test.ExpectEquality(t, buf.Data[2] < 0, true)
}

func TestBadParameters(t *testing.T) {
	_, err := wavwriter.New("x.wav", 100, 1000)
	test.ExpectFailure(t, err)
	_, err = wavwriter.New("x.wav", 0, 0)
	test.ExpectFailure(t, err)
}

func TestParsePin(t *testing.T) {
	p, err := wavwriter.ParsePin("PB0")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Out, uint16(0x0424))
	test.ExpectEquality(t, p.VOut, uint16(0x0005))
	test.ExpectEquality(t, p.Bit, uint8(0))

	p, err = wavwriter.ParsePin("pc7")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p.Out, uint16(0x0444))
	test.ExpectEquality(t, p.VOut, uint16(0x0009))
	test.ExpectEquality(t, p.Bit, uint8(7))

	for _, bad := range []string{"", "PB8", "PD0", "XB0", "PB10"} {
		_, err = wavwriter.ParsePin(bad)
		test.ExpectFailure(t, err, bad)
	}
}

type dataSpace map[uint16]uint8

func (d dataSpace) Peek(address uint16) (uint8, bool) {
	v, ok := d[address]
	return v, ok
}

func TestPinLevel(t *testing.T) {
	p, err := wavwriter.ParsePin("PA3")
	test.DemandSuccess(t, err)

	mem := dataSpace{}
	test.ExpectFailure(t, p.Level(mem))

	// set through PORTA.OUT
	mem[0x0404] = 0x08
	test.ExpectSuccess(t, p.Level(mem))

	// set through VPORTA.OUT only
	mem[0x0404] = 0x00
	mem[0x0001] = 0x08
	test.ExpectSuccess(t, p.Level(mem))

	// other bits don't count
	mem[0x0001] = 0xf7
	test.ExpectFailure(t, p.Level(mem))
}
