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

package wavwriter

import (
	"os"
	"strings"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher1626/logger"
)

// sample values for a high and low pin
const (
	high = 8192
	low  = -8192
)

const bitDepth = 16

// WavWriter converts pin levels to audio samples.
type WavWriter struct {
	filename   string
	clock      int
	sampleRate int

	// cycles multiplied by sample rate since the last sample
	acc int

	buffer []int
}

// New is the preferred method of initialisation for the WavWriter type. The
// clock is the CPU frequency in Hz.
func New(filename string, clock int, sampleRate int) (*WavWriter, error) {
	if clock <= 0 || sampleRate <= 0 || sampleRate > clock {
		return nil, curated.Errorf("wavwriter: bad parameters (clock %d, sample rate %d)", clock, sampleRate)
	}

	return &WavWriter{
		filename:   filename,
		clock:      clock,
		sampleRate: sampleRate,
	}, nil
}

// Step advances the recording by a number of CPU cycles with the pin at the
// given level.
func (aw *WavWriter) Step(level bool, cycles int) {
	v := low
	if level {
		v = high
	}

	aw.acc += cycles * aw.sampleRate
	for aw.acc >= aw.clock {
		aw.acc -= aw.clock
		aw.buffer = append(aw.buffer, v)
	}
}

// Samples returns the number of samples recorded so far.
func (aw *WavWriter) Samples() int {
	return len(aw.buffer)
}

// Close writes the recording to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, aw.sampleRate, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	logger.Logf(logger.Allow, "wav", "wrote %d samples to %s", len(aw.buffer), aw.filename)

	return nil
}

// Peeker reads a byte from the data space without side effects.
type Peeker interface {
	Peek(address uint16) (uint8, bool)
}

// Pin identifies a single output pin. The pin level is held in two places
// because PORTx.OUT and VPORTx.OUT are the same register.
type Pin struct {
	Out  uint16
	VOut uint16
	Bit  uint8
}

// Level returns true if the pin is set in either of its OUT registers.
func (p Pin) Level(mem Peeker) bool {
	v, _ := mem.Peek(p.Out)
	vv, _ := mem.Peek(p.VOut)
	return (v|vv)&(1<<p.Bit) != 0
}

// ParsePin returns the pin named in the form "PB0".
func ParsePin(pin string) (Pin, error) {
	pin = strings.ToUpper(strings.TrimSpace(pin))
	if len(pin) != 3 || pin[0] != 'P' || pin[2] < '0' || pin[2] > '7' {
		return Pin{}, curated.Errorf("wavwriter: not a pin: %s", pin)
	}

	var p Pin
	switch pin[1] {
	case 'A':
		p.Out = memorymap.OriginPORTA
		p.VOut = memorymap.OriginVPORTA
	case 'B':
		p.Out = memorymap.OriginPORTB
		p.VOut = memorymap.OriginVPORTB
	case 'C':
		p.Out = memorymap.OriginPORTC
		p.VOut = memorymap.OriginVPORTC
	default:
		return Pin{}, curated.Errorf("wavwriter: no such port: %c", pin[1])
	}

	p.Out += memorymap.PortOUT
	p.VOut += memorymap.VPortOUT
	p.Bit = pin[2] - '0'

	return p, nil
}
