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

package logger_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher1626/logger"
	"github.com/jetsetilly/gopher1626/test"
)

// test central logger and the use of the Tail() function
func TestCentralLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "hex", "0x0000 Writing 6 bytes.")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "hex: 0x0000 Writing 6 bytes.\n")

	w.Reset()

	log.Log(logger.Allow, "cpu", "cpu: halted: BREAK at 0x0004")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "hex: 0x0000 Writing 6 bytes.\ncpu: cpu: halted: BREAK at 0x0004\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "hex: 0x0000 Writing 6 bytes.\ncpu: cpu: halted: BREAK at 0x0004\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	log.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "hex: 0x0000 Writing 6 bytes.\ncpu: cpu: halted: BREAK at 0x0004\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "cpu: cpu: halted: BREAK at 0x0004\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

// permission is decided per call so a randomised permission exercises both
// paths
type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for n := 0; n < 100; n++ {
		p.allow = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "device", "ATtiny1626: 40 regions mapped")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "device: ATtiny1626: 40 regions mapped\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

// the Log() function explicitly handles error types by using the Error() result
func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	// test "wrapping" of errors using the %v verb
	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

// the Log() function explicitly handles Stringer types
type stringerTest struct{}

func (_ stringerTest) String() string {
	return "stringer test"
}

func TestStringerLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", stringerTest{})
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: stringer test\n")
}

// for explicitly unsupported types, the Log() function will log the detail
// argument using the %v verb from the fmt package
func TestIntLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

// consecutive identical entries are collapsed into one entry
func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "cpu", "unmapped read")
	log.Log(logger.Allow, "cpu", "unmapped read")
	log.Log(logger.Allow, "cpu", "unmapped read")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: unmapped read (repeat x3)\n")
	test.ExpectEquality(t, len(log.Entries()), 1)
}

// the log never grows beyond the maximum number of entries
func TestMaximumEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for i := 0; i < 10; i++ {
		log.Log(logger.Allow, "tag", i)
	}

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 7\ntag: 8\ntag: 9\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	log.SetEcho(w)
	log.Log(logger.Allow, "hex", "0x0000 Writing 16 bytes.")
	test.ExpectEquality(t, w.String(), "hex: 0x0000 Writing 16 bytes.\n")

	log.SetEcho(nil)
	log.Log(logger.Allow, "hex", "0x0010 Writing 16 bytes.")
	test.ExpectEquality(t, w.String(), "hex: 0x0000 Writing 16 bytes.\n")
}

func TestTracer(t *testing.T) {
	log := logger.NewLogger(10)
	w := &strings.Builder{}

	var tr logger.Tracer
	log.Log(&tr, "cpu", "not logged")
	tr.Enabled = true
	log.Log(&tr, "cpu", "logged")

	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: logged\n")
}
