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

package stepper

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher1626/hardware/device"
	"github.com/jetsetilly/gopher1626/logger"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// keyReader returns the next command key.
type keyReader interface {
	next() (byte, error)
}

// lineKeys treats each line of input as one key. an empty line is a step.
type lineKeys struct {
	scanner *bufio.Scanner
}

func (lk *lineKeys) next() (byte, error) {
	if !lk.scanner.Scan() {
		if err := lk.scanner.Err(); err != nil {
			return 0, err
		}
		return 0, io.EOF
	}
	s := strings.TrimSpace(lk.scanner.Text())
	if s == "" {
		return ' ', nil
	}
	return strings.ToLower(s)[0], nil
}

// ttyKeys reads single bytes from a terminal in cbreak mode.
type ttyKeys struct {
	tty *term.Term
	b   [1]byte
}

func (tk *ttyKeys) next() (byte, error) {
	_, err := tk.tty.Read(tk.b[:])
	if err != nil {
		return 0, err
	}
	return tk.b[0], nil
}

// Stepper controls a device from key presses.
type Stepper struct {
	dev  *device.Device
	keys keyReader
	out  io.Writer

	breakpoint    uint16
	hasBreakpoint bool

	// continue stops after this many cycles even if no breakpoint is reached.
	// zero means no limit
	ContinueLimit uint64
}

// DefaultContinueLimit is one second of emulated time.
const DefaultContinueLimit = uint64(device.ClockHz)

// SetBreak sets the address at which a continue stops. The address is a byte
// address in flash, the same as the addresses in the instruction trace.
func (st *Stepper) SetBreak(address uint16) {
	st.breakpoint = address
	st.hasBreakpoint = true
}

// NewStepper creates a stepper that reads its keys a line at a time from in.
func NewStepper(dev *device.Device, in io.Reader, out io.Writer) *Stepper {
	return &Stepper{
		dev:           dev,
		keys:          &lineKeys{scanner: bufio.NewScanner(in)},
		out:           out,
		ContinueLimit: DefaultContinueLimit,
	}
}

// Run is a convenience function that creates a Stepper and runs it to
// completion.
func Run(dev *device.Device, in io.Reader, out io.Writer) error {
	return NewStepper(dev, in, out).Run()
}

// Interactive steps the device from the keyboard. If standard input is a
// terminal it is put into cbreak mode for the duration.
func Interactive(dev *device.Device, out io.Writer, breakpoint uint16, hasBreakpoint bool, limit uint64) error {
	st := NewStepper(dev, os.Stdin, out)
	if hasBreakpoint {
		st.SetBreak(breakpoint)
	}
	st.ContinueLimit = limit

	if xterm.IsTerminal(int(os.Stdin.Fd())) {
		tty, err := term.Open("/dev/tty", term.CBreakMode)
		if err != nil {
			logger.Logf(logger.Allow, "step", "cbreak unavailable: %v", err)
		} else {
			defer func() {
				_ = tty.Restore()
				_ = tty.Close()
			}()
			st.keys = &ttyKeys{tty: tty}
		}
	}

	return st.Run()
}

// Run processes keys until the quit key is pressed, the input ends or the
// device halts.
func (st *Stepper) Run() error {
	st.status()

	for {
		if st.dev.CPU.Halted() {
			st.halted()
			return nil
		}

		k, err := st.keys.next()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		switch k {
		case ' ', '\n', '\r':
			st.step()
		case 'r':
			st.dev.DumpRegs(st.out)
		case 's':
			st.dev.DumpStack(st.out)
		case 'c':
			st.cont()
		case 'q':
			return nil
		default:
			fmt.Fprintf(st.out, "unknown key %q\n", k)
		}
	}
}

func (st *Stepper) step() {
	st.dev.Tick()
	fmt.Fprintln(st.out, st.dev.CPU.LastResult.String())
}

func (st *Stepper) cont() {
	start := st.dev.CPU.Cycles()
	for st.dev.Tick() {
		if st.hasBreakpoint && uint32(st.dev.CPU.GetPC())*2 == uint32(st.breakpoint) {
			fmt.Fprintf(st.out, "break at %04x\n", st.breakpoint)
			st.status()
			return
		}
		if n := st.dev.CPU.Cycles() - start; st.ContinueLimit > 0 && n >= st.ContinueLimit {
			fmt.Fprintf(st.out, "continue stopped after %d cycles\n", n)
			st.status()
			return
		}
	}
}

func (st *Stepper) status() {
	fmt.Fprintf(st.out, "%s cycles=%d\n", st.dev.CPU, st.dev.CPU.Cycles())
}

func (st *Stepper) halted() {
	logger.Logf(logger.Allow, "step", "halted after %d cycles", st.dev.CPU.Cycles())
	fmt.Fprintf(st.out, "[HALT] %v\n", st.dev.Fault())
}
