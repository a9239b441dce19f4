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

package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bradleyjkemp/memviz"

	"github.com/jetsetilly/gopher1626/digest"
	"github.com/jetsetilly/gopher1626/disassembly"
	"github.com/jetsetilly/gopher1626/hardware/device"
	"github.com/jetsetilly/gopher1626/hardware/memory/memorymap"
	"github.com/jetsetilly/gopher1626/logger"
	"github.com/jetsetilly/gopher1626/modalflag"
	"github.com/jetsetilly/gopher1626/performance"
	"github.com/jetsetilly/gopher1626/performance/limiter"
	"github.com/jetsetilly/gopher1626/script"
	"github.com/jetsetilly/gopher1626/statsview"
	"github.com/jetsetilly/gopher1626/stepper"
	"github.com/jetsetilly/gopher1626/wavwriter"
)

// exit codes
const (
	exitOK    = 0
	exitArgs  = 10
	exitError = 20
)

// sample rate of the -wav recording
const wavSampleRate = 44100

// number of times per second the -realtime limiter releases the emulation
const realtimeSlices = 100

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("RUN", "DISASM", "MAP", "SCRIPT", "STEP", "PERFORMANCE")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitArgs
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "DISASM":
		err = disasm(md)
	case "MAP":
		err = showMap(md)
	case "SCRIPT":
		err = runScript(md)
	case "STEP":
		err = step(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitError
	}

	return exitOK
}

// partFlag adds the -part flag common to all modes.
func partFlag(md *modalflag.Modes) *string {
	return md.AddString("part", string(device.ATtiny1626), "microcontroller part")
}

// singleArg returns the only remaining argument.
func singleArg(md *modalflag.Modes, what string) (string, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return "", fmt.Errorf("%s required for %s mode", what, md)
	case 1:
		return md.GetArg(0), nil
	}
	return "", fmt.Errorf("too many arguments for %s mode", md)
}

// newDevice creates the device and loads the firmware into it.
func newDevice(output io.Writer, part string, firmware string) (*device.Device, error) {
	t, err := device.ParseType(part)
	if err != nil {
		return nil, err
	}

	dev, err := device.NewDevice(t)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(output, "[FIRMWARE] %s.\n", firmware)

	err = dev.LoadHex(firmware)
	if err != nil {
		return nil, err
	}

	return dev, nil
}

func setLog(output io.Writer, echo bool) {
	if echo {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	part := partFlag(md)
	cycleLimit := md.AddUint64("cycles", 0, "stop after this many cycles (0 for no limit)")
	registers := md.AddBool("registers", false, "dump registers when the run ends")
	stack := md.AddBool("stack", false, "dump stack when the run ends")
	debug := md.AddBool("debug", false, "print an instruction trace")
	log := md.AddBool("log", false, "echo log to stdout")
	wav := md.AddString("wav", "", "record the level of a pin to wav file")
	wavpin := md.AddString("wavpin", "PB0", "pin to record with -wav")
	memvizFile := md.AddString("memviz", "", "write a graphviz description of the address space to file")
	stats := md.AddBool("statsview", false, "launch the statsview server")
	statsAddr := md.AddString("statsviewaddr", statsview.DefaultAddr, "address for the statsview server")
	prof := md.AddString("profile", "", "profile the run: cpu, mem, block or trace")
	profDir := md.AddString("profiledir", "", "directory for profile output")
	realtime := md.AddBool("realtime", false, "limit emulation to the speed of the real part")
	digests := md.AddBool("digest", false, "print execution and state digests when the run ends")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(md.Output, *log)

	firmware, err := singleArg(md, "firmware file")
	if err != nil {
		return err
	}

	profile, err := performance.ParseProfile(*prof)
	if err != nil {
		return err
	}

	if *stats {
		err = statsview.Launch(md.Output, statsview.NewConfig(*statsAddr))
		if err != nil {
			return err
		}
	}

	dev, err := newDevice(md.Output, *part, firmware)
	if err != nil {
		return err
	}

	if *debug {
		dev.CPU.SetTraceWriter(md.Output)
		dev.Debug(true)
	}

	var aw *wavwriter.WavWriter
	var pin wavwriter.Pin
	if *wav != "" {
		pin, err = wavwriter.ParsePin(*wavpin)
		if err != nil {
			return err
		}
		aw, err = wavwriter.New(*wav, device.ClockHz, wavSampleRate)
		if err != nil {
			return err
		}
	}

	var dig *digest.Execution
	if *digests {
		dig = digest.NewExecution()
	}

	var lim *limiter.Limiter
	if *realtime {
		lim = limiter.NewLimiter(device.ClockHz, realtimeSlices)
	}

	if *cycleLimit > 0 {
		fmt.Fprintf(md.Output, "[RUN] Cycle limit is %d.\n", *cycleLimit)
	} else {
		fmt.Fprintln(md.Output, "[RUN] No cycle limit.")
	}

	err = performance.RunProfiler(profile, *profDir, func() error {
		budget := 0
		for {
			if lim != nil && budget <= 0 {
				budget = lim.Wait()
			}

			if !dev.Tick() {
				return nil
			}

			cycles := dev.CPU.LastResult.Cycles
			budget -= cycles

			if dig != nil {
				dig.Step(dev.CPU)
			}

			if aw != nil {
				aw.Step(pin.Level(dev), cycles)
			}

			if *cycleLimit > 0 && dev.CPU.Cycles() >= *cycleLimit {
				fmt.Fprintln(md.Output, "[END] Cycle limit elapsed.")
				return nil
			}
		}
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "[INFO] Programme terminated after %d cycles.\n", dev.CPU.Cycles())
	if dev.Fault() != nil {
		fmt.Fprintf(md.Output, "[HALT] %v\n", dev.Fault())
	}

	if dig != nil {
		fmt.Fprintf(md.Output, "[DIGEST] execution %s\n", dig.Hash())
		fmt.Fprintf(md.Output, "[DIGEST] state %s\n", digest.State(dev))
	}

	if *stack {
		dev.DumpStack(md.Output)
	}
	if *registers {
		dev.DumpRegs(md.Output)
	}

	if aw != nil {
		err = aw.Close()
		if err != nil {
			return err
		}
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		memviz.Map(f, dev.Mem)
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	part := partFlag(md)
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	flow := md.AddBool("flow", false, "include the successors of each instruction")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	firmware, err := singleArg(md, "firmware file")
	if err != nil {
		return err
	}

	dev, err := newDevice(io.Discard, *part, firmware)
	if err != nil {
		return err
	}

	dsm, err := disassembly.FromDevice(dev)
	if err != nil {
		return err
	}

	dsm.Write(md.Output, disassembly.WriteAttr{
		ByteCode: *bytecode,
		FlowInfo: *flow,
	})

	return nil
}

func showMap(md *modalflag.Modes) error {
	md.NewMode()

	part := partFlag(md)
	datasheet := md.AddBool("datasheet", false, "show the datasheet memory map including unimplemented blocks")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *datasheet {
		fmt.Fprint(md.Output, memorymap.Summary())
		return nil
	}

	t, err := device.ParseType(*part)
	if err != nil {
		return err
	}
	dev, err := device.NewDevice(t)
	if err != nil {
		return err
	}
	fmt.Fprint(md.Output, dev.Summary())

	return nil
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()

	part := partFlag(md)
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	setLog(md.Output, *log)

	if len(md.RemainingArgs()) != 2 {
		return fmt.Errorf("firmware file and script required for %s mode", md)
	}

	dev, err := newDevice(md.Output, *part, md.GetArg(0))
	if err != nil {
		return err
	}

	return script.Run(dev, md.GetArg(1), md.Output)
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	part := partFlag(md)
	brk, hasBreak := md.AddAddress("break", 0, "flash address at which continue stops")
	contLimit := md.AddUint64("contlimit", stepper.DefaultContinueLimit, "cycles after which continue stops (0 for no limit)")
	md.AdditionalHelp("keys: space/enter step, r registers, s stack, c continue, q quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	firmware, err := singleArg(md, "firmware file")
	if err != nil {
		return err
	}

	dev, err := newDevice(md.Output, *part, firmware)
	if err != nil {
		return err
	}

	return stepper.Interactive(dev, md.Output, *brk, hasBreak(), *contLimit)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	part := partFlag(md)
	duration := md.AddDuration("duration", 5*time.Second, "run for this length of time")
	prof := md.AddString("profile", "", "profile the run: cpu, mem, block or trace")
	profDir := md.AddString("profiledir", "", "directory for profile output")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	firmware, err := singleArg(md, "firmware file")
	if err != nil {
		return err
	}

	profile, err := performance.ParseProfile(*prof)
	if err != nil {
		return err
	}

	dev, err := newDevice(md.Output, *part, firmware)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, dev, *duration, profile, *profDir)
}
