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

package script

import (
	"fmt"
	"io"
	"strings"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/cpu/registers"
	"github.com/jetsetilly/gopher1626/hardware/device"
	"github.com/jetsetilly/gopher1626/logger"
	lua "github.com/yuin/gopher-lua"
)

// Sentinel error patterns.
const (
	ScriptError = "script: %v"
)

// Script is a Lua state bound to a device.
type Script struct {
	dev *device.Device
	out io.Writer
	L   *lua.LState
}

// NewScript creates a Lua state with the device functions installed. Close()
// should be called when the script is no longer required.
func NewScript(dev *device.Device, out io.Writer) *Script {
	scr := &Script{
		dev: dev,
		out: out,
		L:   lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"step":   scr.step,
		"reg":    scr.reg,
		"sp":     scr.sp,
		"pc":     scr.pc,
		"cycles": scr.cycles,
		"peek":   scr.peek,
		"poke":   scr.poke,
		"trace":  scr.trace,
		"log":    scr.log,
		"fault":  scr.fault,
		"print":  scr.print,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the Lua state.
func (scr *Script) Close() {
	scr.L.Close()
}

// DoFile runs the named Lua file.
func (scr *Script) DoFile(path string) error {
	if err := scr.L.DoFile(path); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// DoString runs a Lua chunk.
func (scr *Script) DoString(src string) error {
	if err := scr.L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// Run the Lua file against the device.
func Run(dev *device.Device, path string, out io.Writer) error {
	scr := NewScript(dev, out)
	defer scr.Close()
	logger.Logf(logger.Allow, "script", "running %s", path)
	return scr.DoFile(path)
}

// RunString runs a Lua chunk against the device.
func RunString(dev *device.Device, src string, out io.Writer) error {
	scr := NewScript(dev, out)
	defer scr.Close()
	return scr.DoString(src)
}

// checkAddress returns argument n as a 16 bit address or raises a Lua error.
func checkAddress(L *lua.LState, n int) uint16 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xffff {
		L.ArgError(n, fmt.Sprintf("address out of range: %d", v))
	}
	return uint16(v)
}

func (scr *Script) step(L *lua.LState) int {
	n := L.OptInt(1, 1)
	running := !scr.dev.CPU.Halted()
	for i := 0; i < n && running; i++ {
		running = scr.dev.Tick()
	}
	L.Push(lua.LBool(running))
	return 1
}

func (scr *Script) reg(L *lua.LState) int {
	i := L.CheckInt(1)
	if i < 0 || i >= registers.NumRegisters {
		L.ArgError(1, fmt.Sprintf("no such register: %d", i))
	}
	L.Push(lua.LNumber(scr.dev.CPU.GetR(i)))
	return 1
}

func (scr *Script) sp(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dev.CPU.GetSP()))
	return 1
}

func (scr *Script) pc(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dev.CPU.GetPC()))
	return 1
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.dev.CPU.Cycles()))
	return 1
}

func (scr *Script) peek(L *lua.LState) int {
	v, ok := scr.dev.Peek(checkAddress(L, 1))
	L.Push(lua.LNumber(v))
	L.Push(lua.LBool(ok))
	return 2
}

func (scr *Script) poke(L *lua.LState) int {
	addr := checkAddress(L, 1)
	v := L.CheckInt(2)
	if v < 0 || v > 0xff {
		L.ArgError(2, fmt.Sprintf("value out of range: %d", v))
	}
	if err := scr.dev.Poke(addr, uint8(v)); err != nil {
		logger.Log(logger.Allow, "script", err)
		L.Push(lua.LFalse)
		return 1
	}
	L.Push(lua.LTrue)
	return 1
}

func (scr *Script) trace(L *lua.LState) int {
	scr.dev.Debug(L.ToBool(1))
	return 0
}

func (scr *Script) log(L *lua.LState) int {
	logger.Log(logger.Allow, "script", L.CheckString(1))
	return 0
}

func (scr *Script) fault(L *lua.LState) int {
	if err := scr.dev.Fault(); err != nil {
		L.Push(lua.LString(err.Error()))
		return 1
	}
	L.Push(lua.LNil)
	return 1
}

func (scr *Script) print(L *lua.LState) int {
	if scr.out == nil {
		return 0
	}
	s := make([]string, L.GetTop())
	for i := range s {
		s[i] = L.ToStringMeta(L.Get(i + 1)).String()
	}
	fmt.Fprintln(scr.out, strings.Join(s, "\t"))
	return 0
}
