// This file is part of Gopher65C02.
//
// Gopher65C02 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65C02 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65C02.  If not, see <https://www.gnu.org/licenses/>.

package script

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/hardware"
	"github.com/jetsetilly/gopher65c02/logger"
	"github.com/jetsetilly/gopher65c02/programloader"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ExpectationFailed = "script: expectation failed (%s): got %s, want %s"
	ScriptError       = "script: %v"
)

// Harness is a Lua environment bound to a Machine.
type Harness struct {
	machine *hardware.Machine
	L       *lua.LState
	output  io.Writer

	// the most recent failed expectation. the Lua error raised by expect()
	// is replaced by this error when the script stops
	failure error
}

// NewHarness is the preferred method of initialisation for the Harness type.
// The output of the Lua print() function is sent to the io.Writer.
func NewHarness(machine *hardware.Machine, output io.Writer) *Harness {
	if output == nil {
		output = io.Discard
	}

	h := &Harness{
		machine: machine,
		L:       lua.NewState(),
		output:  output,
	}

	funcs := map[string]lua.LGFunction{
		"load":     h.load,
		"loadfile": h.loadfile,
		"reset":    h.reset,
		"run":      h.run,
		"step":     h.step,
		"reg":      h.reg,
		"flag":     h.flag,
		"peek":     h.peek,
		"poke":     h.poke,
		"count":    h.count,
		"cycles":   h.cycles,
		"expect":   h.expect,
		"print":    h.print,
	}
	for n, f := range funcs {
		h.L.SetGlobal(n, h.L.NewFunction(f))
	}

	return h
}

// Close the Lua environment. The Harness should not be used after this.
func (h *Harness) Close() {
	h.L.Close()
}

// Run the Lua source.
func (h *Harness) Run(source string) error {
	h.failure = nil
	return h.result(h.L.DoString(source))
}

// RunFile runs the Lua source in the named file.
func (h *Harness) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	h.failure = nil
	return h.result(h.L.DoFile(filename))
}

func (h *Harness) result(err error) error {
	if err == nil {
		return nil
	}

	if h.failure != nil {
		f := h.failure
		h.failure = nil
		return f
	}

	return curated.Errorf(ScriptError, err)
}

func (h *Harness) load(L *lua.LState) int {
	var program []byte

	switch v := L.CheckAny(1).(type) {
	case *lua.LTable:
		program = make([]byte, 0, v.Len())
		for i := 1; i <= v.Len(); i++ {
			n, ok := v.RawGetInt(i).(lua.LNumber)
			if !ok || n < 0 || n > 255 || float64(n) != math.Trunc(float64(n)) {
				L.ArgError(1, fmt.Sprintf("element %d is not a byte", i))
				return 0
			}
			program = append(program, byte(n))
		}
	case lua.LString:
		var err error
		program, err = programloader.DecodeHex(string(v))
		if err != nil {
			L.RaiseError("%v", err)
			return 0
		}
	default:
		L.ArgError(1, "table or string expected")
		return 0
	}

	err := h.machine.LoadProgram(program)
	if err != nil {
		L.RaiseError("%v", err)
	}

	return 0
}

func (h *Harness) loadfile(L *lua.LState) int {
	ld := programloader.NewLoader(L.CheckString(1), programloader.FormatAuto)
	err := ld.Load()
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}

	err = h.machine.LoadProgram(ld.Data)
	if err != nil {
		L.RaiseError("%v", err)
	}

	return 0
}

func (h *Harness) reset(L *lua.LState) int {
	h.machine.Reset()
	return 0
}

func (h *Harness) run(L *lua.LState) int {
	halt, err := h.machine.Run(nil)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LString(halt.String()))
	return 1
}

func (h *Harness) step(L *lua.LState) int {
	halt, err := h.machine.Step(nil)
	if err != nil {
		L.RaiseError("%v", err)
		return 0
	}
	L.Push(lua.LString(halt.String()))
	return 1
}

func (h *Harness) reg(L *lua.LState) int {
	var v int

	switch strings.ToUpper(L.CheckString(1)) {
	case "A":
		v = int(h.machine.A())
	case "X":
		v = int(h.machine.X())
	case "Y":
		v = int(h.machine.Y())
	case "SP":
		v = int(h.machine.SP())
	case "PC":
		v = int(h.machine.PC())
	case "SR", "P":
		v = int(h.machine.Status())
	default:
		L.ArgError(1, "unknown register")
		return 0
	}

	L.Push(lua.LNumber(v))
	return 1
}

func (h *Harness) flag(L *lua.LState) int {
	f := h.machine.Flags()

	var v bool

	switch strings.ToUpper(L.CheckString(1)) {
	case "N":
		v = f.Sign
	case "V":
		v = f.Overflow
	case "U":
		v = f.Unused
	case "B":
		v = f.Break
	case "D":
		v = f.DecimalMode
	case "I":
		v = f.InterruptDisable
	case "Z":
		v = f.Zero
	case "C":
		v = f.Carry
	default:
		L.ArgError(1, "unknown flag")
		return 0
	}

	L.Push(lua.LBool(v))
	return 1
}

func checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(a)
}

func (h *Harness) peek(L *lua.LState) int {
	L.Push(lua.LNumber(h.machine.Peek(checkAddress(L, 1))))
	return 1
}

func (h *Harness) poke(L *lua.LState) int {
	a := checkAddress(L, 1)
	L.CheckAny(2)

	// check all values before poking any of them
	values := make([]uint8, 0, L.GetTop()-1)
	for i := 2; i <= L.GetTop(); i++ {
		v := L.CheckNumber(i)
		if v < 0 || v > 0xff || float64(v) != math.Trunc(float64(v)) {
			L.ArgError(i, "value is not a byte")
			return 0
		}
		values = append(values, uint8(v))
	}

	for i, v := range values {
		h.machine.Poke(a+uint16(i), v)
	}

	return 0
}

func (h *Harness) count(L *lua.LState) int {
	L.Push(lua.LNumber(h.machine.InstructionCount()))
	return 1
}

func (h *Harness) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(h.machine.Cycles()))
	return 1
}

func (h *Harness) expect(L *lua.LState) int {
	got := L.CheckAny(1)
	want := L.CheckAny(2)
	msg := L.OptString(3, "expect")

	if !L.Equal(got, want) {
		h.failure = curated.Errorf(ExpectationFailed, msg, formatValue(got), formatValue(want))
		L.RaiseError("%v", h.failure)
	}

	return 0
}

// numbers are shown in hex and decimal.
func formatValue(v lua.LValue) string {
	if n, ok := v.(lua.LNumber); ok && float64(n) == float64(int64(n)) {
		return fmt.Sprintf("%#02x (%d)", int64(n), int64(n))
	}
	return v.String()
}

func (h *Harness) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	_, _ = fmt.Fprintln(h.output, strings.Join(s, "\t"))
	return 0
}
