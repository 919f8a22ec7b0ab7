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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/hardware"
	"github.com/jetsetilly/gopher65c02/script"
	"github.com/jetsetilly/gopher65c02/test"
)

func newHarness(t *testing.T) (*script.Harness, *test.CompareWriter) {
	t.Helper()

	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)

	w := &test.CompareWriter{}
	h := script.NewHarness(m, w)
	t.Cleanup(h.Close)

	return h, w
}

func TestScenarios(t *testing.T) {
	h, _ := newHarness(t)

	// ADC with signed overflow
	err := h.Run(`
		load({0xa9, 0x50, 0x69, 0x50, 0x00})
		expect(run(), "break")
		expect(reg("A"), 0xa0, "sum")
		expect(flag("V"), true, "overflow")
		expect(flag("N"), true, "negative")
		expect(flag("C"), false, "carry")
		expect(count(), 3, "count")
		expect(reg("PC"), 5, "pc")
	`)
	test.ExpectSuccess(t, err)

	// loop with a branch
	err = h.Run(`
		reset()
		load("a2 05 ca d0 fd 86 20 00")
		expect(step(), "running")
		expect(reg("x"), 5)
		expect(run(), "break")
		expect(reg("X"), 0)
		expect(flag("z"), true)
		expect(peek(0x20), 0)
		expect(count(), 13)
	`)
	test.ExpectSuccess(t, err)
}

func TestPokeAndStack(t *testing.T) {
	h, _ := newHarness(t)

	err := h.Run(`
		poke(0x0200, 0x42)
		expect(peek(0x0200), 0x42)

		poke(0x0300, 0x11, 0x22, 0x33)
		expect(peek(0x0300), 0x11)
		expect(peek(0x0301), 0x22)
		expect(peek(0x0302), 0x33)

		-- LDA #$7f; PHA; LDA #$00; PLA; BRK
		load({0xa9, 0x7f, 0x48, 0xa9, 0x00, 0x68, 0x00})
		reset()
		expect(run(), "break")
		expect(reg("A"), 0x7f)
		expect(reg("SP"), 0x00)
		expect(peek(0x0100), 0x7f)
		expect(cycles() > 0, true)
	`)
	test.ExpectSuccess(t, err)
}

func TestExpectationFailed(t *testing.T) {
	h, _ := newHarness(t)

	err := h.Run(`
		load({0xa9, 0x01, 0x00})
		run()
		expect(reg("A"), 2, "accumulator")
	`)
	test.ExpectSuccess(t, curated.Is(err, script.ExpectationFailed))
	test.ExpectEquality(t, err.Error(), "script: expectation failed (accumulator): got 0x01 (1), want 0x02 (2)")

	// a following script is not affected by the earlier failure
	err = h.Run(`expect(reg("A"), 1)`)
	test.ExpectSuccess(t, err)
}

func TestScriptErrors(t *testing.T) {
	h, _ := newHarness(t)

	// syntax error
	err := h.Run(`expect(`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	// unassigned opcodes stop the script
	err = h.Run(`
		load({0x02})
		reset()
		run()
	`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	// unless the script is expecting them
	err = h.Run(`
		reset()
		local ok, msg = pcall(run)
		expect(ok, false)
	`)
	test.ExpectSuccess(t, err)

	err = h.Run(`reg("Q")`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = h.Run(`load("zz")`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = h.Run(`load({1, 2, 300})`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	// fractional values are not bytes
	err = h.Run(`load({0xa9, 3.7, 0x00})`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	// no value is written if any value is out of range
	err = h.Run(`poke(0x0400, 0x01, 0x100)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
	err = h.Run(`poke(0x0400, 0x01, 0.5)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
	err = h.Run(`expect(peek(0x0400), 0)`)
	test.ExpectSuccess(t, err)

	err = h.Run(`poke(0x0400)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = h.Run(`poke(0x10000, 1)`)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}

func TestPrint(t *testing.T) {
	h, w := newHarness(t)

	err := h.Run(`print("A", 1, true)`)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, w.String(), "A\t1\ttrue\n")
}

func TestRunFile(t *testing.T) {
	h, _ := newHarness(t)

	dir := t.TempDir()
	prg := filepath.Join(dir, "prog.bin")
	test.DemandSuccess(t, os.WriteFile(prg, []byte{0xa0, 0x09, 0xc8, 0x00}, 0o600))

	lua := filepath.Join(dir, "test.lua")
	src := `loadfile("` + filepath.ToSlash(prg) + `")
expect(run(), "break")
expect(reg("Y"), 0x0a)
`
	test.DemandSuccess(t, os.WriteFile(lua, []byte(src), 0o600))

	test.ExpectSuccess(t, h.RunFile(lua))

	err := h.RunFile(filepath.Join(dir, "missing.lua"))
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}
