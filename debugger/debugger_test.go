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

package debugger_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65c02/debugger"
	"github.com/jetsetilly/gopher65c02/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher65c02/hardware"
	"github.com/jetsetilly/gopher65c02/test"
)

var program = []byte{
	0xa9, 0x01, // LDA #$01
	0x69, 0x02, // ADC #$02
	0x00,       // BRK
}

// run the debugger with the input and return the output.
func session(t *testing.T, input string) (*hardware.Machine, *test.CompareWriter) {
	t.Helper()

	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.LoadProgram(program))

	w := &test.CompareWriter{}
	dbg, err := debugger.NewDebugger(m, plainterm.NewPlainTerminal(strings.NewReader(input), w), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())

	return m, w
}

func TestNewDebugger(t *testing.T) {
	_, err := debugger.NewDebugger(nil, plainterm.NewPlainTerminal(strings.NewReader(""), &test.CompareWriter{}), nil)
	test.ExpectFailure(t, err)

	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	_, err = debugger.NewDebugger(m, nil, nil)
	test.ExpectFailure(t, err)
}

func TestStep(t *testing.T) {
	m, w := session(t, "\ns\nstep\n")
	test.ExpectEquality(t, w.String(), "0000  a9 01     LDA #$01\n0002  69 02     ADC #$02\n0004  00        BRK\nhalted: break\n")
	test.ExpectEquality(t, m.A(), 0x03)
	test.ExpectEquality(t, m.InstructionCount(), 3)
}

func TestRun(t *testing.T) {
	m, w := session(t, "run\n")
	test.ExpectSuccess(t, w.Contains("halted: break\n"))
	test.ExpectSuccess(t, w.Contains("instructions=3"))
	test.ExpectEquality(t, m.PC(), 0x0005)

	// trace prints every instruction executed by RUN
	_, w = session(t, "trace on\nr\n")
	test.ExpectSuccess(t, w.Contains("trace on\n0000  a9 01     LDA #$01\n0002  69 02     ADC #$02\n0004  00        BRK\nhalted: break\n"))
}

func TestRegs(t *testing.T) {
	_, w := session(t, "s\nregs\nreset\nregs\n")
	test.ExpectSuccess(t, w.Contains("PC=0x0002 A=0x01 X=0x00 Y=0x00"))
	test.ExpectSuccess(t, w.Contains("machine reset\nPC=0x0000 A=0x00 X=0x00 Y=0x00"))
}

func TestResetClear(t *testing.T) {
	m, w := session(t, "reset clear\nreset nothing\n")
	test.ExpectSuccess(t, w.Contains("memory cleared\nmachine reset\n"))
	test.ExpectSuccess(t, w.Contains("* debugger: RESET: invalid argument (nothing)\n"))
	test.ExpectEquality(t, m.Peek(0x0000), 0x00)
	test.ExpectEquality(t, m.Peek(0x0002), 0x00)
}

func TestPeekPoke(t *testing.T) {
	m, w := session(t, "peek 0 4\npoke $10 ff 0xee\npeek 0x10\n")
	test.ExpectSuccess(t, w.Contains("0000 | a9 01 69 02"))
	test.ExpectSuccess(t, w.Contains("2 byte(s) written at 0x0010\n"))
	test.ExpectSuccess(t, w.Contains("0010 | ff"))
	test.ExpectEquality(t, m.Peek(0x0010), 0xff)
	test.ExpectEquality(t, m.Peek(0x0011), 0xee)

	// a bad value means nothing is written
	m, w = session(t, "poke 20 01 zz\npoke 20\npeek\n")
	test.ExpectSuccess(t, w.Contains("* debugger: POKE: invalid argument (zz)\n"))
	test.ExpectSuccess(t, w.Contains("* debugger: POKE: missing argument\n"))
	test.ExpectSuccess(t, w.Contains("* debugger: PEEK: missing argument\n"))
	test.ExpectEquality(t, m.Peek(0x0020), 0x00)
}

func TestList(t *testing.T) {
	_, w := session(t, "list 0 2\n")
	test.ExpectEquality(t, w.String(), "  0x0000  a9 01     LDA #$01\n  0x0002  69 02     ADC #$02\n")
}

func TestSymbols(t *testing.T) {
	_, w := session(t, "symbols reset_vector\npeek irq_vector 2\nsymbols nothing\n")
	test.ExpectSuccess(t, w.Contains("reset_vector = 0xfffc\n"))
	test.ExpectSuccess(t, w.Contains("fff0 |"))
	test.ExpectSuccess(t, w.Contains("* debugger: SYMBOLS: invalid argument (nothing)\n"))
}

func TestErrors(t *testing.T) {
	_, w := session(t, "foo\nkeys\ntrace maybe\n")
	test.ExpectSuccess(t, w.Contains("* debugger: unknown command (foo)\n"))
	test.ExpectSuccess(t, w.Contains("* debugger: KEYS: not available with this terminal\n"))
	test.ExpectSuccess(t, w.Contains("* debugger: TRACE: invalid argument (maybe)\n"))

	// an unassigned opcode is reported and the session continues
	m, err := hardware.NewMachine(nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, m.LoadProgram([]byte{0x02}))

	w = &test.CompareWriter{}
	dbg, err := debugger.NewDebugger(m, plainterm.NewPlainTerminal(strings.NewReader("s\nregs\n"), w), nil)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, dbg.Start())
	test.ExpectSuccess(t, w.Contains("* machine: cpu: unassigned opcode (0x02) at 0x0000\n"))
	test.ExpectSuccess(t, w.Contains("PC=0x0001"))
}

func TestHelp(t *testing.T) {
	_, w := session(t, "help\nhelp peek\n")
	test.ExpectSuccess(t, w.Contains("available commands:"))
	test.ExpectSuccess(t, w.Contains("  PEEK ADDRESS [COUNT]"))
}

func TestQuit(t *testing.T) {
	m, w := session(t, "s\nq\ns\n")
	test.ExpectEquality(t, m.InstructionCount(), 1)
	test.ExpectEquality(t, w.String(), "0000  a9 01     LDA #$01\n")
}

func TestViz(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "regs.dot")
	_, w := session(t, "s\nviz "+fn+"\n")
	test.ExpectSuccess(t, w.Contains("register graph written to "+fn))

	d, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, len(d) > 0)
}

func TestLog(t *testing.T) {
	_, w := session(t, "log 50\n")
	test.ExpectSuccess(t, w.Contains("loaded 5 bytes"))
}
