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

package plainterm_test

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/debugger/terminal"
	"github.com/jetsetilly/gopher65c02/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher65c02/test"
)

func TestRead(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\r\nregs\nquit"), &test.CompareWriter{})
	test.DemandSuccess(t, pt.Initialise())
	defer pt.CleanUp()

	test.ExpectFailure(t, pt.IsInteractive())

	buf := make([]byte, 256)
	prompt := terminal.Prompt{Content: "0x0000"}

	n, err := pt.TermRead(buf, prompt, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf[:n]), "step")

	n, err = pt.TermRead(buf, prompt, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf[:n]), "regs")

	// final line has no newline
	n, err = pt.TermRead(buf, prompt, nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf[:n]), "quit")

	_, err = pt.TermRead(buf, prompt, nil)
	test.ExpectSuccess(t, err == io.EOF)
}

func TestInterrupt(t *testing.T) {
	pt := plainterm.NewPlainTerminal(strings.NewReader("step\n"), &test.CompareWriter{})

	events := &terminal.ReadEvents{IntEvents: make(chan os.Signal, 1)}
	events.IntEvents <- os.Interrupt

	_, err := pt.TermRead(make([]byte, 256), terminal.Prompt{}, events)
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))
}

func TestPrint(t *testing.T) {
	w := &test.CompareWriter{}
	pt := plainterm.NewPlainTerminal(strings.NewReader(""), w)

	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleEcho, "echo is ignored")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, w.String(), "hello\n* bad\n")

	w.Clear()
	pt.Silence(true)
	pt.TermPrintLine(terminal.StyleFeedback, "hello")
	pt.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectEquality(t, w.String(), "* bad\n")
}
