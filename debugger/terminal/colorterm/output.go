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

//go:build !windows

package colorterm

import (
	"strings"

	"github.com/fatih/color"
	"github.com/jetsetilly/gopher65c02/debugger/terminal"
)

var (
	penHelp        = color.New(color.FgWhite, color.Faint)
	penFeedback    = color.New(color.FgWhite, color.Faint)
	penCPUStep     = color.New(color.FgYellow)
	penInstrument  = color.New(color.FgCyan)
	penError       = color.New(color.FgRed)
	penPrompt      = color.New(color.Bold)
	penInput       = color.New(color.FgHiWhite)
	penPromptKeyed = color.New(color.FgGreen, color.Bold)
)

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	// we don't need to output echoed input for this type of terminal
	if style == terminal.StyleEcho {
		return
	}

	ct.EasyTerm.TermPrint("\r")

	switch style {
	case terminal.StyleHelp:
		s = penHelp.Sprint(s)
	case terminal.StyleFeedback:
		s = penFeedback.Sprint(s)
	case terminal.StyleCPUStep:
		s = penCPUStep.Sprint(s)
	case terminal.StyleInstrument:
		s = penInstrument.Sprint(s)
	case terminal.StyleFeedbackNonInteractive:
		// making sure there's a newline before printing the string. because
		// this is non-interactive feedback, the user will not have pressed
		// the return key so we need to simulate this
		ct.EasyTerm.TermPrint("\n")
		s = penFeedback.Sprint(s)
	case terminal.StyleError:
		s = penError.Sprint("* " + s)
	}

	// the terminal may be in raw mode, in which case a newline does not
	// return the carriage
	ct.EasyTerm.TermPrint(strings.ReplaceAll(s, "\n", "\r\n"))
	ct.EasyTerm.TermPrint("\r\n")
}

func (ct *ColorTerminal) printPrompt(prompt terminal.Prompt) {
	switch prompt.Type {
	case terminal.PromptTypeKeyStep:
		ct.EasyTerm.TermPrint(penPromptKeyed.Sprint(prompt.String()))
	default:
		ct.EasyTerm.TermPrint(penPrompt.Sprint(prompt.String()))
	}
}
