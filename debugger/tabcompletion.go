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

package debugger

import (
	"strings"

	"github.com/jetsetilly/gopher65c02/symbols"
)

// tabCompletion implements the terminal.TabCompletion interface. The first
// word of the input is completed from the list of debugger commands. The
// argument to commands that take an address is completed from the symbols
// table.
type tabCompletion struct {
	symtable *symbols.Table

	options    []string
	lastOption int

	// lastGuess is the last string returned by the Complete function. we use
	// it to help decide whether to start a new completion session
	lastGuess string
}

func newTabCompletion(symtable *symbols.Table) *tabCompletion {
	return &tabCompletion{
		symtable: symtable,
		options:  make([]string, 0, len(debuggerCommands)),
	}
}

// commands that take an address as their first argument
var addressCommands = map[string]bool{
	cmdPeek:    true,
	cmdPoke:    true,
	cmdList:    true,
	cmdSymbols: true,
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	p := strings.Split(input, " ")

	if input == tc.lastGuess && tc.lastGuess != "" {
		// if there was only one option in the option list then return
		// immediately
		if len(tc.options) <= 1 {
			return input
		}

		// shorten the input by one word (getting rid of the last completion
		// effort) and step to next option
		p = p[:len(p)-1]
		tc.lastOption++
		if tc.lastOption >= len(tc.options) {
			tc.lastOption = 0
		}
	} else {
		// this is a new tabcompletion session
		tc.options = tc.options[:0]
		tc.lastOption = 0

		trigger := strings.ToUpper(p[len(p)-1])

		switch {
		case len(p) == 1:
			for _, c := range debuggerCommands {
				if strings.HasPrefix(c, trigger) {
					tc.options = append(tc.options, c)
				}
			}
		case len(p) == 2 && addressCommands[strings.ToUpper(p[0])] && tc.symtable != nil:
			for _, s := range tc.symtable.List() {
				if strings.HasPrefix(strings.ToUpper(s), trigger) {
					tc.options = append(tc.options, s)
				}
			}
		}

		// no completion options - return input unchanged
		if len(tc.options) == 0 {
			return input
		}
	}

	// change the last word in the supplied input to the chosen option
	p[len(p)-1] = tc.options[tc.lastOption]

	// rejoin all parts of the input along with the altered last word
	tc.lastGuess = strings.Join(p, " ") + " "

	return tc.lastGuess
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.lastGuess = ""
}
