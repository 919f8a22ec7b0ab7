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
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/debugger/terminal"
	"github.com/jetsetilly/gopher65c02/disassembly"
	"github.com/jetsetilly/gopher65c02/hardware"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/logger"
	"github.com/jetsetilly/gopher65c02/symbols"
)

// the maximum length of a line of input
const inputBufferSize = 255

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	machine *hardware.Machine
	term    terminal.Terminal

	// symbols used to resolve addresses given as arguments and to label
	// disassembly output
	symtable *symbols.Table

	// the name used to create unique filenames for the VIZ command
	shortName string

	events *terminal.ReadEvents

	// print each instruction as it is executed by the RUN command
	traceRun bool

	// the input loop continues while running is true
	running bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The symtable argument can be nil.
func NewDebugger(machine *hardware.Machine, term terminal.Terminal, symtable *symbols.Table) (*Debugger, error) {
	if machine == nil {
		return nil, curated.Errorf("debugger: %v", "no machine")
	}
	if term == nil {
		return nil, curated.Errorf("debugger: %v", "no terminal")
	}

	if symtable == nil {
		symtable = symbols.StandardSymbolTable()
	}

	dbg := &Debugger{
		machine:  machine,
		term:     term,
		symtable: symtable,
		events: &terminal.ReadEvents{
			IntEvents: make(chan os.Signal, 1),
		},
	}

	return dbg, nil
}

// SetShortName sets the name of the program being debugged. The name is used
// when creating files.
func (dbg *Debugger) SetShortName(name string) {
	dbg.shortName = name
}

// Start the main debugger sequence. Start() returns when the user quits the
// debugger or when the terminal has no more input.
func (dbg *Debugger) Start() error {
	err := dbg.term.Initialise()
	if err != nil {
		return curated.Errorf("debugger: %v", err)
	}
	defer dbg.term.CleanUp()

	dbg.term.RegisterTabCompletion(newTabCompletion(dbg.symtable))

	signal.Notify(dbg.events.IntEvents, os.Interrupt)
	defer signal.Stop(dbg.events.IntEvents)

	logger.Log(logger.Allow, "debugger", "session started")

	return dbg.inputLoop()
}

func (dbg *Debugger) inputLoop() error {
	buffer := make([]byte, inputBufferSize)

	dbg.running = true
	for dbg.running {
		n, err := dbg.term.TermRead(buffer, dbg.prompt(), dbg.events)
		if err != nil {
			if err == io.EOF || curated.Is(err, terminal.UserAbort) || curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return curated.Errorf("debugger: %v", err)
		}

		err = dbg.parseInput(string(buffer[:n]))
		if err != nil {
			dbg.printLine(terminal.StyleError, "%s", err)
		}
	}

	return nil
}

// the prompt shows the next instruction to be executed.
func (dbg *Debugger) prompt() terminal.Prompt {
	p := terminal.Prompt{
		Type:    terminal.PromptTypeCPUStep,
		Content: fmt.Sprintf("%#04x", dbg.machine.PC()),
	}

	dsm, err := disassembly.FromMemory(dbg.machine.Mem, dbg.symtable, dbg.machine.PC(), 1)
	if err == nil && len(dsm.Entries) > 0 {
		e := dsm.Entries[0]
		p.Content = strings.TrimSpace(fmt.Sprintf("%s %s %s", p.Content, e.Mnemonic(), e.Operand()))
	}

	return p
}

func (dbg *Debugger) printLine(style terminal.Style, format string, args ...any) {
	dbg.term.TermPrintLine(style, fmt.Sprintf(format, args...))
}

// print multi-line strings one line at a time.
func (dbg *Debugger) printLines(style terminal.Style, s string) {
	for _, l := range strings.Split(strings.TrimRight(s, "\n"), "\n") {
		dbg.term.TermPrintLine(style, l)
	}
}

func (dbg *Debugger) printResult(r execution.Result) {
	s := r.String()
	if r.BranchSuccess {
		s = fmt.Sprintf("%s (branched)", s)
	}
	if r.StackWrap {
		s = fmt.Sprintf("%s (stack wrap)", s)
	}
	dbg.term.TermPrintLine(terminal.StyleCPUStep, s)
}

// trace is the trace function used by the RUN and STEP commands. it also
// checks for an interrupt signal, which stops the RUN command.
func (dbg *Debugger) trace(r execution.Result) error {
	if dbg.traceRun {
		dbg.printResult(r)
	}

	select {
	case <-dbg.events.IntEvents:
		return curated.Errorf(terminal.UserInterrupt)
	default:
	}

	return nil
}
