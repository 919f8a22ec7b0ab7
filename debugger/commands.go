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
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/debugger/terminal"
	"github.com/jetsetilly/gopher65c02/disassembly"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65c02/logger"
	"github.com/jetsetilly/gopher65c02/paths"
)

// Sentinal error patterns.
const (
	UnknownCommand  = "debugger: unknown command (%s)"
	InvalidArgument = "debugger: %s: invalid argument (%s)"
	MissingArgument = "debugger: %s: missing argument"
)

// debugger keywords
const (
	cmdStep    = "STEP"
	cmdRun     = "RUN"
	cmdTrace   = "TRACE"
	cmdRegs    = "REGS"
	cmdPeek    = "PEEK"
	cmdPoke    = "POKE"
	cmdList    = "LIST"
	cmdSymbols = "SYMBOLS"
	cmdLog     = "LOG"
	cmdViz     = "VIZ"
	cmdReset   = "RESET"
	cmdKeys    = "KEYS"
	cmdHelp    = "HELP"
	cmdQuit    = "QUIT"
)

// debuggerCommands is the list of commands in the order they are shown by
// the HELP command.
var debuggerCommands = []string{
	cmdStep, cmdRun, cmdTrace, cmdRegs, cmdPeek, cmdPoke, cmdList, cmdSymbols,
	cmdLog, cmdViz, cmdReset, cmdKeys, cmdHelp, cmdQuit,
}

// abbreviations of commonly used commands
var commandAliases = map[string]string{
	"S": cmdStep,
	"R": cmdRun,
	"Q": cmdQuit,
}

// the default number of instructions shown by the LIST command
const defaultListLength = 10

// the default number of log entries shown by the LOG command
const defaultLogLength = 10

// parseInput splits the input into the command and arguments and runs the
// command.
func (dbg *Debugger) parseInput(input string) error {
	tokens := strings.Fields(input)

	// an empty line steps the CPU
	if len(tokens) == 0 {
		return dbg.step()
	}

	command := strings.ToUpper(tokens[0])
	if a, ok := commandAliases[command]; ok {
		command = a
	}
	args := tokens[1:]

	dbg.printLine(terminal.StyleEcho, "%s", strings.Join(append([]string{command}, args...), " "))

	switch command {
	case cmdStep:
		return dbg.step()

	case cmdRun:
		return dbg.run()

	case cmdTrace:
		if len(args) == 0 {
			dbg.traceRun = !dbg.traceRun
		} else {
			switch strings.ToUpper(args[0]) {
			case "ON":
				dbg.traceRun = true
			case "OFF":
				dbg.traceRun = false
			default:
				return curated.Errorf(InvalidArgument, cmdTrace, args[0])
			}
		}
		if dbg.traceRun {
			dbg.printLine(terminal.StyleFeedback, "trace on")
		} else {
			dbg.printLine(terminal.StyleFeedback, "trace off")
		}

	case cmdRegs:
		dbg.printLines(terminal.StyleInstrument, dbg.machine.Summary())

	case cmdPeek:
		return dbg.peek(args)

	case cmdPoke:
		return dbg.poke(args)

	case cmdList:
		return dbg.list(args)

	case cmdSymbols:
		if len(args) == 0 {
			dbg.printLines(terminal.StyleFeedback, dbg.symtable.String())
			break // switch command
		}
		address, ok := dbg.symtable.Search(args[0])
		if !ok {
			return curated.Errorf(InvalidArgument, cmdSymbols, args[0])
		}
		dbg.printLine(terminal.StyleFeedback, "%s = %#04x", args[0], address)

	case cmdLog:
		n := defaultLogLength
		if len(args) > 0 {
			v, err := strconv.Atoi(args[0])
			if err != nil || v < 1 {
				return curated.Errorf(InvalidArgument, cmdLog, args[0])
			}
			n = v
		}
		s := &strings.Builder{}
		logger.Tail(s, n)
		if s.Len() == 0 {
			dbg.printLine(terminal.StyleFeedback, "log is empty")
		} else {
			dbg.printLines(terminal.StyleFeedback, s.String())
		}

	case cmdViz:
		return dbg.viz(args)

	case cmdReset:
		if len(args) > 0 {
			if strings.ToUpper(args[0]) != "CLEAR" {
				return curated.Errorf(InvalidArgument, cmdReset, args[0])
			}
			dbg.machine.Mem.Clear()
			dbg.printLine(terminal.StyleFeedback, "memory cleared")
		}
		dbg.machine.Reset()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case cmdKeys:
		return dbg.keys()

	case cmdHelp:
		if len(args) == 0 {
			dbg.printLines(terminal.StyleHelp, helpSummary())
			break // switch command
		}
		h, ok := help[strings.ToUpper(args[0])]
		if !ok {
			return curated.Errorf(InvalidArgument, cmdHelp, args[0])
		}
		dbg.printLines(terminal.StyleHelp, h)

	case cmdQuit:
		dbg.running = false

	default:
		return curated.Errorf(UnknownCommand, tokens[0])
	}

	return nil
}

func (dbg *Debugger) step() error {
	halt, err := dbg.machine.Step(func(r execution.Result) error {
		dbg.printResult(r)

		// check validity of instruction result
		if r.Final {
			if err := r.IsValid(); err != nil {
				dbg.printLine(terminal.StyleError, "%s", r.Defn)
				return err
			}
		}

		return nil
	})
	if err != nil {
		return err
	}

	if halt != execution.Running {
		dbg.printLine(terminal.StyleFeedback, "halted: %s", halt)
	}

	return nil
}

func (dbg *Debugger) run() error {
	halt, err := dbg.machine.Run(dbg.trace)
	if err != nil {
		if curated.Has(err, terminal.UserInterrupt) {
			dbg.printLine(terminal.StyleFeedbackNonInteractive, "interrupted at %#04x", dbg.machine.PC())
			return nil
		}
		return err
	}

	dbg.printLine(terminal.StyleFeedback, "halted: %s", halt)
	dbg.printLines(terminal.StyleInstrument, dbg.machine.Summary())

	return nil
}

// parse an address argument. the argument can be a symbol or a hexadecimal
// number with an optional "$" or "0x" prefix.
func (dbg *Debugger) parseAddress(command string, arg string) (uint16, error) {
	if a, ok := dbg.symtable.Search(arg); ok {
		return a, nil
	}

	v, err := parseHex(arg, 16)
	if err != nil {
		return 0, curated.Errorf(InvalidArgument, command, arg)
	}

	return uint16(v), nil
}

func parseHex(s string, bitSize int) (uint64, error) {
	s = strings.TrimPrefix(s, "$")
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	return strconv.ParseUint(s, 16, bitSize)
}

func (dbg *Debugger) peek(args []string) error {
	if len(args) == 0 {
		return curated.Errorf(MissingArgument, cmdPeek)
	}

	from, err := dbg.parseAddress(cmdPeek, args[0])
	if err != nil {
		return err
	}

	to := from
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return curated.Errorf(InvalidArgument, cmdPeek, args[1])
		}
		to = uint16(min(int(from)+n-1, 0xffff))
	}

	s := &strings.Builder{}
	dbg.machine.Mem.Dump(s, from, to)
	dbg.printLines(terminal.StyleInstrument, s.String())

	return nil
}

func (dbg *Debugger) poke(args []string) error {
	if len(args) < 2 {
		return curated.Errorf(MissingArgument, cmdPoke)
	}

	address, err := dbg.parseAddress(cmdPoke, args[0])
	if err != nil {
		return err
	}

	// parse all values before poking any of them
	values := make([]uint8, 0, len(args)-1)
	for _, a := range args[1:] {
		v, err := parseHex(a, 8)
		if err != nil {
			return curated.Errorf(InvalidArgument, cmdPoke, a)
		}
		values = append(values, uint8(v))
	}

	for i, v := range values {
		dbg.machine.Poke(address+uint16(i), v)
	}

	dbg.printLine(terminal.StyleFeedback, "%d byte(s) written at %#04x", len(values), address)

	return nil
}

func (dbg *Debugger) list(args []string) error {
	address := dbg.machine.PC()
	n := defaultListLength

	if len(args) > 0 {
		var err error
		address, err = dbg.parseAddress(cmdList, args[0])
		if err != nil {
			return err
		}
	}

	if len(args) > 1 {
		v, err := strconv.Atoi(args[1])
		if err != nil || v < 1 {
			return curated.Errorf(InvalidArgument, cmdList, args[1])
		}
		n = v
	}

	// an instruction is at most three bytes long
	dsm, err := disassembly.FromMemory(dbg.machine.Mem, dbg.symtable, address, n*3)
	if err != nil {
		return err
	}

	s := &strings.Builder{}
	for i, e := range dsm.Entries {
		if i >= n {
			break // for loop
		}
		err = dsm.WriteLine(s, disassembly.WriteAttr{ByteCode: true}, e)
		if err != nil {
			return err
		}
	}
	dbg.printLines(terminal.StyleFeedback, s.String())

	return nil
}

// the values shown by the VIZ command
type vizRegisters struct {
	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.StackPointer
	Status registers.StatusRegister
	Last   execution.Result
}

func (dbg *Debugger) viz(args []string) error {
	var filename string
	if len(args) > 0 {
		filename = args[0]
	} else {
		filename = fmt.Sprintf("%s.dot", paths.UniqueFilename("memviz", dbg.shortName))
	}

	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(InvalidArgument, cmdViz, err)
	}
	defer f.Close()

	mc := dbg.machine.CPU
	memviz.Map(f, &vizRegisters{
		PC:     mc.PC,
		A:      mc.A,
		X:      mc.X,
		Y:      mc.Y,
		SP:     mc.SP,
		Status: mc.Status,
		Last:   mc.LastResult,
	})

	dbg.printLine(terminal.StyleFeedback, "register graph written to %s", filename)

	return nil
}

// KEYS mode steps the CPU on every key press.
func (dbg *Debugger) keys() error {
	ki, ok := dbg.term.(terminal.KeyInput)
	if !ok {
		return curated.Errorf("debugger: %s: not available with this terminal", cmdKeys)
	}

	dbg.printLine(terminal.StyleHelp, "space steps, r runs, q or escape returns to the prompt")

	for {
		p := dbg.prompt()
		p.Type = terminal.PromptTypeKeyStep
		dbg.printLine(terminal.StyleFeedback, "%s", p)

		r, err := ki.TermReadKey()
		if err != nil {
			if curated.Is(err, terminal.UserInterrupt) {
				return nil
			}
			return err
		}

		switch r {
		case 'q', 'Q', 27:
			return nil
		case 'r', 'R':
			return dbg.run()
		case ' ', '\n', '\r', 's', 'S':
			err = dbg.step()
			if err != nil {
				return err
			}
			if dbg.machine.Halted() != execution.Running {
				return nil
			}
		}
	}
}
