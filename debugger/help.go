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
)

var help = map[string]string{
	cmdStep:    "Execute the next instruction. An empty line or S is the same as STEP.",
	cmdRun:     "Run until the CPU halts. CTRL-C interrupts a running program. R is the same as RUN.",
	cmdTrace:   "Toggle printing of every instruction executed by RUN. Takes an optional ON or OFF argument.",
	cmdRegs:    "Show the registers, the status flags and the instruction and cycle counts.",
	cmdPeek:    "Show the contents of memory.\n\n  PEEK ADDRESS [COUNT]\n\nADDRESS can be a symbol or a hex value.",
	cmdPoke:    "Write one or more values to memory.\n\n  POKE ADDRESS VALUE [VALUE ...]\n\nValues are hex bytes.",
	cmdList:    "Disassemble memory. The default address is the program counter.\n\n  LIST [ADDRESS] [COUNT]",
	cmdSymbols: "List the symbols table or show the address of a symbol.\n\n  SYMBOLS [NAME]",
	cmdLog:     "Show the most recent log entries.\n\n  LOG [COUNT]",
	cmdViz:     "Write a graphviz description of the CPU registers to a file.\n\n  VIZ [FILENAME]",
	cmdReset:   "Reset the CPU. Memory is not changed unless CLEAR is given.\n\n  RESET [CLEAR]",
	cmdKeys:    "Step the CPU on every key press. Not available with every terminal.",
	cmdHelp:    "Show help for a command.\n\n  HELP [COMMAND]",
	cmdQuit:    "Exit the debugger. Q is the same as QUIT.",
}

func helpSummary() string {
	s := strings.Builder{}
	s.WriteString("available commands:\n")
	for i, c := range debuggerCommands {
		if i > 0 && i%7 == 0 {
			s.WriteString("\n")
		}
		s.WriteString("  ")
		s.WriteString(c)
	}
	return s.String()
}
