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

// Package debugger implements a single-step console for the emulated 65C02.
// The debugger reads commands from a terminal.Terminal, which means it can
// be driven interactively or from a pre-prepared stream of commands.
//
// The debugger is created with NewDebugger() and takes control of the
// calling goroutine with Start(). Commands are case-insensitive. An empty
// line steps the CPU forward by one instruction.
//
// A running program can be interrupted with CTRL-C. Interrupting the
// debugger at the prompt ends the session.
package debugger
