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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the concept of modes, with each mode having its own set of
// flags. For example, the command line
//
//	gopher65c02 STEP -trace program.bin
//
// selects the STEP mode, sets the trace flag for that mode and leaves
// "program.bin" as the remaining argument.
//
// A Modes instance is initialised with NewArgs(). Sub-modes and flags are
// added and then Parse() is called. The first sub-mode listed is the default
// mode and is selected when the first argument does not name a mode.
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "STEP")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "trace instructions")
//		...
//	}
//
// The path of selected modes, separated by "/", is returned by Path().
package modalflag
