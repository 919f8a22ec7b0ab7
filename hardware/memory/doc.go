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

// Package memory implements the 64KB of RAM attached to the 65C02. The RAM
// type satisfies the cpubus.Memory interface used by the CPU and the
// cpubus.Debugger interface used by the debugging tools.
//
// Programs are loaded with the Load() function. A program larger than the
// available space is rejected before any memory is changed.
package memory
