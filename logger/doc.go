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

// Package logger is the central log for the application. There is only one
// log and it is accessed through the package level functions. Separate
// instances can be created with NewLogger() but that is only useful for
// testing.
//
// Every log request carries a Permission. Code that may run in a context
// where logging is inappropriate (a scripted run for example) can supply a
// Permission that answers false.
//
// Identical consecutive entries are collapsed into one entry with a repeat
// count.
//
// The Colorizer type can wrap an io.Writer to add colour to output from
// Write() and Tail().
package logger
