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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectEquality() family of functions report an error with t.Errorf()
// and allow the test to continue. The Demand*() functions report with
// t.Fatalf() and stop the test immediately.
//
// The ExpectSuccess() and ExpectFailure() functions accept bool or error
// values. A nil error is a success.
//
// CompareWriter and RingWriter are io.Writer implementations that capture
// output for later comparison.
package test
