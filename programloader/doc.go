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

// Package programloader is used to specify the program that is to be loaded
// into the memory of the emulated machine.
//
// When the program is ready to be loaded the Load() function should be used.
// The Load() function handles loading of data from different sources.
// Currently local files, files inside zip archives and data over HTTP are
// supported.
//
// Programs are either raw binary or hex text. Hex text is a sequence of
// two-digit hexadecimal values separated by whitespace. The values can be
// prefixed with "$" or "0x". Anything following a semi-colon or a hash is a
// comment.
//
//	; LDA #$42; BRK
//	a9 42
//	00
//
// The simplest instance of the Loader type:
//
//	pl := programloader.Loader{
//		Filename: "programs/test.bin",
//	}
//
// It is preferred however that the NewLoader() function is used. The
// NewLoader() function will set the format field automatically according to
// the filename extension.
package programloader
