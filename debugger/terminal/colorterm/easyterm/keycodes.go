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

package easyterm

// Key codes read from the terminal in raw mode.
const (
	KeyInterrupt         = 3 // end-of-text character
	KeyEndOfTransmission = 4
	KeySuspend           = 26 // substitute character
	KeyTab               = 9
	KeyLineFeed          = 10
	KeyCarriageReturn    = 13
	KeyEsc               = 27
	KeyBackspace         = 8
	KeyDelete            = 127
)

// The second byte of an escape sequence.
const (
	EscCursor = 91
)

// The third byte of a cursor escape sequence.
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
	CursorHome     = 'H'
	CursorEnd      = 'F'
	CursorDelete   = '3' // followed by '~'
)
