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

import (
	"fmt"
)

// ANSI escape sequences for cursor control.
const (
	ClearLine     = "\033[2K"
	CursorStore   = "\033[s"
	CursorRestore = "\033[u"
)

// CursorMove returns the ANSI sequence that moves the cursor the number of
// columns. Negative values move the cursor left.
func CursorMove(cols int) string {
	switch {
	case cols > 0:
		return fmt.Sprintf("\033[%dC", cols)
	case cols < 0:
		return fmt.Sprintf("\033[%dD", -cols)
	}
	return ""
}
