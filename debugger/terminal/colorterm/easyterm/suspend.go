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

//go:build !windows

package easyterm

import (
	"syscall"
)

// SuspendProcess sends the TSTP signal to the process. Raw mode disables the
// terminal's own handling of the suspend key.
func SuspendProcess() {
	_ = syscall.Kill(syscall.Getpid(), syscall.SIGTSTP)
}
