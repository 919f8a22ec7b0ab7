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

// Package archivefs allows files inside zip archives to be opened as though
// the archive was a directory in the normal file system. For example:
//
//	programs/tests.zip/logical/and.bin
//
// Only files can be opened. Directories, whether in the file system or in an
// archive, can be set with Path.Set() but an attempt to open them will fail.
package archivefs
