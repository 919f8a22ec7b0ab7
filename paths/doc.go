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

// Package paths contains functions to prepare paths for Gopher65C02 resources.
//
// The ResourcePath() function returns the path to a resource in the
// Gopher65C02 configuration directory. If a directory named ".gopher65c02"
// exists in the current working directory then that directory is used in
// preference to the user's configuration directory.
//
// The UniqueFilename() function creates filenames for files created by the
// debugger that will not clash with earlier files.
package paths
