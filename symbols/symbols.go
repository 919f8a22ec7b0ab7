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

package symbols

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher65c02/curated"
)

// Sentinal error patterns.
const (
	SymbolsFileUnavailable = "symbols: file unavailable (%s)"
)

// SymbolsFilename returns the name of the symbols file for the program.
func SymbolsFilename(programFilename string) string {
	ext := filepath.Ext(programFilename)
	sym := ".sym"
	if ext == strings.ToUpper(ext) && ext != "" {
		sym = ".SYM"
	}
	return programFilename[:len(programFilename)-len(ext)] + sym
}

// ReadSymbolsFile initialises a symbols table from the symbols file for the
// specified program. The returned table is always valid, even when an error
// is returned. In that case the table contains the standard symbols only.
//
// Symbols in the file are preferred over the standard symbols.
func ReadSymbolsFile(programFilename string) (*Table, error) {
	table := StandardSymbolTable()

	if programFilename == "" {
		return table, nil
	}

	sym, err := os.ReadFile(SymbolsFilename(programFilename))
	if err != nil {
		return table, curated.Errorf(SymbolsFileUnavailable, SymbolsFilename(programFilename))
	}

	Parse(table, string(sym))

	return table, nil
}

// Parse the contents of a symbols file and add the symbols to the table.
func Parse(table *Table, sym string) {
	for _, ln := range strings.Split(sym, "\n") {
		// ignore uninteresting lines
		p := strings.Fields(ln)
		if len(p) < 2 || strings.HasPrefix(p[0], ";") {
			continue // for loop
		}

		// get address. a leading "$" is allowed
		address, err := strconv.ParseUint(strings.TrimPrefix(p[1], "$"), 16, 16)
		if err != nil {
			continue // for loop
		}

		table.Add(uint16(address), p[0], true)
	}
}
