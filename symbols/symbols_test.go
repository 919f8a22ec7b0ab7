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

package symbols_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/symbols"
	"github.com/jetsetilly/gopher65c02/test"
)

func TestTable(t *testing.T) {
	tbl := symbols.NewTable()
	tbl.Add(0x0010, "loop", false)
	tbl.Add(0x0000, "start", false)
	tbl.Add(0x0010, "ignored", false)
	test.ExpectEquality(t, tbl.Len(), 2)
	test.ExpectEquality(t, tbl.MaxWidth(), 5)

	s, ok := tbl.Get(0x0010)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "loop")

	tbl.Add(0x0010, "mainloop", true)
	s, _ = tbl.Get(0x0010)
	test.ExpectEquality(t, s, "mainloop")
	test.ExpectEquality(t, tbl.MaxWidth(), 8)

	a, ok := tbl.Search("MAINLOOP")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, 0x0010)

	_, ok = tbl.Search("foo")
	test.ExpectFailure(t, ok)

	// entries are listed in address order
	test.ExpectEquality(t, strings.Join(tbl.List(), ","), "start,mainloop")
	test.ExpectEquality(t, tbl.String(), "0x0000 -> start\n0x0010 -> mainloop\n")
}

func TestSymbolsFilename(t *testing.T) {
	test.ExpectEquality(t, symbols.SymbolsFilename("test.bin"), "test.sym")
	test.ExpectEquality(t, symbols.SymbolsFilename("TEST.BIN"), "TEST.SYM")
	test.ExpectEquality(t, symbols.SymbolsFilename("test"), "test.sym")
}

func TestReadSymbolsFile(t *testing.T) {
	dir := t.TempDir()
	prg := filepath.Join(dir, "test.bin")

	// no symbols file. the standard symbols are still available
	tbl, err := symbols.ReadSymbolsFile(prg)
	test.ExpectSuccess(t, curated.Is(err, symbols.SymbolsFileUnavailable))
	s, ok := tbl.Get(0xfffc)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, "RESET_VECTOR")

	sym := "; comment\nstart 0000\nloop $0010\nbad zzzz\nSTACK_TOP 01ff\nnoaddress\n"
	test.DemandSuccess(t, os.WriteFile(filepath.Join(dir, "test.sym"), []byte(sym), 0o600))

	tbl, err = symbols.ReadSymbolsFile(prg)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tbl.Len(), 7)

	a, ok := tbl.Search("loop")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, 0x0010)

	a, ok = tbl.Search("stack")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, a, 0x0100)

	_, ok = tbl.Search("bad")
	test.ExpectFailure(t, ok)
}
