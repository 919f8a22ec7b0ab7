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
	"fmt"
	"sort"
	"strings"
	"sync"
)

// Table maps an address to a symbol. It also keeps track of the widest
// symbol in the Table.
type Table struct {
	crit sync.Mutex

	// indexed by address
	entries map[uint16]string

	// index of keys in entries, kept in address order
	idx []uint16

	// the longest symbol in the entries map
	maxWidth int
}

// NewTable is the preferred method of initialisation for the Table type.
func NewTable() *Table {
	return &Table{
		entries: make(map[uint16]string),
	}
}

func (t *Table) String() string {
	t.crit.Lock()
	defer t.crit.Unlock()

	s := strings.Builder{}
	for _, a := range t.idx {
		s.WriteString(fmt.Sprintf("%#04x -> %s\n", a, t.entries[a]))
	}
	return s.String()
}

// Add symbol to the table. An existing symbol for the address is only
// replaced if prefer is true.
func (t *Table) Add(address uint16, symbol string, prefer bool) {
	t.crit.Lock()
	defer t.crit.Unlock()

	if _, ok := t.entries[address]; ok {
		if prefer {
			t.entries[address] = symbol
			t.maxWidth = max(t.maxWidth, len(symbol))
		}
		return
	}

	t.entries[address] = symbol
	t.idx = append(t.idx, address)
	sort.Slice(t.idx, func(i, j int) bool {
		return t.idx[i] < t.idx[j]
	})
	t.maxWidth = max(t.maxWidth, len(symbol))
}

// Get the symbol for the address.
func (t *Table) Get(address uint16) (string, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()
	s, ok := t.entries[address]
	return s, ok
}

// Search for the address of the symbol. Matching is case-insensitive.
func (t *Table) Search(symbol string) (uint16, bool) {
	t.crit.Lock()
	defer t.crit.Unlock()

	for _, a := range t.idx {
		if strings.EqualFold(t.entries[a], symbol) {
			return a, true
		}
	}
	return 0, false
}

// List returns the symbols in address order.
func (t *Table) List() []string {
	t.crit.Lock()
	defer t.crit.Unlock()

	l := make([]string, 0, len(t.idx))
	for _, a := range t.idx {
		l = append(l, t.entries[a])
	}
	return l
}

// Len returns the number of symbols in the table.
func (t *Table) Len() int {
	t.crit.Lock()
	defer t.crit.Unlock()
	return len(t.idx)
}

// MaxWidth returns the length of the longest symbol in the table.
func (t *Table) MaxWidth() int {
	t.crit.Lock()
	defer t.crit.Unlock()
	return t.maxWidth
}
