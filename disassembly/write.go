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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		err := dsm.WriteLine(output, attr, e)
		if err != nil {
			return err
		}
	}
	return nil
}

// WriteLine writes a single Entry to io.Writer. The label of the entry, if
// there is one, is written on its own line.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if e == nil {
		return nil
	}

	s := strings.Builder{}

	if e.Label != "" {
		s.WriteString(e.Label)
		s.WriteString("\n")
	}

	s.WriteString(fmt.Sprintf("  %#04x ", e.Result.Address))

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf(" %-8s ", e.Bytes()))
	}

	s.WriteString(fmt.Sprintf(" %s", e.Mnemonic()))
	if op := e.Operand(); op != "" {
		s.WriteString(" ")
		s.WriteString(op)
	}

	if attr.Cycles && e.Result.Defn != nil {
		s.WriteString(fmt.Sprintf(" [%d]", e.Result.Defn.Cycles))
	}

	s.WriteString("\n")

	_, err := io.WriteString(output, s.String())
	return err
}

// Grep writes every entry whose mnemonic or operand contains the search
// string. Matching is case-insensitive.
func (dsm *Disassembly) Grep(output io.Writer, attr WriteAttr, search string) error {
	search = strings.ToUpper(search)
	for _, e := range dsm.Entries {
		if strings.Contains(strings.ToUpper(e.Mnemonic()), search) ||
			strings.Contains(strings.ToUpper(e.Operand()), search) {
			// grep output does not include labels
			c := *e
			c.Label = ""
			err := dsm.WriteLine(output, attr, &c)
			if err != nil {
				return err
			}
		}
	}
	return nil
}
