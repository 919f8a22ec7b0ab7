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

package programloader

import (
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher65c02/curated"
)

// DecodeHex converts hex text to a program.
func DecodeHex(s string) ([]byte, error) {
	var data []byte

	for i, l := range strings.Split(s, "\n") {
		// remove comments
		if c := strings.IndexAny(l, ";#"); c >= 0 {
			l = l[:c]
		}

		for _, f := range strings.Fields(l) {
			f = strings.TrimPrefix(f, "$")
			f = strings.TrimPrefix(strings.ToLower(f), "0x")

			if len(f) != 2 {
				return nil, curated.Errorf(InvalidHex, i+1, f)
			}

			v, err := strconv.ParseUint(f, 16, 8)
			if err != nil {
				return nil, curated.Errorf(InvalidHex, i+1, f)
			}

			data = append(data, uint8(v))
		}
	}

	return data, nil
}
