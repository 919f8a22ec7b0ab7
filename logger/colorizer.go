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

package logger

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colorizer applies basic colouring rules to logging output. The tag of each
// entry is printed in cyan and any repeat count is dimmed.
type Colorizer struct {
	out    io.Writer
	tag    *color.Color
	repeat *color.Color
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type. Colouring is disabled when enable is false, which is useful when out
// is not a terminal.
func NewColorizer(out io.Writer, enable bool) Colorizer {
	c := Colorizer{
		out:    out,
		tag:    color.New(color.FgCyan),
		repeat: color.New(color.Faint),
	}
	if enable {
		c.tag.EnableColor()
		c.repeat.EnableColor()
	} else {
		c.tag.DisableColor()
		c.repeat.DisableColor()
	}
	return c
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	for _, l := range strings.SplitAfter(string(p), "\n") {
		if l == "" {
			continue
		}

		tag, detail, ok := strings.Cut(l, ": ")
		if !ok {
			if _, err := io.WriteString(c.out, l); err != nil {
				return 0, err
			}
			continue
		}

		var repeat string
		if i := strings.LastIndex(detail, " (repeat x"); i >= 0 {
			repeat = strings.TrimSuffix(detail[i:], "\n")
			detail = detail[:i] + strings.TrimPrefix(detail[i:], repeat)
		}

		if _, err := c.tag.Fprint(c.out, tag); err != nil {
			return 0, err
		}
		if _, err := io.WriteString(c.out, ": "+strings.TrimSuffix(detail, "\n")); err != nil {
			return 0, err
		}
		if repeat != "" {
			if _, err := c.repeat.Fprint(c.out, repeat); err != nil {
				return 0, err
			}
		}
		if strings.HasSuffix(l, "\n") {
			if _, err := io.WriteString(c.out, "\n"); err != nil {
				return 0, err
			}
		}
	}

	return len(p), nil
}
