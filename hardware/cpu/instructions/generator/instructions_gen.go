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

// instructions_gen reads the instruction definitions in instructions.csv
// and writes the Definitions table to table.go in the parent package. It is
// run with "go generate" from the instructions package directory.
package main

import (
	"encoding/csv"
	"fmt"
	"go/format"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopher65c02/hardware/cpu/instructions"
)

const definitionsCSVFile = "generator/instructions.csv"
const generatedGoFile = "table.go"

const licenseHeader = `// This file is part of Gopher65C02.
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
// along with Gopher65C02.  If not, see <https://www.gnu.org/licenses/>.`

const leadingBoilerPlate = "\n\n// Code generated by generator/instructions_gen.go. DO NOT EDIT.\n\n" +
	"package instructions\n\n" +
	"// Definitions is the table of instruction definitions for the 65C02, indexed\n" +
	"// by opcode. Unassigned opcodes have a nil entry.\n" +
	"var Definitions = [256]*Definition{"

const trailingBoilerPlate = "\n}\n"

var addressingModes = map[string]instructions.AddressingMode{
	"IMPLIED":                   instructions.Implied,
	"ACCUMULATOR":               instructions.Accumulator,
	"IMMEDIATE":                 instructions.Immediate,
	"RELATIVE":                  instructions.Relative,
	"ZERO_PAGE":                 instructions.ZeroPage,
	"ZERO_PAGE_INDEXED_X":       instructions.ZeroPageIndexedX,
	"ZERO_PAGE_INDEXED_Y":       instructions.ZeroPageIndexedY,
	"ABSOLUTE":                  instructions.Absolute,
	"ABSOLUTE_INDEXED_X":        instructions.AbsoluteIndexedX,
	"ABSOLUTE_INDEXED_Y":        instructions.AbsoluteIndexedY,
	"INDEXED_INDIRECT":          instructions.IndexedIndirect,
	"INDIRECT_INDEXED":          instructions.IndirectIndexed,
	"ZERO_PAGE_INDIRECT":        instructions.ZeroPageIndirect,
	"ABSOLUTE_INDIRECT":         instructions.AbsoluteIndirect,
	"ABSOLUTE_INDEXED_INDIRECT": instructions.AbsoluteIndexedIndirect,
}

var effects = map[string]instructions.Category{
	"READ":        instructions.Read,
	"WRITE":       instructions.Write,
	"RMW":         instructions.RMW,
	"FLOW":        instructions.Flow,
	"SUB-ROUTINE": instructions.Subroutine,
	"INTERRUPT":   instructions.Interrupt,
}

func parseCSV() (string, error) {
	df, err := os.Open(definitionsCSVFile)
	if err != nil {
		return "", fmt.Errorf("error opening instruction definitions (%w)", err)
	}
	defer df.Close()

	csvr := csv.NewReader(df)
	csvr.Comment = '#'
	csvr.TrimLeadingSpace = true

	// the effect field is optional
	csvr.FieldsPerRecord = -1

	deftable := make(map[uint8]instructions.Definition)

	for {
		rec, err := csvr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		line, _ := csvr.FieldPos(0)

		if !(len(rec) == 5 || len(rec) == 6) {
			return "", fmt.Errorf("wrong number of fields in instruction definition (%s) [line %d]", rec, line)
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		defn := instructions.Definition{}

		n, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return "", fmt.Errorf("invalid opcode (%s) [line %d]", rec[0], line)
		}
		defn.OpCode = uint8(n)

		if _, ok := deftable[defn.OpCode]; ok {
			return "", fmt.Errorf("duplicate opcode (%#02x) [line %d]", defn.OpCode, line)
		}

		var ok bool
		defn.Operator, ok = instructions.ParseOperator(rec[1])
		if !ok {
			return "", fmt.Errorf("invalid operator for %#02x (%s) [line %d]", defn.OpCode, rec[1], line)
		}

		defn.Cycles, err = strconv.Atoi(rec[2])
		if err != nil {
			return "", fmt.Errorf("invalid cycle count for %#02x (%s) [line %d]", defn.OpCode, rec[2], line)
		}

		// the addressing mode also defines how many bytes an opcode requires
		defn.AddressingMode, ok = addressingModes[strings.ToUpper(rec[3])]
		if !ok {
			return "", fmt.Errorf("invalid addressing mode for %#02x (%s) [line %d]", defn.OpCode, rec[3], line)
		}
		defn.Bytes = defn.AddressingMode.Bytes()

		switch strings.ToUpper(rec[4]) {
		case "TRUE":
			defn.PageSensitive = true
		case "FALSE":
			defn.PageSensitive = false
		default:
			return "", fmt.Errorf("invalid page sensitivity switch for %#02x (%s) [line %d]", defn.OpCode, rec[4], line)
		}

		defn.Effect = instructions.Read
		if len(rec) == 6 {
			defn.Effect, ok = effects[strings.ToUpper(rec[5])]
			if !ok {
				return "", fmt.Errorf("unknown category for %#02x (%s) [line %d]", defn.OpCode, rec[5], line)
			}
		}

		deftable[defn.OpCode] = defn
	}

	fmt.Printf("%d opcodes defined, %d unassigned\n", len(deftable), 256-len(deftable))

	s := strings.Builder{}
	for opcode := 0; opcode < 256; opcode++ {
		if defn, ok := deftable[uint8(opcode)]; ok {
			s.WriteString(fmt.Sprintf("\n&%#v,", defn))
		} else {
			s.WriteString("\nnil,")
		}
	}

	return s.String(), nil
}

func main() {
	output, err := parseCSV()
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	// the table is written into the instructions package so remove the
	// explicit package references
	output = strings.ReplaceAll(output, "instructions.", "")
	output = fmt.Sprintf("%s%s%s%s", licenseHeader, leadingBoilerPlate, output, trailingBoilerPlate)

	formatted, err := format.Source([]byte(output))
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}

	err = os.WriteFile(generatedGoFile, formatted, 0o644)
	if err != nil {
		fmt.Printf("error during instruction table generation: %s\n", err)
		os.Exit(10)
	}
}
