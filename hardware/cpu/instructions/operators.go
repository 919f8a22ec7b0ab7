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

package instructions

import "fmt"

// Operator defines which operation is performed by an instruction. Many
// opcodes share the same operator and differ only in addressing mode.
type Operator int

// List of valid Operator values. The zero value does not represent an
// operation.
const (
	NoOperator Operator = iota
	ADC
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRA
	BRK
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JMP
	JSR
	LDA
	LDX
	LDY
	LSR
	NOP
	ORA
	PHA
	PHP
	PHX
	PHY
	PLA
	PLP
	PLX
	PLY
	ROL
	ROR
	RTI
	RTS
	SBC
	SEC
	SED
	SEI
	STA
	STX
	STY
	STZ
	TAX
	TAY
	TRB
	TSB
	TSX
	TXA
	TXS
	TYA
)

var operatorNames = []string{
	"???",
	"ADC",
	"AND",
	"ASL",
	"BCC",
	"BCS",
	"BEQ",
	"BIT",
	"BMI",
	"BNE",
	"BPL",
	"BRA",
	"BRK",
	"BVC",
	"BVS",
	"CLC",
	"CLD",
	"CLI",
	"CLV",
	"CMP",
	"CPX",
	"CPY",
	"DEC",
	"DEX",
	"DEY",
	"EOR",
	"INC",
	"INX",
	"INY",
	"JMP",
	"JSR",
	"LDA",
	"LDX",
	"LDY",
	"LSR",
	"NOP",
	"ORA",
	"PHA",
	"PHP",
	"PHX",
	"PHY",
	"PLA",
	"PLP",
	"PLX",
	"PLY",
	"ROL",
	"ROR",
	"RTI",
	"RTS",
	"SBC",
	"SEC",
	"SED",
	"SEI",
	"STA",
	"STX",
	"STY",
	"STZ",
	"TAX",
	"TAY",
	"TRB",
	"TSB",
	"TSX",
	"TXA",
	"TXS",
	"TYA",
}

// String returns the mnemonic of the operator.
func (op Operator) String() string {
	if op < 0 || int(op) >= len(operatorNames) {
		return "???"
	}
	return operatorNames[op]
}

// GoString is used by the generator when writing the definitions table.
func (op Operator) GoString() string {
	return fmt.Sprintf("instructions.%s", op.String())
}

// ParseOperator returns the operator for a mnemonic. Case sensitive.
func ParseOperator(mnemonic string) (Operator, bool) {
	for i := range operatorNames {
		if i > 0 && operatorNames[i] == mnemonic {
			return Operator(i), true
		}
	}
	return NoOperator, false
}
