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

//go:build !windows

package colorterm

import (
	"unicode"
	"unicode/utf8"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/debugger/terminal"
	"github.com/jetsetilly/gopher65c02/debugger/terminal/colorterm/easyterm"
)

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(input []byte, prompt terminal.Prompt, events *terminal.ReadEvents) (int, error) {
	if ct.silenced {
		return 0, nil
	}

	// check for an interrupt that arrived before we started reading
	if events != nil {
		select {
		case <-events.IntEvents:
			return 0, curated.Errorf(terminal.UserInterrupt)
		default:
		}
	}

	ct.RawMode()
	defer ct.CanonicalMode()

	if ct.tabCompletion != nil {
		ct.tabCompletion.Reset()
	}

	// er is used to store encoded runes (length of 4 should be enough)
	er := make([]byte, utf8.UTFMax)

	n := 0
	cursor := 0
	history := len(ct.commandHistory)

	// liveHistory is used to store the latest input when we scroll through
	// history. we don't want to lose what we've typed in case the user wants
	// to resume where we left off
	liveHistory := make([]byte, cap(input))
	liveHistoryLen := 0

	// the method for cursor placement is as follows:
	//	1. for each iteration in the loop
	//	2. store current cursor position
	//	3. clear the current line
	//	4. output the prompt
	//	5. output the input buffer
	//	6. restore the cursor position
	//
	// for this to work we need to place the cursor in it's initial position
	ct.EasyTerm.TermPrint("\r")
	ct.EasyTerm.TermPrint(easyterm.CursorMove(len(prompt.String())))

	for {
		ct.EasyTerm.TermPrint(easyterm.CursorStore)
		ct.EasyTerm.TermPrint("\r")
		ct.EasyTerm.TermPrint(easyterm.ClearLine)
		ct.printPrompt(prompt)
		ct.EasyTerm.TermPrint(penInput.Sprint(string(input[:n])))
		ct.EasyTerm.TermPrint(easyterm.CursorRestore)

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return n, err
		}

		if ct.tabCompletion != nil && r != easyterm.KeyTab {
			ct.tabCompletion.Reset()
		}

		switch r {
		case easyterm.KeyTab:
			if ct.tabCompletion != nil {
				s := ct.tabCompletion.Complete(string(input[:cursor]))

				// the difference in the length of the new input and the old
				// input
				d := len(s) - cursor
				if n+d > len(input) {
					break // switch r
				}

				// append everything after the cursor to the new string and
				// copy into input array
				s += string(input[cursor:n])
				copy(input, []byte(s))

				// advance character to end of completed word
				ct.EasyTerm.TermPrint(easyterm.CursorMove(d))
				cursor += d

				// note new used-length of input array
				n += d
			}

		case easyterm.KeyInterrupt:
			ct.EasyTerm.TermPrint("\r\n")
			return 0, curated.Errorf(terminal.UserInterrupt)

		case easyterm.KeyEndOfTransmission:
			// CTRL-D only aborts on an empty line
			if n == 0 {
				ct.EasyTerm.TermPrint("\r\n")
				return 0, curated.Errorf(terminal.UserAbort)
			}

		case easyterm.KeySuspend:
			ct.CanonicalMode()
			easyterm.SuspendProcess()
			ct.RawMode()

		case easyterm.KeyCarriageReturn, easyterm.KeyLineFeed:
			ct.addHistory(input[:n])
			ct.EasyTerm.TermPrint("\r\n")
			return n, nil

		case easyterm.KeyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return n, err
			}
			if r != easyterm.EscCursor {
				break // switch r
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return n, err
			}

			switch r {
			case easyterm.CursorUp:
				// move up through command history
				if history > 0 {
					// if we're at the end of the command history then store
					// the current input for possible later editing
					if history == len(ct.commandHistory) {
						liveHistoryLen = copy(liveHistory, input[:n])
					}
					history--
					n = copy(input, ct.commandHistory[history].input)
					ct.EasyTerm.TermPrint(easyterm.CursorMove(n - cursor))
					cursor = n
				}

			case easyterm.CursorDown:
				// move down through command history
				if history < len(ct.commandHistory) {
					history++
					if history == len(ct.commandHistory) {
						n = copy(input, liveHistory[:liveHistoryLen])
					} else {
						n = copy(input, ct.commandHistory[history].input)
					}
					ct.EasyTerm.TermPrint(easyterm.CursorMove(n - cursor))
					cursor = n
				}

			case easyterm.CursorForward:
				if cursor < n {
					ct.EasyTerm.TermPrint(easyterm.CursorMove(1))
					cursor++
				}

			case easyterm.CursorBackward:
				if cursor > 0 {
					ct.EasyTerm.TermPrint(easyterm.CursorMove(-1))
					cursor--
				}

			case easyterm.CursorHome:
				ct.EasyTerm.TermPrint(easyterm.CursorMove(-cursor))
				cursor = 0

			case easyterm.CursorEnd:
				ct.EasyTerm.TermPrint(easyterm.CursorMove(n - cursor))
				cursor = n

			case easyterm.CursorDelete:
				// the delete sequence is terminated by a tilde
				_, _, _ = ct.reader.ReadRune()
				if cursor < n {
					copy(input[cursor:], input[cursor+1:n])
					n--
				}
			}

		case easyterm.KeyBackspace, easyterm.KeyDelete:
			if cursor > 0 {
				copy(input[cursor-1:], input[cursor:n])
				cursor--
				n--
				ct.EasyTerm.TermPrint(easyterm.CursorMove(-1))
			}

		default:
			if unicode.IsDigit(r) || unicode.IsLetter(r) || unicode.IsSpace(r) ||
				unicode.IsPunct(r) || unicode.IsSymbol(r) {
				l := utf8.EncodeRune(er, r)

				// make sure we don't overflow the input buffer
				if n+l <= len(input) {
					copy(input[cursor+l:], input[cursor:n])
					copy(input[cursor:], er[:l])
					cursor += l
					n += l
					ct.EasyTerm.TermPrint(easyterm.CursorMove(1))
				}
			}
		}
	}
}

// TermReadKey implements the terminal.KeyInput interface.
func (ct *ColorTerminal) TermReadKey() (rune, error) {
	ct.CBreakMode()
	defer ct.CanonicalMode()

	r, _, err := ct.reader.ReadRune()
	if err != nil {
		return 0, err
	}

	if r == easyterm.KeyInterrupt {
		return 0, curated.Errorf(terminal.UserInterrupt)
	}

	return r, nil
}

// add input to the history if it is not the same as the most recent entry.
func (ct *ColorTerminal) addHistory(input []byte) {
	if len(input) == 0 {
		return
	}

	if len(ct.commandHistory) > 0 {
		if string(ct.commandHistory[len(ct.commandHistory)-1].input) == string(input) {
			return
		}
	}

	nh := make([]byte, len(input))
	copy(nh, input)
	ct.commandHistory = append(ct.commandHistory, command{input: nh})
}
