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

package preferences_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher65c02/hardware/preferences"
	"github.com/jetsetilly/gopher65c02/prefs"
	"github.com/jetsetilly/gopher65c02/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.StackDiagnostics.Get().(bool), false)
	test.ExpectEquality(t, p.InstructionLimit.Get().(int), 0)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("cpu.stackdiagnostics::true; machine.instructionlimit::100")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferences("")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.StackDiagnostics.Get().(bool), true)
	test.ExpectEquality(t, p.InstructionLimit.Get().(int), 100)
}

func TestSaveAndLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.InstructionLimit.Set(5000))
	test.DemandSuccess(t, p.Save())

	_, err = os.Stat(fn)
	test.DemandSuccess(t, err)

	q, err := preferences.NewPreferences(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.InstructionLimit.Get().(int), 5000)

	q.SetDefaults()
	test.ExpectEquality(t, q.InstructionLimit.Get().(int), 0)
	test.DemandSuccess(t, q.Load())
	test.ExpectEquality(t, q.InstructionLimit.Get().(int), 5000)
}
