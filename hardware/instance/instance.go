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

// Package instance holds the values that are unique to a single emulated
// machine. Running several machines side-by-side requires one instance
// per machine.
package instance

import (
	"github.com/jetsetilly/gopher65c02/hardware/preferences"
)

// Label is used to name the instance.
type Label string

// List of valid Label values.
const (
	Main   Label = ""
	Remote Label = "remote"
	Script Label = "script"
)

// Instance defines those parts of the emulation that might change between
// different instantiations of the Machine type, and not just the Machine
// type.
type Instance struct {
	Label Label

	// the preferences of the running instance. this instance can be shared
	// with other running instances of the emulation
	Prefs *preferences.Preferences
}

// NewInstance is the preferred method of initialisation for the Instance
// type. The preferences argument can be nil, in which case a new set of
// preferences is created. The new preferences are never saved to disk.
func NewInstance(label Label, prefs *preferences.Preferences) (*Instance, error) {
	ins := &Instance{
		Label: label,
	}

	var err error

	if prefs == nil {
		prefs, err = preferences.NewPreferences("")
		if err != nil {
			return nil, err
		}
	}

	ins.Prefs = prefs

	return ins, nil
}

// Normalise ensures the instance is in a known default state. Useful for
// scripted and regression tests where the user's preferences should be
// ignored.
func (ins *Instance) Normalise() {
	ins.Prefs.SetDefaults()
}
