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

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher65c02/curated"
	"github.com/jetsetilly/gopher65c02/hardware"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/logger"
)

// PerformanceError is the pattern for errors returned by Check().
const PerformanceError = "performance: %v"

// the timer channel is only checked every brake instructions
const brake = 1000

// sentinal error returned by the run loop.
var timedOut = errors.New("performance timed out")

// Results of a call to Check().
type Results struct {
	Instructions int
	Cycles       int
	Duration     time.Duration
}

// InstructionsPerSecond returns the average number of instructions executed
// per second.
func (r Results) InstructionsPerSecond() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Instructions) / r.Duration.Seconds()
}

// MHz returns the equivalent clock speed of the emulation.
func (r Results) MHz() float64 {
	if r.Duration <= 0 {
		return 0
	}
	return float64(r.Cycles) / r.Duration.Seconds() / 1000000
}

func (r Results) String() string {
	return fmt.Sprintf("%.0f instructions per second (%d instructions in %.2f seconds) %.2fMHz",
		r.InstructionsPerSecond(), r.Instructions, r.Duration.Seconds(), r.MHz())
}

// Check the performance of the emulator using the program that has already
// been loaded into the machine.
//
// Emulation will run for the specified duration. The machine is reset every
// time the program halts so the emulation never runs out of work. Profiles
// are created as defined by the Profile argument.
func Check(output io.Writer, profile Profile, m *hardware.Machine, duration string) (Results, error) {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return Results{}, curated.Errorf(PerformanceError, err)
	}

	m.Reset()

	var res Results

	runner := func() error {
		timer := time.NewTimer(dur)
		defer timer.Stop()

		startInstructions := m.InstructionCount()
		startCycles := m.Cycles()
		start := time.Now()

		// instruction and cycle counts are reset with the machine so they
		// are accumulated before every reset
		accumulate := func() {
			res.Instructions += m.InstructionCount() - startInstructions
			res.Cycles += m.Cycles() - startCycles
		}

		for n := 0; ; n++ {
			if n >= brake {
				n = 0
				select {
				case <-timer.C:
					accumulate()
					res.Duration = time.Since(start)
					return timedOut
				default:
				}
			}

			halt, err := m.Step(nil)
			if err != nil {
				return err
			}

			if halt != execution.Running {
				accumulate()
				m.CPU.Reset()
				startInstructions = m.InstructionCount()
				startCycles = m.Cycles()
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return Results{}, curated.Errorf(PerformanceError, err)
	}

	logger.Logf(logger.Allow, "performance", "%d instructions in %s", res.Instructions, res.Duration)

	_, err = fmt.Fprintln(output, res.String())
	if err != nil {
		return res, curated.Errorf(PerformanceError, err)
	}

	return res, nil
}
