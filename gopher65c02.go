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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/jetsetilly/gopher65c02/debugger"
	"github.com/jetsetilly/gopher65c02/debugger/remote"
	"github.com/jetsetilly/gopher65c02/debugger/terminal"
	"github.com/jetsetilly/gopher65c02/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher65c02/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher65c02/disassembly"
	"github.com/jetsetilly/gopher65c02/hardware"
	"github.com/jetsetilly/gopher65c02/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65c02/hardware/instance"
	"github.com/jetsetilly/gopher65c02/hardware/preferences"
	"github.com/jetsetilly/gopher65c02/logger"
	"github.com/jetsetilly/gopher65c02/modalflag"
	"github.com/jetsetilly/gopher65c02/paths"
	"github.com/jetsetilly/gopher65c02/performance"
	"github.com/jetsetilly/gopher65c02/prefs"
	"github.com/jetsetilly/gopher65c02/programloader"
	"github.com/jetsetilly/gopher65c02/script"
	"github.com/jetsetilly/gopher65c02/statsview"
	"github.com/jetsetilly/gopher65c02/symbols"
	"github.com/jetsetilly/gopher65c02/version"
	xterm "golang.org/x/term"
)

const preferencesFile = "preferences"

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. the return value
// is the status code for os.Exit()
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "STEP", "DISASM", "SCRIPT", "REMOTE", "PERFORMANCE")

	showVersion := md.AddBool("version", false, "show version information")
	cmdlinePrefs := md.AddString("prefs", "", "preferences for this session (eg. \"machine.instructionlimit::1000\")")
	echoLog := md.AddBool("log", false, "echo log entries to stdout")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	if *showVersion {
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s (%s)\n", version.ApplicationName, v, r)
		return 0
	}

	if *cmdlinePrefs != "" {
		prefs.PushCommandLineStack(*cmdlinePrefs)
		defer prefs.PopCommandLineStack()
	}

	if *echoLog {
		logger.SetEcho(logger.NewColorizer(output, isTerminal(output)))
		defer logger.SetEcho(nil)
	}

	if stats != nil && *stats {
		statsview.Launch(output)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)
	case "STEP":
		err = step(md)
	case "DISASM":
		err = disasm(md)
	case "SCRIPT":
		err = runScript(md)
	case "REMOTE":
		err = serveRemote(md)
	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

func isTerminal(output io.Writer) bool {
	f, ok := output.(*os.File)
	if !ok {
		return false
	}
	return xterm.IsTerminal(int(f.Fd()))
}

// newMachine creates a machine with the user's preferences. values pushed
// onto the command line stack take priority
func newMachine(label instance.Label) (*hardware.Machine, error) {
	p, err := preferences.NewPreferences(paths.ResourcePath(preferencesFile))
	if err != nil {
		return nil, err
	}

	ins, err := instance.NewInstance(label, p)
	if err != nil {
		return nil, err
	}

	return hardware.NewMachine(ins)
}

// loadProgram loads the program named by the loader into the machine and
// resets the CPU.
func loadProgram(m *hardware.Machine, loader *programloader.Loader) error {
	err := loader.Load()
	if err != nil {
		return err
	}

	err = m.LoadProgram(loader.Data)
	if err != nil {
		return err
	}

	m.Reset()

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, BIN, HEX")
	trace := md.AddBool("trace", false, "print every instruction as it is executed")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := newMachine(instance.Main)
	if err != nil {
		return err
	}

	loader := programloader.NewLoader(md.GetArg(0), *format)
	err = loadProgram(m, &loader)
	if err != nil {
		return err
	}

	var traceFn func(execution.Result) error
	if *trace {
		traceFn = func(r execution.Result) error {
			_, err := fmt.Fprintln(md.Output, r.String())
			return err
		}
	}

	_, err = m.Run(traceFn)
	fmt.Fprintln(md.Output, m.Summary())

	return err
}

func step(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, BIN, HEX")
	termType := md.AddString("term", "COLOR", "terminal type to use: COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := newMachine(instance.Main)
	if err != nil {
		return err
	}

	loader := programloader.NewLoader(md.GetArg(0), *format)
	err = loadProgram(m, &loader)
	if err != nil {
		return err
	}

	// a missing symbols file is not fatal
	symtable, err := symbols.ReadSymbolsFile(loader.Filename)
	if err != nil {
		logger.Log(logger.Allow, "step", err)
	}

	// the color terminal only makes sense if the program is attached to a real
	// terminal
	var term terminal.Terminal
	plain := plainterm.NewPlainTerminal(nil, nil)

	switch strings.ToUpper(*termType) {
	default:
		fmt.Fprintf(md.Output, "! unknown terminal type (%s) defaulting to plain\n", *termType)
		term = plain
	case "PLAIN":
		term = plain
	case "COLOR":
		if plain.IsRealTerminal() {
			term = &colorterm.ColorTerminal{}
		} else {
			term = plain
		}
	}

	dbg, err := debugger.NewDebugger(m, term, symtable)
	if err != nil {
		return err
	}
	dbg.SetShortName(loader.ShortName())

	return dbg.Start()
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, BIN, HEX")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	cycles := md.AddBool("cycles", false, "include cycle counts in disassembly")
	grep := md.AddString("grep", "", "only show instructions matching the search string")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	attr := disassembly.WriteAttr{
		ByteCode: *bytecode,
		Cycles:   *cycles,
	}

	loader := programloader.NewLoader(md.GetArg(0), *format)
	dsm, err := disassembly.FromProgram(loader, 0)
	if err != nil {
		return err
	}

	if *grep != "" {
		return dsm.Grep(md.Output, attr, *grep)
	}

	return dsm.Write(md.Output, attr)
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, BIN, HEX")
	md.AdditionalHelp("usage: SCRIPT [flags] <script file> [program]")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("script file required for %s mode", md)
	case 1, 2:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := newMachine(instance.Script)
	if err != nil {
		return err
	}

	// scripts should run the same whatever the user's preferences
	m.Instance.Normalise()

	if md.GetArg(1) != "" {
		loader := programloader.NewLoader(md.GetArg(1), *format)
		err = loadProgram(m, &loader)
		if err != nil {
			return err
		}
	}

	h := script.NewHarness(m, md.Output)
	defer h.Close()

	return h.RunFile(md.GetArg(0))
}

func serveRemote(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, BIN, HEX")
	address := md.AddString("addr", remote.DefaultAddress, "address to listen on")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 1 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	m, err := newMachine(instance.Remote)
	if err != nil {
		return err
	}

	if md.GetArg(0) != "" {
		loader := programloader.NewLoader(md.GetArg(0), *format)
		err = loadProgram(m, &loader)
		if err != nil {
			return err
		}
	}

	srv := remote.NewServer(m)

	// ctrl-c stops the server gracefully
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	go func() {
		<-intChan
		srv.Stop()
	}()

	fmt.Fprintf(md.Output, "listening on %s\n", *address)

	return srv.ListenAndServe(*address)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	format := md.AddString("format", programloader.FormatAuto, "program format: AUTO, BIN, HEX")
	duration := md.AddString("duration", "5s", "run duration")
	profile := md.AddString("profile", "NONE", "create profiling information: CPU, MEM, TRACE or ALL. comma separated")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("program required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	m, err := newMachine(instance.Main)
	if err != nil {
		return err
	}
	m.Instance.Normalise()

	loader := programloader.NewLoader(md.GetArg(0), *format)
	err = loadProgram(m, &loader)
	if err != nil {
		return err
	}

	_, err = performance.Check(md.Output, prf, m, *duration)
	return err
}
