// This file is part of Chip8-Emu.
//
// Chip8-Emu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chip8-Emu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chip8-Emu.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/wrkean/chip8-emu/disassembly"
	"github.com/wrkean/chip8-emu/logger"
	"github.com/wrkean/chip8-emu/performance"
	"github.com/wrkean/chip8-emu/playmode"
	"github.com/wrkean/chip8-emu/romloader"
	"github.com/wrkean/chip8-emu/statsview"
	"github.com/wrkean/chip8-emu/version"
)

// the sub-modes the emulator can be launched in. RUN is the default and
// can be omitted from the command line.
const (
	modeRun     = "RUN"
	modePerf    = "PERF"
	modeDisasm  = "DISASM"
	modeVersion = "VERSION"
)

func main() {
	args := os.Args[1:]

	mode := modeRun
	if len(args) > 0 {
		switch strings.ToUpper(args[0]) {
		case modeRun:
			mode = modeRun
			args = args[1:]
		case modePerf:
			mode = modePerf
			args = args[1:]
		case modeDisasm:
			mode = modeDisasm
			args = args[1:]
		case modeVersion:
			mode = modeVersion
			args = args[1:]
		}
	}

	var err error

	switch mode {
	case modeRun:
		err = play(args)
	case modePerf:
		err = perf(args)
	case modeDisasm:
		err = disasm(args)
	case modeVersion:
		fmt.Printf("%s (%s)\n", version.ApplicationName, version.Version())
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "* %v\n", err)
		os.Exit(2)
	}
}

// romArg returns the single rom filename argument expected by every mode.
func romArg(flags *flag.FlagSet) (romloader.Loader, error) {
	if flags.NArg() != 1 {
		return romloader.Loader{}, fmt.Errorf("one rom file required")
	}
	return romloader.NewLoader(flags.Arg(0)), nil
}

func play(args []string) error {
	flags := flag.NewFlagSet(modeRun, flag.ExitOnError)
	scale := flags.Int("scale", playmode.DefaultScale, "window size of a single display pixel")
	cpf := flags.Int("cpf", playmode.DefaultCyclesPerFrame, "instructions per frame")
	useTerm := flags.Bool("term", false, "render in the terminal instead of an SDL window")
	wavFile := flags.String("wav", "", "record beeps to the named WAV file instead of playing them")
	logEcho := flags.Bool("log", false, "echo log entries to stderr as they happen")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *logEcho {
		logger.SetEcho(os.Stderr)
	}

	cartload, err := romArg(flags)
	if err != nil {
		return err
	}

	err = playmode.Play(cartload, *scale, *useTerm, *wavFile, *cpf)

	// the log is useful when a session ends in error, even without -log
	if err != nil && !*logEcho {
		logger.Write(os.Stderr)
	}

	return err
}

func perf(args []string) error {
	flags := flag.NewFlagSet(modePerf, flag.ExitOnError)
	duration := flags.String("duration", "5s", "run duration (time.Duration format)")
	profile := flags.String("profile", "none", "profiles to create: none, cpu, mem or all")
	cpf := flags.Int("cpf", playmode.DefaultCyclesPerFrame, "instructions per frame")
	stats := flags.Bool("statsview", false, "run a statsview server for the duration")
	if err := flags.Parse(args); err != nil {
		return err
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(os.Stdout)
	}

	cartload, err := romArg(flags)
	if err != nil {
		return err
	}

	return performance.Check(os.Stdout, prof, cartload, *duration, *cpf)
}

func disasm(args []string) error {
	flags := flag.NewFlagSet(modeDisasm, flag.ExitOnError)
	if err := flags.Parse(args); err != nil {
		return err
	}

	cartload, err := romArg(flags)
	if err != nil {
		return err
	}

	return disassembly.FromLoader(os.Stdout, cartload)
}
