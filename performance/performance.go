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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/hardware/chip8"
	"github.com/wrkean/chip8-emu/playmode"
	"github.com/wrkean/chip8-emu/romloader"
)

// Sentinel errors raised by this package.
const PerfError = "performance: %v"

// how often (in frames) the running emulation checks the wall clock. the
// check is cheap but there's no point doing it every frame
const clockBrake = 64

// Check the performance of the emulation using the supplied rom. The
// emulation runs headless and uncapped for the specified duration; the
// summary written to output compares the achieved frame rate against the
// 60Hz of a real session.
//
// A cpu and/or memory profile is created as specified by the profile
// argument.
func Check(output io.Writer, profile Profile, cartload romloader.Loader, duration string, cyclesPerFrame int) error {
	if cyclesPerFrame <= 0 {
		cyclesPerFrame = playmode.DefaultCyclesPerFrame
	}

	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerfError, err)
	}

	if err := cartload.Load(); err != nil {
		return curated.Errorf(PerfError, err)
	}

	vm := chip8.NewChip8()
	if err := vm.Load(cartload.Data, chip8.Fontset); err != nil {
		return curated.Errorf(PerfError, err)
	}

	var frames int
	var cycles int
	var elapsed time.Duration

	runner := func() error {
		start := time.Now()
		deadline := start.Add(dur)

		for {
			for i := 0; i < cyclesPerFrame; i++ {
				if err := vm.Step(); err != nil {
					// a rom that runs out of road is not a performance
					// measurement failure. note it and stop
					fmt.Fprintf(output, "emulation ended early: %v\n", err)
					elapsed = time.Since(start)
					return nil
				}
			}
			if err := vm.TickTimers(); err != nil {
				return err
			}
			vm.DrawFlag = false
			frames++
			cycles += cyclesPerFrame

			if frames%clockBrake == 0 && time.Now().After(deadline) {
				elapsed = time.Since(start)
				return nil
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(PerfError, err)
	}

	if elapsed <= 0 {
		elapsed = dur
	}

	fps := float64(frames) / elapsed.Seconds()
	fmt.Fprintf(output, "%d frames in %v\n", frames, elapsed.Round(time.Millisecond))
	fmt.Fprintf(output, "%.1f fps (%.1fx speed of a live session at %dHz)\n",
		fps, fps/float64(chip8.TimerHz), chip8.TimerHz)
	fmt.Fprintf(output, "%.0f instructions per second\n", float64(cycles)/elapsed.Seconds())

	return nil
}
