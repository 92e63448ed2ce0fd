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

package playmode

import (
	"os"
	"os/signal"

	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/gui"
	"github.com/wrkean/chip8-emu/gui/sdlaudio"
	"github.com/wrkean/chip8-emu/gui/sdlplay"
	"github.com/wrkean/chip8-emu/gui/termplay"
	"github.com/wrkean/chip8-emu/hardware/chip8"
	"github.com/wrkean/chip8-emu/performance/limiter"
	"github.com/wrkean/chip8-emu/romloader"
	"github.com/wrkean/chip8-emu/version"
	"github.com/wrkean/chip8-emu/wavwriter"
)

// Sentinel errors raised by this package.
const PlayError = "playmode: %v"

// DefaultCyclesPerFrame is the number of instructions executed per frame
// when the user doesn't ask for anything different. The frame rate is fixed
// at the timer cadence (60Hz) so this is the primary throughput control.
const DefaultCyclesPerFrame = 15

// DefaultScale is the window scale: the size of one CHIP-8 pixel in window
// pixels.
const DefaultScale = 20

// Play sets the emulation running. The function returns when the window is
// closed, the user presses escape (or ctrl-c), or the machine errors.
//
// When useTerm is true the framebuffer is rendered in the terminal instead
// of an SDL window. When wavFile is not empty the beep track is recorded to
// that file instead of being played live.
func Play(cartload romloader.Loader, scale int, useTerm bool, wavFile string, cyclesPerFrame int) error {
	if cyclesPerFrame <= 0 {
		cyclesPerFrame = DefaultCyclesPerFrame
	}
	if scale <= 0 {
		scale = DefaultScale
	}

	if err := cartload.Load(); err != nil {
		return curated.Errorf(PlayError, err)
	}

	vm := chip8.NewChip8()
	if err := vm.Load(cartload.Data, chip8.Fontset); err != nil {
		return curated.Errorf(PlayError, err)
	}

	var scr gui.GUI
	var err error

	if useTerm {
		scr, err = termplay.NewTermPlay()
	} else {
		scr, err = sdlplay.NewSdlPlay(version.ApplicationName+": "+cartload.ShortName(), scale)
	}
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	defer scr.End()

	// the beeper: a live SDL device normally, a WAV recording when asked
	// for, nothing at all in the terminal (no SDL audio without SDL init)
	var beeper chip8.Beeper
	if wavFile != "" {
		beeper, err = wavwriter.New(wavFile)
	} else if !useTerm {
		beeper, err = sdlaudio.NewAudio()
	}
	if err != nil {
		return curated.Errorf(PlayError, err)
	}
	if beeper != nil {
		vm.AttachBeeper(beeper)
		defer beeper.EndBeeping()
	}

	guiChannel := make(chan gui.Event, 2)
	scr.SetEventChannel(guiChannel)

	if err := scr.Show(true); err != nil {
		return curated.Errorf(PlayError, err)
	}

	// redirect interrupt signal so that ctrl-c ends the session cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// the frame clock. timers tick and frames present at this cadence no
	// matter how many instructions execute per frame
	lmtr := limiter.NewFpsLimiter(chip8.TimerHz)

	running := true
	for running {
		lmtr.Wait()

		// input events are latched into the keypad only between cycle
		// batches, never mid-instruction
		for running {
			select {
			case <-intChan:
				running = false
			case ev := <-guiChannel:
				switch ev.ID {
				case gui.EventQuit:
					running = false
				case gui.EventKeyboard:
					running = KeyboardEventHandler(vm, ev.Data.(gui.EventDataKeyboard))
				}
				continue
			default:
			}
			break
		}
		if !running {
			break
		}

		// a fixed cycle budget per frame so that a hung program cannot
		// starve input or timer servicing
		for i := 0; i < cyclesPerFrame; i++ {
			if err := vm.Step(); err != nil {
				return curated.Errorf(PlayError, err)
			}
		}

		if err := vm.TickTimers(); err != nil {
			return curated.Errorf(PlayError, err)
		}

		// the draw flag read/clear contract belongs to the host
		if vm.DrawFlag {
			if err := scr.UpdateFrame(vm.Display[:]); err != nil {
				return curated.Errorf(PlayError, err)
			}
			vm.DrawFlag = false
		}
	}

	return nil
}
