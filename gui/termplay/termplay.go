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

package termplay

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/term"

	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/gui"
	"github.com/wrkean/chip8-emu/hardware/chip8"
)

// Sentinel errors raised by this package.
const SetupError = "termplay: %v"

// ansi sequences used for rendering
const (
	ansiHome       = "\x1b[H"
	ansiClear      = "\x1b[2J"
	ansiHideCursor = "\x1b[?25l"
	ansiShowCursor = "\x1b[?25h"
)

// terminals report keypresses but not key releases, so a pressed key is
// held down for this long before the synthetic release event is sent.
const keyHold = 120 * time.Millisecond

// how long the tty read blocks before checking whether the loop should end
const readTimeout = 50 * time.Millisecond

// TermPlay is a terminal implementation of the gui.GUI interface. The
// framebuffer is rendered with unicode half-block characters, two display
// rows per terminal row. Input is read from the controlling tty in cbreak
// mode.
type TermPlay struct {
	tty    *term.Term
	output *os.File

	eventChannel chan gui.Event
	endLoop      chan bool
}

// NewTermPlay is the preferred method of initialisation for the TermPlay
// type.
func NewTermPlay() (*TermPlay, error) {
	scr := &TermPlay{
		output:  os.Stdout,
		endLoop: make(chan bool),
	}

	var err error

	scr.tty, err = term.Open("/dev/tty")
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	err = scr.tty.SetCbreak()
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	err = scr.tty.SetReadTimeout(readTimeout)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	go scr.guiLoop()

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *TermPlay) SetEventChannel(ch chan gui.Event) {
	scr.eventChannel = ch
}

// Show implements the gui.GUI interface.
func (scr *TermPlay) Show(visible bool) error {
	if visible {
		scr.output.WriteString(ansiHideCursor)
		scr.output.WriteString(ansiClear)
	} else {
		scr.output.WriteString(ansiShowCursor)
	}
	return nil
}

// UpdateFrame implements the gui.GUI interface.
func (scr *TermPlay) UpdateFrame(pixels []byte) error {
	s := strings.Builder{}
	s.WriteString(ansiHome)

	// two display rows per terminal row
	for y := 0; y < chip8.DisplayHeight; y += 2 {
		for x := 0; x < chip8.DisplayWidth; x++ {
			top := pixels[y*chip8.DisplayWidth+x] != 0
			bot := pixels[(y+1)*chip8.DisplayWidth+x] != 0

			switch {
			case top && bot:
				s.WriteRune('█')
			case top:
				s.WriteRune('▀')
			case bot:
				s.WriteRune('▄')
			default:
				s.WriteRune(' ')
			}
		}
		s.WriteString("\r\n")
	}

	_, err := scr.output.WriteString(s.String())
	return err
}

// End implements the gui.GUI interface.
func (scr *TermPlay) End() error {
	scr.endLoop <- true

	scr.output.WriteString(ansiShowCursor)

	err := scr.tty.Restore()
	if err != nil {
		return curated.Errorf(SetupError, err)
	}

	return scr.tty.Close()
}

// guiLoop reads raw bytes from the tty and forwards them as gui.Event
// values. A synthetic key-up event follows every keypress after the keyHold
// period.
func (scr *TermPlay) guiLoop() {
	buf := make([]byte, 1)

	for {
		select {
		case <-scr.endLoop:
			return
		default:
		}

		n, _ := scr.tty.Read(buf)
		if n != 1 || scr.eventChannel == nil {
			continue
		}

		// ctrl-c and escape both end the session
		if buf[0] == 0x03 || buf[0] == 0x1b {
			scr.eventChannel <- gui.Event{ID: gui.EventQuit}
			continue
		}

		b := buf[0]
		if !((b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')) {
			continue
		}

		key := strings.ToUpper(string(rune(b)))

		scr.eventChannel <- gui.Event{
			ID:   gui.EventKeyboard,
			Data: gui.EventDataKeyboard{Key: key, Down: true},
		}

		time.AfterFunc(keyHold, func() {
			if scr.eventChannel != nil {
				scr.eventChannel <- gui.Event{
					ID:   gui.EventKeyboard,
					Data: gui.EventDataKeyboard{Key: key, Down: false},
				}
			}
		})
	}
}
