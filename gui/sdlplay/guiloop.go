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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/wrkean/chip8-emu/gui"
)

// guiLoop translates SDL events into gui.Event values and forwards them to
// the registered event channel. It runs in its own goroutine until End() is
// called.
func (scr *SdlPlay) guiLoop() {
	for {
		select {
		case <-scr.endLoop:
			return
		default:
		}

		sdlEvent := sdl.WaitEventTimeout(20)
		if sdlEvent == nil || scr.eventChannel == nil {
			continue
		}

		switch sdlEvent := sdlEvent.(type) {
		case *sdl.QuitEvent:
			scr.eventChannel <- gui.Event{ID: gui.EventQuit}

		case *sdl.KeyboardEvent:
			if sdlEvent.Repeat != 0 {
				continue
			}

			switch sdlEvent.Type {
			case sdl.KEYDOWN:
				scr.eventChannel <- gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(sdlEvent.Keysym.Sym),
						Down: true,
					}}
			case sdl.KEYUP:
				scr.eventChannel <- gui.Event{
					ID: gui.EventKeyboard,
					Data: gui.EventDataKeyboard{
						Key:  sdl.GetKeyName(sdlEvent.Keysym.Sym),
						Down: false,
					}}
			}
		}
	}
}
