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

package playmode_test

import (
	"testing"

	"github.com/wrkean/chip8-emu/gui"
	"github.com/wrkean/chip8-emu/hardware/chip8"
	"github.com/wrkean/chip8-emu/playmode"
	"github.com/wrkean/chip8-emu/test"
)

func TestKeyboardEventHandler(t *testing.T) {
	vm := chip8.NewChip8()

	// W is keypad key 5
	cont := playmode.KeyboardEventHandler(vm, gui.EventDataKeyboard{Key: "W", Down: true})
	test.Equate(t, cont, true)
	test.Equate(t, vm.Keypad[0x5], 0x01)

	cont = playmode.KeyboardEventHandler(vm, gui.EventDataKeyboard{Key: "W", Down: false})
	test.Equate(t, cont, true)
	test.Equate(t, vm.Keypad[0x5], 0x00)

	// unmapped keys are ignored
	cont = playmode.KeyboardEventHandler(vm, gui.EventDataKeyboard{Key: "P", Down: true})
	test.Equate(t, cont, true)
	for i := 0; i < chip8.NumKeys; i++ {
		test.Equate(t, vm.Keypad[i], 0x00)
	}

	// Escape ends the session
	cont = playmode.KeyboardEventHandler(vm, gui.EventDataKeyboard{Key: "Escape", Down: true})
	test.Equate(t, cont, false)
}
