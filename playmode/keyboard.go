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
	"github.com/wrkean/chip8-emu/gui"
	"github.com/wrkean/chip8-emu/hardware/chip8"
)

// keypadMap maps the left hand side of a modern keyboard onto the 4x4
// hexadecimal keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
var keypadMap = map[string]uint8{
	"1": 0x1, "2": 0x2, "3": 0x3, "4": 0xc,
	"Q": 0x4, "W": 0x5, "E": 0x6, "R": 0xd,
	"A": 0x7, "S": 0x8, "D": 0x9, "F": 0xe,
	"Z": 0xa, "X": 0x0, "C": 0xb, "V": 0xf,
}

// KeyboardEventHandler applies a keyboard event to the keypad latch. The
// return value is false if the event means the session should end.
func KeyboardEventHandler(vm *chip8.Chip8, ev gui.EventDataKeyboard) bool {
	if ev.Key == "Escape" {
		return !ev.Down
	}

	if i, ok := keypadMap[ev.Key]; ok {
		if ev.Down {
			vm.Keypad[i] = 1
		} else {
			vm.Keypad[i] = 0
		}
	}

	return true
}
