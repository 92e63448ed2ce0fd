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

// Package gui defines the contract between the emulation host and whatever
// is presenting the framebuffer to the user. Implementations live in the
// sub-packages: sdlplay (an SDL window) and termplay (ANSI rendering in a
// POSIX terminal).
//
// Input flows the other way: GUIs translate their platform events into
// gui.Event values and send them down the channel registered with
// SetEventChannel(). The host loop drains the channel between cycle
// batches, which is what keeps keypad mutation from tearing an
// instruction's view of key state.
package gui
