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

package gui

// GUI implementations present the machine's framebuffer and translate
// platform input events into gui.Event values.
type GUI interface {
	// SetEventChannel connects the channel over which input events are
	// forwarded to the host loop
	SetEventChannel(chan Event)

	// UpdateFrame presents the framebuffer. The pixels argument is the
	// 64x32 row-major display array, one byte per pixel, each byte holding
	// 0 or 1. The GUI chooses its own scale and palette
	UpdateFrame(pixels []byte) error

	// Show or hide the display
	Show(visible bool) error

	// End cleans up any resources held by the GUI. The GUI cannot be used
	// after a call to End
	End() error
}
