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

// Package termplay renders the framebuffer directly in a POSIX terminal,
// for machines without SDL or a display server. The controlling tty is put
// into cbreak mode for input.
//
// Terminals report keypresses but not key releases, so termplay holds each
// key "down" for a short window after the press. Games that rely on precise
// release timing will feel different here than under sdlplay; that is a
// limitation of the medium.
package termplay
