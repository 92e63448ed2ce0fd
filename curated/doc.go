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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are created with the Errorf() function, which looks like the
// Errorf() function in the fmt package but records the formatting pattern
// alongside the formatted message.
//
// The pattern is used to differentiate curated errors. The Is() function
// checks whether an error was created from a specific pattern:
//
//	e := curated.Errorf("chip8: rom too large (%d bytes)", n)
//
//	if curated.Is(e, "chip8: rom too large (%d bytes)") {
//		...
//	}
//
// The Has() function is similar but checks whether the pattern occurs
// anywhere in the error chain, which is useful when an error has been
// wrapped by an enclosing Errorf() call.
//
// Packages that raise curated errors declare their patterns as exported
// string constants near the code that raises them.
package curated
