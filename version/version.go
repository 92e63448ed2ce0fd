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

// Package version records the version of the program.
package version

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Chip8-Emu"

// set at build time with:
//
//	-ldflags "-X github.com/wrkean/chip8-emu/version.number=..."
var number string

// Version returns the version string. Builds made without the linker flag
// report "unreleased".
func Version() string {
	if number == "" {
		return "unreleased"
	}
	return number
}
