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

// Package disassembly produces a static listing of a CHIP-8 rom: one line
// per 16-bit word, decoded with the same decoder the emulation uses.
//
// A static disassembly of a CHIP-8 rom is necessarily approximate. Roms
// freely mix sprite data with instructions and there is nothing in the
// binary to tell them apart, so data words appear as spurious instructions
// (or as DATA lines when they decode to nothing at all). The listing is
// still useful for eyeballing what a rom gets up to.
package disassembly

import (
	"fmt"
	"io"

	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/hardware/chip8"
	"github.com/wrkean/chip8-emu/romloader"
)

// Sentinel errors raised by this package.
const DisasmError = "disassembly: %v"

// FromLoader writes a disassembly of the rom to output. Addresses are
// given as they appear to the running machine, offset from the program
// origin.
func FromLoader(output io.Writer, cartload romloader.Loader) error {
	if err := cartload.Load(); err != nil {
		return curated.Errorf(DisasmError, err)
	}

	data := cartload.Data

	for addr := 0; addr < len(data); addr += 2 {
		// a rom with an odd number of bytes has a trailing data byte
		if addr+1 >= len(data) {
			fmt.Fprintf(output, "%04x  %02x    BYTE %02x\n",
				chip8.ProgramOrigin+addr, data[addr], data[addr])
			break
		}

		raw := uint16(data[addr])<<8 | uint16(data[addr+1])
		ins := chip8.Decode(raw)

		fmt.Fprintf(output, "%04x  %04x  %s\n", chip8.ProgramOrigin+addr, raw, ins)
	}

	return nil
}
