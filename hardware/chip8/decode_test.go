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

package chip8_test

import (
	"testing"

	"github.com/wrkean/chip8-emu/hardware/chip8"
	"github.com/wrkean/chip8-emu/test"
)

func TestDecodeOperands(t *testing.T) {
	ins := chip8.Decode(0xd125)
	test.Equate(t, ins.Raw, 0xd125)
	test.Equate(t, ins.X, 0x1)
	test.Equate(t, ins.Y, 0x2)
	test.Equate(t, ins.N, 0x5)
	test.Equate(t, ins.NN, 0x25)
	test.Equate(t, ins.NNN, 0x125)
}

func TestDecodeOp(t *testing.T) {
	decodings := []struct {
		raw uint16
		op  chip8.Op
	}{
		{0x00e0, chip8.OpClear},
		{0x00ee, chip8.OpReturn},
		{0x1abc, chip8.OpJump},
		{0x2abc, chip8.OpCall},
		{0x3a0f, chip8.OpSkipEqImm},
		{0x4a0f, chip8.OpSkipNeImm},
		{0x5ab0, chip8.OpSkipEqReg},
		{0x6a0f, chip8.OpSetImm},
		{0x7a0f, chip8.OpAddImm},
		{0x8ab0, chip8.OpMove},
		{0x8ab1, chip8.OpOr},
		{0x8ab2, chip8.OpAnd},
		{0x8ab3, chip8.OpXor},
		{0x8ab4, chip8.OpAddCarry},
		{0x8ab5, chip8.OpSubBorrow},
		{0x8ab6, chip8.OpShiftRight},
		{0x8ab7, chip8.OpSubReverse},
		{0x8abe, chip8.OpShiftLeft},
		{0x9ab0, chip8.OpSkipNeReg},
		{0xaabc, chip8.OpSetIndex},
		{0xbabc, chip8.OpJumpOffset},
		{0xca0f, chip8.OpRandom},
		{0xdab5, chip8.OpDraw},
		{0xea9e, chip8.OpSkipKey},
		{0xeaa1, chip8.OpSkipNoKey},
		{0xfa07, chip8.OpGetDelay},
		{0xfa0a, chip8.OpWaitKey},
		{0xfa15, chip8.OpSetDelay},
		{0xfa18, chip8.OpSetSound},
		{0xfa1e, chip8.OpAddIndex},
		{0xfa29, chip8.OpFontGlyph},
		{0xfa33, chip8.OpStoreBCD},
		{0xfa55, chip8.OpRegDump},
		{0xfa65, chip8.OpRegLoad},

		// malformed bit patterns
		{0x0000, chip8.OpUnknown},
		{0x0123, chip8.OpUnknown},
		{0x5ab1, chip8.OpUnknown},
		{0x8ab8, chip8.OpUnknown},
		{0x9ab1, chip8.OpUnknown},
		{0xea00, chip8.OpUnknown},
		{0xfaff, chip8.OpUnknown},
	}

	for _, d := range decodings {
		ins := chip8.Decode(d.raw)
		if ins.Op != d.op {
			t.Errorf("opcode %04x decoded to %v (wanted %v)", d.raw, ins.Op, d.op)
		}
	}
}

func TestDecodeString(t *testing.T) {
	strings := []struct {
		raw uint16
		s   string
	}{
		{0x00e0, "CLS"},
		{0x00ee, "RET"},
		{0x1abc, "JP abc"},
		{0x2abc, "CALL abc"},
		{0x3a0f, "SE Va 0f"},
		{0x6a0f, "LD Va 0f"},
		{0x8ab4, "ADD Va Vb"},
		{0x8ab6, "SHR Va"},
		{0xaabc, "LD I abc"},
		{0xbabc, "JP V0 abc"},
		{0xca0f, "RND Va 0f"},
		{0xdab5, "DRW Va Vb 5"},
		{0xea9e, "SKP Va"},
		{0xfa0a, "LD Va K"},
		{0xfa29, "LD F Va"},
		{0xfa33, "LD B Va"},
		{0xfa55, "LD [I] Va"},
		{0xfa65, "LD Va [I]"},
		{0x0123, "DATA 0123"},
	}

	for _, d := range strings {
		test.Equate(t, chip8.Decode(d.raw).String(), d.s)
	}
}
