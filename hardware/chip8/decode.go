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

package chip8

import "fmt"

// Op is the operation tag of a decoded instruction. Every recognisable bit
// pattern maps to exactly one Op; everything else maps to OpUnknown.
type Op int

// List of valid Op values.
const (
	OpUnknown Op = iota
	OpClear
	OpReturn
	OpJump
	OpCall
	OpSkipEqImm
	OpSkipNeImm
	OpSkipEqReg
	OpSetImm
	OpAddImm
	OpMove
	OpOr
	OpAnd
	OpXor
	OpAddCarry
	OpSubBorrow
	OpShiftRight
	OpSubReverse
	OpShiftLeft
	OpSkipNeReg
	OpSetIndex
	OpJumpOffset
	OpRandom
	OpDraw
	OpSkipKey
	OpSkipNoKey
	OpGetDelay
	OpWaitKey
	OpSetDelay
	OpSetSound
	OpAddIndex
	OpFontGlyph
	OpStoreBCD
	OpRegDump
	OpRegLoad
)

// Instruction is a fully decoded opcode. The operand fields are extracted
// once at decode time; which of them are meaningful depends on the Op.
type Instruction struct {
	// the opcode as fetched from memory
	Raw uint16

	// the decoded operation
	Op Op

	// register indices from nibbles two and three
	X uint8
	Y uint8

	// the trailing nibble, byte and triple-nibble immediates
	N   uint8
	NN  uint8
	NNN uint16
}

// Decode extracts the operation and operand fields from a 16-bit opcode.
// Decode never fails; unrecognised bit patterns yield OpUnknown and it is
// for the executor (or disassembler) to decide what that means.
func Decode(raw uint16) Instruction {
	ins := Instruction{
		Raw: raw,
		Op:  OpUnknown,
		X:   uint8((raw & 0x0f00) >> 8),
		Y:   uint8((raw & 0x00f0) >> 4),
		N:   uint8(raw & 0x000f),
		NN:  uint8(raw & 0x00ff),
		NNN: raw & 0x0fff,
	}

	switch raw & 0xf000 {
	case 0x0000:
		switch raw {
		case 0x00e0:
			ins.Op = OpClear
		case 0x00ee:
			ins.Op = OpReturn
		}

	case 0x1000:
		ins.Op = OpJump

	case 0x2000:
		ins.Op = OpCall

	case 0x3000:
		ins.Op = OpSkipEqImm

	case 0x4000:
		ins.Op = OpSkipNeImm

	case 0x5000:
		if ins.N == 0x0 {
			ins.Op = OpSkipEqReg
		}

	case 0x6000:
		ins.Op = OpSetImm

	case 0x7000:
		ins.Op = OpAddImm

	case 0x8000:
		switch ins.N {
		case 0x0:
			ins.Op = OpMove
		case 0x1:
			ins.Op = OpOr
		case 0x2:
			ins.Op = OpAnd
		case 0x3:
			ins.Op = OpXor
		case 0x4:
			ins.Op = OpAddCarry
		case 0x5:
			ins.Op = OpSubBorrow
		case 0x6:
			ins.Op = OpShiftRight
		case 0x7:
			ins.Op = OpSubReverse
		case 0xe:
			ins.Op = OpShiftLeft
		}

	case 0x9000:
		if ins.N == 0x0 {
			ins.Op = OpSkipNeReg
		}

	case 0xa000:
		ins.Op = OpSetIndex

	case 0xb000:
		ins.Op = OpJumpOffset

	case 0xc000:
		ins.Op = OpRandom

	case 0xd000:
		ins.Op = OpDraw

	case 0xe000:
		switch ins.NN {
		case 0x9e:
			ins.Op = OpSkipKey
		case 0xa1:
			ins.Op = OpSkipNoKey
		}

	case 0xf000:
		switch ins.NN {
		case 0x07:
			ins.Op = OpGetDelay
		case 0x0a:
			ins.Op = OpWaitKey
		case 0x15:
			ins.Op = OpSetDelay
		case 0x18:
			ins.Op = OpSetSound
		case 0x1e:
			ins.Op = OpAddIndex
		case 0x29:
			ins.Op = OpFontGlyph
		case 0x33:
			ins.Op = OpStoreBCD
		case 0x55:
			ins.Op = OpRegDump
		case 0x65:
			ins.Op = OpRegLoad
		}
	}

	return ins
}

// String returns the instruction in the classic CHIP-8 assembler mnemonics.
func (ins Instruction) String() string {
	switch ins.Op {
	case OpClear:
		return "CLS"
	case OpReturn:
		return "RET"
	case OpJump:
		return fmt.Sprintf("JP %03x", ins.NNN)
	case OpCall:
		return fmt.Sprintf("CALL %03x", ins.NNN)
	case OpSkipEqImm:
		return fmt.Sprintf("SE V%x %02x", ins.X, ins.NN)
	case OpSkipNeImm:
		return fmt.Sprintf("SNE V%x %02x", ins.X, ins.NN)
	case OpSkipEqReg:
		return fmt.Sprintf("SE V%x V%x", ins.X, ins.Y)
	case OpSetImm:
		return fmt.Sprintf("LD V%x %02x", ins.X, ins.NN)
	case OpAddImm:
		return fmt.Sprintf("ADD V%x %02x", ins.X, ins.NN)
	case OpMove:
		return fmt.Sprintf("LD V%x V%x", ins.X, ins.Y)
	case OpOr:
		return fmt.Sprintf("OR V%x V%x", ins.X, ins.Y)
	case OpAnd:
		return fmt.Sprintf("AND V%x V%x", ins.X, ins.Y)
	case OpXor:
		return fmt.Sprintf("XOR V%x V%x", ins.X, ins.Y)
	case OpAddCarry:
		return fmt.Sprintf("ADD V%x V%x", ins.X, ins.Y)
	case OpSubBorrow:
		return fmt.Sprintf("SUB V%x V%x", ins.X, ins.Y)
	case OpShiftRight:
		return fmt.Sprintf("SHR V%x", ins.X)
	case OpSubReverse:
		return fmt.Sprintf("SUBN V%x V%x", ins.X, ins.Y)
	case OpShiftLeft:
		return fmt.Sprintf("SHL V%x", ins.X)
	case OpSkipNeReg:
		return fmt.Sprintf("SNE V%x V%x", ins.X, ins.Y)
	case OpSetIndex:
		return fmt.Sprintf("LD I %03x", ins.NNN)
	case OpJumpOffset:
		return fmt.Sprintf("JP V0 %03x", ins.NNN)
	case OpRandom:
		return fmt.Sprintf("RND V%x %02x", ins.X, ins.NN)
	case OpDraw:
		return fmt.Sprintf("DRW V%x V%x %x", ins.X, ins.Y, ins.N)
	case OpSkipKey:
		return fmt.Sprintf("SKP V%x", ins.X)
	case OpSkipNoKey:
		return fmt.Sprintf("SKNP V%x", ins.X)
	case OpGetDelay:
		return fmt.Sprintf("LD V%x DT", ins.X)
	case OpWaitKey:
		return fmt.Sprintf("LD V%x K", ins.X)
	case OpSetDelay:
		return fmt.Sprintf("LD DT V%x", ins.X)
	case OpSetSound:
		return fmt.Sprintf("LD ST V%x", ins.X)
	case OpAddIndex:
		return fmt.Sprintf("ADD I V%x", ins.X)
	case OpFontGlyph:
		return fmt.Sprintf("LD F V%x", ins.X)
	case OpStoreBCD:
		return fmt.Sprintf("LD B V%x", ins.X)
	case OpRegDump:
		return fmt.Sprintf("LD [I] V%x", ins.X)
	case OpRegLoad:
		return fmt.Sprintf("LD V%x [I]", ins.X)
	}

	return fmt.Sprintf("DATA %04x", ins.Raw)
}
