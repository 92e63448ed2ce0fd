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

import (
	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/logger"
)

// addressMask keeps memory accesses through the index register inside the
// 4096 byte memory array. well-formed programs never rely on this but a
// malformed rom must not be able to cause a panic.
const addressMask = MemorySize - 1

// Step runs one fetch/decode/execute cycle. The program counter advances by
// two for every instruction except the jump, call, return and skip families,
// which set it explicitly, and the wait-for-key instruction, which parks the
// machine in the awaiting-input state until a key is latched.
//
// Errors returned by Step are fatal to the session: a return instruction
// with an empty call stack or a program counter that has wandered outside
// of memory. An unrecognised opcode is not fatal; it is logged and stepped
// over.
func (c *Chip8) Step() error {
	// while awaiting input the current instruction is a wait-for-key that
	// has not yet observed a latched key. no fetch takes place
	if c.awaitKey {
		if key, ok := c.scanKeypad(); ok {
			c.V[c.awaitReg] = key
			c.awaitKey = false
			c.PC += 2
		}
		return nil
	}

	// defensive bounds check before the two byte fetch
	if int(c.PC)+1 >= MemorySize {
		return curated.Errorf(PCOutOfRange, c.PC)
	}

	// fetch and decode. opcodes are stored big-endian
	ins := Decode(uint16(c.Memory[c.PC])<<8 | uint16(c.Memory[c.PC+1]))

	switch ins.Op {
	case OpClear:
		c.Display = [DisplayWidth * DisplayHeight]uint8{}
		c.DrawFlag = true
		c.PC += 2

	case OpReturn:
		if len(c.Stack) == 0 {
			return curated.Errorf(StackUnderflow, c.PC)
		}
		c.PC = c.Stack[len(c.Stack)-1]
		c.Stack = c.Stack[:len(c.Stack)-1]

		// the popped address is the address of the call instruction.
		// proceed past it
		c.PC += 2

	case OpJump:
		c.PC = ins.NNN

	case OpCall:
		c.Stack = append(c.Stack, c.PC)
		c.PC = ins.NNN

	case OpSkipEqImm:
		if c.V[ins.X] == ins.NN {
			c.PC += 4
		} else {
			c.PC += 2
		}

	case OpSkipNeImm:
		if c.V[ins.X] != ins.NN {
			c.PC += 4
		} else {
			c.PC += 2
		}

	case OpSkipEqReg:
		if c.V[ins.X] == c.V[ins.Y] {
			c.PC += 4
		} else {
			c.PC += 2
		}

	case OpSetImm:
		c.V[ins.X] = ins.NN
		c.PC += 2

	case OpAddImm:
		// wraps modulo 256 with no flag side effect
		c.V[ins.X] += ins.NN
		c.PC += 2

	case OpMove:
		c.V[ins.X] = c.V[ins.Y]
		c.PC += 2

	case OpOr:
		c.V[ins.X] |= c.V[ins.Y]
		c.PC += 2

	case OpAnd:
		c.V[ins.X] &= c.V[ins.Y]
		c.PC += 2

	case OpXor:
		c.V[ins.X] ^= c.V[ins.Y]
		c.PC += 2

	case OpAddCarry:
		sum := uint16(c.V[ins.X]) + uint16(c.V[ins.Y])
		if sum > 0xff {
			c.V[0xf] = 1
		} else {
			c.V[0xf] = 0
		}
		c.V[ins.X] = uint8(sum)
		c.PC += 2

	case OpSubBorrow:
		// flag is 1 when there is no borrow
		if c.V[ins.X] >= c.V[ins.Y] {
			c.V[0xf] = 1
		} else {
			c.V[0xf] = 0
		}
		c.V[ins.X] -= c.V[ins.Y]
		c.PC += 2

	case OpShiftRight:
		// the shifted-out bit is captured before the operand mutates
		c.V[0xf] = c.V[ins.X] & 0x01
		c.V[ins.X] >>= 1
		c.PC += 2

	case OpSubReverse:
		if c.V[ins.Y] >= c.V[ins.X] {
			c.V[0xf] = 1
		} else {
			c.V[0xf] = 0
		}
		c.V[ins.X] = c.V[ins.Y] - c.V[ins.X]
		c.PC += 2

	case OpShiftLeft:
		c.V[0xf] = (c.V[ins.X] & 0x80) >> 7
		c.V[ins.X] <<= 1
		c.PC += 2

	case OpSkipNeReg:
		if c.V[ins.X] != c.V[ins.Y] {
			c.PC += 4
		} else {
			c.PC += 2
		}

	case OpSetIndex:
		c.I = ins.NNN
		c.PC += 2

	case OpJumpOffset:
		c.PC = ins.NNN + uint16(c.V[0])

	case OpRandom:
		c.V[ins.X] = uint8(c.rnd.Intn(256)) & ins.NN
		c.PC += 2

	case OpDraw:
		c.drawSprite(ins)
		c.PC += 2

	case OpSkipKey:
		if c.Keypad[c.V[ins.X]&0x0f] != 0 {
			c.PC += 4
		} else {
			c.PC += 2
		}

	case OpSkipNoKey:
		if c.Keypad[c.V[ins.X]&0x0f] == 0 {
			c.PC += 4
		} else {
			c.PC += 2
		}

	case OpGetDelay:
		c.V[ins.X] = c.DelayTimer
		c.PC += 2

	case OpWaitKey:
		if key, ok := c.scanKeypad(); ok {
			c.V[ins.X] = key
			c.PC += 2
		} else {
			// park the machine. the program counter does not advance and
			// subsequent calls to Step() only scan the keypad
			c.awaitKey = true
			c.awaitReg = ins.X
		}

	case OpSetDelay:
		c.DelayTimer = c.V[ins.X]
		c.PC += 2

	case OpSetSound:
		c.SoundTimer = c.V[ins.X]
		c.PC += 2
		return c.updateBeeper()

	case OpAddIndex:
		// wraps modulo 65536
		c.I += uint16(c.V[ins.X])
		c.PC += 2

	case OpFontGlyph:
		c.I = FontsetOrigin + uint16(c.V[ins.X])*GlyphSize
		c.PC += 2

	case OpStoreBCD:
		v := c.V[ins.X]
		c.Memory[c.I&addressMask] = v / 100
		c.Memory[(c.I+1)&addressMask] = (v % 100) / 10
		c.Memory[(c.I+2)&addressMask] = v % 10
		c.PC += 2

	case OpRegDump:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			c.Memory[(c.I+i)&addressMask] = c.V[i]
		}
		c.PC += 2

	case OpRegLoad:
		for i := uint16(0); i <= uint16(ins.X); i++ {
			c.V[i] = c.Memory[(c.I+i)&addressMask]
		}
		c.PC += 2

	case OpUnknown:
		// a single malformed instruction must not deadlock the machine.
		// log it and step over
		logger.Logf("chip8", "unknown opcode %04x (pc %#04x)", ins.Raw, c.PC)
		c.PC += 2
	}

	return nil
}

// drawSprite XORs an N row sprite read from memory at the index register into
// the framebuffer at (V[X], V[Y]). Pixel coordinates wrap rather than clip.
// The flag register records whether any previously lit pixel was unset.
func (c *Chip8) drawSprite(ins Instruction) {
	px := int(c.V[ins.X])
	py := int(c.V[ins.Y])

	c.V[0xf] = 0

	for row := 0; row < int(ins.N); row++ {
		sprite := c.Memory[(c.I+uint16(row))&addressMask]
		for col := 0; col < 8; col++ {
			if (sprite>>(7-col))&0x01 == 0 {
				continue
			}

			x := (px + col) % DisplayWidth
			y := (py + row) % DisplayHeight
			idx := y*DisplayWidth + x

			if c.Display[idx] == 1 {
				c.V[0xf] = 1
			}
			c.Display[idx] ^= 1
		}
	}

	c.DrawFlag = true
}

// scanKeypad checks the keypad latch in fixed index order, returning the
// first held key.
func (c *Chip8) scanKeypad() (uint8, bool) {
	for i := 0; i < NumKeys; i++ {
		if c.Keypad[i] != 0 {
			return uint8(i), true
		}
	}
	return 0, false
}
