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

	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/hardware/chip8"
	"github.com/wrkean/chip8-emu/test"
)

// newMachine assembles the sequence of 16 bit opcodes into a rom and loads
// it into a fresh machine.
func newMachine(t *testing.T, program ...uint16) *chip8.Chip8 {
	t.Helper()

	rom := make([]byte, 0, len(program)*2)
	for _, p := range program {
		rom = append(rom, byte(p>>8), byte(p))
	}

	c := chip8.NewChip8()
	if err := c.Load(rom, chip8.Fontset); err != nil {
		t.Fatal(err)
	}

	return c
}

// step the machine n times, failing the test on any error.
func step(t *testing.T, c *chip8.Chip8, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.ExpectedSuccess(t, c.Step())
	}
}

func TestLoad(t *testing.T) {
	c := chip8.NewChip8()
	err := c.Load([]byte{0x60, 0x05}, chip8.Fontset)
	test.ExpectedSuccess(t, err)

	test.Equate(t, c.PC, chip8.ProgramOrigin)
	test.Equate(t, c.Memory[chip8.FontsetOrigin], chip8.Fontset[0])
	test.Equate(t, c.Memory[chip8.ProgramOrigin], 0x60)
	test.Equate(t, c.Memory[chip8.ProgramOrigin+1], 0x05)
}

func TestLoadTooLarge(t *testing.T) {
	c := chip8.NewChip8()

	// one byte larger than the available program area
	rom := make([]byte, chip8.MemorySize-chip8.ProgramOrigin+1)
	err := c.Load(rom, chip8.Fontset)
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, chip8.RomTooLarge))

	// a failed load leaves the machine untouched
	test.Equate(t, c.PC, chip8.ProgramOrigin)

	// the largest rom that does fit
	rom = make([]byte, chip8.MemorySize-chip8.ProgramOrigin)
	test.ExpectedSuccess(t, c.Load(rom, chip8.Fontset))
}

func TestSetAndAdd(t *testing.T) {
	// LD V0, 0x05; ADD V0, 0x03
	c := newMachine(t, 0x6005, 0x7003)
	step(t, c, 2)
	test.Equate(t, c.V[0x0], 0x08)
	test.Equate(t, c.PC, chip8.ProgramOrigin+4)
}

func TestAddImmediateWraps(t *testing.T) {
	// LD V0, 0xff; LD VF, 0x07; ADD V0, 0x02
	c := newMachine(t, 0x60ff, 0x6f07, 0x7002)
	step(t, c, 3)

	// wraps modulo 256 and leaves the flag register alone
	test.Equate(t, c.V[0x0], 0x01)
	test.Equate(t, c.V[0xf], 0x07)
}

func TestAddWithCarry(t *testing.T) {
	// LD V0, 0xff; LD V1, 0x01; ADD V0, V1
	c := newMachine(t, 0x60ff, 0x6101, 0x8014)
	step(t, c, 3)
	test.Equate(t, c.V[0x0], 0x00)
	test.Equate(t, c.V[0xf], 0x01)

	// no carry this time
	c = newMachine(t, 0x6010, 0x6101, 0x8014)
	step(t, c, 3)
	test.Equate(t, c.V[0x0], 0x11)
	test.Equate(t, c.V[0xf], 0x00)
}

func TestSubtract(t *testing.T) {
	// LD V0, 0x05; LD V1, 0x07; SUB V0, V1. a borrow occurs so the flag is
	// zero and the result wraps
	c := newMachine(t, 0x6005, 0x6107, 0x8015)
	step(t, c, 3)
	test.Equate(t, c.V[0x0], 0xfe)
	test.Equate(t, c.V[0xf], 0x00)

	// no borrow. flag is one
	c = newMachine(t, 0x6007, 0x6105, 0x8015)
	step(t, c, 3)
	test.Equate(t, c.V[0x0], 0x02)
	test.Equate(t, c.V[0xf], 0x01)

	// SUBN reverses the operands
	c = newMachine(t, 0x6005, 0x6107, 0x8017)
	step(t, c, 3)
	test.Equate(t, c.V[0x0], 0x02)
	test.Equate(t, c.V[0xf], 0x01)
}

func TestShift(t *testing.T) {
	// SHR VF, with VF holding 0x03. the shifted-out bit must be captured
	// before the register mutates: the result is the bit, not the shifted
	// value
	c := newMachine(t, 0x6f03, 0x8f06)
	step(t, c, 2)
	test.Equate(t, c.V[0xf], 0x01)

	// SHL VF, with VF holding 0x81
	c = newMachine(t, 0x6f81, 0x8f0e)
	step(t, c, 2)
	test.Equate(t, c.V[0xf], 0x01)

	// ordinary shifts on a non-flag register
	c = newMachine(t, 0x6006, 0x8006, 0x800e)
	step(t, c, 2)
	test.Equate(t, c.V[0x0], 0x03)
	test.Equate(t, c.V[0xf], 0x00)
	step(t, c, 1)
	test.Equate(t, c.V[0x0], 0x06)
	test.Equate(t, c.V[0xf], 0x00)
}

func TestLogic(t *testing.T) {
	// LD V0, 0x0f; LD V1, 0x33; OR, AND, XOR in turn against fresh machines
	c := newMachine(t, 0x600f, 0x6133, 0x8011)
	step(t, c, 3)
	test.Equate(t, c.V[0x0], 0x3f)

	c = newMachine(t, 0x600f, 0x6133, 0x8012)
	step(t, c, 3)
	test.Equate(t, c.V[0x0], 0x03)

	c = newMachine(t, 0x600f, 0x6133, 0x8013)
	step(t, c, 3)
	test.Equate(t, c.V[0x0], 0x3c)
}

func TestSkips(t *testing.T) {
	// SE V0, 0x00 skips when equal
	c := newMachine(t, 0x3000)
	step(t, c, 1)
	test.Equate(t, c.PC, chip8.ProgramOrigin+4)

	// and doesn't when not
	c = newMachine(t, 0x3001)
	step(t, c, 1)
	test.Equate(t, c.PC, chip8.ProgramOrigin+2)

	// SNE is the complement
	c = newMachine(t, 0x4001)
	step(t, c, 1)
	test.Equate(t, c.PC, chip8.ProgramOrigin+4)

	// register forms
	c = newMachine(t, 0x5010)
	step(t, c, 1)
	test.Equate(t, c.PC, chip8.ProgramOrigin+4)

	c = newMachine(t, 0x9010)
	step(t, c, 1)
	test.Equate(t, c.PC, chip8.ProgramOrigin+2)
}

func TestJumpAndCall(t *testing.T) {
	// JP 0x300
	c := newMachine(t, 0x1300)
	step(t, c, 1)
	test.Equate(t, c.PC, 0x300)

	// JP V0, 0x300
	c = newMachine(t, 0x6010, 0xb300)
	step(t, c, 2)
	test.Equate(t, c.PC, 0x310)

	// CALL 0x208; at 0x208 a RET returns past the call site. padded with
	// data words that are never executed
	c = newMachine(t, 0x2208, 0x0000, 0x0000, 0x0000, 0x00ee)
	step(t, c, 1)
	test.Equate(t, c.PC, 0x208)
	step(t, c, 1)
	test.Equate(t, c.PC, chip8.ProgramOrigin+2)
}

func TestNestedCalls(t *testing.T) {
	// 0x200 CALL 0x204; 0x202 data; 0x204 CALL 0x208; 0x206 RET;
	// 0x208 RET
	c := newMachine(t, 0x2204, 0x0000, 0x2208, 0x00ee, 0x00ee)
	step(t, c, 4)

	// inner return lands after the inner call, the RET there lands
	// after the outer call
	test.Equate(t, c.PC, chip8.ProgramOrigin+2)
	test.Equate(t, len(c.Stack), 0)
}

func TestStackUnderflow(t *testing.T) {
	// RET with nothing on the stack is fatal
	c := newMachine(t, 0x00ee)
	err := c.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, chip8.StackUnderflow))
}

func TestProgramCounterOutOfRange(t *testing.T) {
	// jump to the last byte of memory. the next fetch cannot complete
	c := newMachine(t, 0x1fff)
	step(t, c, 1)

	err := c.Step()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, chip8.PCOutOfRange))
}

func TestUnknownOpcode(t *testing.T) {
	// a malformed instruction is stepped over, not fatal
	c := newMachine(t, 0x0123, 0x6005)
	step(t, c, 2)
	test.Equate(t, c.V[0x0], 0x05)
	test.Equate(t, c.PC, chip8.ProgramOrigin+4)

	// 5xxx and 9xxx forms with a non-zero low nibble are also malformed
	c = newMachine(t, 0x5011)
	step(t, c, 1)
	test.Equate(t, c.PC, chip8.ProgramOrigin+2)
}

func TestDraw(t *testing.T) {
	// LD I, 0x210; DRW V0, V1, 1. the single sprite row 0x80 lights the top
	// left pixel
	c := newMachine(t, 0xa210, 0xd011, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x8000)
	step(t, c, 2)
	test.Equate(t, c.Display[0], 0x01)
	test.Equate(t, c.V[0xf], 0x00)
	test.Equate(t, c.DrawFlag, true)

	// drawing the same sprite again erases it and reports the collision
	c.PC = chip8.ProgramOrigin + 2
	step(t, c, 1)
	test.Equate(t, c.Display[0], 0x00)
	test.Equate(t, c.V[0xf], 0x01)
}

func TestDrawWraps(t *testing.T) {
	// sprite drawn at (62, 31) spills off both edges and wraps around
	c := newMachine(t, 0x603e, 0x611f, 0xa210, 0xd012, 0x0000, 0x0000, 0x0000, 0x0000, 0xffff)
	step(t, c, 4)

	// bottom row: pixels at x=62..63 and wrapped x=0..5
	for _, x := range []int{62, 63, 0, 1, 2, 3, 4, 5} {
		test.Equate(t, c.Display[31*chip8.DisplayWidth+x], 0x01)
	}

	// second sprite row wraps to the top of the display
	for _, x := range []int{62, 63, 0, 1, 2, 3, 4, 5} {
		test.Equate(t, c.Display[x], 0x01)
	}

	// nothing was lit beforehand so no collision
	test.Equate(t, c.V[0xf], 0x00)
}

func TestClearScreen(t *testing.T) {
	c := newMachine(t, 0xa210, 0xd011, 0x00e0, 0x0000, 0x0000, 0x0000, 0x0000, 0x0000, 0x8000)
	step(t, c, 2)
	test.Equate(t, c.Display[0], 0x01)

	c.DrawFlag = false
	step(t, c, 1)
	for i := range c.Display {
		if c.Display[i] != 0 {
			t.Fatalf("display not cleared at index %d", i)
		}
	}
	test.Equate(t, c.DrawFlag, true)
}

func TestKeypadSkips(t *testing.T) {
	// SKP V0 with key 5 held
	c := newMachine(t, 0x6005, 0xe09e)
	c.Keypad[5] = 1
	step(t, c, 2)
	test.Equate(t, c.PC, chip8.ProgramOrigin+6)

	// SKNP V0 with key 5 held does not skip
	c = newMachine(t, 0x6005, 0xe0a1)
	c.Keypad[5] = 1
	step(t, c, 2)
	test.Equate(t, c.PC, chip8.ProgramOrigin+4)
}

func TestWaitForKey(t *testing.T) {
	// LD V3, K
	c := newMachine(t, 0xf30a)
	step(t, c, 1)

	// no key held. the machine parks and the program counter stays put
	test.Equate(t, c.IsAwaitingKey(), true)
	test.Equate(t, c.PC, chip8.ProgramOrigin)

	// further steps are no-ops
	step(t, c, 5)
	test.Equate(t, c.PC, chip8.ProgramOrigin)

	// latch a key. the next step stores it and resumes
	c.Keypad[0xa] = 1
	step(t, c, 1)
	test.Equate(t, c.IsAwaitingKey(), false)
	test.Equate(t, c.V[0x3], 0x0a)
	test.Equate(t, c.PC, chip8.ProgramOrigin+2)
}

func TestWaitForKeyAlreadyHeld(t *testing.T) {
	// a key held at the moment of the wait instruction satisfies it
	// immediately
	c := newMachine(t, 0xf30a)
	c.Keypad[0x2] = 1
	step(t, c, 1)
	test.Equate(t, c.IsAwaitingKey(), false)
	test.Equate(t, c.V[0x3], 0x02)
	test.Equate(t, c.PC, chip8.ProgramOrigin+2)
}

func TestTimers(t *testing.T) {
	// LD V0, 0x02; LD DT, V0; LD ST, V0
	c := newMachine(t, 0x6002, 0xf015, 0xf018)
	step(t, c, 3)
	test.Equate(t, c.DelayTimer, 0x02)
	test.Equate(t, c.SoundTimer, 0x02)

	// timers floor at zero and stay there
	for i := 0; i < 5; i++ {
		test.ExpectedSuccess(t, c.TickTimers())
	}
	test.Equate(t, c.DelayTimer, 0x00)
	test.Equate(t, c.SoundTimer, 0x00)

	// LD V1, DT reads the delay timer back
	c = newMachine(t, 0x6002, 0xf015, 0xf107)
	step(t, c, 3)
	test.Equate(t, c.V[0x1], 0x02)
}

// mockBeeper counts the buzz edges the emulation reports.
type mockBeeper struct {
	buzzing bool
	edges   int
	ended   bool
}

func (b *mockBeeper) SetBuzzing(buzz bool) error {
	b.buzzing = buzz
	b.edges++
	return nil
}

func (b *mockBeeper) EndBeeping() error {
	b.ended = true
	return nil
}

func TestBeeperEdges(t *testing.T) {
	// LD V0, 0x02; LD ST, V0
	c := newMachine(t, 0x6002, 0xf018)

	b := &mockBeeper{}
	c.AttachBeeper(b)

	step(t, c, 2)
	test.Equate(t, b.buzzing, true)
	test.Equate(t, b.edges, 1)

	// only the edges are reported, not every tick
	test.ExpectedSuccess(t, c.TickTimers())
	test.Equate(t, b.edges, 1)

	test.ExpectedSuccess(t, c.TickTimers())
	test.Equate(t, b.buzzing, false)
	test.Equate(t, b.edges, 2)

	// ticking an expired timer reports nothing further
	test.ExpectedSuccess(t, c.TickTimers())
	test.Equate(t, b.edges, 2)
}

func TestFontGlyph(t *testing.T) {
	// LD V0, 0x0a; LD F, V0
	c := newMachine(t, 0x600a, 0xf029)
	step(t, c, 2)
	test.Equate(t, c.I, chip8.FontsetOrigin+0x0a*chip8.GlyphSize)

	// the glyph data is where the index register says it is
	test.Equate(t, c.Memory[c.I], chip8.Fontset[0x0a*chip8.GlyphSize])
}

func TestStoreBCD(t *testing.T) {
	// LD V0, 0x9b (155); LD I, 0x300; LD B, V0
	c := newMachine(t, 0x609b, 0xa300, 0xf033)
	step(t, c, 3)
	test.Equate(t, c.Memory[0x300], 0x01)
	test.Equate(t, c.Memory[0x301], 0x05)
	test.Equate(t, c.Memory[0x302], 0x05)
}

func TestRegisterDumpAndLoad(t *testing.T) {
	// dump V0 through V2 to 0x300 then load them back into a clobbered
	// register file
	c := newMachine(t, 0x6011, 0x6122, 0x6233, 0x6344,
		0xa300, 0xf255, // LD [I], V2
		0x6000, 0x6100, 0x6200, // clobber
		0xf265) // LD V2, [I]
	step(t, c, 10)

	test.Equate(t, c.Memory[0x300], 0x11)
	test.Equate(t, c.Memory[0x301], 0x22)
	test.Equate(t, c.Memory[0x302], 0x33)

	// the dump is inclusive of X but no further
	test.Equate(t, c.Memory[0x303], 0x00)

	test.Equate(t, c.V[0x0], 0x11)
	test.Equate(t, c.V[0x1], 0x22)
	test.Equate(t, c.V[0x2], 0x33)
	test.Equate(t, c.V[0x3], 0x44)
}

func TestAddIndex(t *testing.T) {
	// LD I, 0x300; LD V0, 0x10; ADD I, V0
	c := newMachine(t, 0xa300, 0x6010, 0xf01e)
	step(t, c, 3)
	test.Equate(t, c.I, 0x310)
}

func TestRandom(t *testing.T) {
	// a zero mask always produces zero whatever the generator says
	c := newMachine(t, 0x6fff, 0xc000)
	step(t, c, 2)
	test.Equate(t, c.V[0x0], 0x00)

	// the same seed produces the same sequence
	a := newMachine(t, 0xc0ff, 0xc1ff)
	b := newMachine(t, 0xc0ff, 0xc1ff)
	a.SetRandSeed(1)
	b.SetRandSeed(1)
	step(t, a, 2)
	step(t, b, 2)
	test.Equate(t, a.V[0x0], b.V[0x0])
	test.Equate(t, a.V[0x1], b.V[0x1])

	// the mask is honoured
	c = newMachine(t, 0xc00f)
	step(t, c, 1)
	test.Equate(t, c.V[0x0]&0xf0, 0x00)
}
