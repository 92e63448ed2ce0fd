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
	"fmt"
	"math/rand"
	"time"

	"github.com/wrkean/chip8-emu/curated"
)

// Memory geometry. The fontset lives below the program origin, the program
// occupies everything from the origin to the top of memory.
const (
	MemorySize    = 4096
	FontsetOrigin = 0x50
	ProgramOrigin = 0x200
)

// Display geometry. The display is row-major with one byte per pixel, each
// byte holding 0 or 1.
const (
	DisplayWidth  = 64
	DisplayHeight = 32
)

// NumKeys is the number of keys on the hexadecimal keypad.
const NumKeys = 16

// Sentinel errors raised by this package.
const (
	RomTooLarge    = "chip8: rom too large (%d bytes)"
	StackUnderflow = "chip8: return with empty stack (pc %#04x)"
	PCOutOfRange   = "chip8: program counter out of range (%#04x)"
)

// Chip8 is the single aggregate for all machine state. It is created once
// per session and then mutated in place by Step() and TickTimers(). There is
// exactly one owner and no locking; the host must not mutate the Keypad
// while a call to Step() is in flight.
type Chip8 struct {
	// system memory. the fontset is copied to FontsetOrigin and the loaded
	// rom to ProgramOrigin by the Load() function
	Memory [MemorySize]uint8

	// general purpose registers. V[0xf] doubles as the carry/borrow/
	// collision flag and is clobbered as a side effect of several
	// instructions
	V [16]uint8

	// index register. used for sprite and memory-block addressing
	I uint16

	// program counter
	PC uint16

	// call stack. the top entry is the address of the most recent call
	// instruction
	Stack []uint16

	// countdown timers. decremented towards zero by TickTimers()
	DelayTimer uint8
	SoundTimer uint8

	// keypad latch. written by the host in response to input events, read
	// by the skip-on-key and wait-for-key instructions. a non-zero entry
	// means the key is held
	Keypad [NumKeys]uint8

	// the framebuffer. written only by the draw and clear-screen
	// instructions
	Display [DisplayWidth * DisplayHeight]uint8

	// DrawFlag is set whenever the Display changes. it is never cleared by
	// the emulation; the host clears it once it has consumed the
	// framebuffer
	DrawFlag bool

	// the wait-for-key instruction parks the machine in an awaiting-input
	// state rather than rewinding the program counter. while awaitKey is
	// true Step() only scans the keypad
	awaitKey bool
	awaitReg uint8

	// source for the random-and instruction. seedable for deterministic
	// testing
	rnd *rand.Rand

	// current state of the attached beeper, if any
	beeper  Beeper
	buzzing bool
}

// Beeper implementations turn the sound timer into something audible. The
// emulation calls SetBuzzing() on the edges of the sound timer: true when
// the timer becomes non-zero and false when it runs down to zero.
//
// EndBeeping() is called once when the session ends, allowing
// implementations to flush any buffered audio.
type Beeper interface {
	SetBuzzing(buzz bool) error
	EndBeeping() error
}

// NewChip8 is the preferred method of initialisation for the Chip8 type.
// The returned machine has no program loaded; call Load() before the first
// call to Step().
func NewChip8() *Chip8 {
	c := &Chip8{
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	c.reset()
	return c
}

// reset returns every part of the machine state to its power-on value. the
// rnd source and any attached beeper survive a reset.
func (c *Chip8) reset() {
	c.Memory = [MemorySize]uint8{}
	c.V = [16]uint8{}
	c.I = 0
	c.PC = ProgramOrigin
	c.Stack = c.Stack[:0]
	c.DelayTimer = 0
	c.SoundTimer = 0
	c.Keypad = [NumKeys]uint8{}
	c.Display = [DisplayWidth * DisplayHeight]uint8{}
	c.DrawFlag = false
	c.awaitKey = false
	c.awaitReg = 0
}

// Load initialises the machine with the supplied rom and fontset. The
// fontset is copied to FontsetOrigin and the rom to ProgramOrigin. All
// other machine state is reset, making Load() suitable for re-initialising
// an existing session.
//
// The caller guarantees that the fontset fits below the program origin; in
// practice it is always the 80 byte table in the Fontset variable.
//
// If the rom does not fit in memory the machine state is left unmodified.
func (c *Chip8) Load(rom []byte, fontset []byte) error {
	if ProgramOrigin+len(rom) > MemorySize {
		return curated.Errorf(RomTooLarge, len(rom))
	}

	c.reset()
	copy(c.Memory[FontsetOrigin:], fontset)
	copy(c.Memory[ProgramOrigin:], rom)

	return nil
}

// AttachBeeper connects a Beeper to the sound timer. A nil argument
// detaches the current beeper.
func (c *Chip8) AttachBeeper(b Beeper) {
	c.beeper = b
	c.buzzing = false
}

// SetRandSeed fixes the sequence used by the random-and instruction. Only
// useful for testing.
func (c *Chip8) SetRandSeed(seed int64) {
	c.rnd = rand.New(rand.NewSource(seed))
}

// IsAwaitingKey returns true if the machine is parked on a wait-for-key
// instruction with no key yet latched.
func (c *Chip8) IsAwaitingKey() bool {
	return c.awaitKey
}

func (c *Chip8) String() string {
	return fmt.Sprintf("pc=%#04x i=%#04x dt=%d st=%d stack=%d",
		c.PC, c.I, c.DelayTimer, c.SoundTimer, len(c.Stack))
}
