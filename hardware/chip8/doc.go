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

// Package chip8 implements the CHIP-8 virtual machine: memory, registers,
// stack, timers, keypad latch and framebuffer, and the fetch/decode/execute
// engine that drives them.
//
// The Chip8 type is the single aggregate for all machine state. A session
// looks like this from the host's point of view:
//
//	c := chip8.NewChip8()
//	if err := c.Load(rom, chip8.Fontset); err != nil {
//		...
//	}
//	for { // once per frame
//		// latch input events into c.Keypad
//		for i := 0; i < cyclesPerFrame; i++ {
//			if err := c.Step(); err != nil {
//				...
//			}
//		}
//		c.TickTimers() // at 60Hz
//		if c.DrawFlag {
//			// present c.Display
//			c.DrawFlag = false
//		}
//	}
//
// The engine is single threaded and never blocks. The only blocking-like
// behaviour is the wait-for-key instruction, which is cooperative: the
// machine parks itself in an awaiting-input state and every subsequent
// Step() scans the keypad until a key is latched, returning control to the
// host's frame loop in between.
//
// Opcodes are decoded once into an Instruction value before execution. The
// Decode() function and Instruction type are exported for the benefit of
// the disassembly package.
package chip8
