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

// TimerHz is the cadence at which the host should call TickTimers(),
// independently of how many instructions it runs per frame.
const TimerHz = 60

// TickTimers decrements the delay and sound timers by one each, flooring at
// zero. The host calls it at the TimerHz cadence; it is deliberately
// decoupled from Step() so that instruction throughput does not affect
// timer accuracy.
//
// Any error is from the attached beeper reacting to a sound timer edge.
func (c *Chip8) TickTimers() error {
	if c.DelayTimer > 0 {
		c.DelayTimer--
	}
	if c.SoundTimer > 0 {
		c.SoundTimer--
	}
	return c.updateBeeper()
}

// updateBeeper tells the attached beeper about sound timer edges. Called
// whenever the sound timer may have changed.
func (c *Chip8) updateBeeper() error {
	if c.beeper == nil {
		return nil
	}

	buzz := c.SoundTimer > 0
	if buzz == c.buzzing {
		return nil
	}
	c.buzzing = buzz

	return c.beeper.SetBuzzing(buzz)
}
