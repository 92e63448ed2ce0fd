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

// Package limiter provides a rough and ready way of limiting events to a
// fixed rate. A new FpsLimiter is created with:
//
//	lmtr := limiter.NewFpsLimiter(60)
//
// Operations can then be stalled with the Wait() function:
//
//	for {
//		lmtr.Wait()
//		doFrame()
//	}
package limiter

import (
	"time"
)

// FpsLimiter triggers at a fixed number of frames per second. It is
// probably only any good if the base performance of the machine is well
// above the required rate.
type FpsLimiter struct {
	secondsPerFrame time.Duration

	tick chan bool
}

// NewFpsLimiter is the preferred method of initialisation for the
// FpsLimiter type.
func NewFpsLimiter(framesPerSecond int) *FpsLimiter {
	lim := &FpsLimiter{
		secondsPerFrame: time.Second / time.Duration(framesPerSecond),
		tick:            make(chan bool),
	}

	// run ticker concurrently, adjusting the sleep period to absorb drift
	go func() {
		adjusted := lim.secondsPerFrame
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjusted)
			nt := time.Now()
			adjusted -= nt.Sub(t) - lim.secondsPerFrame
			t = nt
		}
	}()

	return lim
}

// Wait blocks until the next trigger.
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if the trigger has already elapsed and false if it
// is still yet to happen.
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
