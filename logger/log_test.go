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

package logger_test

import (
	"strings"
	"testing"

	"github.com/wrkean/chip8-emu/logger"
	"github.com/wrkean/chip8-emu/test"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	b := &strings.Builder{}
	logger.Write(b)
	test.Equate(t, b.Len(), 0)

	logger.Log("test", "this is a test")
	logger.Write(b)
	test.Equate(t, b.String(), "test: this is a test\n")

	b.Reset()
	logger.Logf("test2", "this is %s", "another test")
	logger.Write(b)
	test.Equate(t, b.String(), "test: this is a test\ntest2: this is another test\n")

	b.Reset()
	logger.Tail(b, 1)
	test.Equate(t, b.String(), "test2: this is another test\n")
}

func TestRepeatCollapse(t *testing.T) {
	logger.Clear()

	for i := 0; i < 3; i++ {
		logger.Log("test", "same entry")
	}

	b := &strings.Builder{}
	logger.Write(b)
	test.Equate(t, b.String(), "test: same entry (repeat x3)\n")

	// a different entry breaks the run
	logger.Log("test", "different entry")
	logger.Log("test", "same entry")

	b.Reset()
	logger.Write(b)
	test.Equate(t, strings.Count(b.String(), "\n"), 3)
}

func TestNewlineStripping(t *testing.T) {
	logger.Clear()

	logger.Log("test", "split\nentry")

	b := &strings.Builder{}
	logger.Write(b)
	test.Equate(t, b.String(), "test: splitentry\n")
}
