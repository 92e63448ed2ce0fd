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

package romloader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/romloader"
	"github.com/wrkean/chip8-emu/test"
)

func TestLoader(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "pong.ch8")
	if err := os.WriteFile(fn, []byte{0x60, 0x05, 0x70, 0x03}, 0o600); err != nil {
		t.Fatal(err)
	}

	ld := romloader.NewLoader(fn)
	test.Equate(t, ld.ShortName(), "pong")
	test.Equate(t, ld.HasLoaded(), false)

	test.ExpectedSuccess(t, ld.Load())
	test.Equate(t, ld.HasLoaded(), true)
	test.Equate(t, len(ld.Data), 4)
	test.Equate(t, len(ld.Hash), 40)

	// loading again is a no-op
	hash := ld.Hash
	test.ExpectedSuccess(t, ld.Load())
	test.Equate(t, ld.Hash, hash)
}

func TestLoaderNoFilename(t *testing.T) {
	ld := romloader.NewLoader("")
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.NoFilename))
}

func TestLoaderMissingFile(t *testing.T) {
	ld := romloader.NewLoader(filepath.Join(t.TempDir(), "no_such_rom.ch8"))
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.LoadFailed))
}

func TestLoaderEmptyFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "empty.ch8")
	if err := os.WriteFile(fn, []byte{}, 0o600); err != nil {
		t.Fatal(err)
	}

	ld := romloader.NewLoader(fn)
	err := ld.Load()
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, romloader.EmptyRom))
}
