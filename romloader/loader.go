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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/logger"
)

// Sentinel errors raised by this package.
const (
	NoFilename = "romloader: no filename specified"
	LoadFailed = "romloader: %v"
	EmptyRom   = "romloader: %s: file is empty"
)

// FileExtensions is the list of file extensions that are recognised as
// CHIP-8 roms. Files with other extensions load all the same but a log
// entry is made.
var FileExtensions = [...]string{".CH8", ".C8", ".ROM", ".BIN"}

// Loader is used to specify the rom to load into the machine. The machine
// itself performs no file I/O; the Load() function here is the one place
// where rom bytes come off the storage medium.
type Loader struct {
	// filename of rom to load
	Filename string

	// copy of the loaded data. subsequent calls to Load() return the same
	// data
	Data []byte

	// SHA1 of the loaded data. empty until Load() has succeeded
	Hash string
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	ld := Loader{Filename: filename}

	ext := strings.ToUpper(filepath.Ext(filename))
	recognised := false
	for _, e := range FileExtensions {
		if ext == e {
			recognised = true
			break
		}
	}
	if !recognised {
		logger.Logf("romloader", "unrecognised file extension for %s", filename)
	}

	return ld
}

// ShortName returns a shortened version of the rom filename, suitable for
// window titles and recording filenames.
func (ld Loader) ShortName() string {
	sn := filepath.Base(ld.Filename)
	return strings.TrimSuffix(sn, filepath.Ext(sn))
}

// HasLoaded returns true once the rom data has been read from disk.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the rom data and calculate the hash. A Loader that has already
// loaded does nothing on subsequent calls.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	if ld.Filename == "" {
		return curated.Errorf(NoFilename)
	}

	data, err := os.ReadFile(ld.Filename)
	if err != nil {
		return curated.Errorf(LoadFailed, err)
	}
	if len(data) == 0 {
		return curated.Errorf(EmptyRom, ld.Filename)
	}

	ld.Data = data
	ld.Hash = fmt.Sprintf("%x", sha1.Sum(data))

	logger.Logf("romloader", "%s (%d bytes, sha1 %s)", ld.ShortName(), len(ld.Data), ld.Hash)

	return nil
}
