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

// Package wavwriter records the beeps of a play session to disk as a WAV
// file. Note that the audio data is buffered in memory in its entirety and
// written out on session end, so it is probably only suitable for testing
// purposes.
package wavwriter

import (
	"os"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/logger"
)

// Sentinel errors raised by this package.
const WriteError = "wavwriter: %v"

const (
	sampleFreq = 44100
	bitDepth   = 16
	toneFreq   = 440
	amplitude  = 8000
)

// WavWriter implements the chip8.Beeper interface. The sound timer only
// ever produces edges (buzz on, buzz off) so the recording is reconstructed
// from the wall-clock time between edges: a square wave while buzzing,
// silence otherwise.
type WavWriter struct {
	filename string

	buzzing  bool
	lastEdge time.Time

	// mono 16-bit samples
	data []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string) (*WavWriter, error) {
	return &WavWriter{
		filename: filename,
		lastEdge: time.Now(),
		data:     make([]int, 0),
	}, nil
}

// SetBuzzing implements the chip8.Beeper interface.
func (aw *WavWriter) SetBuzzing(buzz bool) error {
	aw.appendSegment()
	aw.buzzing = buzz
	return nil
}

// EndBeeping implements the chip8.Beeper interface. The WAV file is created
// and written here.
func (aw *WavWriter) EndBeeping() (rerr error) {
	aw.appendSegment()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WriteError, err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf(WriteError, err)
		}
	}()

	enc := wav.NewEncoder(f, sampleFreq, bitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  sampleFreq,
		},
		Data:           aw.data,
		SourceBitDepth: bitDepth,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf(WriteError, err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf(WriteError, err)
	}

	logger.Logf("wavwriter", "%s written (%.1fs of audio)", aw.filename,
		float64(len(aw.data))/sampleFreq)

	return nil
}

// appendSegment renders the period since the last edge into samples.
func (aw *WavWriter) appendSegment() {
	now := time.Now()
	n := int(now.Sub(aw.lastEdge).Seconds() * sampleFreq)
	aw.lastEdge = now

	if !aw.buzzing {
		aw.data = append(aw.data, make([]int, n)...)
		return
	}

	halfPeriod := sampleFreq / (2 * toneFreq)
	for i := 0; i < n; i++ {
		if (i/halfPeriod)%2 == 0 {
			aw.data = append(aw.data, amplitude)
		} else {
			aw.data = append(aw.data, -amplitude)
		}
	}
}
