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

// Package sdlaudio turns the sound timer into an audible buzz through an
// SDL audio device. The CHIP-8 specifies only the duration of the sound,
// not its character, so a square wave it is.
package sdlaudio

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/wrkean/chip8-emu/curated"
)

// Sentinel errors raised by this package.
const AudioError = "sdlaudio: %v"

const (
	sampleFreq = 44100
	toneFreq   = 440

	// the longest possible buzz is a sound timer of 255 running down at
	// 60Hz, a little over four seconds. the queued tone is longer than
	// that so it never runs dry mid-buzz
	toneLength = 5 * sampleFreq
)

// Audio implements the chip8.Beeper interface with an SDL queue audio
// device.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// the pre-rendered square wave queued on every buzz edge
	tone []byte
}

// NewAudio is the preferred method of initialisation for the Audio type.
// SDL must already have been initialised with sdl.INIT_AUDIO.
func NewAudio() (*Audio, error) {
	aud := &Audio{}

	spec := &sdl.AudioSpec{
		Freq:     sampleFreq,
		Format:   sdl.AUDIO_U8,
		Channels: 1,
		Samples:  512,
	}

	var err error
	aud.id, err = sdl.OpenAudioDevice("", false, spec, &aud.spec, 0)
	if err != nil {
		return nil, curated.Errorf(AudioError, err)
	}

	// unsigned 8-bit samples with silence at 0x80
	aud.tone = make([]byte, toneLength)
	halfPeriod := sampleFreq / (2 * toneFreq)
	for i := range aud.tone {
		if (i/halfPeriod)%2 == 0 {
			aud.tone[i] = 0xa0
		} else {
			aud.tone[i] = 0x60
		}
	}

	return aud, nil
}

// SetBuzzing implements the chip8.Beeper interface.
func (aud *Audio) SetBuzzing(buzz bool) error {
	if buzz {
		sdl.ClearQueuedAudio(aud.id)
		if err := sdl.QueueAudio(aud.id, aud.tone); err != nil {
			return curated.Errorf(AudioError, err)
		}
		sdl.PauseAudioDevice(aud.id, false)
	} else {
		sdl.PauseAudioDevice(aud.id, true)
		sdl.ClearQueuedAudio(aud.id)
	}

	return nil
}

// EndBeeping implements the chip8.Beeper interface.
func (aud *Audio) EndBeeping() error {
	sdl.CloseAudioDevice(aud.id)
	return nil
}
