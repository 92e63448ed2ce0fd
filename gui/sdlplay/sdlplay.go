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

package sdlplay

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/wrkean/chip8-emu/curated"
	"github.com/wrkean/chip8-emu/gui"
	"github.com/wrkean/chip8-emu/hardware/chip8"
)

// Sentinel errors raised by this package.
const (
	SetupError  = "sdlplay: %v"
	RenderError = "sdlplay: render: %v"
)

// number of bytes per pixel in the texture
const pixelDepth = 4

// SdlPlay is an SDL2 implementation of the gui.GUI interface. The 64x32
// framebuffer is copied into a streaming texture and scaled to the window
// by the renderer.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// pixels is the byte array we copy to the texture before applying it to
	// the renderer. it is display width * display height * pixelDepth in
	// length
	pixels []byte

	// connects the SDL event loop with the parent process
	eventChannel chan gui.Event

	// the guiLoop goroutine runs until told otherwise
	endLoop chan bool
}

// NewSdlPlay is the preferred method of initialisation for the SdlPlay
// type. The scale argument is the size of a single CHIP-8 pixel in window
// pixels.
func NewSdlPlay(title string, scale int) (*SdlPlay, error) {
	scr := &SdlPlay{
		pixels:  make([]byte, chip8.DisplayWidth*chip8.DisplayHeight*pixelDepth),
		endLoop: make(chan bool),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS | sdl.INIT_AUDIO)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	scr.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(chip8.DisplayWidth*scale), int32(chip8.DisplayHeight*scale),
		sdl.WINDOW_HIDDEN)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	scr.texture, err = scr.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING,
		chip8.DisplayWidth, chip8.DisplayHeight)
	if err != nil {
		return nil, curated.Errorf(SetupError, err)
	}

	// gui events are serviced by a separate goroutine
	go scr.guiLoop()

	// note that we've elected not to show the window on startup. the window
	// is opened by the host with Show() once the machine is running

	return scr, nil
}

// SetEventChannel implements the gui.GUI interface.
func (scr *SdlPlay) SetEventChannel(ch chan gui.Event) {
	scr.eventChannel = ch
}

// Show implements the gui.GUI interface.
func (scr *SdlPlay) Show(visible bool) error {
	if visible {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
	return nil
}

// UpdateFrame implements the gui.GUI interface. Lit pixels are white,
// unlit pixels are black, the way the COSMAC VIP intended.
func (scr *SdlPlay) UpdateFrame(pixels []byte) error {
	for i, p := range pixels {
		var v byte
		if p != 0 {
			v = 0xff
		}
		o := i * pixelDepth
		scr.pixels[o] = v      // red
		scr.pixels[o+1] = v    // green
		scr.pixels[o+2] = v    // blue
		scr.pixels[o+3] = 0xff // alpha
	}

	err := scr.texture.Update(nil, scr.pixels, chip8.DisplayWidth*pixelDepth)
	if err != nil {
		return curated.Errorf(RenderError, err)
	}
	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(RenderError, err)
	}
	scr.renderer.Present()

	return nil
}

// End implements the gui.GUI interface.
func (scr *SdlPlay) End() error {
	scr.endLoop <- true

	scr.texture.Destroy()
	scr.renderer.Destroy()
	scr.window.Destroy()
	sdl.Quit()

	return nil
}
