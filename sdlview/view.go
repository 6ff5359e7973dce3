// This file is part of Glyphline.
//
// Glyphline is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Glyphline is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Glyphline.  If not, see <https://www.gnu.org/licenses/>.


package sdlview

import (
	"fmt"
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/logger"
	"github.com/jetsetilly/glyphline/scanline"
	"github.com/jetsetilly/glyphline/version"
)

// SDLError is the pattern for errors returned by SDL.
const SDLError = "sdlview: %v"

// number of bytes per pixel in the texture
const pixelDepth = 2

// View is an SDL window showing a scanline.Frame.
type View struct {
	frm *scanline.Frame

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	pixels []byte
	pitch  int

	lmtr *scanline.Limiter

	update func(frameNum int) error

	shown  bool
	closed bool
	done   chan struct{}
	err    error
}

// NewView is the preferred method of initialisation for the View type. The
// window is sized to the frame multiplied by the scale value.
func NewView(frm *scanline.Frame, scale int, fps float32) (*View, error) {
	if scale < 1 {
		scale = 1
	}

	vw := &View{
		frm:   frm,
		pitch: frm.Width * pixelDepth,
		lmtr:  scanline.NewLimiter(fps),
		done:  make(chan struct{}),
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDLError, err)
	}

	title := fmt.Sprintf("%s (%dx%d)", version.ApplicationName, frm.Width, frm.Height)
	vw.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(frm.Width*scale), int32(frm.Height*scale), sdl.WINDOW_HIDDEN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDLError, err)
	}

	vw.renderer, err = sdl.CreateRenderer(vw.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		vw.Destroy(nil)
		return nil, curated.Errorf(SDLError, err)
	}

	err = vw.renderer.SetScale(float32(scale), float32(scale))
	if err != nil {
		vw.Destroy(nil)
		return nil, curated.Errorf(SDLError, err)
	}

	vw.texture, err = vw.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_RGB565), int(sdl.TEXTUREACCESS_STREAMING), int32(frm.Width), int32(frm.Height))
	if err != nil {
		vw.Destroy(nil)
		return nil, curated.Errorf(SDLError, err)
	}

	vw.pixels = make([]byte, 0, frm.Width*frm.Height*pixelDepth)

	logger.Logf(logger.Allow, "sdlview", "window %dx%d scale %d", frm.Width, frm.Height, scale)

	return vw, nil
}

// Destroy the window and release SDL.
func (vw *View) Destroy(_ io.Writer) {
	vw.lmtr.Stop()
	if vw.texture != nil {
		vw.texture.Destroy()
	}
	if vw.renderer != nil {
		vw.renderer.Destroy()
	}
	if vw.window != nil {
		vw.window.Destroy()
	}
	sdl.Quit()
}

// SetUpdate sets the function that is called before every frame is generated.
// The function can change the layers of the frame. A non-nil error from the
// function closes the view.
func (vw *View) SetUpdate(update func(frameNum int) error) {
	vw.update = update
}

// Service handles pending SDL events and draws one frame. It must be called
// from the main thread. It does nothing once the view has been closed.
func (vw *View) Service() {
	if vw.closed {
		return
	}

	if !vw.shown {
		vw.window.Show()
		vw.shown = true
	}

	if !vw.service() {
		logger.Log(logger.Allow, "sdlview", "window closed")
		vw.close(nil)
		return
	}

	if vw.update != nil {
		if err := vw.update(vw.frm.FrameNum()); err != nil {
			vw.close(err)
			return
		}
	}

	vw.frm.Generate()

	if err := vw.present(); err != nil {
		vw.close(err)
		return
	}

	vw.lmtr.Wait()
}

func (vw *View) close(err error) {
	vw.err = err
	vw.closed = true
	close(vw.done)
}

// Done returns a channel that is closed when the view is closed by the user
// or by an error. The error is returned by Err().
func (vw *View) Done() <-chan struct{} {
	return vw.done
}

// Err returns the error that closed the view, if any. It should only be
// called after the Done() channel has been closed.
func (vw *View) Err() error {
	return vw.err
}

// service pending SDL events. returns false if the window should close.
func (vw *View) service() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN {
				switch ev.Keysym.Sym {
				case sdl.K_ESCAPE:
					return false
				case sdl.K_F1:
					logger.Logf(logger.Allow, "sdlview", "%.1f fps (requested %.1f)", vw.lmtr.Actual(), vw.lmtr.Requested())
				}
			}
		}
	}
	return true
}

func (vw *View) present() error {
	vw.pixels = vw.frm.AppendBytes(vw.pixels[:0])

	err := vw.texture.Update(nil, vw.pixels, vw.pitch)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = vw.renderer.Clear()
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	err = vw.renderer.Copy(vw.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDLError, err)
	}

	vw.renderer.Present()

	return nil
}
