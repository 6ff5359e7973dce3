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


package scanline

import (
	"encoding/binary"

	"github.com/jetsetilly/glyphline/font"
	"github.com/jetsetilly/glyphline/logger"
)

// Layer is implemented by anything that draws into a scanline. The buffer is
// the width of the frame and has already been drawn on by earlier layers.
type Layer interface {
	Scanline(line int, buf []font.Pixel)
}

// Frame is a complete display of Width by Height pixels.
type Frame struct {
	Width      int
	Height     int
	Background font.Pixel

	layers []Layer

	// the scanline currently being generated. layers draw into this and it is
	// copied into pixels when every layer has been called
	line []font.Pixel

	pixels   []font.Pixel
	frameNum int
}

// NewFrame is the preferred method of initialisation for the Frame type.
func NewFrame(width int, height int, background font.Pixel) *Frame {
	frm := &Frame{
		Width:      width,
		Height:     height,
		Background: background,
		line:       make([]font.Pixel, width),
		pixels:     make([]font.Pixel, width*height),
	}
	logger.Logf(logger.Allow, "scanline", "frame %dx%d", width, height)
	return frm
}

// AddLayer to the frame. Layers are drawn in the order they are added.
func (frm *Frame) AddLayer(l Layer) {
	frm.layers = append(frm.layers, l)
}

// ClearLayers removes all layers from the frame.
func (frm *Frame) ClearLayers() {
	frm.layers = frm.layers[:0]
}

// Generate all scanlines of a new frame.
func (frm *Frame) Generate() {
	for y := 0; y < frm.Height; y++ {
		for i := range frm.line {
			frm.line[i] = frm.Background
		}
		for _, l := range frm.layers {
			l.Scanline(y, frm.line)
		}
		copy(frm.pixels[y*frm.Width:], frm.line)
	}
	frm.frameNum++
}

// Line returns the pixels of scanline y from the most recent call to
// Generate(). The returned slice must not be modified.
func (frm *Frame) Line(y int) []font.Pixel {
	return frm.pixels[y*frm.Width : (y+1)*frm.Width]
}

// Pixels returns all pixels of the most recent frame in scanline order.
func (frm *Frame) Pixels() []font.Pixel {
	return frm.pixels
}

// FrameNum returns the number of times Generate() has been called.
func (frm *Frame) FrameNum() int {
	return frm.frameNum
}

// AppendBytes appends the pixels of the most recent frame to dst as little
// endian RGB565 values, two bytes per pixel. This is the layout of an SDL
// texture with a format of PIXELFORMAT_RGB565 on little endian hosts.
func (frm *Frame) AppendBytes(dst []byte) []byte {
	for _, p := range frm.pixels {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(p))
	}
	return dst
}
