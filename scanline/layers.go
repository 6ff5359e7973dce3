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
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jetsetilly/glyphline/font"
)

// TextLayer draws a line of text with its top-left corner at X, Y.
//
// Text that would not fit inside the scanline buffer is not drawn.
type TextLayer struct {
	fnt  *font.Font
	text []byte

	X  int
	Y  int
	FG font.Pixel
	BG font.Pixel

	// transparent text leaves the clear pixels of the cell untouched
	Transparent bool
}

// NewTextLayer is the preferred method of initialisation for the TextLayer
// type. The text is copied.
func NewTextLayer(fnt *font.Font, text []byte, x int, y int, fg font.Pixel, bg font.Pixel) *TextLayer {
	l := &TextLayer{
		fnt: fnt,
		X:   x,
		Y:   y,
		FG:  fg,
		BG:  bg,
	}
	l.SetText(text)
	return l
}

// SetText changes the text drawn by the layer.
func (l *TextLayer) SetText(text []byte) {
	l.text = append(l.text[:0], text...)
}

// Text returns the text drawn by the layer.
func (l *TextLayer) Text() []byte {
	return l.text
}

// Scanline implements the Layer interface.
func (l *TextLayer) Scanline(line int, buf []font.Pixel) {
	deltaY := line - l.Y
	if deltaY < 0 || deltaY >= font.CellHeight {
		return
	}
	if l.X < 0 || l.X+font.Footprint(l.text) > len(buf) {
		return
	}

	if l.Transparent {
		l.fnt.RenderLineTransparent(buf, l.text, l.X, deltaY, l.FG)
	} else {
		l.fnt.RenderLine(buf, l.text, l.X, deltaY, l.FG, l.BG)
	}
}

// SpecimenLayer draws every glyph in the active table of the font.
type SpecimenLayer struct {
	fnt *font.Font

	X  int
	Y  int
	FG font.Pixel
	BG font.Pixel
}

// NewSpecimenLayer is the preferred method of initialisation for the
// SpecimenLayer type.
func NewSpecimenLayer(fnt *font.Font, x int, y int, fg font.Pixel, bg font.Pixel) *SpecimenLayer {
	return &SpecimenLayer{
		fnt: fnt,
		X:   x,
		Y:   y,
		FG:  fg,
		BG:  bg,
	}
}

// Scanline implements the Layer interface.
func (l *SpecimenLayer) Scanline(line int, buf []font.Pixel) {
	if l.X < 0 || l.X+font.SpecimenWidth > len(buf) {
		return
	}
	l.fnt.RenderSpecimen(buf, l.X, line-l.Y, l.FG, l.BG)
}

// GradientLayer fills every scanline with a color that blends from Top to
// Bottom over Height scanlines. The blend is made in the CIE L*a*b* color
// space so that the perceived brightness changes evenly. It is useful as a
// backdrop for transparent text.
type GradientLayer struct {
	Top    RGB
	Bottom RGB
	Height int
}

// Scanline implements the Layer interface.
func (l *GradientLayer) Scanline(line int, buf []font.Pixel) {
	if line < 0 || line >= l.Height {
		return
	}

	var p font.Pixel
	switch line {
	case 0:
		p = l.Top.Pixel()
	case l.Height - 1:
		p = l.Bottom.Pixel()
	default:
		top := colorful.Color{R: float64(l.Top.Red) / 255, G: float64(l.Top.Green) / 255, B: float64(l.Top.Blue) / 255}
		bottom := colorful.Color{R: float64(l.Bottom.Red) / 255, G: float64(l.Bottom.Green) / 255, B: float64(l.Bottom.Blue) / 255}
		r, g, b := top.BlendLab(bottom, float64(line)/float64(l.Height-1)).Clamped().RGB255()
		p = RGB565(r, g, b)
	}

	for i := range buf {
		buf[i] = p
	}
}
