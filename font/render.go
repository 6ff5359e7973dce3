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

package font

import (
	"github.com/jetsetilly/glyphline/glyph"
)

// Length returns the number of characters in text before the sentinel. If
// there is no sentinel the length is the length of the slice.
func Length(text []byte) int {
	for i, c := range text {
		if c == Sentinel {
			return i
		}
	}
	return len(text)
}

// Footprint returns the number of pixels covered by RenderLine() for the text.
func Footprint(text []byte) int {
	return Advance*Length(text) + 1
}

// RenderLine draws one scanline of text into dst, starting at pixel x. Set
// glyph pixels are drawn in the fg color and clear pixels, including the
// separators between characters, are drawn in the bg color. The text ends at
// the first sentinel or at the end of the slice.
//
// deltaY is the scanline within the character cell and must be in the range
// 0 to CellHeight-1.
func (fnt *Font) RenderLine(dst []Pixel, text []byte, x int, deltaY int, fg Pixel, bg Pixel) {
	if Diagnostics && !fnt.check(text, x, deltaY) {
		return
	}

	row := logicalRow(deltaY)

	// leading separator
	dst[x] = bg

	for _, c := range text {
		if c == Sentinel {
			break
		}
		x = fnt.opaqueCell(dst, x, fnt.active[c].Row(row), fg, bg)
	}
}

// RenderChar draws one scanline of a single character into dst in the same
// way as RenderLine(). Unlike RenderLine() the code is always drawn, even if
// it is the sentinel.
func (fnt *Font) RenderChar(dst []Pixel, code byte, x int, deltaY int, fg Pixel, bg Pixel) {
	if Diagnostics && !fnt.checkChar(code, x, deltaY) {
		return
	}
	dst[x] = bg
	fnt.opaqueCell(dst, x, fnt.active[code].Row(logicalRow(deltaY)), fg, bg)
}

// opaqueCell draws the glyph row for one character, followed by the trailing
// separator. x is the pixel before the first pixel of the character. the
// returned value is the position of the separator, which is the x value for
// the next character.
func (fnt *Font) opaqueCell(dst []Pixel, x int, row uint8, fg Pixel, bg Pixel) int {
	for range glyph.Width {
		p := bg
		if row&0x01 == 0x01 {
			p = fg
		}
		for range HorizontalScale {
			x++
			dst[x] = p
		}
		row >>= 1
	}

	// trailing separator
	x++
	dst[x] = bg

	return x
}

// RenderLineTransparent draws one scanline of text into dst, starting at
// pixel x. Only the set pixels of each glyph are drawn. Pixels for clear glyph
// pixels and for separators are left untouched. The layout is the same as
// RenderLine(), including the leading separator.
//
// deltaY is the scanline within the character cell and must be in the range
// 0 to CellHeight-1.
func (fnt *Font) RenderLineTransparent(dst []Pixel, text []byte, x int, deltaY int, fg Pixel) {
	if Diagnostics && !fnt.check(text, x, deltaY) {
		return
	}

	row := logicalRow(deltaY)

	for _, c := range text {
		if c == Sentinel {
			break
		}

		r := fnt.active[c].Row(row)
		for range glyph.Width {
			if r&0x01 == 0x01 {
				for range HorizontalScale {
					x++
					dst[x] = fg
				}
			} else {
				x += HorizontalScale
			}
			r >>= 1
		}

		// separator
		x++
	}
}
