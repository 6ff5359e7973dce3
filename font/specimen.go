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

import "github.com/jetsetilly/glyphline/fonttable"

// Layout of the specimen drawn by RenderSpecimen().
const (
	SpecimenColumns = 16
	SpecimenRows    = fonttable.NumGlyphs / SpecimenColumns

	// one blank glyph row between each row of characters
	specimenRowHeight = CellHeight + VerticalScale

	SpecimenWidth  = SpecimenColumns*Advance + 1
	SpecimenHeight = SpecimenRows * specimenRowHeight
)

// RenderSpecimen draws one scanline of a specimen of the entire active table.
// The specimen is 16 rows of 16 characters in code order. The line argument is
// the scanline within the specimen, in the range 0 to SpecimenHeight-1.
// Scanlines outside that range are not drawn.
func (fnt *Font) RenderSpecimen(dst []Pixel, x int, line int, fg Pixel, bg Pixel) {
	if line < 0 || line >= SpecimenHeight {
		return
	}

	row := line / specimenRowHeight
	deltaY := line % specimenRowHeight

	if deltaY >= CellHeight {
		for i := range SpecimenWidth {
			dst[x+i] = bg
		}
		return
	}

	for c := range SpecimenColumns {
		fnt.RenderChar(dst, byte(row*SpecimenColumns+c), x+c*Advance, deltaY, fg, bg)
	}
}
