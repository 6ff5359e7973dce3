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

package glyph

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/jetsetilly/glyphline/curated"
)

// Dimensions of a glyph cell in logical pixels.
const (
	Width  = 4
	Height = 4
)

// rowMask isolates a single row once it has been shifted to the bottom of
// the glyph value.
const rowMask = 0x0f

// Glyph is the packed bitmap of a 4x4 glyph cell.
type Glyph uint16

// RowTooWide is returned by FromRows() when a row has more than Width pixels.
const RowTooWide = "glyph: row %d is %d pixels wide (maximum %d)"

// Blank is the fully blank glyph.
const Blank Glyph = 0

// Characters used to decode a glyph into rows of pixel-art.
const (
	SetPixel   = '*'
	ClearPixel = '.'
)

// Shift returns the number of bits the glyph value must be shifted right to
// bring the row to the bottom of the value.
func Shift(row int) int {
	return row * Width
}

// Row returns the 4 bit value of the row. The leftmost pixel is in bit zero.
func (g Glyph) Row(row int) uint8 {
	return uint8(g>>Shift(row)) & rowMask
}

// Pixel returns true if the pixel at (row, col) is set.
func (g Glyph) Pixel(row, col int) bool {
	return g&(1<<(Shift(row)+col)) != 0
}

// IsBlank returns true if no pixels in the glyph are set.
func (g Glyph) IsBlank() bool {
	return g == Blank
}

// Rows decodes the glyph into pixel-art. Each string is exactly Width
// characters long and uses SetPixel and ClearPixel.
func (g Glyph) Rows() [Height]string {
	var rows [Height]string
	var b [Width]byte
	for row := range Height {
		for col := range Width {
			if g.Pixel(row, col) {
				b[col] = SetPixel
			} else {
				b[col] = ClearPixel
			}
		}
		rows[row] = string(b[:])
	}
	return rows
}

// String returns the glyph as hex value.
func (g Glyph) String() string {
	return fmt.Sprintf("%#04x", uint16(g))
}

// Art returns the glyph as multiline pixel-art.
func (g Glyph) Art() string {
	r := g.Rows()
	return strings.Join(r[:], "\n")
}

// FromRows encodes rows of pixel-art. Each rune is one pixel. Any rune other
// than a space or ClearPixel is a set pixel. Missing pixels at the end of a row are clear.
//
// Rows that are longer than Width are an error. The rows are not truncated.
func FromRows(rows [Height]string) (Glyph, error) {
	var g Glyph
	for row, s := range rows {
		if n := utf8.RuneCountInString(s); n > Width {
			return Blank, curated.Errorf(RowTooWide, row, n, Width)
		}
		col := 0
		for _, p := range s {
			if p != ' ' && p != ClearPixel {
				g |= 1 << (Shift(row) + col)
			}
			col++
		}
	}
	return g, nil
}
