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
	"github.com/jetsetilly/glyphline/fonttable"
	"github.com/jetsetilly/glyphline/glyph"
	"github.com/jetsetilly/glyphline/logger"
)

// Pixel is a single pixel in a scanline buffer. The format of the pixel
// belongs to the display and is opaque to the font package. On the reference
// hardware it is RGB565.
type Pixel uint16

// Sentinel marks the end of a text string.
const Sentinel = 0

// Scaling of the glyph cell. A scale factor of two means that every row in a
// glyph is drawn on two consecutive scanlines and that every column is drawn
// as two adjacent pixels.
const (
	VerticalScale   = 2
	HorizontalScale = 2
)

const (
	// CellHeight is the number of scanlines occupied by a line of text.
	CellHeight = glyph.Height * VerticalScale

	// Advance is the number of pixels between the start of one character and
	// the start of the next. This includes the separator pixel.
	Advance = glyph.Width*HorizontalScale + 1
)

// DefaultDisplayWidth is the width of the reference display.
const DefaultDisplayWidth = 320

// Font is the runtime representation of a font table. The active table is
// populated once by Init() and is read-only afterwards.
type Font struct {
	persisted fonttable.Table
	active    fonttable.Table

	initialised bool

	// the width of the display. only used by the diagnostic checks
	displayWidth int

	// called by the diagnostic checks when a render request is invalid
	halt func(error)
}

// NewFont is the preferred method of initialisation for the Font type. The
// active table is empty until Init() is called.
func NewFont(persisted fonttable.Table) *Font {
	return &Font{
		persisted:    persisted,
		displayWidth: DefaultDisplayWidth,
		halt:         defaultHalt,
	}
}

// Init copies the persisted table into the active table. It must be called
// before the first render and must not be called while rendering is taking
// place. Calling Init more than once has no further effect because the copy is
// always the same.
func (fnt *Font) Init() {
	fnt.active = fnt.persisted
	fnt.initialised = true
	logger.Logf(logger.Allow, "font", "active table initialised with %d glyphs", fnt.active.Count())
}

// Initialised returns true if Init() has been called.
func (fnt *Font) Initialised() bool {
	return fnt.initialised
}

// Active returns a copy of the active table.
func (fnt *Font) Active() fonttable.Table {
	return fnt.active
}

// Glyph returns the active glyph for the character code.
func (fnt *Font) Glyph(code byte) glyph.Glyph {
	return fnt.active[code]
}

// logicalRow converts deltaY, the scanline within the character cell, to
// the row of the glyph that is drawn on that scanline.
func logicalRow(deltaY int) int {
	return deltaY / VerticalScale
}

// Row returns the 4 bit row value of the glyph that is drawn on scanline
// deltaY of a character cell. The leftmost pixel is in bit zero.
func (fnt *Font) Row(code byte, deltaY int) uint8 {
	return fnt.active[code].Row(logicalRow(deltaY))
}

// SetDisplayWidth sets the width of the display in pixels. The width is used
// to check that text does not go off the edge of the display.
func (fnt *Font) SetDisplayWidth(width int) {
	fnt.displayWidth = width
}

// DisplayWidth returns the value set by SetDisplayWidth().
func (fnt *Font) DisplayWidth() int {
	return fnt.displayWidth
}

// SetHalt sets the function that is called when a diagnostic check fails. A
// value of nil restores the default function, which panics.
func (fnt *Font) SetHalt(halt func(error)) {
	if halt == nil {
		halt = defaultHalt
	}
	fnt.halt = halt
}
