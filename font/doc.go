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

// Package font renders lines of text into a scanline buffer. It is intended to
// be called by a display driver once for every physical scanline, while that
// scanline is being prepared.
//
// Glyphs are 4x4 pixels (see the glyph package) and are drawn at twice their
// size in both directions, so that a character occupies a cell 8 scanlines
// high. Each call to a render function draws one of those 8 scanlines. The
// deltaY argument says which one:
//
//	deltaY 0 and 1 -> glyph row 0
//	deltaY 2 and 3 -> glyph row 1
//	deltaY 4 and 5 -> glyph row 2
//	deltaY 6 and 7 -> glyph row 3
//
// Horizontally, each glyph pixel becomes two buffer pixels and every
// character is followed by a single separator pixel. The opaque renderer also
// draws a separator pixel before the first character. A string of N
// characters rendered at x therefore covers the pixels x to x+9N inclusive.
//
// The render functions do not allocate, block or take locks. The only state
// they read is the active table which is populated by Init() before rendering
// begins and never changed afterwards.
//
// # Diagnostics
//
// When built with the fontdiag build tag the render functions check their
// arguments before drawing anything. If deltaY is out of range, if the text
// would go past the edge of the display, or if Init() has not been called,
// the problem is logged and the halt function is called. The default halt
// function panics. Without the build tag no checks are made and the result
// of bad arguments is undefined.
package font
