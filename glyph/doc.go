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

// Package glyph defines the packed encoding of a single 4x4 glyph cell.
//
// A glyph is stored as a 16 bit value. Bit 4*row+col is set if the pixel at
// (row, col) is set. Rows are stored low to high so that row zero occupies
// bits 0 to 3 and row three occupies bits 12 to 15. Within a row the least
// significant bit is the leftmost column.
//
// For example, the glyph
//
//	*..*
//	.**.
//	.**.
//	*..*
//
// is encoded as 0x9669.
package glyph
