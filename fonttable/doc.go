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

// Package fonttable is the persisted form of a font: a fixed length table of
// 256 glyphs indexed by character code.
//
// The binary format is 256 contiguous 16 bit values in little endian byte
// order, one for each character code, as defined by the glyph package. There
// is no header. A table file is therefore exactly 512 bytes long.
//
// Codes from RandomizedStart upwards are reserved for decorative glyphs that
// are allowed to repeat the encoding of another glyph. Below that, a non-blank
// encoding must be unique. This is checked by Validate() and is intended to
// catch mistakes in the artwork when a table is compiled. It is not checked
// when a table is read.
//
// The default table, compiled from the artwork in glyphs.txt, is embedded in
// the package and is available through the Default() function.
package fonttable
