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

// Package artwork compiles human-authored pixel-art into a font table.
//
// The artwork format is line based. Lines beginning with '#' are comments and
// blank lines are ignored between glyphs. A glyph begins with a header line:
//
//	@65 A
//
// The '@' is followed by the decimal character code and an optional label.
// The header is followed by exactly four rows of pixel-art, top row first. A
// '*' is a set pixel and a '.' or a space is a clear pixel. Short rows are
// padded with clear pixels. A row that is longer than four pixels is an error
// and is never truncated because it almost certainly means the artwork is not
// what the author intended.
//
// Codes that do not appear in the artwork are blank. After compilation the
// table is checked with fonttable.Validate().
//
// The artwork package is not used at runtime. The font package consumes the
// compiled table.
package artwork
