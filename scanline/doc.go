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


// Package scanline is a harness that drives the font renderer the way a
// display would: one scanline at a time, top to bottom. A Frame holds the
// pixels for the whole display and a list of Layers. Each call to
// Frame.Generate() clears every scanline to the background color and then
// asks each layer, in order, to draw into it.
//
//	frm := scanline.NewFrame(320, 240, scanline.Black)
//	frm.AddLayer(scanline.NewTextLayer(fnt, []byte("HELLO"), 8, 8, scanline.White, scanline.Black))
//	frm.Generate()
//
// Pixels are RGB565, the format of the reference display. The RGB565() and
// ToRGB() functions convert to and from 8-bit color components.
//
// The Digest type produces a chained SHA-1 value of successive frames and is
// used to detect changes in rendered output.
package scanline
