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
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Image returns the most recent frame as an image. The image is scaled by the
// scale value with nearest neighbour scaling, so that the pixels of the glyphs
// stay sharp. A scale of less than one is treated as one.
func (frm *Frame) Image(scale int) *image.RGBA {
	src := image.NewRGBA(image.Rect(0, 0, frm.Width, frm.Height))
	for i, p := range frm.pixels {
		c := ToRGB(p)
		src.SetRGBA(i%frm.Width, i/frm.Width, color.RGBA{R: c.Red, G: c.Green, B: c.Blue, A: 0xff})
	}

	if scale <= 1 {
		return src
	}

	dst := image.NewRGBA(image.Rect(0, 0, frm.Width*scale, frm.Height*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}
