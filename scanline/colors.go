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
	"fmt"

	"github.com/jetsetilly/glyphline/font"
)

// RGB represents colors as 3-tuple of bytes.
type RGB struct {
	Red   byte
	Green byte
	Blue  byte
}

func (c RGB) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// Pixel returns the RGB565 value of the color.
func (c RGB) Pixel() font.Pixel {
	return RGB565(c.Red, c.Green, c.Blue)
}

// RGB565 packs 8-bit color components into a pixel. The least significant bits
// of each component are lost.
func RGB565(red, green, blue byte) font.Pixel {
	return font.Pixel(uint16(red>>3)<<11 | uint16(green>>2)<<5 | uint16(blue>>3))
}

// ToRGB unpacks a RGB565 pixel into 8-bit color components. The low bits of
// each component are filled from the high bits so that full intensity maps
// to 0xff.
func ToRGB(p font.Pixel) RGB {
	r := byte(p>>11) & 0x1f
	g := byte(p>>5) & 0x3f
	b := byte(p) & 0x1f
	return RGB{
		Red:   r<<3 | r>>2,
		Green: g<<2 | g>>4,
		Blue:  b<<3 | b>>2,
	}
}

// Commonly used colors.
const (
	Black  font.Pixel = 0x0000
	White  font.Pixel = 0xffff
	Red    font.Pixel = 0xf800
	Green  font.Pixel = 0x07e0
	Blue   font.Pixel = 0x001f
	Yellow font.Pixel = 0xffe0
	Grey   font.Pixel = 0x8410
)
