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


package termview

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jetsetilly/glyphline/scanline"
)

const upperHalfBlock = "▀"

const (
	ansiReset = "\x1b[0m"
	ansiFG    = "\x1b[38;2;%d;%d;%dm"
	ansiBG    = "\x1b[48;2;%d;%d;%dm"
)

// Draw writes the most recent frame to w. No more than cols columns and rows
// rows of characters are written. A value of zero or less for either means
// no limit. If the frame has an odd number of scanlines the lower half of the
// last row is drawn in the background color of the frame.
func Draw(w io.Writer, frm *scanline.Frame, cols int, rows int) error {
	width := frm.Width
	if cols > 0 && cols < width {
		width = cols
	}

	height := (frm.Height + 1) / 2
	if rows > 0 && rows < height {
		height = rows
	}

	bw := bufio.NewWriter(w)

	for r := 0; r < height; r++ {
		upper := frm.Line(r * 2)

		lowerLine := r*2 + 1

		var fg, bg scanline.RGB
		for x := 0; x < width; x++ {
			u := scanline.ToRGB(upper[x])
			l := scanline.ToRGB(frm.Background)
			if lowerLine < frm.Height {
				l = scanline.ToRGB(frm.Line(lowerLine)[x])
			}

			// colors are only sent when they change
			if x == 0 || u != fg {
				fg = u
				fmt.Fprintf(bw, ansiFG, u.Red, u.Green, u.Blue)
			}
			if x == 0 || l != bg {
				bg = l
				fmt.Fprintf(bw, ansiBG, l.Red, l.Green, l.Blue)
			}
			bw.WriteString(upperHalfBlock)
		}

		bw.WriteString(ansiReset)
		bw.WriteString("\n")
	}

	return bw.Flush()
}
