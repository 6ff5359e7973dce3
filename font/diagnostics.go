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
	"fmt"

	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/logger"
)

// Sentinal patterns for errors created by the diagnostic checks.
const (
	InvalidDeltaY  = "font: invalid internal line for text %q: %d"
	OffScreen      = "font: text %q goes off screen: %d<->%d max %d"
	NotInitialised = "font: active table has not been initialised"
)

// maximum number of codes listed by DescribeText()
const maxDescription = 40

// CheckPreconditions returns an error if the arguments for a render function
// are invalid for a display of the given width. It is used by the render
// functions when the fontdiag build tag is present but can be called at any
// time.
func CheckPreconditions(text []byte, x int, deltaY int, width int) error {
	return checkSpan(text, Length(text), x, deltaY, width)
}

func checkSpan(text []byte, n int, x int, deltaY int, width int) error {
	if deltaY < 0 || deltaY >= CellHeight {
		return curated.Errorf(InvalidDeltaY, printable(text, n), deltaY)
	}
	end := x + Advance*n
	if x < 0 || end >= width {
		return curated.Errorf(OffScreen, printable(text, n), x, end, width)
	}
	return nil
}

func printable(text []byte, n int) string {
	if n > len(text) {
		n = len(text)
	}
	return string(text[:n])
}

// DescribeText lists each code in the text, up to the sentinel. Only the
// first 40 codes are listed.
func DescribeText(text []byte) []string {
	n := min(Length(text), maxDescription)
	d := make([]string, 0, n)
	for i, c := range text[:n] {
		if c >= ' ' && c <= '~' {
			d = append(d, fmt.Sprintf("%2d -> %3d %c", i, c, c))
		} else {
			d = append(d, fmt.Sprintf("%2d -> %3d", i, c))
		}
	}
	return d
}

func defaultHalt(err error) {
	panic(err)
}

// check the arguments of a call to RenderLine() or RenderLineTransparent().
// returns false if rendering should not continue.
func (fnt *Font) check(text []byte, x int, deltaY int) bool {
	err := CheckPreconditions(text, x, deltaY, fnt.displayWidth)
	if err == nil {
		if fnt.initialised {
			return true
		}
		err = curated.Errorf(NotInitialised)
	}
	fnt.fail(err, text)
	return false
}

// check the arguments of a call to RenderChar().
func (fnt *Font) checkChar(code byte, x int, deltaY int) bool {
	if fnt.initialised && deltaY >= 0 && deltaY < CellHeight && x >= 0 && x+Advance < fnt.displayWidth {
		return true
	}

	text := []byte{code}
	err := checkSpan(text, 1, x, deltaY, fnt.displayWidth)
	if err == nil {
		err = curated.Errorf(NotInitialised)
	}
	fnt.fail(err, text)
	return false
}

func (fnt *Font) fail(err error, text []byte) {
	logger.Log(logger.Allow, "font", err)
	for _, s := range DescribeText(text) {
		logger.Log(logger.Allow, "font", s)
	}
	fnt.halt(err)
}
