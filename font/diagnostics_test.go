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

package font_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/font"
	"github.com/jetsetilly/glyphline/test"
)

func TestCheckPreconditions(t *testing.T) {
	const width = font.DefaultDisplayWidth

	text := []byte(strings.Repeat("x", 35))

	// 35 characters at x=0 end at pixel 315
	test.ExpectSuccess(t, font.CheckPreconditions(text, 0, 0, width))
	test.ExpectSuccess(t, font.CheckPreconditions(text, 4, 7, width))

	// the last pixel must be inside the display
	err := font.CheckPreconditions(text, 5, 0, width)
	test.ExpectSuccess(t, curated.Is(err, font.OffScreen))

	err = font.CheckPreconditions([]byte("A"), -1, 0, width)
	test.ExpectSuccess(t, curated.Is(err, font.OffScreen))
	test.ExpectEquality(t, err.Error(), `font: text "A" goes off screen: -1<->8 max 320`)

	err = font.CheckPreconditions([]byte("A"), 0, font.CellHeight, width)
	test.ExpectSuccess(t, curated.Is(err, font.InvalidDeltaY))
	test.ExpectEquality(t, err.Error(), `font: invalid internal line for text "A": 8`)

	err = font.CheckPreconditions([]byte("A"), 0, -1, width)
	test.ExpectSuccess(t, curated.Is(err, font.InvalidDeltaY))

	// the span is measured up to the sentinel
	test.ExpectSuccess(t, font.CheckPreconditions([]byte("AB\x00"+string(text)), 290, 0, width))

	// narrower displays
	test.ExpectFailure(t, font.CheckPreconditions([]byte("ABC"), 0, 0, 27))
	test.ExpectSuccess(t, font.CheckPreconditions([]byte("ABC"), 0, 0, 28))
}

func TestDescribeText(t *testing.T) {
	d := font.DescribeText([]byte("Hi\x01\x00ignored"))
	test.DemandEquality(t, len(d), 3)
	test.ExpectEquality(t, d[0], " 0 ->  72 H")
	test.ExpectEquality(t, d[1], " 1 -> 105 i")
	test.ExpectEquality(t, d[2], " 2 ->   1")

	d = font.DescribeText([]byte(strings.Repeat("z", 100)))
	test.ExpectEquality(t, len(d), 40)
}

func TestDisplayWidth(t *testing.T) {
	fnt := newFont(t)
	test.ExpectEquality(t, fnt.DisplayWidth(), font.DefaultDisplayWidth)
	fnt.SetDisplayWidth(640)
	test.ExpectEquality(t, fnt.DisplayWidth(), 640)
}
