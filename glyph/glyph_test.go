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

package glyph_test

import (
	"testing"

	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/glyph"
	"github.com/jetsetilly/glyphline/test"
)

func TestKnownVector(t *testing.T) {
	g, err := glyph.FromRows([glyph.Height]string{
		"*  *",
		" ** ",
		" ** ",
		"*  *",
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g, glyph.Glyph(38505))
	test.ExpectEquality(t, g.String(), "0x9669")

	// bits 0,3 (row0), 5,6 (row1), 9,10 (row2), 12,15 (row3)
	for _, b := range []int{0, 3, 5, 6, 9, 10, 12, 15} {
		test.ExpectEquality(t, g.Pixel(b/glyph.Width, b%glyph.Width), true, b)
	}

	test.ExpectEquality(t, g.Row(0), uint8(0b1001))
	test.ExpectEquality(t, g.Row(1), uint8(0b0110))
	test.ExpectEquality(t, g.Row(2), uint8(0b0110))
	test.ExpectEquality(t, g.Row(3), uint8(0b1001))
}

func TestBlank(t *testing.T) {
	g, err := glyph.FromRows([glyph.Height]string{"    ", "", "....", " "})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g, glyph.Blank)
	test.ExpectSuccess(t, g.IsBlank())
	test.ExpectEquality(t, g.Art(), "....\n....\n....\n....")
}

func TestLeftmostColumnIsLowBit(t *testing.T) {
	g, err := glyph.FromRows([glyph.Height]string{"*", "", "", ""})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g, glyph.Glyph(1))

	g, err = glyph.FromRows([glyph.Height]string{"", "", "", "   *"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g, glyph.Glyph(0x8000))
}

func TestRowTooWide(t *testing.T) {
	_, err := glyph.FromRows([glyph.Height]string{"****", "   * ", "", ""})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, glyph.RowTooWide))
}

// pixels are counted in runes, not bytes
func TestMultibyteRow(t *testing.T) {
	g, err := glyph.FromRows([glyph.Height]string{"█..█", "", "", ""})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, g, glyph.Glyph(0b1001))

	_, err = glyph.FromRows([glyph.Height]string{"█████", "", "", ""})
	test.ExpectSuccess(t, curated.Is(err, glyph.RowTooWide))
}

// decoding then encoding must reproduce every possible glyph value
func TestRoundTrip(t *testing.T) {
	for v := range 0x10000 {
		g := glyph.Glyph(v)
		r, err := glyph.FromRows(g.Rows())
		if !test.ExpectSuccess(t, err, v) {
			return
		}
		if !test.ExpectEquality(t, r, g) {
			return
		}
	}
}
