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

package artwork_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/glyphline/artwork"
	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/fonttable"
	"github.com/jetsetilly/glyphline/glyph"
	"github.com/jetsetilly/glyphline/test"
)

// the artwork embedded in the fonttable package must compile to exactly the
// default table
func TestDefaultArtwork(t *testing.T) {
	tab, entries, err := artwork.Compile(strings.NewReader(fonttable.Artwork))
	test.DemandSuccess(t, err)

	def, err := fonttable.Default()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab, def)

	test.ExpectInequality(t, len(entries), 0)
	test.ExpectEquality(t, entries[0].Code, 0)
	test.ExpectEquality(t, entries[0].Label, "null")
	test.ExpectEquality(t, entries[0].Glyph, glyph.Glyph(0x9669))
}

const simple = `# comment
@65 A
.**.
*..*
****
*..*

@66
***
*  *
***
****
`

func TestCompile(t *testing.T) {
	tab, entries, err := artwork.Compile(strings.NewReader(simple))
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(entries), 2)

	test.ExpectEquality(t, entries[0].Label, "A")
	test.ExpectEquality(t, entries[0].Line, 2)
	test.ExpectEquality(t, entries[1].Label, "")
	test.ExpectEquality(t, tab['A'], glyph.Glyph(0x9f96))
	test.ExpectEquality(t, tab['B'].Row(0), uint8(0b0111))
	test.ExpectEquality(t, tab['B'].Row(1), uint8(0b1001))
	test.ExpectEquality(t, tab.Count(), 2)
}

// rows made of spaces must not be mistaken for blank lines
func TestSpaceRows(t *testing.T) {
	tab, _, err := artwork.Compile(strings.NewReader("@1\n    \n    \n \n*\n"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tab[1], glyph.Glyph(0x1000))
}

func TestErrors(t *testing.T) {
	tests := []struct {
		art     string
		pattern string
	}{
		{art: "@1\n****\n   * \n....\n....\n", pattern: artwork.RowTooLong},
		{art: "@1\n****\n..x.\n....\n....\n", pattern: artwork.BadPixel},
		{art: "@1\n****\n.██.\n....\n....\n", pattern: artwork.BadPixel},
		{art: "@A\n", pattern: artwork.BadHeader},
		{art: "@256\n", pattern: artwork.CodeRange},
		{art: "@1\n*\n\n\n\n@1\n*\n\n\n\n", pattern: artwork.DuplicateCode},
		{art: "@1\n*\n*\n", pattern: artwork.MissingRows},
		{art: "@1\n*\n*\n@2\n", pattern: artwork.MissingRows},
		{art: "****\n", pattern: artwork.UnexpectedLine},
		{art: "@1\n*\n\n\n\n@2\n*\n\n\n\n", pattern: fonttable.DuplicateEncoding},
	}

	for i, tt := range tests {
		_, _, err := artwork.Compile(strings.NewReader(tt.art))
		test.ExpectSuccess(t, curated.Has(err, tt.pattern), i, err)
	}
}

// a row of four multibyte runes is the right width but has bad pixels
func TestMultibytePixel(t *testing.T) {
	_, _, err := artwork.Compile(strings.NewReader("@1\n█..█\n....\n....\n....\n"))
	test.ExpectSuccess(t, curated.Has(err, artwork.BadPixel))
	test.ExpectFailure(t, curated.Has(err, artwork.RowTooLong))
}

func TestRandomizedRepeat(t *testing.T) {
	_, _, err := artwork.Compile(strings.NewReader("@1\n*\n\n\n\n@224\n*\n\n\n\n"))
	test.ExpectSuccess(t, err)
}
