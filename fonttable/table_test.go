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

package fonttable_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/fonttable"
	"github.com/jetsetilly/glyphline/glyph"
	"github.com/jetsetilly/glyphline/test"
)

func TestDefault(t *testing.T) {
	tab, err := fonttable.Default()
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, tab[0], glyph.Glyph(0x9669))
	test.ExpectEquality(t, tab['A'], glyph.Glyph(57302))
	test.ExpectEquality(t, tab[' '], glyph.Blank)
	test.ExpectEquality(t, tab[255], glyph.Glyph(0xffff))
	test.ExpectSuccess(t, tab.Validate())
}

func TestPersistence(t *testing.T) {
	tab, err := fonttable.Default()
	test.DemandSuccess(t, err)

	b := &bytes.Buffer{}
	test.DemandSuccess(t, tab.Write(b))
	test.ExpectEquality(t, b.Len(), fonttable.Size)

	// little endian, index is the character code
	test.ExpectEquality(t, b.Bytes()[0], byte(0x69))
	test.ExpectEquality(t, b.Bytes()[1], byte(0x96))

	r, err := fonttable.Read(b)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r, tab)
}

func TestReadSize(t *testing.T) {
	_, err := fonttable.Read(bytes.NewReader(make([]byte, fonttable.Size-1)))
	test.ExpectSuccess(t, curated.Is(err, fonttable.TableSize))

	_, err = fonttable.Read(bytes.NewReader(make([]byte, fonttable.Size+1)))
	test.ExpectSuccess(t, curated.Is(err, fonttable.TableSize))

	_, err = fonttable.Read(bytes.NewReader(nil))
	test.ExpectSuccess(t, curated.Is(err, fonttable.TableSize))

	tab, err := fonttable.Read(bytes.NewReader(make([]byte, fonttable.Size)))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tab.Count(), 0)
}

func TestValidate(t *testing.T) {
	var tab fonttable.Table

	// blank glyphs may repeat freely
	test.ExpectSuccess(t, tab.Validate())

	tab['A'] = 0x1234
	tab['B'] = 0x4321
	test.ExpectSuccess(t, tab.Validate())

	// randomized glyphs may repeat an earlier glyph
	tab[fonttable.RandomizedStart] = 0x1234
	tab[fonttable.NumGlyphs-1] = 0x1234
	test.ExpectSuccess(t, tab.Validate())

	// but not below the randomized range
	tab[fonttable.RandomizedStart-1] = 0x4321
	err := tab.Validate()
	test.ExpectSuccess(t, curated.Is(err, fonttable.DuplicateEncoding))
	test.ExpectEquality(t, err.Error(), "fonttable: code 223 repeats the encoding of code 66 (0x4321)")
}
