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

package fonttable

import (
	"bytes"
	_ "embed"
	"encoding/binary"
	"io"

	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/glyph"
)

// NumGlyphs is the number of entries in a font table.
const NumGlyphs = 256

// RandomizedStart is the first code of the randomized glyph range.
const RandomizedStart = 224

// Size is the size in bytes of the persisted table.
const Size = NumGlyphs * 2

// the byte order of the persisted table.
var byteOrder = binary.LittleEndian

// Sentinal patterns for errors created by the package.
const (
	TableSize          = "fonttable: table must be %d bytes"
	TableIO            = "fonttable: %v"
	DuplicateEncoding  = "fonttable: code %d repeats the encoding of code %d (%v)"
	DefaultUnavailable = "fonttable: default table: %v"
)

// Table is the glyph for every character code.
type Table [NumGlyphs]glyph.Glyph

// Read a persisted table. The reader must supply exactly Size bytes.
func Read(r io.Reader) (Table, error) {
	var tab Table

	var b [Size]byte
	_, err := io.ReadFull(r, b[:])
	if err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			return tab, curated.Errorf(TableSize, Size)
		}
		return tab, curated.Errorf(TableIO, err)
	}

	// anything left over means the reader wasn't a table
	var extra [1]byte
	n, _ := r.Read(extra[:])
	if n > 0 {
		return tab, curated.Errorf(TableSize, Size)
	}

	for i := range tab {
		tab[i] = glyph.Glyph(byteOrder.Uint16(b[i*2:]))
	}

	return tab, nil
}

// Write the table in the persisted format.
func (tab *Table) Write(w io.Writer) error {
	var b [Size]byte
	for i, g := range tab {
		byteOrder.PutUint16(b[i*2:], uint16(g))
	}
	_, err := w.Write(b[:])
	if err != nil {
		return curated.Errorf(TableIO, err)
	}
	return nil
}

// Validate checks that no two codes below RandomizedStart share the same
// non-blank encoding. Codes are checked in ascending order so the error names
// the higher of the two codes.
func (tab *Table) Validate() error {
	seen := make(map[glyph.Glyph]int, NumGlyphs)
	for code, g := range tab {
		if g.IsBlank() {
			continue
		}
		if prev, ok := seen[g]; ok && code < RandomizedStart {
			return curated.Errorf(DuplicateEncoding, code, prev, g)
		}
		if _, ok := seen[g]; !ok {
			seen[g] = code
		}
	}
	return nil
}

// Count returns the number of non-blank glyphs in the table.
func (tab *Table) Count() int {
	var n int
	for _, g := range tab {
		if !g.IsBlank() {
			n++
		}
	}
	return n
}

//go:embed glyphs.bin
var defaultTable []byte

// Artwork is the source of the default table, in the format read by the
// artwork package.
//
//go:embed glyphs.txt
var Artwork string

// Default returns the default font table.
func Default() (Table, error) {
	tab, err := Read(bytes.NewReader(defaultTable))
	if err != nil {
		return tab, curated.Errorf(DefaultUnavailable, err)
	}
	return tab, nil
}
