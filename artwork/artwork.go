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

package artwork

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/fonttable"
	"github.com/jetsetilly/glyphline/glyph"
	"github.com/jetsetilly/glyphline/logger"
)

// Sentinal patterns for errors created by the package.
const (
	RowTooLong     = "artwork: line %d: row is longer than %d pixels"
	BadPixel       = "artwork: line %d: unrecognised pixel %q"
	BadHeader      = "artwork: line %d: malformed glyph header"
	CodeRange      = "artwork: line %d: code %d is outside the range 0 to %d"
	DuplicateCode  = "artwork: line %d: code %d has already been defined on line %d"
	MissingRows    = "artwork: line %d: glyph %d has %d rows (expected %d)"
	UnexpectedLine = "artwork: line %d: pixel-art without a glyph header"
	Invalid        = "artwork: %v"
	ReadError      = "artwork: %v"
)

// characters with special meaning in the artwork.
const (
	commentPrefix = '#'
	headerPrefix  = '@'
)

// Entry is a single compiled glyph, along with the information from the
// artwork that described it.
type Entry struct {
	Code  int
	Label string
	Glyph glyph.Glyph

	// the line number of the glyph header
	Line int
}

// compiler holds the state of a single call to Compile()
type compiler struct {
	table   fonttable.Table
	entries []Entry
	defined map[int]int

	// the glyph currently being read. rows is only meaningful if
	// current is not nil
	current *Entry
	rows    [glyph.Height]string
	numRows int
}

// Compile the artwork supplied by the io.Reader into a font table. The list
// of entries is in the order they appear in the artwork.
func Compile(r io.Reader) (fonttable.Table, []Entry, error) {
	c := compiler{
		defined: make(map[int]int),
	}

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		err := c.line(line, strings.TrimRight(scanner.Text(), "\r"))
		if err != nil {
			return fonttable.Table{}, nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return fonttable.Table{}, nil, curated.Errorf(ReadError, err)
	}

	err := c.end(line)
	if err != nil {
		return fonttable.Table{}, nil, err
	}

	err = c.table.Validate()
	if err != nil {
		return fonttable.Table{}, nil, curated.Errorf(Invalid, err)
	}

	logger.Logf(logger.Allow, "artwork", "compiled %d glyphs", len(c.entries))

	return c.table, c.entries, nil
}

func (c *compiler) line(line int, s string) error {
	// rows are read before anything else because a row of clear pixels made
	// of spaces looks like a blank line
	if c.current != nil && c.numRows < glyph.Height {
		if len(s) > 0 && s[0] == headerPrefix {
			return curated.Errorf(MissingRows, line, c.current.Code, c.numRows, glyph.Height)
		}
		return c.row(line, s)
	}

	if len(strings.TrimSpace(s)) == 0 || s[0] == commentPrefix {
		return nil
	}

	if s[0] != headerPrefix {
		return curated.Errorf(UnexpectedLine, line)
	}

	err := c.commit()
	if err != nil {
		return err
	}

	return c.header(line, s[1:])
}

func (c *compiler) header(line int, s string) error {
	code, label, _ := strings.Cut(s, " ")
	n, err := strconv.Atoi(code)
	if err != nil {
		return curated.Errorf(BadHeader, line)
	}
	if n < 0 || n >= fonttable.NumGlyphs {
		return curated.Errorf(CodeRange, line, n, fonttable.NumGlyphs-1)
	}
	if prev, ok := c.defined[n]; ok {
		return curated.Errorf(DuplicateCode, line, n, prev)
	}
	c.defined[n] = line

	c.current = &Entry{
		Code:  n,
		Label: strings.TrimSpace(label),
		Line:  line,
	}
	c.numRows = 0

	return nil
}

// pixels are checked before the width so that a multibyte rune is reported
// as a bad pixel. every accepted pixel is a single byte
func (c *compiler) row(line int, s string) error {
	for _, p := range s {
		switch p {
		case glyph.SetPixel, glyph.ClearPixel, ' ':
		default:
			return curated.Errorf(BadPixel, line, p)
		}
	}
	if len(s) > glyph.Width {
		return curated.Errorf(RowTooLong, line, glyph.Width)
	}
	c.rows[c.numRows] = s
	c.numRows++
	return nil
}

// commit the current glyph to the table
func (c *compiler) commit() error {
	if c.current == nil {
		return nil
	}

	g, err := glyph.FromRows(c.rows)
	if err != nil {
		return curated.Errorf(Invalid, err)
	}

	c.current.Glyph = g
	c.table[c.current.Code] = g
	c.entries = append(c.entries, *c.current)
	c.current = nil

	return nil
}

func (c *compiler) end(line int) error {
	if c.current != nil && c.numRows < glyph.Height {
		return curated.Errorf(MissingRows, line, c.current.Code, c.numRows, glyph.Height)
	}
	return c.commit()
}
