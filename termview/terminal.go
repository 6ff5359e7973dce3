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
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/logger"
	"github.com/jetsetilly/glyphline/scanline"
)

// Sentinal error patterns.
const (
	NotATerminal = "termview: %s is not a terminal"
	TermError    = "termview: %v"
)

// Geometry is the size of the terminal in characters.
type Geometry struct {
	Cols int
	Rows int
}

// Terminal is the input and output of a posix terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	Geometry Geometry
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. It fails if either input or output is not a terminal.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	trm := &Terminal{
		input:  input,
		output: output,
	}

	if !term.IsTerminal(int(trm.output.Fd())) {
		return nil, curated.Errorf(NotATerminal, output.Name())
	}

	if err := termios.Tcgetattr(trm.input.Fd(), &trm.canAttr); err != nil {
		return nil, curated.Errorf(NotATerminal, input.Name())
	}

	trm.cbreakAttr = trm.canAttr
	termios.Cfmakecbreak(&trm.cbreakAttr)

	if err := trm.UpdateGeometry(); err != nil {
		return nil, err
	}

	return trm, nil
}

// UpdateGeometry reads the current size of the output terminal.
func (trm *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(trm.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf(TermError, err)
	}
	trm.Geometry.Cols = int(ws.Col)
	trm.Geometry.Rows = int(ws.Row)
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (trm *Terminal) CanonicalMode() error {
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.canAttr); err != nil {
		return curated.Errorf(TermError, err)
	}
	return nil
}

// CBreakMode puts terminal into cbreak mode. Key presses are available
// immediately and are not echoed.
func (trm *Terminal) CBreakMode() error {
	if err := termios.Tcsetattr(trm.input.Fd(), termios.TCSANOW, &trm.cbreakAttr); err != nil {
		return curated.Errorf(TermError, err)
	}
	return nil
}

// Show draws the frame, cropped to the size of the terminal. One row of the
// terminal is left for the cursor.
func (trm *Terminal) Show(frm *scanline.Frame) error {
	rows := trm.Geometry.Rows - 1
	if rows < 1 {
		rows = 1
	}

	if frm.Width > trm.Geometry.Cols || (frm.Height+1)/2 > rows {
		logger.Logf(logger.Allow, "termview", "frame %dx%d cropped to terminal %dx%d",
			frm.Width, frm.Height, trm.Geometry.Cols, trm.Geometry.Rows)
	}

	return Draw(trm.output, frm, trm.Geometry.Cols, rows)
}

// WaitKey waits for a single key press without echo and returns it.
func (trm *Terminal) WaitKey() (byte, error) {
	if err := trm.CBreakMode(); err != nil {
		return 0, err
	}
	defer trm.CanonicalMode()

	b := make([]byte, 1)
	if _, err := trm.input.Read(b); err != nil {
		return 0, curated.Errorf(TermError, err)
	}
	return b[0], nil
}
