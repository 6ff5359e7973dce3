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


// Package termview draws a scanline.Frame in a terminal that supports 24-bit
// ANSI color. Each character cell shows two scanlines using the upper half
// block character: the foreground color is the upper scanline and the
// background color is the lower scanline.
//
// The Terminal type is a thin wrapper for "github.com/pkg/term/termios". It
// is used to check that the output is a terminal, to find the size of the
// terminal and to wait for a key press without echo.
package termview
