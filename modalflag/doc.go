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


// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes and allows different flags for each mode.
//
// Arguments are given to NewArgs() and then Parse() is called with no
// arguments. Flags for the current layer are added before the call to
// Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("VIEW", "TERM", "MKFONT")
//	scale := md.AddInt("scale", 2, "window scaling")
//	_, _ = md.Parse()
//
// After Parse() the Mode() function returns the selected sub-mode. If the
// first argument after the flags is not one of the sub-modes then the first
// sub-mode in the list is selected.
//
//	switch md.Mode() {
//	case "MKFONT":
//		mkfont(md)
//	default:
//		view(md, *scale)
//	}
//
// Inside the mode, NewMode() starts a new layer of flags and Parse() is
// called again:
//
//	func mkfont(md *modalflag.Modes) error {
//		md.NewMode()
//		out := md.AddString("o", "glyphs.bin", "output file")
//		switch p, err := md.Parse(); p {
//		case modalflag.ParseError:
//			return err
//		case modalflag.ParseHelp:
//			return nil
//		}
//		return compile(md.GetArg(0), *out)
//	}
//
// Modes can be chained as deep as required. Path() returns the modes
// selected so far, separated by a forward slash.
package modalflag
