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


// Package prefs facilitates the storage of preference values to disk.
//
// Preference values are created with one of the types in the package (Bool,
// String or Int) and added to a Disk instance with a key. The key is the
// label under which the value is stored in the file:
//
//	var width prefs.Int
//	dsk, _ := prefs.NewDisk(path)
//	dsk.Add("display.width", &width)
//	dsk.Load(true)
//
// The file has a single line for each value in the form "key :: value",
// preceded by the WarningBoilerPlate line.
//
// Values can be overridden from the command line with PushCommandLineStack().
// The string is a series of "key::value" pairs separated by semi-colons.
// Overrides are consumed by the next call to Disk.Load().
package prefs
