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


// Package random should be used in preference to the math/rand package when a
// random number is required by a frame layer.
//
// The numbers returned by a Random instance depend on the current frame
// number. The same frame number always produces the same numbers, which means
// that a sequence of frames can be regenerated exactly.
//
// If the same random numbers are required every time the program is run then
// set ZeroSeed to true. This is useful for testing purposes and for frame
// digests.
package random
