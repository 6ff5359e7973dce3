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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern and
// placeholder values and returns an error. Formatting is deferred until the
// Error() function is called.
//
// The Is() function checks whether an error was created with a specific
// pattern. Patterns should be stored as exported const strings in the package
// that raises the error. For example:
//
//	const RowTooLong = "artwork: line %d: row is longer than %d pixels"
//
//	e := curated.Errorf(RowTooLong, 12, 4)
//
//	if curated.Is(e, RowTooLong) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("mkfont: %v", e)
//
//	curated.Has(f, RowTooLong) // true
//	curated.Is(f, RowTooLong)  // false
//
// The IsAny() function answers whether the error was created by
// curated.Errorf() at all. We can think of the difference between curated and
// uncurated errors as being the difference between expected and unexpected
// errors.
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. This makes it safe for every layer of a program to
// wrap an error with its own prefix:
//
//	curated.Errorf("font: %v", curated.Errorf("font: delta y out of range"))
//
// prints as:
//
//	font: delta y out of range
//
// Chains are composed of parts separated by the sub-string ': '. For example:
//
//	part 1: part 2: part 3
//
// Curated errors implement Unwrap() so that the standard errors package can
// see any error values used as placeholder values.
package curated
