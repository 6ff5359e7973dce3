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


package random_test

import (
	"bytes"
	"testing"

	"github.com/jetsetilly/glyphline/random"
	"github.com/jetsetilly/glyphline/test"
)

type frames int

func (f *frames) FrameNum() int {
	return int(*f)
}

func TestRandom(t *testing.T) {
	var fa, fb frames = 100, 100
	a := random.NewRandom(&fa)
	b := random.NewRandom(&fb)
	a.ZeroSeed = true
	b.ZeroSeed = true

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestFill(t *testing.T) {
	var f frames
	rnd := random.NewRandom(&f)

	a := make([]byte, 64)
	b := make([]byte, 64)

	rnd.Fill(a, 224, 256)
	for _, v := range a {
		if v < 224 {
			t.Fatalf("value %d is out of range", v)
		}
	}

	// same frame, same values
	rnd.Fill(b, 224, 256)
	test.ExpectSuccess(t, bytes.Equal(a, b))

	// next frame, different values
	f++
	rnd.Fill(b, 224, 256)
	test.ExpectFailure(t, bytes.Equal(a, b))
}
