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


package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// FrameCounter is implemented by anything that counts frames. The
// scanline.Frame type satisfies this interface.
type FrameCounter interface {
	FrameNum() int
}

// Random is a random number generator that is sensitive to the frame number.
type Random struct {
	frames FrameCounter

	// use zero seed rather than the random base seed
	ZeroSeed bool
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(frames FrameCounter) *Random {
	return &Random{
		frames: frames,
	}
}

// new RNG from the standard library
func (rnd *Random) rand() *rand.Rand {
	seed := int64(rnd.frames.FrameNum())
	if !rnd.ZeroSeed {
		seed += baseSeed
	}
	return rand.New(rand.NewSource(seed))
}

// Intn returns a number in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rand().Intn(n)
}

// Fill dst with values in the range lo to hi-1. The values are only different
// to the previous call if the frame number has changed.
func (rnd *Random) Fill(dst []byte, lo byte, hi int) {
	r := rnd.rand()
	n := hi - int(lo)
	for i := range dst {
		dst[i] = lo + byte(r.Intn(n))
	}
}
