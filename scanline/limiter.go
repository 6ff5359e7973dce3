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


package scanline

import (
	"time"
)

// Limiter paces a display loop to a requested number of frames per second and
// measures the rate actually achieved.
type Limiter struct {
	tck *time.Ticker

	requested float32

	// measurement of the actual rate is taken every actualCtTarget frames
	actual         float32
	actualCt       int
	actualCtTarget int
	actualRefTime  time.Time
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
// A rate of zero or less means the loop is not limited.
func NewLimiter(fps float32) *Limiter {
	lmtr := &Limiter{}
	lmtr.SetRate(fps)
	return lmtr
}

// SetRate changes the target rate.
func (lmtr *Limiter) SetRate(fps float32) {
	lmtr.requested = fps

	if fps <= 0 {
		if lmtr.tck != nil {
			lmtr.tck.Stop()
			lmtr.tck = nil
		}
	} else {
		d := time.Duration(float64(time.Second) / float64(fps))
		if lmtr.tck == nil {
			lmtr.tck = time.NewTicker(d)
		} else {
			lmtr.tck.Reset(d)
		}
	}

	lmtr.actualCtTarget = max(int(fps)/2, 1)
	lmtr.actualCt = 0
	lmtr.actualRefTime = time.Now()
}

// Wait until it is time for the next frame.
func (lmtr *Limiter) Wait() {
	if lmtr.tck != nil {
		<-lmtr.tck.C
	}
	lmtr.measureActual()
}

// Stop the limiter. Wait() will no longer block.
func (lmtr *Limiter) Stop() {
	lmtr.SetRate(0)
}

// Requested returns the target rate.
func (lmtr *Limiter) Requested() float32 {
	return lmtr.requested
}

// Actual returns the most recent measurement of the achieved rate.
func (lmtr *Limiter) Actual() float32 {
	return lmtr.actual
}

func (lmtr *Limiter) measureActual() {
	lmtr.actualCt++
	if lmtr.actualCt < lmtr.actualCtTarget {
		return
	}

	t := time.Now()
	lmtr.actual = float32(lmtr.actualCt) / float32(t.Sub(lmtr.actualRefTime).Seconds())

	// remeasure every second or so. if the rate is below one frame per second
	// then remeasure every frame
	if lmtr.actual > 1 {
		lmtr.actualCtTarget = int(lmtr.actual)
	} else {
		lmtr.actualCtTarget = 1
	}

	lmtr.actualRefTime = t
	lmtr.actualCt = 0
}
