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
	"crypto/sha1"
	"fmt"
)

// Digest produces a fingerprint of successive frames. Each frame is hashed
// together with the previous fingerprint so that the final value depends on
// every frame in the sequence.
//
// Note that the use of SHA-1 is fine for this application because this is not
// a cryptographic task.
type Digest struct {
	digest   [sha1.Size]byte
	data     []byte
	frameNum int
}

// Hash returns the current fingerprint as a hex string.
func (dig *Digest) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest returns the fingerprint to its initial state.
func (dig *Digest) ResetDigest() {
	for i := range dig.digest {
		dig.digest[i] = 0
	}
	dig.frameNum = 0
}

// Frames returns the number of frames included in the fingerprint.
func (dig *Digest) Frames() int {
	return dig.frameNum
}

// AddFrame includes the pixels of the frame in the fingerprint.
func (dig *Digest) AddFrame(frm *Frame) {
	// the head of the data is the previous fingerprint
	dig.data = append(dig.data[:0], dig.digest[:]...)
	dig.data = frm.AppendBytes(dig.data)
	dig.digest = sha1.Sum(dig.data)
	dig.frameNum++
}
