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


// Package sdlview displays the output of a scanline.Frame in an SDL window.
// The frame is uploaded every iteration to a streaming texture with the
// RGB565 pixel format, which is the format of the pixels produced by the font
// renderer, and scaled by the SDL renderer.
//
// The window is closed by the window manager or by pressing Escape. SDL
// requires that the View is created on the main thread and that Service() is
// called from the main thread. Other goroutines can wait on the Done()
// channel.
package sdlview
