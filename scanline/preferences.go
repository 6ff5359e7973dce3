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
	"github.com/jetsetilly/glyphline/font"
	"github.com/jetsetilly/glyphline/paths"
	"github.com/jetsetilly/glyphline/prefs"
)

// Preferences for the display harness.
type Preferences struct {
	dsk *prefs.Disk

	Width  prefs.Int
	Height prefs.Int
	Scale  prefs.Int
	FPS    prefs.Int

	FG          prefs.Int
	BG          prefs.Int
	Transparent prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// default values.
const (
	defaultHeight = 240
	defaultScale  = 2
	defaultFPS    = 30
)

// NewPreferences loads the preferences from the default preferences file,
// creating the file if necessary.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile loads the preferences from the named file, creating
// the file if necessary.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("display.width", &p.Width); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("display.height", &p.Height); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("display.scale", &p.Scale); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("display.fps", &p.FPS); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("font.fg", &p.FG); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("font.bg", &p.BG); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("font.transparent", &p.Transparent); err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	p.Width.Set(font.DefaultDisplayWidth)
	p.Height.Set(defaultHeight)
	p.Scale.Set(defaultScale)
	p.FPS.Set(defaultFPS)
	p.FG.Set(int(White))
	p.BG.Set(int(Black))
	p.Transparent.Set(false)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Foreground returns the font.fg preference as a pixel.
func (p *Preferences) Foreground() font.Pixel {
	return font.Pixel(p.FG.Get().(int))
}

// Background returns the font.bg preference as a pixel.
func (p *Preferences) Background() font.Pixel {
	return font.Pixel(p.BG.Get().(int))
}

// Dimensions returns the display.width and display.height preferences. Values
// less than one are replaced by the default.
func (p *Preferences) Dimensions() (int, int) {
	w := p.Width.Get().(int)
	if w < 1 {
		w = font.DefaultDisplayWidth
	}
	h := p.Height.Get().(int)
	if h < 1 {
		h = defaultHeight
	}
	return w, h
}
