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


package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/jetsetilly/glyphline/fonttable"
	"github.com/jetsetilly/glyphline/modalflag"
	"github.com/jetsetilly/glyphline/prefs"
	"github.com/jetsetilly/glyphline/test"
)

func newModes(args ...string) *modalflag.Modes {
	md := &modalflag.Modes{Output: &test.CompareWriter{}}
	md.NewArgs(args)
	return md
}

// chdir to a temporary directory so that the preferences file is not written
// to the source tree
func chdir(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		os.Chdir(wd)
	})
}

func TestDump(t *testing.T) {
	tw := &test.CompareWriter{}
	test.DemandSuccess(t, dump(newModes(), tw))

	expected := "@65 A 0xdfd6\n.**.\n*.**\n****\n*.**\n\n"
	test.ExpectSuccess(t, strings.Contains(tw.String(), expected))

	// space is blank and is only included with the -all flag
	test.ExpectFailure(t, strings.Contains(tw.String(), "@32 "))
	tw.Clear()
	test.DemandSuccess(t, dump(newModes("-all"), tw))
	test.ExpectSuccess(t, strings.Contains(tw.String(), "@32 0x0000\n....\n....\n....\n....\n\n"))
}

func TestMkfont(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "glyphs.txt")
	out := filepath.Join(dir, "glyphs.bin")
	test.DemandSuccess(t, os.WriteFile(src, []byte(fonttable.Artwork), 0o600))

	test.DemandSuccess(t, mkfont(newModes("-o", out, src)))

	data, err := os.ReadFile(out)
	test.DemandSuccess(t, err)

	tab, err := fonttable.Default()
	test.DemandSuccess(t, err)
	var want bytes.Buffer
	test.DemandSuccess(t, tab.Write(&want))

	test.ExpectSuccess(t, bytes.Equal(data, want.Bytes()))

	// dump of the compiled file matches the dump of the embedded table
	a := &test.CompareWriter{}
	b := &test.CompareWriter{}
	test.DemandSuccess(t, dump(newModes(out), a))
	test.DemandSuccess(t, dump(newModes(), b))
	test.ExpectEquality(t, a.String(), b.String())
}

func TestMkfontMissingArgument(t *testing.T) {
	test.ExpectFailure(t, mkfont(newModes()))
}

func TestDigestMode(t *testing.T) {
	chdir(t)

	a := &test.CompareWriter{}
	test.DemandSuccess(t, digest(newModes("-frames", "3", "HELLO"), a))
	test.ExpectEquality(t, len(a.String()), 41)

	// repeatable
	b := &test.CompareWriter{}
	test.DemandSuccess(t, digest(newModes("-frames", "3", "HELLO"), b))
	test.ExpectEquality(t, a.String(), b.String())

	// a different message
	b.Clear()
	test.DemandSuccess(t, digest(newModes("-frames", "3", "WORLD"), b))
	test.ExpectInequality(t, a.String(), b.String())

	// a different number of frames
	b.Clear()
	test.DemandSuccess(t, digest(newModes("-frames", "2", "HELLO"), b))
	test.ExpectInequality(t, a.String(), b.String())
}

func TestShowVersion(t *testing.T) {
	tw := &test.CompareWriter{}
	test.DemandSuccess(t, showVersion(newModes(), tw))
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "Glyphline "))
}

func TestDumpJSON(t *testing.T) {
	tw := &test.CompareWriter{}
	test.DemandSuccess(t, dump(newModes("-json"), tw))

	js := tw.String()
	test.ExpectSuccess(t, gjson.Valid(js))
	test.ExpectEquality(t, gjson.Get(js, "randomizedStart").Int(), int64(fonttable.RandomizedStart))
	test.ExpectEquality(t, gjson.Get(js, "glyphs.#(code==65).encoding").Int(), int64(0xdfd6))
	test.ExpectEquality(t, gjson.Get(js, "glyphs.#(code==65).rows.0").String(), ".**.")

	// blank glyphs are omitted
	test.ExpectFailure(t, gjson.Get(js, "glyphs.#(code==32)").Exists())

	tw.Clear()
	test.DemandSuccess(t, dump(newModes("-json", "-all"), tw))
	test.ExpectEquality(t, gjson.Get(tw.String(), "glyphs.#").Int(), int64(fonttable.NumGlyphs))
}

func TestPNG(t *testing.T) {
	chdir(t)

	test.DemandSuccess(t, pngMode(newModes("-scale", "3", "out.png", "HELLO")))

	f, err := os.Open("out.png")
	test.DemandSuccess(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Width, 320*3)
	test.ExpectEquality(t, cfg.Height, 240*3)
}

func TestDigestNoise(t *testing.T) {
	chdir(t)

	a := &test.CompareWriter{}
	test.DemandSuccess(t, digest(newModes("-frames", "2", "-noise", "8", "HELLO"), a))

	// noise is generated with a zero seed in digest mode and so is repeatable
	b := &test.CompareWriter{}
	test.DemandSuccess(t, digest(newModes("-frames", "2", "-noise", "8", "HELLO"), b))
	test.ExpectEquality(t, a.String(), b.String())

	b.Clear()
	test.DemandSuccess(t, digest(newModes("-frames", "2", "HELLO"), b))
	test.ExpectInequality(t, a.String(), b.String())
}

func TestOverridePrefs(t *testing.T) {
	chdir(t)
	t.Setenv(prefsEnv, "display.width :: 200; font.transparent :: true")

	overridePrefs("display.width::100")
	defer prefs.PopCommandLineStack()

	ok, v := prefs.GetCommandLinePref("display.width")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "100")

	ok, v = prefs.GetCommandLinePref("font.transparent")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "true")
}

func TestOverridePrefsDotEnv(t *testing.T) {
	chdir(t)
	t.Setenv(prefsEnv, "")
	os.Unsetenv(prefsEnv)

	test.DemandSuccess(t, os.WriteFile(".env", []byte(prefsEnv+"=\"display.fps :: 60\"\n"), 0o600))
	before := prefs.SizeCommandLineStack()

	overridePrefs("")
	defer prefs.PopCommandLineStack()

	test.ExpectEquality(t, prefs.SizeCommandLineStack(), before+1)
	ok, v := prefs.GetCommandLinePref("display.fps")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v.(string), "60")
}
