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


package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/glyphline/curated"
	"github.com/jetsetilly/glyphline/prefs"
	"github.com/jetsetilly/glyphline/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	if string(data) != expected {
		t.Errorf("unexpected prefs file:\n%s\nwanted:\n%s", data, expected)
	}
}

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.Get().(bool), true)

	test.ExpectSuccess(t, v.Set("nonsense"))
	test.ExpectEquality(t, v.Get().(bool), false)

	err := v.Set(10)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.CannotConvert))
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectEquality(t, v.String(), "0")

	test.ExpectSuccess(t, v.Set(320))
	test.ExpectEquality(t, v.Get().(int), 320)

	test.ExpectSuccess(t, v.Set("0xffff"))
	test.ExpectEquality(t, v.Get().(int), 0xffff)
	test.ExpectEquality(t, v.String(), "65535")

	err := v.Set("wide")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.NotANumber))
	test.ExpectEquality(t, v.Get().(int), 0xffff)

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.Get().(int), 0)
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectEquality(t, v.String(), "")

	test.ExpectSuccess(t, v.Set("HELLO"))
	test.ExpectEquality(t, v.String(), "HELLO")

	v.SetMaxLen(3)
	test.ExpectEquality(t, v.String(), "HEL")

	test.ExpectSuccess(t, v.Set("WORLD"))
	test.ExpectEquality(t, v.String(), "WOR")
}

func TestHookPost(t *testing.T) {
	var v prefs.Int
	var seen int
	v.SetHookPost(func(nv prefs.Value) error {
		seen = nv.(int)
		return nil
	})
	test.ExpectSuccess(t, v.Set(42))
	test.ExpectEquality(t, seen, 42)
}

func TestDiskSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var width prefs.Int
	var transparent prefs.Bool
	var text prefs.String
	test.ExpectSuccess(t, dsk.Add("display.width", &width))
	test.ExpectSuccess(t, dsk.Add("font.transparent", &transparent))
	test.ExpectSuccess(t, dsk.Add("view.text", &text))

	err = dsk.Add("display.width", &width)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))

	test.ExpectSuccess(t, width.Set(200))
	test.ExpectSuccess(t, transparent.Set(true))
	test.ExpectSuccess(t, text.Set("HELLO WORLD"))
	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "display.width :: 200\nfont.transparent :: true\nview.text :: HELLO WORLD\n")

	// load into a fresh set of values
	dsk2, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var width2 prefs.Int
	var transparent2 prefs.Bool
	test.ExpectSuccess(t, dsk2.Add("display.width", &width2))
	test.ExpectSuccess(t, dsk2.Add("font.transparent", &transparent2))
	test.ExpectSuccess(t, dsk2.Load(false))
	test.ExpectEquality(t, width2.Get().(int), 200)
	test.ExpectEquality(t, transparent2.Get().(bool), true)

	// saving from the second disk instance preserves the entry it doesn't know about
	test.ExpectSuccess(t, width2.Set(100))
	test.ExpectSuccess(t, dsk2.Save())
	cmpTmpFile(t, fn, "display.width :: 100\nfont.transparent :: true\nview.text :: HELLO WORLD\n")
}

func TestDiskLoadMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var width prefs.Int
	test.ExpectSuccess(t, width.Set(320))
	test.ExpectSuccess(t, dsk.Add("display.width", &width))

	// missing file without saveOnFail is not an error and doesn't create the file
	test.ExpectSuccess(t, dsk.Load(false))
	_, err = os.Stat(fn)
	test.ExpectFailure(t, err)

	// with saveOnFail the file is created with the current values
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "display.width :: 320\n")
}

func TestDiskCommandLine(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var width prefs.Int
	test.ExpectSuccess(t, dsk.Add("display.width", &width))
	test.ExpectSuccess(t, width.Set(320))
	test.ExpectSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("display.width::160")
	defer prefs.PopCommandLineStack()

	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, width.Get().(int), 160)

	// command line value has been consumed
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, width.Get().(int), 320)
}

func TestDiskNotPrefsFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("display.width :: 200\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var width prefs.Int
	test.ExpectSuccess(t, dsk.Add("display.width", &width))

	err = dsk.Load(false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, prefs.NotPrefsFile))
}
