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
	"errors"
	"fmt"
	"image/png"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/joho/godotenv"
	"github.com/tidwall/sjson"

	"github.com/jetsetilly/glyphline/artwork"
	"github.com/jetsetilly/glyphline/font"
	"github.com/jetsetilly/glyphline/fonttable"
	"github.com/jetsetilly/glyphline/logger"
	"github.com/jetsetilly/glyphline/modalflag"
	"github.com/jetsetilly/glyphline/prefs"
	"github.com/jetsetilly/glyphline/random"
	"github.com/jetsetilly/glyphline/scanline"
	"github.com/jetsetilly/glyphline/sdlview"
	"github.com/jetsetilly/glyphline/statsview"
	"github.com/jetsetilly/glyphline/termview"
	"github.com/jetsetilly/glyphline/version"
)

// environment variable containing preference overrides. the variable can
// also be set in a .env file in the current directory
const prefsEnv = "GLYPHLINE_PREFS"

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() must only be called as part of a larger loop from the main
	// thread. It should service all gui events that are not safe to do in
	// other goroutines.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

func init() {
	// SDL window events must be serviced by the thread that created the
	// window
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	exitVal := 0

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	go launch(sync, os.Args[1:])

	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	if gui != nil {
		gui.Destroy(os.Stderr)
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.AddSubModes("VIEW", "TERM", "PNG", "MKFONT", "DUMP", "DIGEST", "MEMVIZ", "VERSION")

	log := md.AddBool("log", false, "echo log to stdout")
	prefsOverride := md.AddString("prefs", "", "override preferences (eg. \"display.width::200; font.fg::0xf800\")")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *log {
		logger.SetEcho(os.Stdout, false)
	}

	overridePrefs(*prefsOverride)

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch md.Mode() {
	case "VIEW":
		err = view(md, sync)
	case "TERM":
		err = term(md)
	case "PNG":
		err = pngMode(md)
	case "MKFONT":
		err = mkfont(md)
	case "DUMP":
		err = dump(md, os.Stdout)
	case "DIGEST":
		err = digest(md, os.Stdout)
	case "MEMVIZ":
		err = memvizMode(md)
	case "VERSION":
		err = showVersion(md, os.Stdout)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// overridePrefs pushes the preference overrides found in the environment
// and on the command line. a missing .env file is not an error
func overridePrefs(cmdline string) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Log(logger.Allow, "env", err)
	}

	// preferences in the environment are overridden by the command line
	override := strings.TrimSpace(os.Getenv(prefsEnv))
	if cmdline != "" {
		override = fmt.Sprintf("%s; %s", override, cmdline)
	}
	if override != "" {
		prefs.PushCommandLineStack(override)
	}
}

// loadFont returns an initialised Font using either the named table file or
// the embedded table if the filename is empty.
func loadFont(filename string) (*font.Font, error) {
	var tab fonttable.Table
	var err error

	if filename == "" {
		tab, err = fonttable.Default()
		if err != nil {
			return nil, err
		}
	} else {
		f, err := os.Open(filename)
		if err != nil {
			return nil, fmt.Errorf("font: %w", err)
		}
		defer f.Close()

		tab, err = fonttable.Read(f)
		if err != nil {
			return nil, err
		}

		// a table with duplicate encodings can still be displayed
		if err := tab.Validate(); err != nil {
			logger.Log(logger.Allow, "font", err)
		}
	}

	fnt := font.NewFont(tab)
	fnt.Init()

	return fnt, nil
}

// scene describes the layers of a frame built from the command line.
type scene struct {
	fnt      *font.Font
	lines    []string
	specimen bool

	// frame counter at the bottom of the frame
	status bool

	// length of a line of glyphs chosen at random from the randomized range.
	// the line changes every frame
	noise    int
	zeroSeed bool
}

// build a frame from the scene using the display preferences. the returned
// function should be called before every frame is generated.
func (scn scene) build(pref *scanline.Preferences) (*scanline.Frame, func(frameNum int) error) {
	width, height := pref.Dimensions()
	fg := pref.Foreground()
	bg := pref.Background()
	transparent := pref.Transparent.Get().(bool)

	scn.fnt.SetDisplayWidth(width)

	frm := scanline.NewFrame(width, height, bg)

	if transparent {
		frm.AddLayer(&scanline.GradientLayer{
			Top:    scanline.ToRGB(scanline.Blue),
			Bottom: scanline.ToRGB(bg),
			Height: height,
		})
	}

	// one blank scanline between each line of text
	const lineHeight = font.CellHeight + font.VerticalScale

	y := font.VerticalScale
	for _, s := range scn.lines {
		text := []byte(strings.ToUpper(s))
		x := (width - font.Footprint(text)) / 2
		if x < 0 {
			x = 0
		}

		l := scanline.NewTextLayer(scn.fnt, text, x, y, fg, bg)
		l.Transparent = transparent
		frm.AddLayer(l)

		y += lineHeight
	}

	var updates []func(int)

	if scn.noise > 0 {
		noise := make([]byte, scn.noise)
		x := (width - font.Advance*scn.noise - 1) / 2
		if x < 0 {
			x = 0
		}

		l := scanline.NewTextLayer(scn.fnt, nil, x, y, fg, bg)
		l.Transparent = transparent
		frm.AddLayer(l)
		y += lineHeight

		rnd := random.NewRandom(frm)
		rnd.ZeroSeed = scn.zeroSeed
		updates = append(updates, func(_ int) {
			rnd.Fill(noise, fonttable.RandomizedStart, fonttable.NumGlyphs)
			l.SetText(noise)
		})
	}

	if scn.specimen {
		x := (width - font.SpecimenWidth) / 2
		if x < 0 {
			x = 0
		}
		frm.AddLayer(scanline.NewSpecimenLayer(scn.fnt, x, y, fg, bg))
	}

	if scn.status {
		l := scanline.NewTextLayer(scn.fnt, nil, 0, height-font.CellHeight-font.VerticalScale, fg, bg)
		frm.AddLayer(l)

		buf := make([]byte, 0, 32)
		updates = append(updates, func(frameNum int) {
			buf = append(buf[:0], "FRAME "...)
			buf = strconv.AppendInt(buf, int64(frameNum), 10)
			l.SetText(buf)
		})
	}

	return frm, func(frameNum int) error {
		for _, u := range updates {
			u(frameNum)
		}
		return nil
	}
}

func sceneArgs(md *modalflag.Modes) []string {
	if len(md.RemainingArgs()) == 0 {
		return []string{version.ApplicationName}
	}
	return md.RemainingArgs()
}

func view(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()
	md.AdditionalHelp("each argument is drawn as a line of text")

	fontFile := md.AddString("font", "", "font table file (default is the embedded table)")
	specimen := md.AddBool("specimen", false, "draw every glyph in the font table")
	status := md.AddBool("status", true, "show frame counter")
	noise := md.AddInt("noise", 0, "length of a line of randomized glyphs")
	scale := md.AddInt("scale", 0, "window scaling (default from preferences)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := scanline.NewPreferences()
	if err != nil {
		return err
	}

	fnt, err := loadFont(*fontFile)
	if err != nil {
		return err
	}

	scn := scene{
		fnt:      fnt,
		lines:    sceneArgs(md),
		specimen: *specimen,
		status:   *status,
		noise:    *noise,
	}
	frm, update := scn.build(pref)

	s := *scale
	if s == 0 {
		s = pref.Scale.Get().(int)
	}

	sync.creator <- func() (GuiCreator, error) {
		vw, err := sdlview.NewView(frm, s, float32(pref.FPS.Get().(int)))
		if err != nil {
			return nil, err
		}
		vw.SetUpdate(update)
		return vw, nil
	}

	var vw *sdlview.View
	select {
	case g := <-sync.creation:
		vw = g.(*sdlview.View)
	case err := <-sync.creationError:
		return err
	}

	<-vw.Done()
	return vw.Err()
}

func term(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("each argument is drawn as a line of text")

	fontFile := md.AddString("font", "", "font table file (default is the embedded table)")
	specimen := md.AddBool("specimen", false, "draw every glyph in the font table")
	wait := md.AddBool("wait", false, "wait for a key press before exiting")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := scanline.NewPreferences()
	if err != nil {
		return err
	}

	fnt, err := loadFont(*fontFile)
	if err != nil {
		return err
	}

	trm, err := termview.NewTerminal(os.Stdin, os.Stdout)
	if err != nil {
		return err
	}

	// the terminal shows one pixel per column so the frame is never wider
	// than the terminal
	if w, _ := pref.Dimensions(); w > trm.Geometry.Cols {
		if err := pref.Width.Set(trm.Geometry.Cols); err != nil {
			return err
		}
	}

	scn := scene{
		fnt:      fnt,
		lines:    sceneArgs(md),
		specimen: *specimen,
	}
	frm, _ := scn.build(pref)
	frm.Generate()

	if err := trm.Show(frm); err != nil {
		return err
	}

	if *wait {
		if _, err := trm.WaitKey(); err != nil {
			return err
		}
	}

	return nil
}

func pngMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("the first argument is the output file. each further argument is drawn as a line of text")

	fontFile := md.AddString("font", "", "font table file (default is the embedded table)")
	specimen := md.AddBool("specimen", false, "draw every glyph in the font table")
	scale := md.AddInt("scale", 0, "image scaling (default from preferences)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("output file required for %s mode", md)
	}

	pref, err := scanline.NewPreferences()
	if err != nil {
		return err
	}

	fnt, err := loadFont(*fontFile)
	if err != nil {
		return err
	}

	lines := md.RemainingArgs()[1:]
	if len(lines) == 0 {
		lines = []string{version.ApplicationName}
	}

	scn := scene{
		fnt:      fnt,
		lines:    lines,
		specimen: *specimen,
	}
	frm, _ := scn.build(pref)
	frm.Generate()

	s := *scale
	if s == 0 {
		s = pref.Scale.Get().(int)
	}

	f, err := os.Create(md.GetArg(0))
	if err != nil {
		return err
	}

	if err := png.Encode(f, frm.Image(s)); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func mkfont(md *modalflag.Modes) error {
	md.NewMode()

	output := md.AddString("o", "glyphs.bin", "output file")
	check := md.AddBool("check", false, "compile and report but do not write the output file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("artwork file required for %s mode", md)
	}

	f, err := os.Open(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	tab, entries, err := artwork.Compile(f)
	if err != nil {
		return err
	}

	fmt.Printf("%d glyphs defined (%d not blank)\n", len(entries), tab.Count())

	if *check {
		return nil
	}

	out, err := os.Create(*output)
	if err != nil {
		return err
	}

	if err := tab.Write(out); err != nil {
		_ = out.Close()
		return err
	}

	return out.Close()
}

func dump(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	all := md.AddBool("all", false, "include blank glyphs")
	asJSON := md.AddBool("json", false, "output as JSON")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var filename string
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		filename = md.GetArg(0)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	fnt, err := loadFont(filename)
	if err != nil {
		return err
	}

	tab := fnt.Active()

	if *asJSON {
		return dumpJSON(output, tab, *all)
	}

	for c, g := range tab {
		if g.IsBlank() && !*all {
			continue
		}

		label := ""
		if c > ' ' && c < 0x7f {
			label = fmt.Sprintf(" %c", c)
		} else if c >= fonttable.RandomizedStart {
			label = " (randomized)"
		}
		fmt.Fprintf(output, "@%d%s %v\n%s\n\n", c, label, g, g.Art())
	}

	return nil
}

func digest(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp("each argument is drawn as a line of text")

	fontFile := md.AddString("font", "", "font table file (default is the embedded table)")
	frames := md.AddInt("frames", 1, "number of frames to include in the digest")
	specimen := md.AddBool("specimen", false, "draw every glyph in the font table")
	noise := md.AddInt("noise", 0, "length of a line of randomized glyphs")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	pref, err := scanline.NewPreferences()
	if err != nil {
		return err
	}

	fnt, err := loadFont(*fontFile)
	if err != nil {
		return err
	}

	// the digest of a noise line is only repeatable with a zero seed
	scn := scene{
		fnt:      fnt,
		lines:    sceneArgs(md),
		specimen: *specimen,
		status:   true,
		noise:    *noise,
		zeroSeed: true,
	}
	frm, update := scn.build(pref)

	var dig scanline.Digest
	for i := 0; i < *frames; i++ {
		if err := update(frm.FrameNum()); err != nil {
			return err
		}
		frm.Generate()
		dig.AddFrame(frm)
	}

	fmt.Fprintln(output, dig.Hash())

	return nil
}

func memvizMode(md *modalflag.Modes) error {
	md.NewMode()

	fontFile := md.AddString("font", "", "font table file (default is the embedded table)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("output file required for %s mode", md)
	}

	fnt, err := loadFont(*fontFile)
	if err != nil {
		return err
	}

	f, err := os.Create(md.GetArg(0))
	if err != nil {
		return err
	}

	memviz.Map(f, fnt)

	return f.Close()
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(output, r)
	}

	return nil
}

// dumpJSON writes the table as a JSON object with an entry for each glyph
func dumpJSON(output io.Writer, tab fonttable.Table, all bool) error {
	js := `{"glyphs":[]}`

	var err error
	for c, g := range tab {
		if g.IsBlank() && !all {
			continue
		}

		js, err = sjson.Set(js, "glyphs.-1", map[string]any{
			"code":     c,
			"encoding": uint16(g),
			"rows":     g.Rows(),
		})
		if err != nil {
			return err
		}
	}

	js, err = sjson.Set(js, "randomizedStart", fonttable.RandomizedStart)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(output, js)
	return err
}
