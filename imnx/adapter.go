// Package imnx glues Dear ImGui to the console's display and input
// services: it keeps the toolkit's display size, style scale and font scale
// in step with the handheld/docked operation mode and pushes touch-derived
// pointer state and frame timing into the toolkit once per frame.
package imnx

import (
	"io"
	"log"
	"time"

	"github.com/dustin/go-humanize"

	"imguinx/nx"
)

// Extended glyph set range, mapped into the private use area.
const (
	extendedRangeLo rune = 0xE000
	extendedRangeHi rune = 0xE152
)

const defaultFontSize = 20

// Config adjusts adapter construction. The zero value is usable.
type Config struct {
	// FontSize is the glyph size in pixels for the shared fonts; 0 means 20.
	FontSize float32
	// Logger receives mode-switch and font diagnostics; nil discards them.
	Logger *log.Logger
	// Now overrides the frame clock, for tests. nil means time.Now.
	Now func() time.Time
}

// Adapter tracks the current display preset and sticky pointer state for
// one toolkit context.
//
// New, NewFrame, Shutdown and hook delivery all run on the goroutine that
// owns the render loop; the adapter holds no locks.
type Adapter struct {
	plat nx.Platform
	tk   Toolkit
	log  *log.Logger
	now  func() time.Time

	mode          nx.OperationMode
	preset        Preset
	width, height float32

	mouseX, mouseY float32
	mouseDown      bool
	touches        []nx.Touch

	lastFrame time.Time
	cookie    nx.HookCookie
}

// New wires the toolkit to the platform: it installs the shared fonts when
// both glyph sets are available, applies the display preset for the current
// operation mode, registers the mode-change hook, disables layout-state
// persistence and marks input as touch-primary.
//
// A missing shared font is a degraded state, not a failure; the toolkit
// keeps its built-in font. New itself cannot fail.
func New(plat nx.Platform, tk Toolkit, cfg Config) *Adapter {
	a := &Adapter{
		plat: plat,
		tk:   tk,
		log:  cfg.Logger,
		now:  cfg.Now,
	}
	if a.log == nil {
		a.log = log.New(io.Discard, "", 0)
	}
	if a.now == nil {
		a.now = time.Now
	}
	fontSize := cfg.FontSize
	if fontSize == 0 {
		fontSize = defaultFontSize
	}

	a.loadFonts(fontSize)

	// Style sizes are at their unscaled baseline here, so the full preset
	// multiplier applies once. Later transitions rescale by ratio.
	a.mode = normalizeMode(plat.OperationMode())
	a.preset = PresetFor(a.mode)
	a.width, a.height = a.preset.Width, a.preset.Height
	tk.ScaleAllSizes(a.preset.StyleScale)
	tk.SetFontGlobalScale(a.preset.FontScale)

	a.cookie = plat.AddHook(a.handleHook)

	// Window positions must not persist across runs, and the platform
	// draws its own cursor.
	tk.DisableIniFile()
	tk.EnableTouchScreen()
	tk.SetMouseDrawCursor(false)

	return a
}

func (a *Adapter) loadFonts(sizePx float32) {
	standard, errStd := a.plat.SharedFont(nx.SharedFontStandard)
	extended, errExt := a.plat.SharedFont(nx.SharedFontExtended)
	if errStd != nil || errExt != nil {
		err := errStd
		if err == nil {
			err = errExt
		}
		a.log.Printf("using built-in font: %v", err)
		return
	}
	a.tk.AddFontTTF(standard, sizePx)
	a.tk.MergeFontTTF(extended, sizePx, extendedRangeLo, extendedRangeHi)
	a.tk.BuildFontAtlasAlpha8()
	a.log.Printf("shared fonts loaded (standard %s, extended %s)",
		humanize.Bytes(uint64(len(standard))), humanize.Bytes(uint64(len(extended))))
}

// handleHook is the applet notification callback. Only operation-mode
// events are acted on; the new mode is re-queried from the platform because
// the event carries no payload. Duplicate notifications for the mode
// already applied are no-ops, so repeated delivery cannot compound the
// style scale.
func (a *Adapter) handleHook(ev nx.HookEvent) {
	if ev != nx.HookOperationMode {
		return
	}
	mode := normalizeMode(a.plat.OperationMode())
	if mode == a.mode {
		return
	}
	prev := a.preset
	a.mode = mode
	a.preset = PresetFor(mode)
	a.width, a.height = a.preset.Width, a.preset.Height
	a.tk.ScaleAllSizes(a.preset.StyleScale / prev.StyleScale)
	a.tk.SetFontGlobalScale(a.preset.FontScale)
	a.log.Printf("switching to %.0fp mode", a.preset.Height)
}

// NewFrame publishes display size, delta time and pointer state to the
// toolkit. Call it exactly once per frame, before the toolkit lays out the
// frame.
//
// With no active contact the pointer keeps its previous position and
// pressed state; a lifted finger is deliberately never reported as a
// release.
func (a *Adapter) NewFrame() {
	a.tk.SetDisplaySize(a.width, a.height)
	a.tk.SetDisplayFramebufferScale(1, 1)

	now := a.now()
	var dt float32
	if !a.lastFrame.IsZero() {
		if d := now.Sub(a.lastFrame); d > 0 {
			dt = float32(d.Seconds())
		}
	}
	a.lastFrame = now
	a.tk.SetDeltaTime(dt)

	a.touches = a.plat.AppendTouches(a.touches[:0])
	if len(a.touches) > 0 {
		a.mouseX, a.mouseY = a.touches[0].X, a.touches[0].Y
		a.mouseDown = true
	}

	a.mouseX = clamp(a.mouseX, 0, a.width)
	a.mouseY = clamp(a.mouseY, 0, a.height)
	a.tk.SetMousePosition(a.mouseX, a.mouseY)
	a.tk.SetMouseButtonDown(0, a.mouseDown)
}

// Shutdown unregisters the mode-change hook. Call it once after New.
func (a *Adapter) Shutdown() {
	a.plat.RemoveHook(a.cookie)
}

// Mode reports the operation mode of the active preset.
func (a *Adapter) Mode() nx.OperationMode { return a.mode }

// DisplaySize reports the active preset's display size.
func (a *Adapter) DisplaySize() (w, h float32) { return a.width, a.height }

// Pointer reports the last published pointer state.
func (a *Adapter) Pointer() (x, y float32, down bool) {
	return a.mouseX, a.mouseY, a.mouseDown
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
