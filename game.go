package main

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/inkyblackness/imgui-go/v4"
	dark "github.com/thiagokokada/dark-mode-go"
	"golang.org/x/time/rate"

	"imguinx/imnx"
	"imguinx/nx"
)

// Game is the host-simulator loop: it plays the part of the console's
// render loop, driving the adapter and a headless imgui context while
// showing the published state as an overlay.
type Game struct {
	host    *nx.Host
	adapter *imnx.Adapter

	statsLimiter *rate.Limiter
	bg           color.RGBA
}

func newGame() *Game {
	g := &Game{
		host: nx.NewHost(nx.HostConfig{
			StartDocked:      gs.StartDocked,
			StandardFontPath: gs.StandardFontPath,
			ExtendedFontPath: gs.ExtendedFontPath,
		}),
		statsLimiter: rate.NewLimiter(rate.Every(time.Second), 1),
		bg:           color.RGBA{R: 0x20, G: 0x20, B: 0x24, A: 0xff},
	}

	if darkMode, err := dark.IsDarkMode(); err == nil && !darkMode {
		g.bg = color.RGBA{R: 0xe8, G: 0xe8, B: 0xec, A: 0xff}
	}

	tk := imnx.NewImguiToolkit()
	g.adapter = imnx.New(g.host, tk, imnx.Config{Logger: errorLogger})
	// There is no render backend here, so build the atlas ourselves; the
	// toolkit refuses to start a frame on an unbuilt atlas when the shared
	// fonts were missing.
	tk.BuildFontAtlasAlpha8()

	g.resizeWindow()
	return g
}

func (g *Game) resizeWindow() {
	w, h := g.adapter.DisplaySize()
	ebiten.SetWindowSize(int(float64(w)*gs.WindowScale), int(float64(h)*gs.WindowScale))
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		if g.host.OperationMode() == nx.OperationModeHandheld {
			g.host.SetOperationMode(nx.OperationModeDocked)
		} else {
			g.host.SetOperationMode(nx.OperationModeHandheld)
		}
		g.resizeWindow()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		// Non-mode event; the adapter ignores it.
		g.host.FireHook(nx.HookFocusState)
	}

	g.adapter.NewFrame()
	imgui.NewFrame()
	imgui.Render()

	if g.statsLimiter.Allow() {
		x, y, down := g.adapter.Pointer()
		logDebug("mode=%v pointer=(%.0f,%.0f) down=%v", g.adapter.Mode(), x, y, down)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.bg)
	w, h := g.adapter.DisplaySize()
	x, y, down := g.adapter.Pointer()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"mode: %v (%gx%g)\npointer: (%.0f, %.0f) down=%v\n[tab] toggle dock  [f] focus event  [esc] quit",
		g.adapter.Mode(), w, h, x, y, down), 8, 8)
}

// Layout matches the logical screen to the adapter's display size, so
// cursor and touch coordinates arrive in console pixels regardless of the
// desktop window scale.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.adapter.DisplaySize()
	return int(w), int(h)
}
