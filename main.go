package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hako/durafmt"
	"github.com/inkyblackness/imgui-go/v4"

	"imguinx/nx"
)

var baseDir string

func main() {
	docked := flag.Bool("docked", false, "start in docked mode")
	debug := flag.Bool("debug", false, "verbose/debug logging")
	stdFont := flag.String("standard-font", "", "path to the standard glyph set")
	extFont := flag.String("extended-font", "", "path to the extended glyph set")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			log.Fatalf("get working directory: %v", err)
		}
	}

	loadSettings()
	if *docked {
		gs.StartDocked = true
	}
	if *stdFont != "" {
		gs.StandardFontPath = *stdFont
	}
	if *extFont != "" {
		gs.ExtendedFontPath = *extFont
	}
	setupLogging(*debug)

	ctx := imgui.CreateContext(nil)
	defer ctx.Destroy()

	g := newGame()
	ebiten.SetWindowTitle("imguinx host simulator")
	ebiten.SetVsyncEnabled(gs.Vsync)

	start := time.Now()
	if err := ebiten.RunGame(g); err != nil {
		logError("run: %v", err)
	}
	g.adapter.Shutdown()

	gs.StartDocked = g.adapter.Mode() == nx.OperationModeDocked
	saveSettings()
	log.Printf("session ended after %s",
		durafmt.Parse(time.Since(start).Truncate(time.Second)).LimitFirstN(2).String())
}
