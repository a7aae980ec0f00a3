package imnx

import "github.com/inkyblackness/imgui-go/v4"

// imguiToolkit is the Toolkit implementation backed by a live imgui
// context. Every imgui-go call the adapter needs is confined to this file.
type imguiToolkit struct{}

// NewImguiToolkit returns a Toolkit writing to the current imgui context.
// The context must have been created before any method is called.
func NewImguiToolkit() Toolkit {
	return imguiToolkit{}
}

func (imguiToolkit) SetDisplaySize(w, h float32) {
	imgui.CurrentIO().SetDisplaySize(imgui.Vec2{X: w, Y: h})
}

func (imguiToolkit) SetDisplayFramebufferScale(_, _ float32) {
	// The v4 binding exposes the backing-store scale only through the
	// render path, where this binding keeps it fixed at 1:1.
}

func (imguiToolkit) SetDeltaTime(dt float32) {
	imgui.CurrentIO().SetDeltaTime(dt)
}

func (imguiToolkit) SetMousePosition(x, y float32) {
	imgui.CurrentIO().SetMousePosition(imgui.Vec2{X: x, Y: y})
}

func (imguiToolkit) SetMouseButtonDown(button int, down bool) {
	imgui.CurrentIO().SetMouseButtonDown(button, down)
}

func (imguiToolkit) SetFontGlobalScale(scale float32) {
	imgui.CurrentIO().SetFontGlobalScale(scale)
}

func (imguiToolkit) ScaleAllSizes(factor float32) {
	imgui.CurrentStyle().ScaleAllSizes(factor)
}

func (imguiToolkit) AddFontTTF(ttf []byte, sizePx float32) {
	atlas := imgui.CurrentIO().Fonts()
	cfg := imgui.NewFontConfig()
	defer cfg.Delete()
	atlas.AddFontFromMemoryTTFV(ttf, sizePx, cfg, atlas.GlyphRangesDefault())
}

func (imguiToolkit) MergeFontTTF(ttf []byte, sizePx float32, lo, hi rune) {
	atlas := imgui.CurrentIO().Fonts()
	cfg := imgui.NewFontConfig()
	defer cfg.Delete()
	cfg.SetMergeMode(true)
	var builder imgui.GlyphRangesBuilder
	builder.Add(lo, hi)
	ranges := builder.Build()
	atlas.AddFontFromMemoryTTFV(ttf, sizePx, cfg, ranges.GlyphRanges)
}

func (imguiToolkit) BuildFontAtlasAlpha8() {
	// Requesting the texture builds the atlas; the pixels themselves are
	// uploaded by whichever renderer consumes the atlas later.
	imgui.CurrentIO().Fonts().TextureDataAlpha8()
}

func (imguiToolkit) DisableIniFile() {
	imgui.CurrentIO().SetIniFilename("")
}

func (imguiToolkit) EnableTouchScreen() {
	imgui.CurrentIO().SetConfigFlags(imgui.ConfigFlagsIsTouchScreen)
}

func (imguiToolkit) SetMouseDrawCursor(draw bool) {
	imgui.CurrentIO().SetMouseDrawCursor(draw)
}
