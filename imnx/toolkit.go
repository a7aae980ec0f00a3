package imnx

// Toolkit is the slice of the GUI toolkit's IO and style state the adapter
// writes to. It matches the shape of Dear ImGui's IO; keeping it behind an
// interface lets tests record the published values without a toolkit
// context.
type Toolkit interface {
	// Per-frame input/display state.
	SetDisplaySize(w, h float32)
	SetDisplayFramebufferScale(x, y float32)
	SetDeltaTime(dt float32)
	SetMousePosition(x, y float32)
	SetMouseButtonDown(button int, down bool)

	// Scale state, mutated at init and on mode transitions.
	SetFontGlobalScale(scale float32)
	ScaleAllSizes(factor float32)

	// Font atlas setup, used once at init. MergeFontTTF adds ttf on top of
	// the previously added font, restricted to the [lo, hi] glyph range.
	AddFontTTF(ttf []byte, sizePx float32)
	MergeFontTTF(ttf []byte, sizePx float32, lo, hi rune)
	BuildFontAtlasAlpha8()

	// One-time configuration.
	DisableIniFile()
	EnableTouchScreen()
	SetMouseDrawCursor(draw bool)
}
