package nx

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// HostConfig configures the desktop stand-in platform.
type HostConfig struct {
	// StartDocked selects the initial operation mode.
	StartDocked bool
	// StandardFontPath and ExtendedFontPath override the shared font
	// lookup. When empty, the standard set is searched for in a few common
	// system font locations and the extended set is reported missing.
	StandardFontPath string
	ExtendedFontPath string
}

// Host simulates the console platform on a desktop. Touch contacts come
// from the real touch screen when one is present, otherwise the pressed
// primary mouse button stands in for a single contact at the cursor.
//
// Host is not safe for concurrent use; like the real services it assumes a
// single event/render goroutine.
type Host struct {
	cfg  HostConfig
	mode OperationMode

	hooks    map[HookCookie]HookFunc
	nextHook HookCookie

	touchIDs []ebiten.TouchID
}

// NewHost returns a Host in the mode selected by cfg.
func NewHost(cfg HostConfig) *Host {
	h := &Host{
		cfg:   cfg,
		hooks: map[HookCookie]HookFunc{},
	}
	if cfg.StartDocked {
		h.mode = OperationModeDocked
	}
	return h
}

// OperationMode reports the simulated display context.
func (h *Host) OperationMode() OperationMode { return h.mode }

// SetOperationMode records the new mode and fires an operation-mode hook
// event, payloadless like the real service. It fires even when the mode is
// unchanged so duplicate-notification handling can be exercised.
func (h *Host) SetOperationMode(m OperationMode) {
	h.mode = m
	h.FireHook(HookOperationMode)
}

// FireHook delivers ev to every registered hook in registration order.
func (h *Host) FireHook(ev HookEvent) {
	cookies := make([]HookCookie, 0, len(h.hooks))
	for c := range h.hooks {
		cookies = append(cookies, c)
	}
	sort.Slice(cookies, func(i, j int) bool { return cookies[i] < cookies[j] })
	for _, c := range cookies {
		h.hooks[c](ev)
	}
}

// AddHook registers fn and returns its cookie.
func (h *Host) AddHook(fn HookFunc) HookCookie {
	h.nextHook++
	h.hooks[h.nextHook] = fn
	return h.nextHook
}

// RemoveHook unregisters the hook identified by c. Unknown cookies are
// ignored.
func (h *Host) RemoveHook(c HookCookie) {
	delete(h.hooks, c)
}

// AppendTouches appends the active contacts to buf. With no touch hardware
// active, a pressed primary mouse button is reported as one contact at the
// cursor position.
func (h *Host) AppendTouches(buf []Touch) []Touch {
	h.touchIDs = ebiten.AppendTouchIDs(h.touchIDs[:0])
	for _, id := range h.touchIDs {
		x, y := ebiten.TouchPosition(id)
		buf = append(buf, Touch{X: float32(x), Y: float32(y)})
	}
	if len(h.touchIDs) == 0 && ebiten.IsMouseButtonPressed(ebiten.MouseButton0) {
		x, y := ebiten.CursorPosition()
		buf = append(buf, Touch{X: float32(x), Y: float32(y)})
	}
	return buf
}
