// Package nx models the console services this binding depends on: the
// operation-mode query, the applet hook subscription, touch input and the
// shared system fonts. The real console supplies these through firmware;
// Host provides a desktop stand-in for development.
package nx

import "errors"

// OperationMode is the console's coarse display context. It decides the
// output resolution and the recommended UI scale.
type OperationMode uint8

const (
	OperationModeHandheld OperationMode = iota
	OperationModeDocked
)

func (m OperationMode) String() string {
	switch m {
	case OperationModeHandheld:
		return "handheld"
	case OperationModeDocked:
		return "docked"
	}
	return "unknown"
}

// HookEvent tags an applet notification. Events carry no payload; a
// subscriber re-queries whatever state the event refers to.
type HookEvent uint8

const (
	HookFocusState HookEvent = iota
	HookOperationMode
	HookPerformanceMode
	HookExitRequest
	HookResume
)

func (e HookEvent) String() string {
	switch e {
	case HookFocusState:
		return "focus-state"
	case HookOperationMode:
		return "operation-mode"
	case HookPerformanceMode:
		return "performance-mode"
	case HookExitRequest:
		return "exit-request"
	case HookResume:
		return "resume"
	}
	return "unknown"
}

// HookFunc receives applet notifications. It is always invoked on the
// goroutine that drives the event pump and must not block.
type HookFunc func(HookEvent)

// HookCookie identifies a hook registration. It is returned by AddHook and
// consumed by RemoveHook; callers treat it as opaque.
type HookCookie uint64

// Touch is one active contact in display pixel coordinates.
type Touch struct {
	X, Y float32
}

// SharedFontKind selects one of the platform-provided glyph sets.
type SharedFontKind uint8

const (
	// SharedFontStandard is the base text glyph set.
	SharedFontStandard SharedFontKind = iota
	// SharedFontExtended is the symbol glyph set mapped into the private
	// use area (button glyphs and the like).
	SharedFontExtended
)

func (k SharedFontKind) String() string {
	switch k {
	case SharedFontStandard:
		return "standard"
	case SharedFontExtended:
		return "extended"
	}
	return "unknown"
}

// ErrFontUnavailable reports that a shared font resource is missing.
// Callers are expected to fall back to their own font.
var ErrFontUnavailable = errors.New("shared font unavailable")

// Platform is the contact point with the console's applet, input and font
// services.
//
// All methods, including registered hook callbacks, run on the single
// goroutine that owns the render loop. Hook delivery never interleaves with
// a frame update; implementations for a multi-threaded event pump must
// serialize delivery onto the render goroutine themselves.
type Platform interface {
	// OperationMode reports the current display context. It is polled at
	// startup and again on every operation-mode hook event.
	OperationMode() OperationMode

	// AddHook registers fn for applet notifications of every kind; the
	// callback filters by event tag. RemoveHook unregisters it.
	AddHook(fn HookFunc) HookCookie
	RemoveHook(c HookCookie)

	// AppendTouches appends the active contacts to buf and returns the
	// extended slice. Index 0 is the primary contact.
	AppendTouches(buf []Touch) []Touch

	// SharedFont returns the raw TTF bytes of a platform glyph set, or an
	// error wrapping ErrFontUnavailable when the resource is missing.
	SharedFont(kind SharedFontKind) ([]byte, error)
}
