package nx

import (
	"fmt"
	"os"
)

// standardFontPaths are tried in order when no override is configured.
var standardFontPaths = []string{
	"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	"/usr/share/fonts/TTF/DejaVuSans.ttf",
	"/usr/share/fonts/noto/NotoSans-Regular.ttf",
	"/System/Library/Fonts/Supplemental/Arial Unicode.ttf",
	"/Library/Fonts/Arial Unicode.ttf",
	`C:\Windows\Fonts\segoeui.ttf`,
}

// SharedFont reads a glyph set from disk. The extended set has no desktop
// stand-in, so without a configured path it is reported missing; callers
// treat that as a degraded state, not an error.
func (h *Host) SharedFont(kind SharedFontKind) ([]byte, error) {
	var candidates []string
	switch kind {
	case SharedFontStandard:
		if h.cfg.StandardFontPath != "" {
			candidates = []string{h.cfg.StandardFontPath}
		} else {
			candidates = standardFontPaths
		}
	case SharedFontExtended:
		if h.cfg.ExtendedFontPath != "" {
			candidates = []string{h.cfg.ExtendedFontPath}
		}
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err == nil && len(data) > 0 {
			return data, nil
		}
	}
	return nil, fmt.Errorf("%w: %v font", ErrFontUnavailable, kind)
}
