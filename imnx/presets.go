package imnx

import "imguinx/nx"

// Preset is one of the two display configurations the console switches
// between. StyleScale is the absolute multiplier from the toolkit's
// unscaled baseline; transitions between presets apply the ratio of the two
// multipliers instead, so sizes are never compounded.
type Preset struct {
	Width, Height float32
	StyleScale    float32
	FontScale     float32
}

var (
	handheldPreset = Preset{Width: 1280, Height: 720, StyleScale: 1.9, FontScale: 0.9}
	dockedPreset   = Preset{Width: 1920, Height: 1080, StyleScale: 2.6, FontScale: 1.6}
)

// normalizeMode folds every unrecognized operation mode onto handheld, the
// platform's default branch.
func normalizeMode(m nx.OperationMode) nx.OperationMode {
	if m == nx.OperationModeDocked {
		return m
	}
	return nx.OperationModeHandheld
}

// PresetFor returns the display preset for m. Unrecognized modes map to the
// handheld preset.
func PresetFor(m nx.OperationMode) Preset {
	if normalizeMode(m) == nx.OperationModeDocked {
		return dockedPreset
	}
	return handheldPreset
}
