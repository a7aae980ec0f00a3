package main

import (
	"encoding/json"
	"os"
	"path/filepath"
)

type Settings struct {
	StartDocked      bool    `json:"startDocked"`
	Vsync            bool    `json:"vsync"`
	WindowScale      float64 `json:"windowScale"`
	StandardFontPath string  `json:"standardFontPath"`
	ExtendedFontPath string  `json:"extendedFontPath"`
}

var gs = Settings{Vsync: true, WindowScale: 0.5}

func loadSettings() bool {
	path := filepath.Join(baseDir, "settings.json")
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return false
	}
	if s.WindowScale <= 0 {
		s.WindowScale = 0.5
	}
	gs = s
	return true
}

func saveSettings() {
	path := filepath.Join(baseDir, "settings.json")
	data, err := json.MarshalIndent(gs, "", "\t")
	if err != nil {
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		logError("save settings: %v", err)
	}
}
