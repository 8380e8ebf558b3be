package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores overlay preferences that are not part of the map itself.
type SettingsData struct {
	ShowPanel *Flag
}

// SavedSettings is the on-disk form of the overlay preferences.
type SavedSettings struct {
	DrawBounds bool `json:"drawBounds"`
	DrawFPS    bool `json:"drawFPS"`
	DrawGrid   bool `json:"drawGrid"`
	ShowPanel  bool `json:"showPanel"`
}

var Settings = donburi.NewComponentType[SettingsData]()
