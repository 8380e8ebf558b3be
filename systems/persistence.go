package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/sidescroller/components"
	cfg "github.com/automoto/sidescroller/config"
	"github.com/quasilyte/gdata"
)

// itemStore is the part of *gdata.Manager the settings need.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var settingsStore itemStore

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	if !cfg.Settings.Persist {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	settingsStore = m
	return nil
}

// LoadSettings loads settings from disk. Nil means nothing was saved yet.
func LoadSettings() (*components.SavedSettings, error) {
	if settingsStore == nil {
		return nil, nil
	}

	data, err := settingsStore.LoadItem(cfg.Settings.ItemKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings components.SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *components.SavedSettings) error {
	if settingsStore == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := settingsStore.SaveItem(cfg.Settings.ItemKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings snapshots the overlay flags. settings may be nil.
func CurrentSettings(m *components.MapData, settings *components.SettingsData) *components.SavedSettings {
	saved := &components.SavedSettings{
		DrawBounds: m.DrawBounds.Get(),
		DrawFPS:    m.DrawFPS.Get(),
		DrawGrid:   m.DrawGrid.Get(),
	}
	if settings != nil {
		saved.ShowPanel = settings.ShowPanel.Get()
	}
	return saved
}

// ApplySavedSettings copies loaded preferences onto the flags.
func ApplySavedSettings(m *components.MapData, settings *components.SettingsData, saved *components.SavedSettings) {
	if saved == nil {
		return
	}
	m.DrawBounds.Set(saved.DrawBounds)
	m.DrawFPS.Set(saved.DrawFPS)
	m.DrawGrid.Set(saved.DrawGrid)
	if settings != nil && settings.ShowPanel != nil {
		settings.ShowPanel.Set(saved.ShowPanel)
	}
}

// BindSettings saves the preferences whenever one of the flags changes.
func BindSettings(m *components.MapData, settings *components.SettingsData) {
	save := func(bool) {
		_ = SaveSettings(CurrentSettings(m, settings))
	}
	m.DrawBounds.Subscribe(save)
	m.DrawFPS.Subscribe(save)
	m.DrawGrid.Subscribe(save)
	if settings != nil && settings.ShowPanel != nil {
		settings.ShowPanel.Subscribe(save)
	}
}
