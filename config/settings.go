package config

// SettingsConfig controls where overlay preferences are stored.
type SettingsConfig struct {
	AppName string
	ItemKey string
	Persist bool
}

// Settings is the global preference storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "sidescroller",
		ItemKey: "overlays",
		Persist: true,
	}
}
