package config

// Resolution represents a window size preset
type Resolution struct {
	Width  int
	Height int
	Label  string
}

// SettingsConfig contains the persisted window preferences and their defaults
type SettingsConfig struct {
	Resolutions []Resolution
	Fullscreen  bool
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Resolutions: []Resolution{
			{Width: 1280, Height: 720, Label: "1280 x 720"},
			{Width: 1600, Height: 900, Label: "1600 x 900"},
			{Width: 1920, Height: 1080, Label: "1920 x 1080"},
			{Width: 2560, Height: 1440, Label: "2560 x 1440"},
		},
	}
}

// ResolutionByLabel returns the preset named label, e.g. "1600x900" or
// "1600 x 900".
func ResolutionByLabel(label string) (Resolution, bool) {
	for _, r := range Settings.Resolutions {
		if r.Label == label || compact(r.Label) == compact(label) {
			return r, true
		}
	}
	return Resolution{}, false
}

func compact(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' {
			out = append(out, s[i])
		}
	}
	return string(out)
}
