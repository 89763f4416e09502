package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData stores the window preferences that survive restarts.
type SettingsData struct {
	Fullscreen bool
	Dirty      bool // changed since the last save
}

var Settings = donburi.NewComponentType[SettingsData]()
