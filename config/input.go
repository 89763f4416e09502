package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical page action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionSelect
	ActionBack
	ActionRestart
	ActionFullscreen
	ActionSkipIntro
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys bound to an action
type InputBinding struct {
	Keys []ebiten.Key
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionSelect: {
				Keys: []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter},
			},
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
			},
			ActionRestart: {
				// Remounts the page, restarting every animation
				Keys: []ebiten.Key{ebiten.KeyF5},
			},
			ActionFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
			ActionSkipIntro: {
				Keys: []ebiten.Key{ebiten.KeySpace},
			},
		},
	}
}
