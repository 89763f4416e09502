package components

import (
	cfg "github.com/automoto/landing/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions
// plus the pointer. JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool

	CursorX, CursorY float64
	Clicked          bool // primary button went down this frame
	Consumed         bool // a system already handled this frame's click
	Hovering         string
}

var Input = donburi.NewComponentType[InputData]()
