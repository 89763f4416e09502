package components

import (
	"github.com/automoto/landing/timeline"
	"github.com/charmbracelet/harmonica"
	"github.com/yohamta/donburi"
)

// Spring is a harmonica spring with its position, velocity and target.
type Spring struct {
	Spring   harmonica.Spring
	Pos, Vel float64
	Target   float64
}

// Update steps the spring one frame toward its target.
func (s *Spring) Update() {
	s.Pos, s.Vel = s.Spring.Update(s.Pos, s.Vel, s.Target)
}

// EntranceItem is one element that rises into place after the intro reveal.
type EntranceItem struct {
	Offset  Spring // pixels below the rest position
	Started bool
}

// Alpha is the element opacity derived from how far it still has to rise.
func (e *EntranceItem) Alpha(rise float64) float64 {
	if !e.Started {
		return 0
	}
	if rise <= 0 {
		return 1
	}
	a := 1 - e.Offset.Pos/rise
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}

// Entrance element order
const (
	EntranceHeadline = iota
	EntranceCTA
	EntranceFooter
	EntranceCount
)

type EntranceData struct {
	Items  [EntranceCount]EntranceItem
	Armed  bool
	Timers *timeline.Group // staggered starts, closed on unmount
}

var Entrance = donburi.NewComponentType[EntranceData]()
