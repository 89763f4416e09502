package components

import (
	"time"

	"github.com/automoto/landing/timeline"
	"github.com/yohamta/donburi"
)

// ClockData drives every page timer from elapsed wall time.
type ClockData struct {
	Scheduler *timeline.Scheduler
	Last      time.Time
	Delta     time.Duration // elapsed time applied this tick
}

var Clock = donburi.NewComponentType[ClockData]()
