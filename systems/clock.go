package systems

import (
	"time"

	"github.com/automoto/landing/components"
	"github.com/automoto/landing/timeline"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// UpdateClock advances the page scheduler by the wall time elapsed since the
// previous tick. Must run FIRST so every other system sees this tick's time.
func UpdateClock(e *ecs.ECS) {
	clock := getOrCreateClock(e)
	now := timeNow()
	if clock.Last.IsZero() {
		clock.Delta = time.Second / time.Duration(ebiten.TPS())
	} else {
		clock.Delta = now.Sub(clock.Last)
	}
	if clock.Delta < 0 {
		clock.Delta = 0
	}
	clock.Last = now
	clock.Scheduler.Advance(clock.Delta)
}

func getOrCreateClock(e *ecs.ECS) *components.ClockData {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Clock))
	}
	clock := components.Clock.Get(entry)
	if clock.Scheduler == nil {
		clock.Scheduler = timeline.NewScheduler()
	}
	return clock
}

// Scheduler returns the page scheduler, creating the clock if needed.
func Scheduler(e *ecs.ECS) *timeline.Scheduler {
	return getOrCreateClock(e).Scheduler
}

// frameDelta is the elapsed time applied by the current tick.
func frameDelta(e *ecs.ECS) time.Duration {
	return getOrCreateClock(e).Delta
}
