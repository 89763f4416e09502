package systems

import (
	"time"

	"github.com/automoto/landing/components"
	cfg "github.com/automoto/landing/config"
	"github.com/automoto/landing/timeline"
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// ArmEntrance schedules the staggered entrance of headline, CTA and footer
// for when the intro reveals the page. Calling it again is a no-op.
func ArmEntrance(e *ecs.ECS) {
	_, ent := getTagline(e)
	if ent == nil || ent.Armed {
		return
	}
	ent.Armed = true
	ent.Timers = timeline.NewGroup(Scheduler(e))

	start := func() {
		for i := 0; i < components.EntranceCount; i++ {
			i := i
			ent.Timers.After(entranceDelay(i), func() { startEntrance(e, i) })
		}
	}
	in := getIntro(e)
	if in == nil || in.Sequencer == nil {
		start()
		return
	}
	in.Sequencer.OnReveal(start)
}

// ReleaseEntrance cancels entrance starts that have not fired yet.
func ReleaseEntrance(e *ecs.ECS) {
	_, ent := getTagline(e)
	if ent == nil || ent.Timers == nil {
		return
	}
	ent.Timers.Close()
}

func entranceDelay(i int) time.Duration {
	delays := cfg.Entrance.Delays
	switch {
	case len(delays) == 0:
		return 0
	case i < len(delays):
		return delays[i]
	}
	return delays[len(delays)-1]
}

func startEntrance(e *ecs.ECS, i int) {
	_, ent := getTagline(e)
	if ent == nil {
		return
	}
	ent.Items[i] = components.EntranceItem{
		Started: true,
		Offset: components.Spring{
			Spring: harmonica.NewSpring(harmonica.FPS(ebiten.TPS()), cfg.Entrance.Frequency, cfg.Entrance.Damping),
			Pos:    cfg.Entrance.Rise,
		},
	}
}

// UpdateEntrance steps every started entrance spring toward rest.
func UpdateEntrance(e *ecs.ECS) {
	_, ent := getTagline(e)
	if ent == nil {
		return
	}
	for i := range ent.Items {
		if ent.Items[i].Started {
			ent.Items[i].Offset.Update()
		}
	}
}
