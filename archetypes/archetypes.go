package archetypes

import (
	"github.com/automoto/landing/components"
	cfg "github.com/automoto/landing/config"
	"github.com/automoto/landing/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Page = newArchetype(
		cfg.LayerContent,
		tags.Page,
		components.Page,
		components.Viewport,
		components.Clock,
		components.Input,
		components.HitSpace,
		components.Settings,
	)
	Grid = newArchetype(
		cfg.LayerGrid,
		tags.Grid,
		components.Grid,
	)
	Intro = newArchetype(
		cfg.LayerIntro,
		tags.Intro,
		components.Intro,
	)
	Tagline = newArchetype(
		cfg.LayerContent,
		tags.Tagline,
		components.Tagline,
		components.Entrance,
	)
	Waitlist = newArchetype(
		cfg.LayerModal,
		tags.Waitlist,
		components.Waitlist,
	)
)

type archetype struct {
	layer      ecs.LayerID
	components []donburi.IComponentType
}

func newArchetype(layer ecs.LayerID, cs ...donburi.IComponentType) *archetype {
	return &archetype{
		layer:      layer,
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		a.layer,
		append(a.components, cs...)...,
	))
	return e
}
