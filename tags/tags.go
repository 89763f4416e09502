package tags

import "github.com/yohamta/donburi"

var (
	Page     = donburi.NewTag().SetName("Page")
	Grid     = donburi.NewTag().SetName("Grid")
	Intro    = donburi.NewTag().SetName("Intro")
	Tagline  = donburi.NewTag().SetName("Tagline")
	Waitlist = donburi.NewTag().SetName("Waitlist")
)

// Resolv tags for pointer hit regions
const (
	ResolvProbe   = "probe"
	ResolvIntro   = "intro"
	ResolvRotator = "rotator"
	ResolvOption  = "option"
	ResolvCTA     = "cta"
)
