package components

import (
	"github.com/automoto/landing/waitlist"
	"github.com/yohamta/donburi"
)

// WaitlistData stores the modal form and whether this install already joined.
type WaitlistData struct {
	Form      *waitlist.Form
	Returning bool
}

var Waitlist = donburi.NewComponentType[WaitlistData]()
