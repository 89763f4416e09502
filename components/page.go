package components

import (
	cfg "github.com/automoto/landing/config"
	"github.com/yohamta/donburi"
)

// PageData stores the active content and where each piece is drawn this frame.
type PageData struct {
	Content *cfg.Content
	Watcher *cfg.ContentWatcher

	Headline1Y, Headline2Y float64
	LeadX                  float64
	Button                 Rect // rotator button
	Dropdown               []Rect
	MiddleX, PhraseX       float64
	CTA                    Rect
	FooterY                float64
}

// Rect is an axis-aligned screen rectangle.
type Rect struct {
	X, Y, W, H float64
}

var Page = donburi.NewComponentType[PageData]()
