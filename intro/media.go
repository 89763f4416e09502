// Package intro sequences the opening of the page: a logo, then a short clip,
// then a four-panel curtain that wipes away to reveal the content.
package intro

import (
	"errors"
	"time"
)

var (
	// ErrPlaybackRefused is returned by Play when the host does not allow
	// playback without a user gesture.
	ErrPlaybackRefused = errors.New("intro: playback refused without user gesture")
	// ErrNotLoaded is returned by Play before the media has loaded.
	ErrNotLoaded = errors.New("intro: media not loaded")
)

// Event is a playback signal emitted by Media.
type Event int

const (
	EventLoaded Event = iota
	EventPlay
	EventPause
	EventEnded
	EventError
)

func (e Event) String() string {
	switch e {
	case EventLoaded:
		return "loaded"
	case EventPlay:
		return "play"
	case EventPause:
		return "pause"
	case EventEnded:
		return "ended"
	case EventError:
		return "error"
	}
	return "unknown"
}

// Listener receives media events. err is set for EventError only.
type Listener func(ev Event, err error)

// Media is the playable clip behind the logo.
type Media interface {
	Loaded() bool
	Failed() bool
	Playing() bool
	// Duration is the clip length, zero while unknown.
	Duration() time.Duration
	// Play starts or resumes playback. gesture reports whether the request
	// comes straight from a user click.
	Play(gesture bool) error
	Pause()
	Update(dt time.Duration)
	SetListener(fn Listener)
}
