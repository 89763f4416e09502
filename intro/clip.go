package intro

import (
	"fmt"
	"time"
)

// Clip is a frame-sequence Media. Frames advance on elapsed time and the clip
// stops on its last frame, emitting EventEnded once.
type Clip struct {
	First int
	Last  int
	// FrameDuration is how long each frame stays on screen.
	FrameDuration time.Duration
	// AllowAutoplay lets Play succeed without a user gesture.
	AllowAutoplay bool

	frame    int
	elapsed  time.Duration
	loaded   bool
	playing  bool
	ended    bool
	err      error
	listener Listener
}

// NewClip returns an unloaded clip. Call Load once the frames are available.
func NewClip(frameDuration time.Duration, allowAutoplay bool) *Clip {
	if frameDuration <= 0 {
		frameDuration = time.Second / 24
	}
	return &Clip{FrameDuration: frameDuration, AllowAutoplay: allowAutoplay}
}

// SetListener registers the single event listener.
func (c *Clip) SetListener(fn Listener) {
	c.listener = fn
}

func (c *Clip) emit(ev Event, err error) {
	if c.listener != nil {
		c.listener(ev, err)
	}
}

// Load marks the clip ready with frames frames.
func (c *Clip) Load(frames int) {
	if c.loaded || c.err != nil {
		return
	}
	if frames <= 0 {
		c.Fail(fmt.Errorf("clip has %d frames", frames))
		return
	}
	c.First = 0
	c.Last = frames - 1
	c.frame = 0
	c.loaded = true
	c.emit(EventLoaded, nil)
}

// Fail records a load or decode failure.
func (c *Clip) Fail(err error) {
	if c.err != nil {
		return
	}
	c.err = err
	c.playing = false
	c.emit(EventError, err)
}

func (c *Clip) Loaded() bool  { return c.loaded && c.err == nil }
func (c *Clip) Failed() bool  { return c.err != nil }
func (c *Clip) Playing() bool { return c.playing }
func (c *Clip) Ended() bool   { return c.ended }
func (c *Clip) Err() error    { return c.err }

// Duration returns the length of the loaded clip.
func (c *Clip) Duration() time.Duration {
	if !c.loaded {
		return 0
	}
	return time.Duration(c.Last-c.First+1) * c.FrameDuration
}

// Play starts playback. An ended clip restarts from the first frame.
func (c *Clip) Play(gesture bool) error {
	switch {
	case c.err != nil:
		return c.err
	case !c.loaded:
		return ErrNotLoaded
	case !gesture && !c.AllowAutoplay:
		return ErrPlaybackRefused
	case c.playing:
		return nil
	}
	if c.ended {
		c.Restart()
	}
	c.playing = true
	c.emit(EventPlay, nil)
	return nil
}

// Pause halts playback on the current frame.
func (c *Clip) Pause() {
	if !c.playing {
		return
	}
	c.playing = false
	c.emit(EventPause, nil)
}

// Update advances the playhead by dt.
func (c *Clip) Update(dt time.Duration) {
	if !c.playing {
		return
	}
	c.elapsed += dt
	for c.elapsed >= c.FrameDuration {
		c.elapsed -= c.FrameDuration
		c.frame++
		if c.frame > c.Last {
			c.frame = c.Last
			c.playing = false
			c.ended = true
			c.emit(EventEnded, nil)
			return
		}
	}
}

// Frame returns the frame to draw.
func (c *Clip) Frame() int {
	return c.frame
}

// Restart rewinds to the first frame.
func (c *Clip) Restart() {
	c.frame = c.First
	c.elapsed = 0
	c.ended = false
}
