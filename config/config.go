package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers, drawn in order.
const (
	LayerGrid ecs.LayerID = iota
	LayerContent
	LayerIntro
	LayerModal
)

// GridConfig contains background grid configuration
type GridConfig struct {
	CellSize        int
	ColorTransition time.Duration // eased colour change between styles
	HoverOpacity    float64
	CellInset       float32 // gap drawn between cells
}

// RippleConfig contains click ripple timings
type RippleConfig struct {
	StepDelay     time.Duration // per unit of Manhattan distance
	PulseDuration time.Duration
	Waves         int
	WaveSpacing   time.Duration
	PulseOpacity  float64
	PulseScale    float64
}

// TypewriterConfig contains tagline typing timings
type TypewriterConfig struct {
	TypeInterval   time.Duration
	DeleteInterval time.Duration
	HoldFull       time.Duration
	HoldEmpty      time.Duration
	CaretBlink     time.Duration
}

// RotatorManualPolicy mirrors tagline.ManualPolicy so config stays a leaf package.
type RotatorManualPolicy int

const (
	RotatorPausePermanently RotatorManualPolicy = iota
	RotatorRestartPeriod
	RotatorKeepRunning
)

// RotatorConfig contains the option rotator settings
type RotatorConfig struct {
	Period       time.Duration // 0 disables automatic rotation
	ManualPolicy RotatorManualPolicy
}

// IntroConfig contains logo/clip timings
type IntroConfig struct {
	AutoplayDelay time.Duration
	LogoFade      time.Duration
	WatchdogGrace time.Duration
	ClipFrameTime time.Duration
	ClipFrames    int // frames of the built-in clip
	Autoplay      bool
	Skip          bool
	ClipPath      string // sprite sheet; empty uses the built-in clip
	ClipFrameSize int    // square frame edge in the sprite sheet
}

// CurtainConfig contains the reveal wipe settings
type CurtainConfig struct {
	Duration time.Duration
	Feather  float64
	BandStep float64 // thickness of one feather band when drawing
}

// WaitlistConfig contains form submission settings
type WaitlistConfig struct {
	Endpoint   string
	Timeout    time.Duration
	CloseDelay time.Duration
}

// EntranceConfig contains the post-reveal entrance springs
type EntranceConfig struct {
	Rise      float64 // pixels each element rises from
	Delays    []time.Duration
	Frequency float64
	Damping   float64
}

// WindowConfig contains window and content source settings
type WindowConfig struct {
	Width        int
	Height       int
	Title        string
	ContentPath  string
	WatchContent bool
	AppName      string // persistence namespace
}

// PageConfig contains headline, button and footer placement
type PageConfig struct {
	HeadlineOffsetY   float64 // headline block centre relative to the viewport centre
	LineGap           float64
	ButtonPadX        float64
	ButtonPadY        float64
	ChevronSize       float64
	ChevronFrequency  float64
	ChevronDamping    float64
	DropdownRowHeight float64
	DropdownMinWidth  float64
	CTAPadX           float64
	CTAPadY           float64
	CTAGap            float64
	FooterGap         float64
	CaretWidth        float64
}

// ColorConfig contains fixed UI colours
type ColorConfig struct {
	Background  color.RGBA
	Text        color.RGBA
	MutedText   color.RGBA
	Button      color.RGBA
	ButtonHover color.RGBA
	ButtonText  color.RGBA
	Curtain     color.RGBA
	Overlay     color.RGBA
	Panel       color.RGBA
	GridLine    color.RGBA
	Dropdown    color.RGBA
	Error       color.RGBA
	Success     color.RGBA
}

// Global configuration instances
var (
	Grid       GridConfig
	Ripple     RippleConfig
	Typewriter TypewriterConfig
	Rotator    RotatorConfig
	Intro      IntroConfig
	Curtain    CurtainConfig
	Waitlist   WaitlistConfig
	Entrance   EntranceConfig
	Window     WindowConfig
	Page       PageConfig
	Colors     ColorConfig
)

var (
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black = color.RGBA{A: 255}
)

func init() {
	Grid = GridConfig{
		CellSize:        50,
		ColorTransition: 300 * time.Millisecond,
		HoverOpacity:    0.8,
		CellInset:       0.5,
	}

	Ripple = RippleConfig{
		StepDelay:     50 * time.Millisecond,
		PulseDuration: 600 * time.Millisecond,
		Waves:         3,
		WaveSpacing:   90 * time.Millisecond,
		PulseOpacity:  0.85,
		PulseScale:    0.92,
	}

	Typewriter = TypewriterConfig{
		TypeInterval:   100 * time.Millisecond,
		DeleteInterval: 50 * time.Millisecond,
		HoldFull:       1500 * time.Millisecond,
		HoldEmpty:      200 * time.Millisecond,
		CaretBlink:     500 * time.Millisecond,
	}

	Rotator = RotatorConfig{
		Period:       6 * time.Second,
		ManualPolicy: RotatorPausePermanently,
	}

	Intro = IntroConfig{
		AutoplayDelay: 3 * time.Second,
		LogoFade:      400 * time.Millisecond,
		WatchdogGrace: 2 * time.Second,
		ClipFrameTime: time.Second / 24,
		ClipFrames:    72,
		Autoplay:      true,
		ClipFrameSize: 256,
	}

	Curtain = CurtainConfig{
		Duration: 1500 * time.Millisecond,
		Feather:  50,
		BandStep: 2,
	}

	Waitlist = WaitlistConfig{
		Endpoint:   "https://script.google.com/macros/s/AKfycbzXo9gEGJLd5YuniH4hpC-Shi-9UCCbl6B5hSD4E7_Qw9_VfEztV3y1pg4tJ4xjID1COw/exec",
		Timeout:    10 * time.Second,
		CloseDelay: 2 * time.Second,
	}

	Entrance = EntranceConfig{
		Rise:      30,
		Delays:    []time.Duration{200 * time.Millisecond, 400 * time.Millisecond, 600 * time.Millisecond},
		Frequency: 4.0,
		Damping:   1.0,
	}

	Window = WindowConfig{
		Width:   1280,
		Height:  720,
		Title:   "Community",
		AppName: "community-landing",
	}

	Page = PageConfig{
		HeadlineOffsetY:   -60,
		LineGap:           10,
		ButtonPadX:        18,
		ButtonPadY:        6,
		ChevronSize:       8,
		ChevronFrequency:  8,
		ChevronDamping:    0.7,
		DropdownRowHeight: 44,
		DropdownMinWidth:  220,
		CTAPadX:           32,
		CTAPadY:           14,
		CTAGap:            56,
		FooterGap:         28,
		CaretWidth:        3,
	}

	Colors = ColorConfig{
		Background:  White,
		Text:        Black,
		MutedText:   color.RGBA{R: 75, G: 85, B: 99, A: 255},
		Button:      Black,
		ButtonHover: color.RGBA{R: 31, G: 41, B: 55, A: 255},
		ButtonText:  White,
		Curtain:     White,
		Overlay:     color.RGBA{A: 128},
		Panel:       White,
		GridLine:    color.RGBA{R: 229, G: 231, B: 235, A: 255},
		Dropdown:    color.RGBA{R: 243, G: 244, B: 246, A: 255},
		Error:       color.RGBA{R: 220, G: 38, B: 38, A: 255},
		Success:     color.RGBA{R: 22, G: 163, B: 74, A: 255},
	}
}
