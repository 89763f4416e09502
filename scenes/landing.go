package scenes

import (
	"image/color"
	"log"
	"sync"
	"time"

	"github.com/automoto/landing/archetypes"
	"github.com/automoto/landing/assets"
	"github.com/automoto/landing/components"
	cfg "github.com/automoto/landing/config"
	"github.com/automoto/landing/grid"
	"github.com/automoto/landing/intro"
	"github.com/automoto/landing/palette"
	"github.com/automoto/landing/systems"
	"github.com/automoto/landing/tagline"
	"github.com/automoto/landing/timeline"
	"github.com/automoto/landing/ui"
	"github.com/automoto/landing/waitlist"
	"github.com/charmbracelet/harmonica"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Options carries what outlives a single mount of the page.
type Options struct {
	Content   *cfg.Content
	Watcher   *cfg.ContentWatcher
	Submitter waitlist.Submitter
}

// LandingScene is the whole page: ripple grid, headline, CTA, the intro
// overlay on top and the waitlist modal above everything.
type LandingScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	opts         Options
	once         sync.Once

	waitlistUI    *ui.WaitlistUI
	width, height int
	closed        bool
	closers       []func()
}

// NewLandingScene creates a new landing scene
func NewLandingScene(sc SceneChanger, opts Options) *LandingScene {
	return &LandingScene{sceneChanger: sc, opts: opts}
}

func (s *LandingScene) Update() {
	s.once.Do(s.configure)
	s.ecs.Update()
	if s.closed {
		return
	}
	if systems.IsModalOpen(s.ecs) {
		s.waitlistUI.Update()
	} else {
		s.waitlistUI.Sync()
	}
}

func (s *LandingScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background())
	if s.ecs == nil {
		return
	}
	s.ecs.Draw(screen)
	if systems.IsModalOpen(s.ecs) {
		s.waitlistUI.Draw(screen)
	}
}

// SetViewport receives the outside size from Game.Layout.
func (s *LandingScene) SetViewport(width, height int) {
	s.width, s.height = width, height
	if s.ecs != nil {
		systems.SetViewportSize(s.ecs, width, height)
	}
}

func (s *LandingScene) background() color.Color {
	if s.ecs != nil {
		if page, ok := components.Page.First(s.ecs.World); ok {
			if c := components.Page.Get(page).Content; c != nil {
				return c.BackgroundColor
			}
		}
	}
	if s.opts.Content != nil {
		return s.opts.Content.BackgroundColor
	}
	return cfg.Colors.Background
}

func (s *LandingScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())
	content := s.opts.Content

	page := archetypes.Page.Spawn(s.ecs)
	components.Page.Set(page, &components.PageData{Content: content, Watcher: s.opts.Watcher})
	components.Viewport.Set(page, &components.ViewportData{PendingWidth: s.width, PendingHeight: s.height})
	components.HitSpace.Set(page, &components.HitSpaceData{Regions: map[string]*resolv.Object{}})
	components.Settings.Set(page, &components.SettingsData{Fullscreen: ebiten.IsFullscreen()})
	sched := systems.Scheduler(s.ecs)

	s.spawnGrid(sched, content)
	s.spawnIntro(sched)
	s.spawnTagline(sched, content)
	s.spawnWaitlist(sched, content)
	systems.ArmEntrance(s.ecs)
	s.closers = append(s.closers, func() { systems.ReleaseEntrance(s.ecs) })

	s.ecs.AddSystem(systems.UpdateClock)
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.UpdateViewport)
	s.ecs.AddSystem(systems.UpdateContent)
	s.ecs.AddSystem(systems.UpdatePageLayout)
	s.ecs.AddSystem(systems.UpdateWaitlist)
	s.ecs.AddSystem(systems.UpdateIntro)
	s.ecs.AddSystem(systems.UpdateTagline)
	s.ecs.AddSystem(systems.UpdateCTA)
	s.ecs.AddSystem(systems.UpdateGrid)
	s.ecs.AddSystem(systems.UpdateEntrance)
	s.ecs.AddSystem(systems.UpdateSettings)
	s.ecs.AddSystem(systems.UpdateCursor)
	s.ecs.AddSystem(systems.NewUpdateRestart(s.restart))

	// Renderers (the tagline draws after the CTA so its dropdown overlaps it)
	s.ecs.AddRenderer(cfg.LayerGrid, systems.DrawGrid)
	s.ecs.AddRenderer(cfg.LayerContent, systems.DrawCTA)
	s.ecs.AddRenderer(cfg.LayerContent, systems.DrawTagline)
	s.ecs.AddRenderer(cfg.LayerIntro, systems.DrawIntro)
}

func (s *LandingScene) spawnGrid(sched *timeline.Scheduler, content *cfg.Content) {
	picker, err := palette.NewPicker(content.PaletteColors, nil)
	if err != nil {
		log.Printf("Warning: %v, ripples use the text colour", err)
		picker, _ = palette.NewPicker([]color.RGBA{cfg.Colors.Text}, nil)
	}
	layout := grid.NewLayout(cfg.Grid.CellSize, content.BackgroundColor)
	ripple := grid.NewRipple(layout, sched, picker, grid.RippleConfig{
		StepDelay:     cfg.Ripple.StepDelay,
		PulseDuration: cfg.Ripple.PulseDuration,
		Waves:         cfg.Ripple.Waves,
		WaveSpacing:   cfg.Ripple.WaveSpacing,
		PulseOpacity:  cfg.Ripple.PulseOpacity,
		PulseScale:    cfg.Ripple.PulseScale,
	})
	s.closers = append(s.closers, ripple.Close)

	entry := archetypes.Grid.Spawn(s.ecs)
	components.Grid.Set(entry, &components.GridData{Layout: layout, Ripple: ripple, Picker: picker})
}

func (s *LandingScene) spawnIntro(sched *timeline.Scheduler) {
	clip := intro.NewClip(cfg.Intro.ClipFrameTime, cfg.Intro.Autoplay)
	data := &components.IntroData{Clip: clip}
	if cfg.Intro.ClipPath != "" {
		data.Loader = assets.LoadClipAsync(cfg.Intro.ClipPath, cfg.Intro.ClipFrameSize)
	} else {
		clip.Load(cfg.Intro.ClipFrames)
	}

	seq := intro.NewSequencer(sched, clip, intro.Config{
		AutoplayDelay:   cfg.Intro.AutoplayDelay,
		LogoFade:        cfg.Intro.LogoFade,
		WatchdogGrace:   cfg.Intro.WatchdogGrace,
		CurtainDuration: cfg.Curtain.Duration,
		Feather:         cfg.Curtain.Feather,
	})
	seq.Resize(float64(s.width), float64(s.height))
	data.Sequencer = seq
	s.closers = append(s.closers, seq.Close)

	entry := archetypes.Intro.Spawn(s.ecs)
	components.Intro.Set(entry, data)

	seq.Start()
	if cfg.Intro.Skip {
		seq.Skip()
	}
}

func (s *LandingScene) spawnTagline(sched *timeline.Scheduler, content *cfg.Content) {
	tw, err := tagline.NewTypewriter(sched, tagline.TypewriterConfig{
		TypeInterval:   cfg.Typewriter.TypeInterval,
		DeleteInterval: cfg.Typewriter.DeleteInterval,
		HoldFull:       cfg.Typewriter.HoldFull,
		HoldEmpty:      cfg.Typewriter.HoldEmpty,
		CaretBlink:     cfg.Typewriter.CaretBlink,
	}, content.PhraseTexts())
	if err != nil {
		// Content is validated before the scene is built
		log.Fatalf("typewriter: %v", err)
	}
	rot := tagline.NewRotator(sched, tagline.RotatorConfig{
		Period: cfg.Rotator.Period,
		Policy: tagline.ManualPolicy(cfg.Rotator.ManualPolicy),
	})
	s.closers = append(s.closers, tw.Close, rot.Close)

	entry := archetypes.Tagline.Spawn(s.ecs)
	components.Tagline.Set(entry, &components.TaglineData{
		Typewriter: tw,
		Rotator:    rot,
		Gradients:  content.Gradients,
		Chevron: components.Spring{
			Spring: harmonica.NewSpring(harmonica.FPS(ebiten.TPS()), cfg.Page.ChevronFrequency, cfg.Page.ChevronDamping),
		},
		HoverIndex: -1,
	})
	components.Entrance.Set(entry, &components.EntranceData{})

	tw.Start()
	rot.Start()
}

func (s *LandingScene) spawnWaitlist(sched *timeline.Scheduler, content *cfg.Content) {
	form := waitlist.NewForm(sched, s.opts.Submitter, waitlist.FormConfig{
		CloseDelay: cfg.Waitlist.CloseDelay,
		Timeout:    cfg.Waitlist.Timeout,
	})
	s.closers = append(s.closers, form.Release)

	receipt, _ := systems.LoadReceipt()
	entry := archetypes.Waitlist.Spawn(s.ecs)
	components.Waitlist.Set(entry, &components.WaitlistData{Form: form, Returning: receipt != nil})
	s.waitlistUI = ui.NewWaitlistUI(form, content.Form, receipt != nil)

	form.OnSubmitted = func(e waitlist.Entry) {
		if err := systems.SaveReceipt(e, time.Now()); err == nil {
			components.Waitlist.Get(entry).Returning = true
		}
		log.Printf("[waitlist] %s joined", e.Handle)
	}
	form.OnClosed = func() {
		s.waitlistUI.SetReturning(components.Waitlist.Get(entry).Returning)
	}
}

// restart tears the page down and mounts a fresh one with the latest content.
func (s *LandingScene) restart() {
	opts := s.opts
	if page, ok := components.Page.First(s.ecs.World); ok {
		opts.Content = components.Page.Get(page).Content
	}
	s.Close()

	next := NewLandingScene(s.sceneChanger, opts)
	next.SetViewport(s.width, s.height)
	s.sceneChanger.ChangeScene(next)
}

// Close releases every timer and in-flight submission of this mount.
func (s *LandingScene) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
	s.closers = nil
}
