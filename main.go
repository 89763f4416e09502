package main

import (
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/automoto/landing/config"
	"github.com/automoto/landing/fonts"
	"github.com/automoto/landing/scenes"
	"github.com/automoto/landing/systems"
	"github.com/automoto/landing/waitlist"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

// ViewportScene receives the window size every frame.
type ViewportScene interface {
	SetViewport(width, height int)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(opts scenes.Options) *Game {
	g := &Game{}
	g.scene = scenes.NewLandingScene(g, opts)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

// Layout follows the window: the page is laid out in window pixels.
func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, width, height)
	if vs, ok := g.scene.(ViewportScene); ok {
		vs.SetViewport(width, height)
	}
	return width, height
}

func newRootCmd() *cobra.Command {
	var (
		contentPath string
		watch       bool
		endpoint    string
		clipPath    string
		noAutoplay  bool
		skipIntro   bool
		width       int
		height      int
		size        string
	)

	cmd := &cobra.Command{
		Use:   "landing",
		Short: "Animated community landing page",
		Long: `Open the community landing page in a window.

The page plays a short intro, wipes it away with a feathered curtain and shows
a rippling grid behind a typewriter tagline and a waitlist form.

Examples:
  landing
  landing --content page.yaml --watch
  landing --clip intro.png --size "1600x900"
  landing --skip-intro --endpoint http://localhost:8080/join`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size != "" {
				res, ok := config.ResolutionByLabel(size)
				if !ok {
					return fmt.Errorf("unknown size %q", size)
				}
				width, height = res.Width, res.Height
			}
			if width <= 0 || height <= 0 {
				return errors.New("window size must be positive")
			}
			config.Window.Width, config.Window.Height = width, height
			config.Window.ContentPath = contentPath
			config.Window.WatchContent = watch
			config.Waitlist.Endpoint = endpoint
			config.Intro.ClipPath = clipPath
			config.Intro.Autoplay = !noAutoplay
			config.Intro.Skip = skipIntro
			return run(cmd.Flags().Changed("width") || cmd.Flags().Changed("height") || size != "")
		},
	}

	cmd.Flags().StringVar(&contentPath, "content", "", "YAML file overriding the built-in page content")
	cmd.Flags().BoolVar(&watch, "watch", false, "reload --content when the file changes")
	cmd.Flags().StringVar(&endpoint, "endpoint", config.Waitlist.Endpoint, "URL the waitlist form posts to")
	cmd.Flags().StringVar(&clipPath, "clip", "", "sprite sheet PNG for the intro clip (built-in clip when empty)")
	cmd.Flags().BoolVar(&noAutoplay, "no-autoplay", false, "refuse unattended playback, as a strict host would")
	cmd.Flags().BoolVar(&skipIntro, "skip-intro", false, "start on the revealed page")
	cmd.Flags().IntVar(&width, "width", config.Window.Width, "initial window width")
	cmd.Flags().IntVar(&height, "height", config.Window.Height, "initial window height")
	cmd.Flags().StringVar(&size, "size", "", `window size preset, e.g. "1600x900"`)

	return cmd
}

func run(sizeFromFlags bool) error {
	if err := fonts.LoadDefaults(); err != nil {
		return err
	}

	content, err := config.LoadContent(config.Window.ContentPath)
	if err != nil {
		return err
	}

	var watcher *config.ContentWatcher
	if config.Window.WatchContent {
		if config.Window.ContentPath == "" {
			return errors.New("--watch needs --content")
		}
		watcher, err = config.WatchContent(config.Window.ContentPath)
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(config.Window.AppName); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err == nil && saved != nil {
		if sizeFromFlags {
			saved.ResolutionIndex = -1
		}
		systems.ApplySavedSettingsGlobal(saved)
	}

	opts := scenes.Options{
		Content:   content,
		Watcher:   watcher,
		Submitter: waitlist.NewHTTPSubmitter(config.Waitlist.Endpoint, config.Waitlist.Timeout),
	}
	return ebiten.RunGame(NewGame(opts))
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
