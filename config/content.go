package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"

	"github.com/automoto/landing/palette"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultContent []byte

var (
	ErrNoPalette = errors.New("content: palette is empty")
	ErrNoPhrases = errors.New("content: no phrases")
)

// Phrase is one typewriter phrase and the gradient it is drawn with.
type Phrase struct {
	Text     string   `yaml:"text"`
	Gradient []string `yaml:"gradient"`
}

// Headline holds the fixed words around the rotator and the typewriter:
// "<lead> <option> <middle> <phrase>".
type Headline struct {
	Lead   string `yaml:"lead"`
	Middle string `yaml:"middle"`
}

// FormCopy holds the waitlist form texts.
type FormCopy struct {
	Title             string `yaml:"title"`
	Subtitle          string `yaml:"subtitle"`
	NameLabel         string `yaml:"name_label"`
	NamePlaceholder   string `yaml:"name_placeholder"`
	HandleLabel       string `yaml:"handle_label"`
	HandlePlaceholder string `yaml:"handle_placeholder"`
	EmailLabel        string `yaml:"email_label"`
	EmailPlaceholder  string `yaml:"email_placeholder"`
	Submit            string `yaml:"submit"`
	Submitting        string `yaml:"submitting"`
	SuccessTitle      string `yaml:"success_title"`
	SuccessBody       string `yaml:"success_body"`
	Returning         string `yaml:"returning"`
}

// Content is the page copy and colours.
type Content struct {
	Background string   `yaml:"background"`
	Palette    []string `yaml:"palette"`
	Logo       string   `yaml:"logo"`
	Headline   Headline `yaml:"headline"`
	Phrases    []Phrase `yaml:"phrases"`
	CTA        string   `yaml:"cta"`
	Footer     string   `yaml:"footer"`
	Form       FormCopy `yaml:"form"`

	// Parsed colours, filled by Validate.
	BackgroundColor color.RGBA     `yaml:"-"`
	PaletteColors   []color.RGBA   `yaml:"-"`
	Gradients       [][]color.RGBA `yaml:"-"`
}

// DefaultContent returns the embedded page content.
func DefaultContent() (*Content, error) {
	return ParseContent(defaultContent)
}

// LoadContent reads content from path. Fields missing from the file keep
// their embedded defaults. An empty path returns the defaults.
func LoadContent(path string) (*Content, error) {
	if path == "" {
		return DefaultContent()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := parseOver(defaultContent, data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// ParseContent decodes and validates a content document.
func ParseContent(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func parseOver(base, data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(base, &c); err != nil {
		return nil, fmt.Errorf("parse defaults: %w", err)
	}
	// Keys present in data replace the defaults; lists are replaced whole.
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the document and parses its colours.
func (c *Content) Validate() error {
	if len(c.Palette) == 0 {
		return ErrNoPalette
	}
	if len(c.Phrases) == 0 {
		return ErrNoPhrases
	}

	colors, err := palette.ParseAll(c.Palette)
	if err != nil {
		return fmt.Errorf("content palette: %w", err)
	}
	c.PaletteColors = colors

	c.BackgroundColor = White
	if c.Background != "" {
		bg, err := palette.ParseHex(c.Background)
		if err != nil {
			return fmt.Errorf("content background: %w", err)
		}
		c.BackgroundColor = bg
	}

	c.Gradients = make([][]color.RGBA, len(c.Phrases))
	for i, p := range c.Phrases {
		if p.Text == "" {
			return fmt.Errorf("content phrase %d: empty text", i)
		}
		stops, err := palette.ParseAll(p.Gradient)
		if err != nil {
			return fmt.Errorf("content phrase %q: %w", p.Text, err)
		}
		if len(stops) == 0 {
			stops = []color.RGBA{Black}
		}
		c.Gradients[i] = stops
	}
	return nil
}

// PhraseTexts returns the phrase strings in order.
func (c *Content) PhraseTexts() []string {
	out := make([]string, len(c.Phrases))
	for i, p := range c.Phrases {
		out[i] = p.Text
	}
	return out
}
