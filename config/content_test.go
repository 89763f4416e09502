package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultContent(t *testing.T) {
	c, err := DefaultContent()
	if err != nil {
		t.Fatalf("DefaultContent: %v", err)
	}
	if len(c.PaletteColors) != 21 {
		t.Errorf("palette has %d colours, want 21", len(c.PaletteColors))
	}
	if len(c.Phrases) != 11 || c.Phrases[0].Text != "community" || c.Phrases[10].Text != "cult" {
		t.Errorf("unexpected phrases: %+v", c.PhraseTexts())
	}
	for i, g := range c.Gradients {
		if len(g) != 3 {
			t.Errorf("phrase %d gradient has %d stops", i, len(g))
		}
	}
	if c.BackgroundColor != White {
		t.Errorf("background = %v", c.BackgroundColor)
	}
	if c.CTA != "Join Waitlist" || c.Form.HandlePlaceholder != "@yourhandle" {
		t.Errorf("copy not loaded: %q %q", c.CTA, c.Form.HandlePlaceholder)
	}
}

func TestParseContentErrors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr error
	}{
		{"no palette", "phrases: [{text: a}]", ErrNoPalette},
		{"no phrases", "palette: ['#ffffff']", ErrNoPhrases},
		{"bad colour", "palette: ['#zzz']\nphrases: [{text: a}]", nil},
		{"empty phrase", "palette: ['#ffffff']\nphrases: [{text: ''}]", nil},
		{"not yaml", "palette: [", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseContent([]byte(tt.doc))
			if err == nil {
				t.Fatal("ParseContent succeeded")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func writeContent(t *testing.T, dir, doc string) string {
	t.Helper()
	path := filepath.Join(dir, "content.yaml")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadContentOverridesDefaults(t *testing.T) {
	path := writeContent(t, t.TempDir(), "cta: Sign up\nphrases:\n  - text: guild\n")
	c, err := LoadContent(path)
	if err != nil {
		t.Fatalf("LoadContent: %v", err)
	}
	if c.CTA != "Sign up" {
		t.Errorf("CTA = %q", c.CTA)
	}
	if got := c.PhraseTexts(); len(got) != 1 || got[0] != "guild" {
		t.Errorf("phrases = %v, want [guild]", got)
	}
	if len(c.PaletteColors) != 21 || c.Footer != "Coming Fall 2025" {
		t.Error("unset keys lost their defaults")
	}
	if len(c.Gradients[0]) != 1 || c.Gradients[0][0] != Black {
		t.Errorf("phrase without gradient = %v", c.Gradients[0])
	}
}

func TestLoadContentMissingFile(t *testing.T) {
	_, err := LoadContent(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("err = %v, want os.ErrNotExist", err)
	}
}

func TestContentWatcherReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeContent(t, dir, "cta: first\n")
	w, err := WatchContent(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	writeContent(t, dir, "cta: second\n")

	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if c := w.Take(); c != nil {
			if c.CTA != "second" {
				t.Fatalf("reloaded CTA = %q", c.CTA)
			}
			if w.Take() != nil {
				t.Error("Take returned the same document twice")
			}
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("no reload observed")
}

func TestContentWatcherKeepsLastGoodOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeContent(t, dir, "cta: first\n")
	w, err := WatchContent(path)
	if err != nil {
		t.Skipf("fsnotify unavailable: %v", err)
	}
	defer w.Close()

	writeContent(t, dir, "palette: []\n")
	deadline := time.Now().Add(5 * time.Second)
	for w.Err() == nil && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if !errors.Is(w.Err(), ErrNoPalette) {
		t.Errorf("Err() = %v, want ErrNoPalette", w.Err())
	}
	if w.Take() != nil {
		t.Error("invalid document handed over")
	}
}

func TestResolutionByLabel(t *testing.T) {
	r, ok := ResolutionByLabel("1600x900")
	if !ok || r.Width != 1600 || r.Height != 900 {
		t.Errorf("ResolutionByLabel(1600x900) = %+v, %v", r, ok)
	}
	if _, ok := ResolutionByLabel("1x1"); ok {
		t.Error("unknown label matched")
	}
}
