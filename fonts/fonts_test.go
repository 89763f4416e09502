package fonts

import (
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestLoadDefaults(t *testing.T) {
	if err := LoadDefaults(); err != nil {
		t.Fatalf("LoadDefaults: %v", err)
	}
	for _, name := range []FontName{Headline, HeadlineBold, Logo, Body, BodyBold, Small} {
		if name.Get() == nil {
			t.Errorf("%s: nil face", name)
		}
	}
	if Headline.Get().Metrics().Height <= Small.Get().Metrics().Height {
		t.Error("headline face should be taller than the small face")
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	if err := LoadFont("broken", []byte("not a font")); err == nil {
		t.Fatal("expected parse error")
	}
	if err := LoadFont("ok", goregular.TTF); err != nil {
		t.Fatalf("LoadFont: %v", err)
	}
}

func TestMissingFontPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown font")
		}
	}()
	FontName("missing").Get()
}
