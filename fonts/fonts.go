package fonts

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Headline     FontName = "headline"
	HeadlineBold FontName = "headline-bold"
	Logo         FontName = "logo"
	Body         FontName = "body"
	BodyBold     FontName = "body-bold"
	Small        FontName = "small"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

// Text returns the face wrapped for ebiten's text/v2 package.
func (f FontName) Text() text.Face {
	if tf, ok := textFaces[f]; ok {
		return tf
	}
	tf := text.NewGoXFace(getFont(f))
	textFaces[f] = tf
	return tf
}

var (
	fonts     = map[FontName]font.Face{}
	textFaces = map[FontName]text.Face{}
)

// LoadDefaults parses the bundled Go fonts into every named face.
func LoadDefaults() error {
	faces := []struct {
		name FontName
		ttf  []byte
		size float64
	}{
		{Headline, goregular.TTF, 44},
		{HeadlineBold, gobold.TTF, 44},
		{Logo, gobold.TTF, 64},
		{Body, goregular.TTF, 18},
		{BodyBold, gobold.TTF, 18},
		{Small, goregular.TTF, 14},
	}
	for _, f := range faces {
		if err := LoadFontWithSize(f.name, f.ttf, f.size); err != nil {
			return err
		}
	}
	return nil
}

func LoadFont(name FontName, ttf []byte) error {
	return LoadFontWithSize(name, ttf, 10)
}

func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("parse font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	delete(textFaces, name)
	return nil
}

func getFont(name FontName) font.Face {
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
