package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"log"
	"os"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var ErrEmptySheet = errors.New("assets: sprite sheet holds no frames")

// ClipLoader reads an intro sprite sheet off the main goroutine. The file bytes
// are handed over through a mailbox; decoding into GPU images happens on the
// main goroutine when Poll sees them.
type ClipLoader struct {
	path      string
	frameSize int

	mu   sync.Mutex
	data []byte
	err  error
	done bool

	taken bool
}

// LoadClipAsync starts reading the sprite sheet at path. Frames are square
// cells of frameSize pixels, read left to right then top to bottom.
func LoadClipAsync(path string, frameSize int) *ClipLoader {
	l := &ClipLoader{path: path, frameSize: frameSize}
	go func() {
		data, err := os.ReadFile(path)
		l.mu.Lock()
		defer l.mu.Unlock()
		l.data, l.err, l.done = data, err, true
	}()
	return l
}

// Poll returns the decoded frames once the read has finished. ok is false
// while the read is still running and after the result has been taken.
func (l *ClipLoader) Poll() (frames []*ebiten.Image, ok bool, err error) {
	l.mu.Lock()
	done, data, readErr := l.done, l.data, l.err
	l.mu.Unlock()
	if !done || l.taken {
		return nil, false, nil
	}
	l.taken = true
	if readErr != nil {
		log.Printf("[intro] Warning: Could not read clip %s: %v", l.path, readErr)
		return nil, true, fmt.Errorf("read clip: %w", readErr)
	}

	sheet, _, err := ebitenutil.NewImageFromReader(bytes.NewReader(data))
	if err != nil {
		log.Printf("[intro] Warning: Could not decode clip %s: %v", l.path, err)
		return nil, true, fmt.Errorf("decode clip: %w", err)
	}
	frames, err = SliceFrames(sheet, l.frameSize)
	if err != nil {
		return nil, true, err
	}
	return frames, true, nil
}

// SliceFrames cuts a sheet into square sub-images.
func SliceFrames(sheet *ebiten.Image, size int) ([]*ebiten.Image, error) {
	rects := FrameRects(sheet.Bounds(), size)
	if len(rects) == 0 {
		return nil, ErrEmptySheet
	}
	frames := make([]*ebiten.Image, len(rects))
	for i, r := range rects {
		frames[i] = sheet.SubImage(r).(*ebiten.Image)
	}
	return frames, nil
}

// FrameRects lists the frame rectangles of a sheet with the given bounds.
// Partial cells at the right and bottom edges are ignored.
func FrameRects(bounds image.Rectangle, size int) []image.Rectangle {
	if size <= 0 {
		return nil
	}
	cols := bounds.Dx() / size
	rows := bounds.Dy() / size
	rects := make([]image.Rectangle, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			x := bounds.Min.X + c*size
			y := bounds.Min.Y + r*size
			rects = append(rects, image.Rect(x, y, x+size, y+size))
		}
	}
	return rects
}
