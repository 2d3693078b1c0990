package shape

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

var (
	fontOnce sync.Once
	ttf      *truetype.Font
	ttfErr   error

	facesMu sync.Mutex
	faces   = map[float64]font.Face{}
)

// Face returns the text tool's font face at size points, caching one face per size.
func Face(size float64) (font.Face, error) {
	fontOnce.Do(func() {
		ttf, ttfErr = truetype.Parse(goregular.TTF)
	})
	if ttfErr != nil {
		return nil, fmt.Errorf("failed to parse font: %w", ttfErr)
	}

	facesMu.Lock()
	defer facesMu.Unlock()
	if face, ok := faces[size]; ok {
		return face, nil
	}
	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	faces[size] = face
	return face, nil
}
