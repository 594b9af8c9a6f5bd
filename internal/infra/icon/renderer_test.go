package icon

import (
	"bytes"
	"errors"
	"image/png"
	"testing"

	"github.com/Ukiyograin/YourWeather/internal/domain/weathercode"
)

func TestRenderEveryIcon(t *testing.T) {
	renderer := NewRenderer()

	for _, name := range weathercode.Icons() {
		for _, size := range []int{MinSize, DefaultSize, MaxSize} {
			img, err := renderer.Render(name, size)
			if err != nil {
				t.Fatalf("Render(%s, %d) error = %v", name, size, err)
			}
			if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
				t.Errorf("Render(%s, %d) bounds = %v", name, size, b)
			}
			if size == MaxSize && !hasOpaquePixel(t, img.Bounds().Dx(), func(x, y int) uint32 {
				_, _, _, a := img.At(x, y).RGBA()
				return a
			}) {
				t.Errorf("Render(%s) drew nothing", name)
			}
		}
	}
}

func hasOpaquePixel(t *testing.T, size int, alpha func(x, y int) uint32) bool {
	t.Helper()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if alpha(x, y) > 0 {
				return true
			}
		}
	}
	return false
}

func TestRenderPNG(t *testing.T) {
	var buf bytes.Buffer
	if err := NewRenderer().RenderPNG(&buf, weathercode.IconRain, 32); err != nil {
		t.Fatalf("RenderPNG() error = %v", err)
	}

	cfg, err := png.DecodeConfig(&buf)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 32 || cfg.Height != 32 {
		t.Errorf("PNG size = %dx%d, want 32x32", cfg.Width, cfg.Height)
	}
}

func TestRenderRejectsInput(t *testing.T) {
	renderer := NewRenderer()

	if _, err := renderer.Render("tornado", DefaultSize); !errors.Is(err, ErrUnknownIcon) {
		t.Errorf("unknown icon error = %v", err)
	}
	for _, size := range []int{0, MinSize - 1, MaxSize + 1} {
		if _, err := renderer.Render(weathercode.IconSunny, size); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("size %d error = %v", size, err)
		}
	}
}
