package signature

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestSumIsDeterministic(t *testing.T) {
	sampler := NewSampler(8)
	img := solidImage(64, 64, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	first := sampler.Sum(img)
	second := sampler.Sum(img)
	if first != second {
		t.Fatalf("expected identical signatures, got %s and %s", first, second)
	}
	if first.Zero() {
		t.Fatalf("expected non-zero signature for non-empty image")
	}
}

func TestSumDetectsSinglePixelChangeAtSamplePoint(t *testing.T) {
	sampler := NewSampler(8)
	img := solidImage(64, 64, color.RGBA{R: 200, G: 10, B: 10, A: 255})
	before := sampler.Sum(img)

	// (0,0) is always sampled as a corner point.
	img.Set(0, 0, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	after := sampler.Sum(img)
	if before == after {
		t.Fatalf("expected signature change after corner pixel edit")
	}
}

func TestSumDetectsDimensionChange(t *testing.T) {
	sampler := NewSampler(8)
	c := color.RGBA{R: 90, G: 90, B: 90, A: 255}
	small := sampler.Sum(solidImage(32, 32, c))
	large := sampler.Sum(solidImage(64, 64, c))
	if small == large {
		t.Fatalf("expected different signature for different dimensions")
	}
}

func TestSumHandlesDegenerateImages(t *testing.T) {
	sampler := NewSampler(8)
	if sig := sampler.Sum(nil); !sig.Zero() {
		t.Fatalf("expected zero signature for nil image, got %s", sig)
	}
	empty := image.NewRGBA(image.Rect(0, 0, 0, 0))
	if sig := sampler.Sum(empty); !sig.Zero() {
		t.Fatalf("expected zero signature for empty image, got %s", sig)
	}
	// Images smaller than the grid still sample every pixel without panicking.
	tiny := solidImage(2, 2, color.RGBA{A: 255})
	if sig := sampler.Sum(tiny); sig.Zero() {
		t.Fatalf("expected non-zero signature for tiny image")
	}
}

func TestNewSamplerClampsGrid(t *testing.T) {
	if s := NewSampler(0); s.Grid != DefaultGrid {
		t.Fatalf("expected default grid for 0, got %d", s.Grid)
	}
	if s := NewSampler(1000); s.Grid != 64 {
		t.Fatalf("expected grid clamped to 64, got %d", s.Grid)
	}
	if s := NewSampler(12); s.Grid != 12 {
		t.Fatalf("expected grid 12 preserved, got %d", s.Grid)
	}
}
