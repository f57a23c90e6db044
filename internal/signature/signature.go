// Package signature computes cheap visual signatures over host-rendered
// thumbnails. A signature is only ever compared for exact equality; it is
// never used to reconstruct or display pixels.
package signature

import (
	"crypto/md5"
	"encoding/binary"
	"encoding/hex"
	"image"
)

// DefaultGrid is the per-axis sample count used when none is configured.
// Sampling cost grows quadratically with the grid, so this stays coarse.
const DefaultGrid = 16

// Signature is the reduced representation of one thumbnail.
type Signature [md5.Size]byte

// Zero reports whether the signature has never been computed.
func (s Signature) Zero() bool {
	return s == Signature{}
}

func (s Signature) String() string {
	return hex.EncodeToString(s[:])
}

// Sampler hashes a fixed grid of sample points plus the image edge midpoints
// and corners. Any pixel difference at any sampled point changes the output.
type Sampler struct {
	Grid int
}

// NewSampler clamps grid to a sane range.
func NewSampler(grid int) Sampler {
	if grid < 2 {
		grid = DefaultGrid
	}
	if grid > 64 {
		grid = 64
	}
	return Sampler{Grid: grid}
}

// Sum computes the signature for img. A nil or empty image yields the zero
// signature, which callers treat as "no signature known".
func (s Sampler) Sum(img image.Image) Signature {
	if img == nil {
		return Signature{}
	}
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width <= 0 || height <= 0 {
		return Signature{}
	}

	grid := s.Grid
	if grid < 2 {
		grid = DefaultGrid
	}
	stepX := width / grid
	if stepX < 1 {
		stepX = 1
	}
	stepY := height / grid
	if stepY < 1 {
		stepY = 1
	}

	h := md5.New()
	var dims [8]byte
	binary.BigEndian.PutUint32(dims[0:], uint32(width))
	binary.BigEndian.PutUint32(dims[4:], uint32(height))
	h.Write(dims[:])

	var px [8]byte
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			writePixel(h, img, x, y, px[:])
		}
	}

	// Edge midpoints and corners, so border-only edits are never missed.
	edges := [][2]int{
		{bounds.Min.X, bounds.Min.Y},
		{bounds.Max.X - 1, bounds.Min.Y},
		{bounds.Min.X, bounds.Max.Y - 1},
		{bounds.Max.X - 1, bounds.Max.Y - 1},
		{bounds.Min.X + width/2, bounds.Min.Y},
		{bounds.Min.X + width/2, bounds.Max.Y - 1},
		{bounds.Min.X, bounds.Min.Y + height/2},
		{bounds.Max.X - 1, bounds.Min.Y + height/2},
	}
	for _, pt := range edges {
		writePixel(h, img, pt[0], pt[1], px[:])
	}

	var sig Signature
	h.Sum(sig[:0])
	return sig
}

func writePixel(h interface{ Write([]byte) (int, error) }, img image.Image, x, y int, buf []byte) {
	r, g, b, a := img.At(x, y).RGBA()
	binary.BigEndian.PutUint16(buf[0:], uint16(r))
	binary.BigEndian.PutUint16(buf[2:], uint16(g))
	binary.BigEndian.PutUint16(buf[4:], uint16(b))
	binary.BigEndian.PutUint16(buf[6:], uint16(a))
	h.Write(buf[:8])
}
