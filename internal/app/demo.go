package app

import (
	"image"
	"image/color"

	"github.com/inkbench/preset-groups/internal/host"
)

// demoCollection builds a small in-memory preset set so the panel is usable
// without pointing it at a real preset directory.
func demoCollection() *host.StaticCollection {
	presets := []host.Preset{
		{ID: "round", Name: "Round", Role: host.RoleBrush},
		{ID: "flat", Name: "Flat", Role: host.RoleBrush},
		{ID: "ink", Name: "Ink Wash", Role: host.RoleBrush},
		{ID: "charcoal", Name: "Charcoal", Role: host.RoleBrush},
		{ID: "splatter", Name: "Splatter", Role: host.RoleBrush},
		{ID: "eraser_soft", Name: "Soft Eraser", Role: host.RoleEraser},
		{ID: "eraser_hard", Name: "Hard Eraser", Role: host.RoleEraser},
	}
	col := host.NewStaticCollection(presets)
	for i, p := range presets {
		col.SetThumbnail(p.ID, swatch(i))
	}
	return col
}

// swatch renders a flat color tile, distinct per index so signatures differ.
func swatch(index int) image.Image {
	palette := []color.NRGBA{
		{R: 0xd0, G: 0x4f, B: 0x4f, A: 0xff},
		{R: 0x4f, G: 0xd0, B: 0x7a, A: 0xff},
		{R: 0x4f, G: 0x7a, B: 0xd0, A: 0xff},
		{R: 0xd0, G: 0xc0, B: 0x4f, A: 0xff},
		{R: 0x9a, G: 0x4f, B: 0xd0, A: 0xff},
		{R: 0x4f, G: 0xc6, B: 0xd0, A: 0xff},
		{R: 0x88, G: 0x88, B: 0x88, A: 0xff},
	}
	c := palette[index%len(palette)]
	img := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
