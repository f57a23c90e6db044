package host

import (
	"image"
	"sync"
)

// StaticCollection is an in-memory collection used by tests and demo mode.
// Thumbnails can be swapped at runtime to simulate the host re-rendering a
// preset after an edit.
type StaticCollection struct {
	mu      sync.Mutex
	presets []Preset
	thumbs  map[string]image.Image
	size    float64
	down    bool
}

func NewStaticCollection(presets []Preset) *StaticCollection {
	c := &StaticCollection{
		presets: append([]Preset(nil), presets...),
		thumbs:  make(map[string]image.Image, len(presets)),
		size:    100,
	}
	return c
}

func (c *StaticCollection) ListPresets() ([]Preset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.down {
		return nil, ErrUnavailable
	}
	return append([]Preset(nil), c.presets...), nil
}

func (c *StaticCollection) Thumbnail(id string) (image.Image, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.down {
		return nil, ErrUnavailable
	}
	img, ok := c.thumbs[id]
	if !ok {
		return nil, ErrPresetMissing
	}
	return img, nil
}

func (c *StaticCollection) CurrentBrushSize() (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.size, nil
}

func (c *StaticCollection) SetBrushSize(size float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.size = size
	return nil
}

// SetThumbnail installs or replaces a preset's thumbnail bitmap.
func (c *StaticCollection) SetThumbnail(id string, img image.Image) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.thumbs[id] = img
}

// Rename changes a preset's display name in place.
func (c *StaticCollection) Rename(id, name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.presets {
		if c.presets[i].ID == id {
			c.presets[i].Name = name
			return
		}
	}
}

// Remove drops a preset and its thumbnail entirely.
func (c *StaticCollection) Remove(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.presets {
		if c.presets[i].ID == id {
			c.presets = append(c.presets[:i], c.presets[i+1:]...)
			break
		}
	}
	delete(c.thumbs, id)
}

// SetDown toggles simulated host unavailability.
func (c *StaticCollection) SetDown(down bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.down = down
}
