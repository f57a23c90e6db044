// Package host defines the boundary to the application that owns the actual
// preset resources. The panel only ever reads preset identity, names, and
// thumbnail bitmaps from it; the one write path is the brush size control.
package host

import (
	"errors"
	"image"
)

// Role distinguishes preset variants that the host models implicitly.
// Resolved once when a preset is adopted, never re-inferred per access.
type Role int

const (
	RoleBrush Role = iota
	RoleEraser
)

func (r Role) String() string {
	if r == RoleEraser {
		return "eraser"
	}
	return "brush"
}

// Preset is the host's view of a single resource: a stable identifier plus
// display metadata. The panel references presets, it never owns them.
type Preset struct {
	ID   string
	Name string
	Role Role
}

var (
	// ErrUnavailable reports that the host collection could not be reached
	// at all. Surfaced to the UI once per session, never per item.
	ErrUnavailable = errors.New("host: collection unavailable")
	// ErrPresetMissing reports that a single preset has disappeared between
	// ticks. Callers skip the item silently.
	ErrPresetMissing = errors.New("host: preset missing")
)

// Collection is the read surface of the host's preset storage.
type Collection interface {
	// ListPresets returns all presets currently known to the host.
	ListPresets() ([]Preset, error)
	// Thumbnail returns the host-rendered thumbnail bitmap for a preset.
	// Returns ErrPresetMissing when the preset no longer exists.
	Thumbnail(id string) (image.Image, error)
}

// BrushSizer is the optional write surface for the brush size slider.
type BrushSizer interface {
	CurrentBrushSize() (float64, error)
	SetBrushSize(size float64) error
}
