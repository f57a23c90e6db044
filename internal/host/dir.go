package host

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
)

// eraser presets are flagged by filename convention, mirroring how the host
// tags the variant in resource metadata.
const eraserPrefix = "eraser_"

// DirCollection exposes a directory of image files as a preset collection.
// The filename stem is the preset identifier; renames on disk therefore show
// up as remove+add, while the companion .name sidecar (if present) carries a
// display name that can change independently of the id.
type DirCollection struct {
	dir string

	mu    sync.Mutex
	sizer float64
	max   float64
}

// NewDirCollection creates a collection rooted at dir. The directory must
// exist; contents may change at any time.
func NewDirCollection(dir string) (*DirCollection, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrUnavailable, dir)
	}
	return &DirCollection{dir: dir, sizer: 100, max: 1000}, nil
}

// ListPresets scans the directory for image files.
func (c *DirCollection) ListPresets() ([]Preset, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	presets := make([]Preset, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !isImageFile(entry.Name()) {
			continue
		}
		id := stem(entry.Name())
		presets = append(presets, Preset{
			ID:   id,
			Name: c.displayName(id),
			Role: roleForID(id),
		})
	}
	sort.Slice(presets, func(i, j int) bool { return presets[i].ID < presets[j].ID })
	return presets, nil
}

// Thumbnail decodes the preset's image file.
func (c *DirCollection) Thumbnail(id string) (image.Image, error) {
	path, err := c.pathFor(id)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrPresetMissing
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("host: decode %s: %w", id, err)
	}
	return img, nil
}

// CurrentBrushSize reports the last size set through this collection.
func (c *DirCollection) CurrentBrushSize() (float64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sizer, nil
}

// SetBrushSize applies a new brush size, expanding the maximum when the
// requested size exceeds it.
func (c *DirCollection) SetBrushSize(size float64) error {
	if size < 1 {
		size = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if size > c.max {
		c.max = size
	}
	c.sizer = size
	return nil
}

func (c *DirCollection) pathFor(id string) (string, error) {
	for _, ext := range []string{".png", ".gif", ".jpg", ".jpeg"} {
		path := filepath.Join(c.dir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrPresetMissing
}

func (c *DirCollection) displayName(id string) string {
	data, err := os.ReadFile(filepath.Join(c.dir, id+".name"))
	if err != nil {
		return strings.TrimPrefix(id, eraserPrefix)
	}
	name := strings.TrimSpace(string(data))
	if name == "" {
		return strings.TrimPrefix(id, eraserPrefix)
	}
	return name
}

func roleForID(id string) Role {
	if strings.HasPrefix(id, eraserPrefix) {
		return RoleEraser
	}
	return RoleBrush
}

func isImageFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png", ".gif", ".jpg", ".jpeg":
		return true
	}
	return false
}

func stem(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
