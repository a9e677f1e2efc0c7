// Package assets bundles the local fallback backgrounds.
package assets

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"path"
	"strconv"
)

// BackgroundCount is the number of bundled backgrounds, named "1".."8"
const BackgroundCount = 8

//go:embed backgrounds/*.png
var backgroundFS embed.FS

// ErrNoBackgrounds is returned when none of the bundled images can be read
var ErrNoBackgrounds = errors.New("no bundled backgrounds available")

// Backgrounds picks a uniformly random image from a set named 1..Count
type Backgrounds struct {
	fsys  fs.FS
	dir   string
	count int
	intn  func(n int) int
}

// NewBackgrounds returns the embedded background set
func NewBackgrounds() *Backgrounds {
	return NewBackgroundsFS(backgroundFS, "backgrounds", BackgroundCount)
}

// NewBackgroundsFS reads count images named "<i>.png" from dir in fsys
func NewBackgroundsFS(fsys fs.FS, dir string, count int) *Backgrounds {
	return &Backgrounds{fsys: fsys, dir: dir, count: count, intn: rand.IntN}
}

// WithRand replaces the random source. Used by tests.
func (b *Backgrounds) WithRand(intn func(n int) int) *Backgrounds {
	b.intn = intn
	return b
}

// Names lists the asset names in the set
func (b *Backgrounds) Names() []string {
	names := make([]string, 0, b.count)
	for i := 1; i <= b.count; i++ {
		names = append(names, strconv.Itoa(i))
	}
	return names
}

// Load reads one named background
func (b *Backgrounds) Load(name string) ([]byte, error) {
	data, err := fs.ReadFile(b.fsys, path.Join(b.dir, name+".png"))
	if err != nil {
		return nil, fmt.Errorf("read background %s: %w", name, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("background %s is empty", name)
	}
	return data, nil
}

// Random returns a uniformly chosen background. An unreadable pick fails
// with ErrNoBackgrounds; the caller treats that as the no-image state.
func (b *Backgrounds) Random() (string, []byte, error) {
	if b.count <= 0 {
		return "", nil, ErrNoBackgrounds
	}
	name := strconv.Itoa(b.intn(b.count) + 1)
	data, err := b.Load(name)
	if err != nil {
		return "", nil, errors.Join(ErrNoBackgrounds, err)
	}
	return name, data, nil
}
