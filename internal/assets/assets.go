// Package assets resolves and decodes files from the bundled asset directory.
package assets

import (
	"errors"
	"fmt"
	"image"
	_ "image/png" // board.png
	"io/fs"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrNotFound is returned when the named asset does not exist.
var ErrNotFound = errors.New("asset not found")

// Path joins name onto dir. name must stay inside dir.
func Path(dir, name string) (string, error) {
	if name == "" || filepath.IsAbs(name) || !filepath.IsLocal(name) {
		return "", fmt.Errorf("asset name %q must be a relative path inside %s", name, dir)
	}
	return filepath.Join(dir, name), nil
}

// LoadImage decodes the PNG, BMP or WebP image dir/name.
func LoadImage(dir, name string) (image.Image, error) {
	path, err := Path(dir, name)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
