// Package photo loads lab photographs and writes annotated copies back in
// the same encoding family.
package photo

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/disintegration/imaging"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Photo is a decoded photograph and the format its file name implies.
type Photo struct {
	Path   string
	Image  image.Image
	Format imaging.Format
}

// Load decodes the photograph at path, applying any EXIF orientation.
// Files without an extension imaging can encode (WebP, for instance) report
// PNG as their format.
func Load(path string) (*Photo, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	format, err := imaging.FormatFromFilename(path)
	if err != nil {
		format = imaging.PNG
	}

	return &Photo{Path: path, Image: img, Format: format}, nil
}

// Save encodes img to path. The format follows the output extension and
// falls back to fallback when the extension is not recognised.
func Save(path string, img image.Image, fallback imaging.Format) (err error) {
	format, ferr := imaging.FormatFromFilename(path)
	if ferr != nil {
		format = fallback
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	if err := imaging.Encode(file, img, format, imaging.JPEGQuality(95)); err != nil {
		return fmt.Errorf("failed to encode %s as %s: %w", path, format, err)
	}
	return nil
}

// SupportedFormats returns the file extensions Load understands.
func SupportedFormats() []string {
	return []string{".jpg", ".jpeg", ".png", ".tif", ".tiff", ".bmp", ".gif", ".webp"}
}

// IsSupportedFormat checks if the given path has a supported image extension.
func IsSupportedFormat(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, format := range SupportedFormats() {
		if ext == format {
			return true
		}
	}
	return false
}

// Expand replaces every directory argument with the supported images it
// contains, sorted by name. File arguments are kept as given.
func Expand(paths []string) ([]string, error) {
	var out []string
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", p, err)
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}

		entries, err := os.ReadDir(p)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", p, err)
		}
		var found []string
		for _, e := range entries {
			if !e.IsDir() && IsSupportedFormat(e.Name()) {
				found = append(found, filepath.Join(p, e.Name()))
			}
		}
		sort.Strings(found)
		out = append(out, found...)
	}
	return out, nil
}

// OutputPath derives the annotated file name for input inside dir:
// "<dir>/<stem>_annotated<ext>".
func OutputPath(dir, input string) string {
	base := filepath.Base(input)
	ext := filepath.Ext(base)
	return filepath.Join(dir, strings.TrimSuffix(base, ext)+"_annotated"+ext)
}
