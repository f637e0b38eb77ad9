package galleria

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Sentinel errors for library operations.
var (
	ErrImageExists   = errors.New("image already exists")
	ErrEntryNotFound = errors.New("catalog entry not found")
	ErrInvalidName   = errors.New("invalid file name")
)

// Library provides access to the images directory and the catalog
// directory. Images are binary files identified by filename; catalog
// entries are JSON sidecar files named <basename>.json after the image
// they describe. Nothing enforces that the two stay paired: a catalog
// entry can dangle if its image was removed out of band.
type Library struct {
	imagesDir  string
	catalogDir string
}

// NewLibrary creates a Library rooted at the given directories, creating
// them if they do not exist.
func NewLibrary(imagesDir, catalogDir string) (*Library, error) {
	for _, dir := range []string{imagesDir, catalogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("galleria: create %s: %w", dir, err)
		}
	}
	return &Library{imagesDir: imagesDir, catalogDir: catalogDir}, nil
}

// ImageNames lists the images directory in listing order.
func (l *Library) ImageNames() ([]string, error) {
	return listNames(l.imagesDir)
}

// CatalogNames lists the catalog directory in listing order.
func (l *Library) CatalogNames() ([]string, error) {
	return listNames(l.catalogDir)
}

func listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("galleria: list %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	return names, nil
}

// ImagePath resolves an image filename to its path on disk. The name must
// be a plain base name; anything with separators or traversal is rejected.
func (l *Library) ImagePath(name string) (string, error) {
	safe, err := safeName(name)
	if err != nil {
		return "", err
	}
	return filepath.Join(l.imagesDir, safe), nil
}

// SaveImage writes image bytes under the client-supplied filename. An
// existing file with the same name is never overwritten; callers get
// ErrImageExists instead.
func (l *Library) SaveImage(name string, data []byte) error {
	safe, err := safeName(name)
	if err != nil {
		return err
	}
	dst := filepath.Join(l.imagesDir, safe)
	if _, err := os.Stat(dst); err == nil {
		return fmt.Errorf("%w: %s", ErrImageExists, safe)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("galleria: stat %s: %w", safe, err)
	}
	return writeFileAtomic(dst, data, 0o644)
}

// RemoveImage deletes an image file. Used to roll back a failed upload.
func (l *Library) RemoveImage(name string) error {
	safe, err := safeName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(filepath.Join(l.imagesDir, safe)); err != nil {
		return fmt.Errorf("galleria: remove %s: %w", safe, err)
	}
	return nil
}

// ReadEntry reads catalog/<base>.json. base is the image name with its
// extension already stripped.
func (l *Library) ReadEntry(base string) (CatalogEntry, error) {
	safe, err := safeName(base)
	if err != nil {
		return CatalogEntry{}, err
	}
	data, err := os.ReadFile(filepath.Join(l.catalogDir, safe+".json"))
	if err != nil {
		if os.IsNotExist(err) {
			return CatalogEntry{}, fmt.Errorf("%w: %s", ErrEntryNotFound, base)
		}
		return CatalogEntry{}, fmt.Errorf("galleria: read entry %s: %w", base, err)
	}
	var entry CatalogEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return CatalogEntry{}, fmt.Errorf("galleria: parse entry %s: %w", base, err)
	}
	return entry, nil
}

// WriteEntry writes the entry as catalog/<basename>.json, atomically,
// through the JSON encoder. The basename comes from the entry's image name.
func (l *Library) WriteEntry(entry CatalogEntry) error {
	safe, err := safeName(stripExt(entry.ImageName))
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return fmt.Errorf("galleria: encode entry %s: %w", safe, err)
	}
	return writeFileAtomic(filepath.Join(l.catalogDir, safe+".json"), data, 0o644)
}
