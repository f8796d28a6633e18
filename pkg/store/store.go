package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/journal/pkg/collection"
)

// Read loads the journal stored at path. A missing file is the first run:
// an empty journal is written to path and returned.
func Read(path string) (*collection.Collection, error) {
	d, key, err := open(path)
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return initialize(path)
	}

	data, err := d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrIO, path, err)
	}
	c, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("journal read", "path", path, "entries", c.Len())
	return c, nil
}

// Write replaces the file at path with the encoded journal, creating parent
// directories as needed. The bytes land in a temporary file first and are
// renamed into place, so a failed write leaves the previous file intact.
func Write(c *collection.Collection, path string) error {
	data, err := Encode(c)
	if err != nil {
		return err
	}
	d, key, err := open(path)
	if err != nil {
		return err
	}
	if err := d.Write(key, data); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrIO, path, err)
	}
	slog.Debug("journal written", "path", path, "entries", c.Len(), "bytes", len(data))
	return nil
}

func initialize(path string) (*collection.Collection, error) {
	c := collection.New()
	if err := Write(c, path); err != nil {
		return nil, err
	}
	slog.Debug("journal initialized", "path", path)
	return c, nil
}

// open returns a flat diskv rooted at the parent of path, keyed by its base
// name. Nothing is cached: every Read goes to disk.
func open(path string) (*diskv.Diskv, string, error) {
	if path == "" {
		return nil, "", fmt.Errorf("%w: empty storage path", ErrConfig)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s: %w", ErrConfig, path, err)
	}
	dir, key := filepath.Split(abs)
	if key == "" {
		return nil, "", fmt.Errorf("%w: %s names a directory", ErrConfig, path)
	}
	d := diskv.New(diskv.Options{
		BasePath:          dir,
		TempDir:           dir,
		AdvancedTransform: flatTransform,
		InverseTransform:  flatInverseTransform,
		CacheSizeMax:      0,
		PathPerm:          0o755,
		FilePerm:          0o644,
	})
	return d, key, nil
}

func flatTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{Path: []string{}, FileName: key}
}

func flatInverseTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
