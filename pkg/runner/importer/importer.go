package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"tableflip.dev/journal/pkg/entry"
	"tableflip.dev/journal/pkg/store"
)

// Import reads text files into the journal, one entry per file. A file that
// starts with a date line keeps that date; otherwise it is stamped now.
type Import struct {
	Path string
	// Patterns are file paths or doublestar globs such as notes/**/*.md.
	Patterns []string

	Out io.Writer
}

func (n *Import) Do(_ context.Context) error {
	files, err := n.files()
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("import: no files match %v", n.Patterns)
	}

	c, err := store.Read(n.Path)
	if err != nil {
		return err
	}
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			return fmt.Errorf("import: %w", err)
		}
		e := entry.Parse(string(data))
		slog.Debug("importing", "file", f, "timestamp", e.Timestamp.String())
		c.Push(e)
	}
	if err := store.Write(c, n.Path); err != nil {
		return err
	}
	slog.Info("entries imported", "path", n.Path, "count", len(files))

	if n.Out != nil {
		_, _ = fmt.Fprintf(n.Out, "imported %d entries\n", len(files))
	}
	return nil
}

// files expands the patterns into a sorted list of regular files, each
// listed once.
func (n *Import) files() ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, p := range n.Patterns {
		matches, err := doublestar.FilepathGlob(p, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("import: bad pattern %q: %w", p, err)
		}
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)
	return files, nil
}
