// Package editor captures text by running the user's editor on a temporary
// file.
package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when neither $VISUAL nor $EDITOR is set.
var ErrNoEditor = errors.New("editor: set $VISUAL or $EDITOR")

// Editor runs Command through sh with the path of the file to edit appended.
type Editor struct {
	Command string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// FromEnv builds an Editor attached to the terminal from $VISUAL, falling
// back to $EDITOR.
func FromEnv() (*Editor, error) {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if cmd := strings.TrimSpace(os.Getenv(key)); cmd != "" {
			return &Editor{
				Command: cmd,
				Stdin:   os.Stdin,
				Stdout:  os.Stdout,
				Stderr:  os.Stderr,
			}, nil
		}
	}
	return nil, ErrNoEditor
}

// Edit writes seed to a temporary file, blocks until the editor exits and
// returns whatever the file then holds. The text is returned as is, empty
// included.
func (e *Editor) Edit(ctx context.Context, seed string) (string, error) {
	if e.Command == "" {
		return "", ErrNoEditor
	}

	f, err := os.CreateTemp("", "journal-*.md")
	if err != nil {
		return "", fmt.Errorf("editor: create temp file: %w", err)
	}
	path := f.Name()
	defer os.Remove(path)

	if _, err := f.WriteString(seed); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("editor: seed temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("editor: close temp file: %w", err)
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", e.Command+" "+quote(path))
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor: %s: %w", e.Command, err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("editor: read temp file: %w", err)
	}
	return string(b), nil
}

// quote wraps s in single quotes for sh.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
