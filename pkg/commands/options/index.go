package options

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
)

// IndexOptions
type IndexOptions struct {
	Index *int
}

// ParseIndex reads an optional positional index such as 3 or 0003.
func (o *IndexOptions) ParseIndex(args []string) error {
	if len(args) == 0 {
		o.Index = nil
		return nil
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid index %q", args[0])
	}
	o.Index = &i
	return nil
}

// Interactive reports whether a picker can be shown instead of requiring an
// index.
func Interactive() bool {
	return (isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())) &&
		(isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()))
}
