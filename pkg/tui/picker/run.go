package picker

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned by Run when the user leaves without choosing.
var ErrCancelled = errors.New("picker: cancelled")

// Run shows the picker on the terminal and returns the chosen index into
// lines. The UI draws on stderr so stdout stays free for command output.
func Run(title string, lines []string) (int, error) {
	if len(lines) == 0 {
		return -1, errors.New("picker: nothing to choose from")
	}
	final, err := tea.NewProgram(New(title, lines), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return -1, fmt.Errorf("picker: %w", err)
	}
	m, ok := final.(*Model)
	if !ok {
		return -1, fmt.Errorf("picker: unexpected model %T", final)
	}
	if idx, ok := m.Selected(); ok {
		return idx, nil
	}
	return -1, ErrCancelled
}
