package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/store"
)

// JournalOptions locate the journal for every subcommand.
type JournalOptions struct {
	Path    string
	Verbose bool
}

func AddJournalArgs(cmd *cobra.Command, o *JournalOptions) {
	cmd.PersistentFlags().StringVar(&o.Path, "path", "",
		"Journal storage file. Overrides $JOURNAL_PATH and the config file.")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log what the journal is doing to stderr.")
}

// Config resolves the storage location from the flags, environment and
// config file.
func (o *JournalOptions) Config() (store.Config, error) {
	return store.LoadConfig(o.Path)
}
