package commands

import (
	"os"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/journal/pkg/commands/options"
	"tableflip.dev/journal/pkg/logging"
)

var (
	output = &options.OutputOptions{}
	jo     = &options.JournalOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "journal",
		Short: base.Wrap80("A personal journal on the command line."),
		Long: base.Wrap80("Keep dated journal entries in a single file. Run with no " +
			"arguments to list the journal."),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(os.Stderr, jo.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd)
		},
	}

	options.AddJournalArgs(cmd, jo)
	options.AddOutputArg(cmd, output)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addList(topLevel)
	addShow(topLevel)
	addEdit(topLevel)
	addDelete(topLevel)
	addExport(topLevel)
	addImport(topLevel)
	addInfo(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

// path resolves the journal location for a subcommand.
func path() (string, error) {
	cfg, err := jo.Config()
	if err != nil {
		return "", err
	}
	return cfg.Path(), nil
}
