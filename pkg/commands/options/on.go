package options

import (
	"time"

	"github.com/spf13/cobra"
)

const (
	layoutISO      = "2006-1-2"
	layoutISOShort = "1/2"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Date the entry, example: --on="2020-2-28" or --on="2/28".`)
}

// GetOn parses --on relative to now. A month/day without a year means the
// most recent such day, never one in the future.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(layoutISO, o.OnString, now.Location())
	if err != nil {
		t, err = time.ParseInLocation(layoutISOShort, o.OnString, now.Location())
		if err != nil {
			return nil, err
		}
		t = t.AddDate(now.Year(), 0, 0)
		// Journals look back: 12/5 asked for on 1/3 means last December.
		if t.After(now) {
			t = t.AddDate(-1, 0, 0)
		}
	}
	return &t, nil
}
