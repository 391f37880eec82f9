package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourlabxyz/pipkit/pkg/history"
)

// historyCommand creates the history command showing recent install runs.
func (c *CLI) historyCommand() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent install runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("get cache dir: %w", err)
			}
			store, err := history.NewStore(dir)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}

			records, err := store.List(limit)
			if err != nil {
				return fmt.Errorf("read history: %w", err)
			}
			if len(records) == 0 {
				printInfo("No install history")
				return nil
			}

			for _, rec := range records {
				icon := styleIconSuccess.Render(iconSuccess)
				if !rec.OK {
					icon = styleIconError.Render(iconError)
				}
				fmt.Println(icon + " " +
					StyleDim.Render(rec.Time.Local().Format("Jan 02 15:04")) + "  " +
					StyleValue.Render(rec.Command) + "  " +
					strings.Join(rec.Specifiers, " "))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of runs to show (0 for all)")

	return cmd
}
