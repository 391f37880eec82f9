package cli

import (
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/spf13/cobra"

	"github.com/yourlabxyz/pipkit/pkg/pip"
)

// listCommand creates the list command showing installed packages.
func (c *CLI) listCommand() *cobra.Command {
	var python string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed packages and their versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			installed, err := pip.InstalledPackages(cmd.Context(), c.pipOptions(python))
			if err != nil {
				return err
			}

			names := maps.Keys(installed)
			slices.Sort(names)
			for _, name := range names {
				fmt.Println(StyleValue.Render(name) + StyleDim.Render("==") + StyleNumber.Render(installed[name]))
			}
			printDetail("%d packages", len(names))
			return nil
		},
	}

	cmd.Flags().StringVar(&python, "python", "", "python interpreter to use")

	return cmd
}
