package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourlabxyz/pipkit/pkg/pip"
)

// checkCommand creates the check command reporting requirement satisfaction.
// The command exits non-zero when the requirement is not met, so it can be
// used in shell conditionals.
func (c *CLI) checkCommand() *cobra.Command {
	var python string

	cmd := &cobra.Command{
		Use:   "check <requirement>",
		Short: "Report whether a requirement is satisfied",
		Long: `Check one requirement against the installed packages. A bare name is
satisfied by any installed version; "name==version" requires that exact
version.

Examples:
  pipkit check requests
  pipkit check requests==2.31.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			installed, err := pip.InstalledPackages(cmd.Context(), c.pipOptions(python))
			if err != nil {
				return err
			}

			requirement := args[0]
			if pip.Satisfied(requirement, installed) {
				printSuccess("%s is satisfied", requirement)
				return nil
			}
			return fmt.Errorf("requirement %s is not satisfied", requirement)
		},
	}

	cmd.Flags().StringVar(&python, "python", "", "python interpreter to use")

	return cmd
}
