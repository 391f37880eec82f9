package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yourlabxyz/pipkit/pkg/pip"
)

// addOpts holds the command-line flags for the add command.
type addOpts struct {
	version string // exact version pin
	vrange  string // version-range expression
	python  string // interpreter override
}

// addCommand creates the add command for installing a single module.
func (c *CLI) addCommand() *cobra.Command {
	var opts addOpts

	cmd := &cobra.Command{
		Use:   "add <module>",
		Short: "Install a single module",
		Long: `Install one module from PyPI. With --version the module is pinned to
that exact release; with --range the expression is passed through to pip
verbatim. When both are given, --version wins.

Examples:
  pipkit add requests
  pipkit add requests --version 2.31.0
  pipkit add requests --range ">=2.28,<3"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAdd(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.version, "version", "", "exact version to install")
	cmd.Flags().StringVar(&opts.vrange, "range", "", `version range expression, e.g. ">=1.0,!=2.0"`)
	cmd.Flags().StringVar(&opts.python, "python", "", "python interpreter to use")

	return cmd
}

func (c *CLI) runAdd(ctx context.Context, module string, opts addOpts) error {
	spec := pip.Specifier(module, opts.version, opts.vrange)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Installing %s...", spec))
	spinner.Start()

	ok, err := pip.InstallModule(ctx, module, pip.ModuleOptions{
		Version: opts.version,
		Range:   opts.vrange,
		Options: c.pipOptions(opts.python),
	})
	c.recordHistory("add", []string{spec}, err == nil && ok)
	if err != nil {
		spinner.StopWithError(fmt.Sprintf("Failed to install %s", spec))
		return err
	}

	spinner.StopWithSuccess(fmt.Sprintf("Installed %s", spec))
	return nil
}
