package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/yourlabxyz/pipkit/pkg/pip"
)

// installOpts holds the command-line flags for the install command.
type installOpts struct {
	file   string // requirements listing path
	python string // interpreter override
	dryRun bool   // resolve only, install nothing
}

// installCommand creates the install command.
func (c *CLI) installCommand() *cobra.Command {
	opts := installOpts{file: pip.DefaultRequirements}

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install missing packages from a requirements listing",
		Long: `Install every package the requirements listing names that is not yet
present in the environment. Already-satisfied entries are skipped, and the
remainder is installed with a single pip call using --no-cache-dir and
--no-deps.

The listing may be a requirements file or a pyproject.toml; the format is
detected from the filename.

Examples:
  pipkit install                          # ./requirements.txt
  pipkit install -r requirements-dev.txt
  pipkit install -r pyproject.toml --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runInstall(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.file, "requirements", "r", opts.file, "requirements listing (requirements file or pyproject.toml)")
	cmd.Flags().StringVar(&opts.python, "python", "", "python interpreter to use")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "show missing packages without installing")

	return cmd
}

func (c *CLI) runInstall(ctx context.Context, opts installOpts) error {
	pipOpts := c.pipOptions(opts.python)

	if opts.dryRun {
		report, err := pip.MissingRequirements(ctx, opts.file, pipOpts)
		if err != nil {
			return err
		}
		if len(report.Missing) == 0 {
			printSuccess("All %d requirements satisfied", len(report.Requested))
			return nil
		}
		printInfo("%d of %d requirements missing:", len(report.Missing), len(report.Requested))
		for _, pkg := range report.Missing {
			printDetail(pkg)
		}
		return nil
	}

	spinner := newSpinnerWithContext(ctx, "Resolving dependencies...")
	spinner.Start()

	report, err := pip.InstallRequirements(ctx, opts.file, pipOpts)
	if err != nil {
		spinner.StopWithError("Installation failed")
		c.recordHistory("install", nil, false)
		return err
	}
	spinner.Stop()

	if !report.Installed {
		printSuccess("All %d requirements already satisfied", len(report.Requested))
		return nil
	}

	c.recordHistory("install", report.Missing, true)
	printSuccess("Installed %d missing packages", len(report.Missing))
	for _, pkg := range report.Missing {
		printDetail(pkg)
	}
	return nil
}
