package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/yourlabxyz/pipkit/pkg/pip"
)

// upgradeCommand creates the upgrade command.
func (c *CLI) upgradeCommand() *cobra.Command {
	var (
		opts outdatedOpts
		all  bool
	)

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade outdated packages to their latest PyPI releases",
		Long: `Find installed packages with newer PyPI releases and upgrade them with
a single pip call. By default an interactive list lets you pick which
packages to upgrade; --all skips the prompt and takes everything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runUpgrade(cmd.Context(), opts, all)
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "upgrade everything without prompting")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the response cache")
	cmd.Flags().StringVar(&opts.python, "python", "", "python interpreter to use")

	return cmd
}

func (c *CLI) runUpgrade(ctx context.Context, opts outdatedOpts, all bool) error {
	spinner := newSpinnerWithContext(ctx, "Checking PyPI for newer releases...")
	spinner.Start()
	pkgs, _, err := c.outdated(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	if len(pkgs) == 0 {
		printSuccess("Everything is up to date")
		return nil
	}

	selected := pkgs
	if !all {
		final, err := tea.NewProgram(NewPackageListModel(pkgs)).Run()
		if err != nil {
			return fmt.Errorf("selection failed: %w", err)
		}
		model, ok := final.(PackageListModel)
		if !ok {
			return fmt.Errorf("unexpected selection model %T", final)
		}
		selected = model.Chosen()
		if len(selected) == 0 {
			printInfo("Nothing selected")
			return nil
		}
	}

	specifiers := make([]string, len(selected))
	for i, p := range selected {
		specifiers[i] = pip.Specifier(p.Name, p.Latest, "")
	}

	spinner = newSpinnerWithContext(ctx, fmt.Sprintf("Upgrading %d packages...", len(specifiers)))
	spinner.Start()
	err = pip.Install(ctx, specifiers, c.pipOptions(opts.python))
	c.recordHistory("upgrade", specifiers, err == nil)
	if err != nil {
		spinner.StopWithError("Upgrade failed")
		return err
	}

	spinner.StopWithSuccess(fmt.Sprintf("Upgraded %d packages", len(specifiers)))
	for _, spec := range specifiers {
		printDetail(spec)
	}
	return nil
}
