package cli

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/exp/maps"

	"github.com/spf13/cobra"

	"github.com/yourlabxyz/pipkit/pkg/pip"
)

// OutdatedPackage describes an installed package with a newer PyPI release.
type OutdatedPackage struct {
	Name    string // normalized package name
	Current string // installed version
	Latest  string // latest version on PyPI
}

// outdatedOpts holds the command-line flags shared by outdated and upgrade.
type outdatedOpts struct {
	refresh bool   // bypass the response cache
	noCache bool   // disable the response cache entirely
	python  string // interpreter override
}

// outdatedCommand creates the outdated command.
func (c *CLI) outdatedCommand() *cobra.Command {
	var opts outdatedOpts

	cmd := &cobra.Command{
		Use:   "outdated",
		Short: "Show installed packages with newer PyPI releases",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOutdated(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass the response cache")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the response cache")
	cmd.Flags().StringVar(&opts.python, "python", "", "python interpreter to use")

	return cmd
}

func (c *CLI) runOutdated(ctx context.Context, opts outdatedOpts) error {
	prog := newProgress(c.Logger)

	spinner := newSpinnerWithContext(ctx, "Checking PyPI for newer releases...")
	spinner.Start()
	pkgs, total, err := c.outdated(ctx, opts)
	spinner.Stop()
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Checked %d packages", total))

	if len(pkgs) == 0 {
		printSuccess("Everything is up to date")
		return nil
	}

	printInfo("%d packages have newer releases:", len(pkgs))
	for _, p := range pkgs {
		fmt.Println("  " + StyleValue.Render(p.Name) + " " +
			StyleDim.Render(p.Current) + " " + StyleDim.Render(iconArrow) + " " +
			StyleNumber.Render(p.Latest))
	}
	printNextStep("Upgrade interactively", "pipkit upgrade")
	return nil
}

// outdated compares every installed package against PyPI's latest release.
// Packages that cannot be resolved on the registry (local builds, private
// distributions) are skipped with a debug log. Lookups run sequentially.
func (c *CLI) outdated(ctx context.Context, opts outdatedOpts) ([]OutdatedPackage, int, error) {
	installed, err := pip.InstalledPackages(ctx, c.pipOptions(opts.python))
	if err != nil {
		return nil, 0, err
	}

	client := c.newPyPIClient(opts.noCache)

	var outdated []OutdatedPackage
	names := maps.Keys(installed)
	slices.Sort(names)
	for _, name := range names {
		info, err := client.FetchPackage(ctx, name, opts.refresh)
		if err != nil {
			c.Logger.Debugf("skipping %s: %v", name, err)
			continue
		}
		if info.Version != "" && info.Version != installed[name] {
			outdated = append(outdated, OutdatedPackage{
				Name:    info.Name,
				Current: installed[name],
				Latest:  info.Version,
			})
		}
	}
	return outdated, len(installed), nil
}
