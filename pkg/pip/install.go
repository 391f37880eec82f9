package pip

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultRequirements is the listing used when no path is given.
const DefaultRequirements = "requirements.txt"

// Options configures installation behavior.
type Options struct {
	Python string               // interpreter binary or path (default: python3)
	Runner Runner               // pip invoker (default: ExecRunner with Python)
	Logger func(string, ...any) // progress/debug callback (optional)
}

// WithDefaults returns a copy of Options with zero values replaced by defaults.
func (o Options) WithDefaults() Options {
	opts := o
	if opts.Python == "" {
		opts.Python = DefaultPython
	}
	if opts.Runner == nil {
		opts.Runner = &ExecRunner{Python: opts.Python}
	}
	if opts.Logger == nil {
		opts.Logger = func(string, ...any) {}
	}
	return opts
}

// InstallReport describes the outcome of a requirements reconciliation.
type InstallReport struct {
	Requested []string // every requirement line read from the listing
	Missing   []string // entries that were not yet satisfied
	Installed bool     // whether pip was invoked to install the missing entries
}

// MissingRequirements resolves the listing at path against the installed
// table without installing anything. The listing may be a requirements file
// or a pyproject.toml (detected by filename).
//
// Returns ErrMissingRequirements if the listing does not exist or cannot be
// read; no pip install is ever attempted in that case.
func MissingRequirements(ctx context.Context, path string, opts Options) (*InstallReport, error) {
	opts = opts.WithDefaults()
	if path == "" {
		path = DefaultRequirements
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequirements, path)
	}
	if info, err := os.Stat(absPath); err != nil || info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequirements, path)
	}

	installed, err := InstalledPackages(ctx, opts)
	if err != nil {
		return nil, err
	}

	lines, err := readListing(absPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingRequirements, path)
	}

	report := &InstallReport{Requested: lines}
	for _, line := range lines {
		if !Satisfied(line, installed) {
			report.Missing = append(report.Missing, line)
		}
	}
	return report, nil
}

// InstallRequirements ensures every requirement in the listing at path is
// installed. Already-satisfied entries are filtered out first; when nothing
// is missing, pip install is not invoked at all. The missing entries are
// installed with a single pip call using --no-cache-dir and --no-deps so the
// install neither touches the local wheel cache nor pulls in transitive
// dependencies beyond the listing.
func InstallRequirements(ctx context.Context, path string, opts Options) (*InstallReport, error) {
	opts = opts.WithDefaults()

	report, err := MissingRequirements(ctx, path, opts)
	if err != nil {
		return nil, err
	}
	if len(report.Missing) == 0 {
		opts.Logger("all %d requirements already satisfied", len(report.Requested))
		return report, nil
	}

	opts.Logger("installing %d missing requirements", len(report.Missing))
	args := append([]string{"install", "--no-cache-dir", "--no-deps"}, report.Missing...)
	res, err := opts.Runner.Run(ctx, args...)
	if err != nil {
		return nil, environmentError(err)
	}
	if res.ExitCode != 0 {
		return nil, installError(res.Stderr)
	}

	report.Installed = true
	opts.Logger("successfully installed dependencies")
	return report, nil
}

// Install invokes pip once to install the given specifiers verbatim.
// A nil or empty specifier list is a no-op.
func Install(ctx context.Context, specifiers []string, opts Options) error {
	if len(specifiers) == 0 {
		return nil
	}
	opts = opts.WithDefaults()

	res, err := opts.Runner.Run(ctx, append([]string{"install"}, specifiers...)...)
	if err != nil {
		return environmentError(err)
	}
	if res.ExitCode != 0 {
		return installError(res.Stderr)
	}
	return nil
}

// ModuleOptions configures a single-module installation.
type ModuleOptions struct {
	Version string // exact version pin (takes precedence over Range)
	Range   string // version-range expression, e.g. ">=1.0,!=2.0"
	Options
}

// Specifier builds the string handed to pip install for one module.
// An exact version wins over a range; with neither, the bare name installs
// the latest available version.
func Specifier(module, version, versionRange string) string {
	switch {
	case version != "":
		return module + "==" + version
	case versionRange != "":
		return module + versionRange
	default:
		return module
	}
}

// InstallModule installs one module via a single pip invocation and returns
// true iff pip exited zero. Both a non-zero exit and an OS-level fault during
// the call surface as ErrInstall, matching the single-module contract.
func InstallModule(ctx context.Context, module string, opts ModuleOptions) (bool, error) {
	o := opts.Options.WithDefaults()
	spec := Specifier(module, opts.Version, opts.Range)

	o.Logger("installing %s", spec)
	res, err := o.Runner.Run(ctx, "install", spec)
	if err != nil {
		return false, fmt.Errorf("%w: system or dependency error for module %s: %v", ErrInstall, module, err)
	}
	if res.ExitCode != 0 {
		return false, installError(res.Stderr)
	}

	o.Logger("module %s successfully installed", module)
	return true, nil
}

// readListing reads requirement lines from path, dispatching on the filename.
func readListing(path string) ([]string, error) {
	if filepath.Base(path) == "pyproject.toml" {
		return ReadPyproject(path)
	}
	return ReadRequirements(path)
}
