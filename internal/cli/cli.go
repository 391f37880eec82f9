// Package cli implements the pipkit command-line interface.
//
// This package provides commands for reconciling a Python environment
// against a requirements listing, installing single modules, and inspecting
// installed or outdated packages. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - install: Install missing packages from a requirements listing
//   - add: Install one module, optionally pinned or range-constrained
//   - list: Show installed packages and versions
//   - check: Report whether a requirement is satisfied
//   - outdated: Compare installed versions against PyPI
//   - upgrade: Interactively upgrade outdated packages
//   - history: Show recent install runs
//   - cache: Manage the PyPI response cache
package cli

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/yourlabxyz/pipkit/pkg/buildinfo"
	"github.com/yourlabxyz/pipkit/pkg/history"
	"github.com/yourlabxyz/pipkit/pkg/httputil"
	"github.com/yourlabxyz/pipkit/pkg/pip"
	"github.com/yourlabxyz/pipkit/pkg/pypi"
)

// appName is the application name used for directories and display.
const appName = "pipkit"

// responseTTL is how long PyPI metadata responses stay cached.
const responseTTL = 24 * time.Hour

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Runner overrides the pip invoker; nil means a real subprocess.
	// Tests inject a fake here.
	Runner pip.Runner
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "pipkit",
		Short:        "Pipkit keeps Python dependencies installed and current",
		Long:         `Pipkit is a CLI tool for managing Python package dependencies: it installs what a requirements listing says is missing, adds single modules with version pins, and reports which installed packages have fallen behind PyPI.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.installCommand())
	root.AddCommand(c.addCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.checkCommand())
	root.AddCommand(c.outdatedCommand())
	root.AddCommand(c.upgradeCommand())
	root.AddCommand(c.historyCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// pipOptions builds pip.Options bound to the CLI logger and runner override.
func (c *CLI) pipOptions(python string) pip.Options {
	return pip.Options{
		Python: python,
		Runner: c.Runner,
		Logger: func(msg string, args ...any) { c.Logger.Debugf(msg, args...) },
	}
}

// newPyPIClient creates a registry client, optionally without a cache.
// Cache setup failures degrade to an uncached client rather than failing
// the command.
func (c *CLI) newPyPIClient(noCache bool) *pypi.Client {
	if noCache {
		return pypi.NewClient(nil)
	}
	dir, err := cacheDir()
	if err != nil {
		return pypi.NewClient(nil)
	}
	cache, err := httputil.NewCache(dir, responseTTL)
	if err != nil {
		c.Logger.Debugf("response cache disabled: %v", err)
		return pypi.NewClient(nil)
	}
	return pypi.NewClient(cache)
}

// recordHistory appends one install run to the history file.
// History is best-effort; failures only surface at debug level.
func (c *CLI) recordHistory(command string, specifiers []string, ok bool) {
	dir, err := cacheDir()
	if err != nil {
		return
	}
	store, err := history.NewStore(dir)
	if err != nil {
		c.Logger.Debugf("history disabled: %v", err)
		return
	}
	if err := store.Append(history.New(command, specifiers, ok)); err != nil {
		c.Logger.Debugf("record history: %v", err)
	}
}

// cacheDir returns the cache directory using XDG standard (~/.cache/pipkit/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
