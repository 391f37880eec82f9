// Package pkg provides the core libraries behind the pipkit CLI.
//
// # Overview
//
// Pipkit reconciles a Python environment against a requirements listing: it
// asks pip what is installed, works out which requirements are missing, and
// installs the remainder in one shot. The pkg directory is organized into
// four areas:
//
//  1. [pip] - Environment reconciliation (freeze parsing, requirement
//     matching, install orchestration)
//  2. [pypi] - PyPI JSON API client for release metadata
//  3. [history] - Append-only log of install runs
//  4. [httputil] - HTTP response caching and retry helpers
//
// # Quick Start
//
// Install every missing package from a requirements file:
//
//	import (
//	    "context"
//	    "github.com/yourlabxyz/pipkit/pkg/pip"
//	)
//
//	report, err := pip.InstallRequirements(context.Background(),
//	    "requirements.txt", pip.Options{})
//	if err != nil {
//	    // pip.ErrMissingRequirements, pip.ErrInstall, pip.ErrEnvironment
//	}
//	fmt.Printf("installed %d of %d\n", len(report.Missing), len(report.Requested))
//
// Install a single pinned module:
//
//	installed, err := pip.InstallModule(ctx, "requests", pip.ModuleOptions{
//	    Version: "2.31.0",
//	})
//
// Look up the latest release on PyPI:
//
//	client := pypi.NewClient(nil)
//	info, err := client.FetchPackage(ctx, "requests", false)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/pip/...      # Specific package
//
// [pip]: https://pkg.go.dev/github.com/yourlabxyz/pipkit/pkg/pip
// [pypi]: https://pkg.go.dev/github.com/yourlabxyz/pipkit/pkg/pypi
// [history]: https://pkg.go.dev/github.com/yourlabxyz/pipkit/pkg/history
// [httputil]: https://pkg.go.dev/github.com/yourlabxyz/pipkit/pkg/httputil
package pkg
