package pip

import (
	"bufio"
	"context"
	"strings"
)

// InstalledPackages queries pip for the currently installed distributions.
// The result maps lowercased package names to their exact installed versions.
// The table is built fresh on every call and never persisted.
func InstalledPackages(ctx context.Context, opts Options) (map[string]string, error) {
	opts = opts.WithDefaults()

	res, err := opts.Runner.Run(ctx, "freeze")
	if err != nil {
		return nil, environmentError(err)
	}
	if res.ExitCode != 0 {
		return nil, installError(res.Stderr)
	}
	return parseFreeze(res.Stdout), nil
}

// parseFreeze parses "name==version" lines from pip freeze output.
// Lines without an exact pin (editable installs, URLs) are skipped.
func parseFreeze(out string) map[string]string {
	installed := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		name, version, ok := strings.Cut(line, "==")
		if !ok || name == "" {
			continue
		}
		installed[strings.ToLower(name)] = strings.TrimSpace(version)
	}
	return installed
}
