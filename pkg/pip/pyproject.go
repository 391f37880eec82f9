package pip

import (
	"os"

	"github.com/BurntSushi/toml"
)

// ReadPyproject extracts the [project] dependencies from a pyproject.toml.
// Each entry is returned verbatim (PEP 508 strings pass through to pip).
func ReadPyproject(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var manifest struct {
		Project struct {
			Dependencies []string `toml:"dependencies"`
		} `toml:"project"`
	}
	if err := toml.Unmarshal(data, &manifest); err != nil {
		return nil, err
	}
	return manifest.Project.Dependencies, nil
}
