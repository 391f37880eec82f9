package pip

import (
	"bufio"
	"os"
	"strings"
)

// Satisfied reports whether one requirement line is already met by the
// installed table. An exact pin ("name==version") requires the name to be
// present with an identical version string; a bare name requires presence
// only. Names compare case-insensitively.
func Satisfied(requirement string, installed map[string]string) bool {
	name, version, pinned := strings.Cut(strings.TrimSpace(requirement), "==")
	have, ok := installed[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return false
	}
	if !pinned {
		return true
	}
	return have == strings.TrimSpace(version)
}

// ReadRequirements reads every requirement line from the listing at path.
// Blank lines and comment lines are skipped.
func ReadRequirements(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
