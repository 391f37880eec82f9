package pip

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for installation operations.
var (
	// ErrMissingRequirements is returned when the requirements listing does
	// not exist or cannot be read.
	ErrMissingRequirements = errors.New("requirements file not found")

	// ErrInstall is returned when pip exits non-zero while installing or
	// enumerating modules. The wrapped message carries pip's stderr.
	ErrInstall = errors.New("module installation failed")

	// ErrEnvironment is returned for OS-level faults, e.g. when the Python
	// interpreter cannot be spawned.
	ErrEnvironment = errors.New("environment error")
)

// installError wraps ErrInstall with pip's captured stderr.
// An empty stderr is replaced with a placeholder so the message is never blank.
func installError(stderr string) error {
	msg := strings.TrimSpace(stderr)
	if msg == "" {
		msg = "unknown error"
	}
	return fmt.Errorf("%w: %s", ErrInstall, msg)
}

// environmentError wraps ErrEnvironment around a lower-level fault.
func environmentError(err error) error {
	return fmt.Errorf("%w: %v", ErrEnvironment, err)
}
