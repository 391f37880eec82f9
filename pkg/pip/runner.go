package pip

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// DefaultPython is the interpreter used when Options.Python is empty.
const DefaultPython = "python3"

// Result holds the captured outcome of one pip invocation.
type Result struct {
	ExitCode int    // pip's exit code (0 on success)
	Stdout   string // captured standard output
	Stderr   string // captured standard error
}

// Runner executes pip subcommands. The narrow surface keeps the installer
// logic testable without spawning real processes.
type Runner interface {
	// Run invokes "<python> -m pip <args...>" and waits for completion.
	// A non-zero pip exit is reported via Result.ExitCode, not as an error;
	// the error return is reserved for spawn-level faults.
	Run(ctx context.Context, args ...string) (*Result, error)
}

// ExecRunner runs pip through a Python interpreter using os/exec.
// The zero value is ready to use and resolves "python3" from PATH.
type ExecRunner struct {
	Python string // interpreter binary or path (default: python3)
}

// Run executes pip and captures its output as text.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (*Result, error) {
	python := r.Python
	if python == "" {
		python = DefaultPython
	}

	cmd := exec.CommandContext(ctx, python, append([]string{"-m", "pip"}, args...)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := &Result{Stdout: stdout.String(), Stderr: stderr.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return nil, err
	}
	return res, nil
}

// Ensure ExecRunner implements Runner.
var _ Runner = (*ExecRunner)(nil)
