package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/yourlabxyz/pipkit/pkg/pip"
)

// scriptedRunner replays pip results in order and records every invocation.
type scriptedRunner struct {
	calls   [][]string
	results []*pip.Result
	err     error
}

func (r *scriptedRunner) Run(_ context.Context, args ...string) (*pip.Result, error) {
	r.calls = append(r.calls, args)
	if r.err != nil {
		return nil, r.err
	}
	if len(r.results) == 0 {
		return &pip.Result{}, nil
	}
	res := r.results[0]
	r.results = r.results[1:]
	return res, nil
}

func newTestCLI(runner pip.Runner) *CLI {
	c := New(io.Discard, LogInfo)
	c.Runner = runner
	return c
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	root := newTestCLI(nil).RootCommand()

	want := []string{"install", "add", "list", "check", "outdated", "upgrade", "history", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestCacheDir_RespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-test")

	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir failed: %v", err)
	}
	if dir != filepath.Join("/tmp/xdg-test", appName) {
		t.Errorf("cacheDir = %s, want XDG-based path", dir)
	}
}

func TestInstallCommand_MissingFile(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	runner := &scriptedRunner{}
	c := newTestCLI(runner)

	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"install", "-r", filepath.Join(t.TempDir(), "absent.txt")})

	err := root.Execute()
	if err == nil {
		t.Fatal("expected error for missing requirements file")
	}
	if len(runner.calls) != 0 {
		t.Errorf("expected no pip invocations, got %d", len(runner.calls))
	}
}

func TestInstallCommand_DryRun(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	dir := t.TempDir()
	path := filepath.Join(dir, "requirements.txt")
	writeFile(t, path, "requests==2.31.0\nclick\n")

	runner := &scriptedRunner{results: []*pip.Result{
		{Stdout: "click==8.1.0\n"},
	}}
	c := newTestCLI(runner)

	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"install", "-r", path, "--dry-run"})

	if err := root.Execute(); err != nil {
		t.Fatalf("dry-run failed: %v", err)
	}
	// Dry run resolves via freeze but never invokes pip install.
	if len(runner.calls) != 1 || runner.calls[0][0] != "freeze" {
		t.Errorf("expected a single freeze call, got %v", runner.calls)
	}
}

func TestCheckCommand(t *testing.T) {
	tests := []struct {
		name        string
		requirement string
		wantErr     bool
	}{
		{"satisfied bare", "flask", false},
		{"satisfied pin", "flask==3.0.0", false},
		{"wrong version", "flask==2.0.0", true},
		{"not installed", "django", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner := &scriptedRunner{results: []*pip.Result{
				{Stdout: "Flask==3.0.0\n"},
			}}
			root := newTestCLI(runner).RootCommand()
			root.SetOut(io.Discard)
			root.SetErr(io.Discard)
			root.SetArgs([]string{"check", tt.requirement})

			err := root.Execute()
			if tt.wantErr && err == nil {
				t.Error("expected error for unsatisfied requirement")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestAddCommand_BuildsSpecifier(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	runner := &scriptedRunner{}
	root := newTestCLI(runner).RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"add", "requests", "--version", "2.31.0"})

	if err := root.Execute(); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if len(runner.calls) != 1 {
		t.Fatalf("expected 1 pip invocation, got %d", len(runner.calls))
	}
	call := strings.Join(runner.calls[0], " ")
	if call != "install requests==2.31.0" {
		t.Errorf("pip args = %q, want %q", call, "install requests==2.31.0")
	}
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, LogInfo)

	logger.Debug("hidden")
	logger.Info("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug message should be filtered at info level")
	}
	if !strings.Contains(out, "shown") {
		t.Error("info message should be logged")
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}
