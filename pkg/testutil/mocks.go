package testutil

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"time"
)

// MockRunner is a test double for runner.Runner.
type MockRunner struct {
	LookPathFunc func(file string) (string, error)
	RunFunc      func(ctx context.Context, name string, args ...string) (string, string, error)
	Calls        []string // "name arg1 arg2" per RunContext call, in order
}

// LookPath calls the mock function, or reports /usr/bin/<file> when unset.
func (m *MockRunner) LookPath(file string) (string, error) {
	if m.LookPathFunc == nil {
		return "/usr/bin/" + file, nil
	}
	return m.LookPathFunc(file)
}

// RunContext records the call and delegates to RunFunc.
func (m *MockRunner) RunContext(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	m.Calls = append(m.Calls, strings.TrimSpace(name+" "+strings.Join(args, " ")))
	if m.RunFunc == nil {
		return "", "", nil
	}
	return m.RunFunc(ctx, name, args...)
}

// ExitError mimics *exec.ExitError for a process that exited with Code.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return fmt.Sprintf("exit status %d", e.Code) }

// ExitCode returns the simulated exit status.
func (e *ExitError) ExitCode() int { return e.Code }

// Output returns a RunFunc that prints stdout and exits with code.
func Output(stdout string, code int) func(context.Context, string, ...string) (string, string, error) {
	return func(context.Context, string, ...string) (string, string, error) {
		if code != 0 {
			return stdout, "", &ExitError{Code: code}
		}
		return stdout, "", nil
	}
}

// Hang returns a RunFunc that blocks until the context expires.
func Hang() func(context.Context, string, ...string) (string, string, error) {
	return func(ctx context.Context, _ string, _ ...string) (string, string, error) {
		<-ctx.Done()
		return "", "", ctx.Err()
	}
}

// MockFileSystem is a test double for the Stat-only file system used by checks.
type MockFileSystem struct {
	StatFunc func(name string) (fs.FileInfo, error)
}

// Stat calls the mock function.
func (m *MockFileSystem) Stat(name string) (fs.FileInfo, error) {
	return m.StatFunc(name)
}

// Files returns a StatFunc that finds exactly the given paths.
func Files(paths ...string) func(string) (fs.FileInfo, error) {
	return func(name string) (fs.FileInfo, error) {
		for _, p := range paths {
			if p == name {
				return &MockFileInfo{NameValue: name, ModeValue: 0o644}, nil
			}
		}
		return nil, &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
}

// MockFileInfo is a test double for fs.FileInfo.
type MockFileInfo struct {
	NameValue  string
	SizeValue  int64
	ModeValue  fs.FileMode
	IsDirValue bool
}

func (m *MockFileInfo) Name() string       { return m.NameValue }
func (m *MockFileInfo) Size() int64        { return m.SizeValue }
func (m *MockFileInfo) Mode() fs.FileMode  { return m.ModeValue }
func (m *MockFileInfo) IsDir() bool        { return m.IsDirValue }
func (m *MockFileInfo) Sys() any           { return nil }
func (m *MockFileInfo) ModTime() time.Time { return time.Time{} }

// ContainsDetail checks if any detail string contains the given substring.
func ContainsDetail(details []string, substr string) bool {
	for _, d := range details {
		if strings.Contains(d, substr) {
			return true
		}
	}
	return false
}
