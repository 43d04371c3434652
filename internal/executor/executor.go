// Package executor abstracts subprocess invocation so commands can be
// substituted with fakes in tests.
package executor

import (
	"os"
	"os/exec"
)

// CommandExecutor is an interface for executing system commands
type CommandExecutor interface {
	// Execute runs a command with the given name and arguments and
	// returns its combined output
	Execute(name string, args ...string) ([]byte, error)

	// ExecuteInteractive runs a command in the given working directory
	// with stdin, stdout and stderr attached to the terminal
	ExecuteInteractive(dir, name string, args ...string) error

	// LookPath searches for an executable in the directories named by the PATH
	LookPath(file string) (string, error)
}

// SystemExecutor implements CommandExecutor using os/exec
type SystemExecutor struct{}

// NewSystemExecutor creates a new SystemExecutor
func NewSystemExecutor() *SystemExecutor {
	return &SystemExecutor{}
}

// Execute runs a command and returns combined output
func (e *SystemExecutor) Execute(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.CombinedOutput()
}

// ExecuteInteractive runs a command with terminal passthrough. The
// external issuance tool prompts and prints progress itself, so its
// stdio must not be captured.
func (e *SystemExecutor) ExecuteInteractive(dir, name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// LookPath searches for an executable
func (e *SystemExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// MockExecutor is a mock implementation for testing
type MockExecutor struct {
	ExecuteFunc     func(name string, args ...string) ([]byte, error)
	InteractiveFunc func(dir, name string, args ...string) error
	LookPathFunc    func(file string) (string, error)
	Calls           []CommandCall
}

// CommandCall records a command execution for verification
type CommandCall struct {
	Dir  string
	Name string
	Args []string
}

// Execute calls the mock function
func (m *MockExecutor) Execute(name string, args ...string) ([]byte, error) {
	m.Calls = append(m.Calls, CommandCall{Name: name, Args: args})
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(name, args...)
	}
	return []byte(""), nil
}

// ExecuteInteractive calls the mock function
func (m *MockExecutor) ExecuteInteractive(dir, name string, args ...string) error {
	m.Calls = append(m.Calls, CommandCall{Dir: dir, Name: name, Args: args})
	if m.InteractiveFunc != nil {
		return m.InteractiveFunc(dir, name, args...)
	}
	return nil
}

// LookPath calls the mock function
func (m *MockExecutor) LookPath(file string) (string, error) {
	if m.LookPathFunc != nil {
		return m.LookPathFunc(file)
	}
	return "/usr/bin/" + file, nil
}
