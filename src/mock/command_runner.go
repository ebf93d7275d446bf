package mock

import (
	"fmt"
	"strings"
)

// CommandRunner implements github.com/hmrd-forpeople/aws-token-updater/src/kion.Runner.
// Outputs maps full command lines (command and arguments joined by spaces)
// to canned standard output.
type CommandRunner struct {
	Outputs map[string][]byte
	Calls   []string
}

// NewCommandRunner returns a mock CommandRunner.
func NewCommandRunner() *CommandRunner {
	return &CommandRunner{
		Outputs: make(map[string][]byte),
	}
}

// Output records the invocation and returns the canned output for the
// command line, or an error when none was registered.
func (mock *CommandRunner) Output(name string, args ...string) ([]byte, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	mock.Calls = append(mock.Calls, line)
	output, hasKey := mock.Outputs[line]
	if !hasKey {
		return nil, fmt.Errorf("no output registered for command: %s", line)
	}
	return output, nil
}
