package kion

import (
	"os/exec"
)

// NewExecRunner returns a Runner backed by os/exec. Commands inherit this
// process's environment; on a non-zero exit the CLI's standard error is
// carried inside the returned *exec.ExitError.
func NewExecRunner() Runner {
	return &execRunner{}
}

func (r *execRunner) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)
	return cmd.Output()
}

type execRunner struct{}
