package kion

import (
	"github.com/hmrd-forpeople/aws-token-updater/src/creds"
)

// Runner specifies the subset of subprocess behaviour the Fetcher needs:
// run a command to completion and return its standard output. Production
// code uses an exec-backed implementation; tests substitute a mock.
type Runner interface {
	Output(name string, args ...string) ([]byte, error)
}

// Fetcher obtains a fresh credential bundle for a kion favourite by
// invoking the kion CLI. The call blocks until the CLI exits; no timeout
// or retry is applied at this layer.
type Fetcher interface {
	Fetch(favourite string) (creds.FetchResult, error)
}

// Installer places the kion CLI configuration where the CLI expects to
// find it. Install must run before Fetcher.Fetch.
type Installer interface {
	Install() error
}
