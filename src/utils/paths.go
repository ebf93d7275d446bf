package utils

import (
	"os"
	"path/filepath"
)

// HomePath joins the given path elements underneath the current user's home
// directory. When the home directory cannot be determined it falls back to
// the HOME environment variable, which may be empty; callers treat the
// result as a default that can be overridden by configuration.
func HomePath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.Getenv("HOME")
	}
	return filepath.Join(append([]string{home}, elem...)...)
}
