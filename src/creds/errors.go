package creds

import (
	"fmt"
)

// StoreReadError indicates the credentials file exists but could not be
// parsed as INI. The checker treats this state as "needs update"; the
// writer surfaces it instead, so a corrupted store is only ever replaced
// by a deliberate refresh.
type StoreReadError struct {
	Path string
	Err  error
}

func (e *StoreReadError) Error() string {
	return fmt.Sprintf("cannot read credentials store %s: %v", e.Path, e.Err)
}

func (e *StoreReadError) Unwrap() error {
	return e.Err
}

// StoreWriteError indicates the credentials file could not be written back
// (permissions, missing parent directory, disk full).
type StoreWriteError struct {
	Path string
	Err  error
}

func (e *StoreWriteError) Error() string {
	return fmt.Sprintf("cannot write credentials store %s: %v", e.Path, e.Err)
}

func (e *StoreWriteError) Unwrap() error {
	return e.Err
}
