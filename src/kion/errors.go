package kion

import (
	"fmt"
	"strings"
)

// BrokerInvocationError indicates the kion CLI could not be started or
// exited non-zero.
type BrokerInvocationError struct {
	Err error
}

func (e *BrokerInvocationError) Error() string {
	return fmt.Sprintf("kion invocation failed: %v", e.Err)
}

func (e *BrokerInvocationError) Unwrap() error {
	return e.Err
}

// MalformedResponseError indicates the kion CLI exited successfully but its
// output did not match the expected credential shape.
type MalformedResponseError struct {
	Reason  string
	Missing []string
	Err     error
}

func (e *MalformedResponseError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("malformed kion response: missing %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("malformed kion response: %s", e.Reason)
}

func (e *MalformedResponseError) Unwrap() error {
	return e.Err
}
