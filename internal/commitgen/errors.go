package commitgen

import (
	"errors"
	"fmt"
)

// ErrCancelled reports a decline at the confirmation gate. It is a clean
// cancellation, not a failure: no commit was attempted.
var ErrCancelled = errors.New("commit cancelled by user")

// ConfigurationError reports invalid or conflicting flag/env combinations.
type ConfigurationError struct {
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// RepositoryError reports a failure of a git operation (diff retrieval or
// commit). The underlying git stderr is preserved in Err.
type RepositoryError struct {
	Op  string
	Err error
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("repository %s failed: %v", e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() error { return e.Err }

// ModelError reports a failed model invocation. A single attempt is made per
// run; the failure is fatal to that run and never retried.
type ModelError struct {
	Err error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("model invocation failed: %v", e.Err)
}

func (e *ModelError) Unwrap() error { return e.Err }
