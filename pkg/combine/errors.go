package combine

import (
	"errors"
	"fmt"
)

// ErrUserAborted is returned when the user declines the overwrite
// confirmation. It is a successful no-op outcome, not a failure: callers map
// it to exit code 0 and the existing destination is left untouched.
var ErrUserAborted = errors.New("aborted by user")

// PathError reports an unusable source or destination path. It is the only
// error class that halts a run.
type PathError struct {
	Op   string // What was being resolved, e.g. "resolve source".
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error { return e.Err }
