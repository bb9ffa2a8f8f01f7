package domain

import "fmt"

// ExitCodeNotStarted is reported when an external command could not be started.
const ExitCodeNotStarted = 127

// CommandError reports a failed external command together with the exit code
// this process should surface.
type CommandError struct {
	Command string
	Code    int
	Err     error
}

func (e *CommandError) Error() string {
	if e.Code == ExitCodeNotStarted {
		return fmt.Sprintf("%s could not be started: %v", e.Command, e.Err)
	}
	return fmt.Sprintf("%s exited with code %d", e.Command, e.Code)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Is reports ErrExternalCommandFailed as a match.
func (e *CommandError) Is(target error) bool {
	return target == ErrExternalCommandFailed
}
