package cli

// CommandError signals a failure the command has already reported on
// stderr. Main exits with ExitCode and prints nothing more.
type CommandError struct {
	exitCode int
	summary  string
}

// NewCommandError creates a CommandError. summary is a short description for
// callers that log the error, such as watch mode.
func NewCommandError(exitCode int, summary string) *CommandError {
	return &CommandError{exitCode: exitCode, summary: summary}
}

func (e *CommandError) Error() string {
	if e.summary == "" {
		return "command failed"
	}
	return e.summary
}

// ExitCode returns the exit code associated with this error.
func (e *CommandError) ExitCode() int {
	return e.exitCode
}
