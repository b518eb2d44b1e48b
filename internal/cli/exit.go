package cli

import "errors"

// Process exit codes. Usage and I/O errors exit 1 via cobra's default.
const (
	ExitConverged     = 0
	ExitUsageError    = 1
	ExitMaxIterations = 2
	ExitFailure       = 3
)

// ExitError carries a specific process exit code out of a command.
type ExitError struct {
	Code int
	Msg  string
}

func (e *ExitError) Error() string { return e.Msg }

// ExitCode maps a command error to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitConverged
	}
	var ee *ExitError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ExitUsageError
}
