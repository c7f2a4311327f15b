package cli

import "fmt"

// Exit codes.
const (
	ExitSuccess       = 0 // Success
	ExitGeneral       = 1 // General/unknown error
	ExitConfig        = 2 // Invalid YAML, invalid config values
	ExitSensitive     = 3 // check command found a sensitive path
	ExitAgentNotFound = 4 // Agent not found or not detected
	ExitHookFailed    = 5 // Hook installation/removal fails
)

// ExitCoder is an interface for errors that carry a custom exit code and message.
type ExitCoder interface {
	ExitCode() int
	Message() string
}

// cliError is a typed error that carries an exit code.
type cliError struct {
	code    int
	message string
	err     error
}

// NewCLIError creates a new cliError with the given code and message.
func NewCLIError(code int, message string) *cliError {
	return &cliError{
		code:    code,
		message: message,
	}
}

// WrapError creates a new cliError wrapping an underlying error.
func WrapError(code int, message string, err error) *cliError {
	return &cliError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Error implements the error interface.
func (e *cliError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.message, e.err)
	}
	return e.message
}

// ExitCode returns the exit code for this error.
func (e *cliError) ExitCode() int {
	return e.code
}

// Message returns the formatted message for display.
func (e *cliError) Message() string {
	return fmt.Sprintf("Error: %s\n", e.Error())
}

// Unwrap returns the underlying error for errors.Is/errors.As support.
func (e *cliError) Unwrap() error {
	return e.err
}

// ErrConfig creates a configuration error.
func ErrConfig(message string, err error) *cliError {
	return WrapError(ExitConfig, message, err)
}

// ErrAgentNotFound creates an agent not found error.
func ErrAgentNotFound(agentName string) *cliError {
	return NewCLIError(ExitAgentNotFound, fmt.Sprintf("agent not found: %s", agentName))
}

// ErrHookFailed creates a hook operation failure error.
func ErrHookFailed(message string, err error) *cliError {
	return WrapError(ExitHookFailed, message, err)
}

// ErrSensitive reports sensitive paths found by the check command.
func ErrSensitive(count int) *cliError {
	return NewCLIError(ExitSensitive, fmt.Sprintf("%d sensitive path(s) found", count))
}
