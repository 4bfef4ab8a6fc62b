package cli

import (
	"errors"
	"fmt"

	"bfhl-hq/bfhl/pkg/api"
	"bfhl-hq/bfhl/pkg/config"
)

// Process exit codes.
const (
	ExitOK           = 0
	ExitFailure      = 1
	ExitConfigError  = 2
	ExitInvalidInput = 3
)

// ConfigError represents an error in configuration.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %s", e.Field, e.Message)
}

// CommandError represents an error from a command execution.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %s failed: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(field, message string) *ConfigError {
	return &ConfigError{
		Field:   field,
		Message: message,
	}
}

// NewCommandError creates a new CommandError.
func NewCommandError(command string, err error) *CommandError {
	return &CommandError{
		Command: command,
		Err:     err,
	}
}

// ConfigErrors converts a config.ValidationError into one ConfigError per
// field. It returns nil when err carries no validation errors.
func ConfigErrors(err error) []*ConfigError {
	var verr config.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	out := make([]*ConfigError, 0, len(verr.Errors))
	for _, fe := range verr.Errors {
		out = append(out, NewConfigError(fe.Field, fe.Message))
	}
	return out
}

// ExitCode returns the process exit status for err.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}

	var cfgErr *ConfigError
	var verr config.ValidationError
	if errors.As(err, &cfgErr) || errors.As(err, &verr) {
		return ExitConfigError
	}

	if api.FailureReason(err) != "" {
		return ExitInvalidInput
	}

	return ExitFailure
}
