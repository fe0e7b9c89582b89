package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrReminderNotFound   = errors.New("reminder not found")
)

// ValidationError covers every user-correctable rejection: empty text,
// unrecognized weekday, malformed time string, past or too-soon instant.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationErrf(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a user-facing validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// TransportError wraps a failed store or notifier call. The operation
// aborts, prior state stays intact, and the caller shows a generic
// failure indicator.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func transportErr(op string, err error) error {
	return &TransportError{Op: op, Err: err}
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
