package service

import "fmt"

// ValidationError reports malformed, missing or out-of-range input
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// NotFoundError reports a referenced resource that doesn't exist
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s does not exist", e.Resource)
}

func invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

var errUserNotFound = &NotFoundError{Resource: "User ID"}
