// Package errors provides standardized error types for the makessl CLI tool.
//
// The errors package defines domain-specific error types that enable
// structured error handling and consistent error messages throughout
// the application.
//
// # Error Types
//
// SetupError is the primary error type, containing:
//   - Code: Categorizes the error (NOT_FOUND, CONFLICT, etc.)
//   - Message: Human-readable error description
//   - Domain: The domain name involved (if applicable)
//   - Path: The file or directory involved (if applicable)
//   - Err: The underlying wrapped error (if any)
//
// # Usage
//
// Creating domain-specific errors:
//
//	// Missing nginx configuration directory
//	return errors.NotFound("nginx conf dir missing", confDir)
//
//	// Malformed directive in a configuration file
//	return errors.Validation("invalid server_name directive", confPath)
//
//	// Renewal script exists and overwrite was declined
//	return errors.Conflict(savePath)
//
//	// Wrapping an underlying error
//	return errors.Wrap(errors.ErrCodeExec, "issuance tool failed", err)
//
// # Error Checking
//
// Use errors.Is for sentinel error comparison:
//
//	if errors.Is(err, errors.ErrScriptExists) {
//	    // Handle overwrite-declined case
//	}
//
// Use errors.As for type assertion:
//
//	var setupErr *errors.SetupError
//	if errors.As(err, &setupErr) {
//	    fmt.Printf("Error code: %s, Path: %s\n", setupErr.Code, setupErr.Path)
//	}
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes errors for programmatic handling.
type ErrorCode string

// Error codes for different error categories.
const (
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"    // Missing directory or artifact
	ErrCodeValidation   ErrorCode = "VALIDATION"   // Malformed configuration input
	ErrCodeConflict     ErrorCode = "CONFLICT"     // Target exists, overwrite declined
	ErrCodeVerification ErrorCode = "VERIFICATION" // Aggregated reachability failures
	ErrCodePrecondition ErrorCode = "PRECONDITION" // Expected artifacts missing
	ErrCodeConfig       ErrorCode = "CONFIG"       // Configuration load/save error
	ErrCodeExec         ErrorCode = "EXEC"         // Issuance tool invocation error
	ErrCodeAborted      ErrorCode = "ABORTED"      // Operator declined to continue
)

// SetupError represents a structured error with context about the operation.
type SetupError struct {
	Code    ErrorCode // Error category
	Message string    // Human-readable message
	Domain  string    // Domain name (if applicable)
	Path    string    // File or directory path (if applicable)
	Err     error     // Underlying error (if any)
}

// Error implements the error interface.
func (e *SetupError) Error() string {
	msg := e.Message
	if e.Domain != "" {
		msg = fmt.Sprintf("%s: %s", e.Domain, msg)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error for error chain traversal.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error.
// Comparison is based on error code.
func (e *SetupError) Is(target error) bool {
	t, ok := target.(*SetupError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// Sentinel errors for common error scenarios.
// Use these with errors.Is() for error checking.
var (
	// ErrConfDirNotFound indicates the nginx configuration directory is missing.
	ErrConfDirNotFound = &SetupError{Code: ErrCodeNotFound, Message: "nginx conf dir not found"}

	// ErrScriptExists indicates the renewal script exists and overwrite was declined.
	ErrScriptExists = &SetupError{Code: ErrCodeConflict, Message: "renewal script already exists"}

	// ErrCertsMissing indicates the expected certificate artifacts are absent.
	ErrCertsMissing = &SetupError{Code: ErrCodePrecondition, Message: "certificate artifacts missing"}

	// ErrToolNotFound indicates the issuance tool binary is not installed.
	ErrToolNotFound = &SetupError{Code: ErrCodeNotFound, Message: "issuance tool not found"}

	// ErrAborted indicates the operator declined to continue at a prompt.
	ErrAborted = &SetupError{Code: ErrCodeAborted, Message: "aborted by operator"}
)

// NotFound creates an error for a missing directory or artifact.
func NotFound(msg, path string) error {
	return &SetupError{
		Code:    ErrCodeNotFound,
		Message: msg,
		Path:    path,
	}
}

// Validation creates a validation error for a malformed input,
// optionally naming the offending file.
func Validation(msg, path string) error {
	return &SetupError{
		Code:    ErrCodeValidation,
		Message: msg,
		Path:    path,
	}
}

// Conflict creates an error for an existing target whose overwrite
// was declined.
func Conflict(path string) error {
	return &SetupError{
		Code:    ErrCodeConflict,
		Message: "renewal script already exists",
		Path:    path,
	}
}

// Verification creates an aggregated reachability error. The message
// should already contain one line per offending domain/status pair.
func Verification(msg string) error {
	return &SetupError{
		Code:    ErrCodeVerification,
		Message: msg,
	}
}

// Precondition creates an error for missing certificate artifacts.
func Precondition(msg, path string) error {
	return &SetupError{
		Code:    ErrCodePrecondition,
		Message: msg,
		Path:    path,
	}
}

// Wrap creates an error with the specified code, message, and underlying error.
func Wrap(code ErrorCode, msg string, err error) error {
	return &SetupError{
		Code:    code,
		Message: msg,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target.
// This is a re-export of errors.Is for convenience.
var Is = errors.Is

// As finds the first error in err's chain that matches target.
// This is a re-export of errors.As for convenience.
var As = errors.As
