package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrAuthFailed indicates the backend rejected the credentials.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrNetwork indicates the transport could not reach the backend.
	ErrNetwork = errors.New("network unreachable")
	// ErrValidation indicates a malformed request or response payload.
	ErrValidation = errors.New("validation failed")
	// ErrPermissionDenied indicates a client-side gate refusal.
	ErrPermissionDenied = errors.New("permission denied")
)
