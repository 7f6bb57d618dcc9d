package errors

import "github.com/csePriyanshu/tree-visualizer/logs"

// Error codes returned to clients of the playground
const (
	// ErrorCodeUnknown is used when the cause of an error is not
	// one of the errors known by the server
	ErrorCodeUnknown = -1

	// ErrorCodeInvalidValue is returned when a value cannot be
	// stored in a tree
	ErrorCodeInvalidValue = 1000

	// ErrorCodeInvalidKind is returned when the requested tree
	// variant does not exist
	ErrorCodeInvalidKind = 1001

	// ErrorCodeInvalidOrder is returned when the requested
	// traversal order does not exist
	ErrorCodeInvalidOrder = 1002

	// ErrorCodeNotFound is returned by strict deletions of
	// values that are not in the tree
	ErrorCodeNotFound = 1003
)

// Error is the response returned by the server when it fails
// to satisfy a request
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates a new Error with the provided code
func New(code int, description string) *Error {
	return &Error{ErrorCode: code, Description: description}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log is the implementation of logs.Loggable for Error
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}
