package rpcs

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	errs "github.com/csePriyanshu/tree-visualizer/errors"
	"github.com/csePriyanshu/tree-visualizer/logs"
)

type ErrMsgs error

var (
	ErrHttpContentLengthMissing ErrMsgs = errors.New("content-length header missing in request")
	ErrHttpContentLengthExceeds ErrMsgs = errors.New("content-length value exceeds request limit")
	ErrHttpContentTypeNotJSON   ErrMsgs = errors.New("content-type has unexpected value")
	ErrHttpHandleExpectsNoBody  ErrMsgs = errors.New("http handle expects no request body")
	ErrHttpDecodeJSON           ErrMsgs = errors.New("error decoding body as json")
)

// HttpError holds the necessary information to return an error when
// using the http protocol
type HttpError struct {
	// Cause of the creation of this HttpError instance
	Cause error

	// StatusCode is the HTTP status code that defines the error cause
	StatusCode int

	// Message is the human-readable string that defines the error cause
	Message string
}

// Log implementation of logs.Loggable
func (e *HttpError) Log(fields logs.Fields) {
	fields.Add("status_code", e.StatusCode)

	if e.Cause != nil {
		var cause *errs.Error
		if errors.As(e.Cause, &cause) {
			cause.Log(fields)
		} else {
			fields.Add("description", e.Cause.Error())
		}
	}
}

// Error is the implementation of go's error interface for Error
func (e *HttpError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s with status code %d", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("%s with status code %d", e.Cause.Error(), e.StatusCode)
}

// Unwrap returns the cause of the error
func (e *HttpError) Unwrap() error {
	return e.Cause
}

// body returns the error that is sent to the client. Errors known by
// the application keep their code and description, anything else is
// reported with the generic message of the status code
func (e *HttpError) body() errs.Error {
	var cause *errs.Error
	if errors.As(e.Cause, &cause) {
		return *cause
	}

	return errs.Error{ErrorCode: errs.ErrorCodeUnknown, Description: e.Message}
}

// MakeHttpError makes a new http error
func MakeHttpError(ctx context.Context, err error, statusCode int, msg string) *HttpError {
	return &HttpError{
		Cause:      err,
		StatusCode: statusCode,
		Message:    msg,
	}
}

// HttpBadRequest returns an HTTP bad request error
func HttpBadRequest(ctx context.Context, err error) *HttpError {
	return MakeHttpError(ctx, err, http.StatusBadRequest, "Bad Request")
}

// HttpNotFound returns an HTTP not found error
func HttpNotFound(ctx context.Context, err error) *HttpError {
	return MakeHttpError(ctx, err, http.StatusNotFound, "Not Found")
}

// HttpMethodNotAllowed returns an HTTP method not allowed error
func HttpMethodNotAllowed(ctx context.Context, err error) *HttpError {
	return MakeHttpError(ctx, err, http.StatusMethodNotAllowed, "Method Not Allowed")
}

// HttpInternalServerError returns an HTTP internal server error
func HttpInternalServerError(ctx context.Context, err error) *HttpError {
	return MakeHttpError(ctx, err, http.StatusInternalServerError, "Internal Server Error")
}
