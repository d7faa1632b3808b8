package failure

import (
	"errors"
	"net/http"
)

// MessageRemoteFallback is shown when the remote service fails without a message of its own.
const MessageRemoteFallback = "Unable to complete the request. Please try again."

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ForbiddenError = &Failure{Code: http.StatusForbidden, Message: "You don't have the required permissions"}
var SessionNotReadyError = &Failure{Code: http.StatusServiceUnavailable, Message: "session is not ready yet"}
var SignedOutError = &Failure{Code: http.StatusUnauthorized, Message: "you are not signed in"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized returns a new Failure with code for unauthorized requests.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// Unimplemented returns a new Failure with code for unimplemented method.
func Unimplemented(methodName string) error {
	return &Failure{
		Code:    http.StatusNotImplemented,
		Message: methodName,
	}
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

func Forbidden(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// Remote returns a Failure for an error answered by the remote service. Codes outside the
// 4xx/5xx range are reported as bad gateway and an empty message falls back to MessageRemoteFallback.
func Remote(code int, message string) error {
	if code < http.StatusBadRequest || code > 599 {
		code = http.StatusBadGateway
	}

	if message == "" {
		message = MessageRemoteFallback
	}

	return &Failure{
		Code:    code,
		Message: message,
	}
}

// Timeout returns a Failure for a remote call that did not answer in time.
func Timeout(operation string) error {
	return &Failure{
		Code:    http.StatusGatewayTimeout,
		Message: operation + " timed out",
	}
}

// Unavailable returns a Failure for a remote service that could not be reached.
func Unavailable(msg string) error {
	return &Failure{
		Code:    http.StatusServiceUnavailable,
		Message: msg,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// IsCode reports whether err carries the given Failure code.
func IsCode(err error, code int) bool {
	var fail *Failure

	return errors.As(err, &fail) && fail.Code == code
}
