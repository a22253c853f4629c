package xrel

import (
	"errors"
	"fmt"
)

// StatusUnknown is the status code recorded when no HTTP response was
// received at all (connection refused, TLS failure, timeout).
const StatusUnknown = -1

// Common errors raised before any network call is made.
var (
	// ErrMissingParameter indicates a required parameter was empty.
	ErrMissingParameter = errors.New("required parameter missing")

	// ErrRatingOutOfRange indicates a rating outside the 1-10 range.
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 10")

	// ErrExclusiveParams indicates two mutually exclusive parameters were both set.
	ErrExclusiveParams = errors.New("mutually exclusive parameters supplied")

	// ErrMissingToken indicates an authenticated endpoint was called without a token.
	ErrMissingToken = errors.New("endpoint requires an OAuth2 token")

	// ErrMissingScope indicates the token was not granted the required scope.
	ErrMissingScope = errors.New("token lacks the required scope")
)

// APIError is the structured error payload the xREL service returns.
// All fields are optional; the service does not always supply them.
type APIError struct {
	Code        string `json:"error" xml:"error"`
	Type        string `json:"error_type" xml:"error_type"`
	Description string `json:"error_description" xml:"error_description"`
}

func (e *APIError) empty() bool {
	return e.Code == "" && e.Type == "" && e.Description == ""
}

// ClientError is the uniform error every failed API call resolves to.
// StatusCode is StatusUnknown when no HTTP response was received.
// API is nil unless the service supplied a parseable error payload.
type ClientError struct {
	StatusCode int
	API        *APIError
	Message    string

	cause error
}

// Error implements the error interface.
func (e *ClientError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport or decode error, if any.
func (e *ClientError) Unwrap() error {
	return e.cause
}

// IsNotFound reports whether the error indicates a missing resource.
func (e *ClientError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized reports whether the error indicates an authentication failure.
func (e *ClientError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited reports whether the error indicates the rate limit was hit.
func (e *ClientError) IsRateLimited() bool {
	return e.StatusCode == 429
}

// newAPIError wraps a decoded upstream error payload.
func newAPIError(api *APIError, statusCode int) *ClientError {
	return &ClientError{
		StatusCode: statusCode,
		API:        api,
		Message: fmt.Sprintf("error: %s - error_type: %s - error_description: %s - response_code: %d",
			api.Code, api.Type, api.Description, statusCode),
	}
}

// newStatusError covers failure responses whose body carried no parseable
// error payload.
func newStatusError(statusCode int) *ClientError {
	return &ClientError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("response_code: %d", statusCode),
	}
}

// newDecodeError covers response bodies that could not be decoded against
// the expected shape.
func newDecodeError(err error, statusCode int) *ClientError {
	return &ClientError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("failed to decode response: %v - response_code: %d", err, statusCode),
		cause:      err,
	}
}

// newTransportError covers failures before any HTTP response existed.
func newTransportError(err error) *ClientError {
	return &ClientError{
		StatusCode: StatusUnknown,
		Message:    fmt.Sprintf("request failed: %v", err),
		cause:      err,
	}
}
