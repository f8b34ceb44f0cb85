package transport

import "fmt"

// ErrorCode classifies transport errors.
type ErrorCode int

const (
	// ErrCodeConnection indicates a connection failure (refused, DNS, etc).
	ErrCodeConnection ErrorCode = iota
	// ErrCodeTimeout indicates a request or connection timeout.
	ErrCodeTimeout
	// ErrCodeEncode indicates the request body could not be encoded.
	ErrCodeEncode
	// ErrCodeDecode indicates the response body could not be decoded.
	ErrCodeDecode
	// ErrCodeAuth indicates an authentication/authorization failure (401/403).
	ErrCodeAuth
	// ErrCodeNotFound indicates the resource was not found (404).
	ErrCodeNotFound
	// ErrCodeClient indicates another client-side failure (4xx).
	ErrCodeClient
	// ErrCodeServer indicates a server-side error (5xx).
	ErrCodeServer
)

// String returns the error code name.
func (c ErrorCode) String() string {
	switch c {
	case ErrCodeConnection:
		return "connection"
	case ErrCodeTimeout:
		return "timeout"
	case ErrCodeEncode:
		return "encode"
	case ErrCodeDecode:
		return "decode"
	case ErrCodeAuth:
		return "auth"
	case ErrCodeNotFound:
		return "not_found"
	case ErrCodeClient:
		return "client"
	case ErrCodeServer:
		return "server"
	default:
		return "unknown"
	}
}

// Error is a structured transport error with classification.
type Error struct {
	// Status is the HTTP status code (0 for connection-level errors).
	Status int
	// Code classifies the error.
	Code ErrorCode
	// Message describes the error.
	Message string
	// Body is the original response body (may be nil).
	Body []byte
	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("transport: %s (HTTP %d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("transport: %s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// classifyStatus maps a non-2xx status code to a structured error.
// 2xx and 3xx codes yield nil.
func classifyStatus(status int, body []byte) *Error {
	switch {
	case status == 401 || status == 403:
		return &Error{Status: status, Code: ErrCodeAuth, Message: "authentication failed", Body: body}
	case status == 404:
		return &Error{Status: status, Code: ErrCodeNotFound, Message: "resource not found", Body: body}
	case status >= 400 && status < 500:
		return &Error{Status: status, Code: ErrCodeClient, Message: "request rejected", Body: body}
	case status >= 500:
		return &Error{Status: status, Code: ErrCodeServer, Message: "server error", Body: body}
	default:
		return nil
	}
}
