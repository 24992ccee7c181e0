package errors

import (
	"errors"
	"fmt"
	"time"
)

// ErrorType represents the category of error
type ErrorType string

const (
	// ErrorTypeTransport represents connection, DNS or TLS failures
	ErrorTypeTransport ErrorType = "transport"
	// ErrorTypeStatus represents non-200 HTTP responses
	ErrorTypeStatus ErrorType = "status"
	// ErrorTypeDecode represents response bodies that could not be decoded
	ErrorTypeDecode ErrorType = "decode"
	// ErrorTypeRequest represents invalid outbound request input
	ErrorTypeRequest ErrorType = "request"
	// ErrorTypeTool represents tool execution errors
	ErrorTypeTool ErrorType = "tool"
	// ErrorTypeConfig represents configuration errors
	ErrorTypeConfig ErrorType = "config"
	// ErrorTypeContext represents context cancellation/timeout errors
	ErrorTypeContext ErrorType = "context"
)

// BaseError is the base error type with common fields
type BaseError struct {
	Type      ErrorType
	Message   string
	Timestamp time.Time
	Err       error // Wrapped error
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error for error unwrapping
func (e *BaseError) Unwrap() error {
	return e.Err
}

// ErrorType returns the category of the error
func (e *BaseError) ErrorType() ErrorType {
	return e.Type
}

// NewBaseError creates a new base error
func NewBaseError(errType ErrorType, message string, err error) *BaseError {
	return &BaseError{
		Type:      errType,
		Message:   message,
		Timestamp: time.Now(),
		Err:       err,
	}
}

// HTTP Errors

// ErrTransport is returned when the HTTP round trip itself fails
type ErrTransport struct {
	*BaseError
	Method string
	URL    string
}

func NewTransport(method, url string, err error) *ErrTransport {
	return &ErrTransport{
		BaseError: NewBaseError(ErrorTypeTransport, fmt.Sprintf("%s request failed: %s", method, url), err),
		Method:    method,
		URL:       url,
	}
}

// ErrStatus is returned when the server answers with anything other than 200
type ErrStatus struct {
	*BaseError
	URL        string
	StatusCode int
	Body       string
}

func NewStatus(url string, statusCode int, body string) *ErrStatus {
	return &ErrStatus{
		BaseError:  NewBaseError(ErrorTypeStatus, fmt.Sprintf("request failed with status: %d", statusCode), nil),
		URL:        url,
		StatusCode: statusCode,
		Body:       body,
	}
}

// ErrDecode is returned when a 200 response body does not match the expected shape
type ErrDecode struct {
	*BaseError
	URL  string
	Body string
}

func NewDecode(url, body string, err error) *ErrDecode {
	return &ErrDecode{
		BaseError: NewBaseError(ErrorTypeDecode, "failed to parse the response", err),
		URL:       url,
		Body:      body,
	}
}

// ErrInvalidRequest is returned before any network call when request input is unusable
type ErrInvalidRequest struct {
	*BaseError
	Field string
}

func NewInvalidRequest(field, reason string) *ErrInvalidRequest {
	return &ErrInvalidRequest{
		BaseError: NewBaseError(ErrorTypeRequest, fmt.Sprintf("invalid request: %s %s", field, reason), nil),
		Field:     field,
	}
}

// Tool Errors

// ErrToolNotFound is returned when a requested tool is not found
type ErrToolNotFound struct {
	*BaseError
	ToolName string
}

func NewToolNotFound(toolName string) *ErrToolNotFound {
	return &ErrToolNotFound{
		BaseError: NewBaseError(ErrorTypeTool, fmt.Sprintf("tool not found: %s", toolName), nil),
		ToolName:  toolName,
	}
}

// ErrToolInvalidArguments is returned when tool arguments cannot be decoded
type ErrToolInvalidArguments struct {
	*BaseError
	ToolName string
}

func NewToolInvalidArguments(toolName string, err error) *ErrToolInvalidArguments {
	return &ErrToolInvalidArguments{
		BaseError: NewBaseError(ErrorTypeTool, fmt.Sprintf("invalid arguments for tool: %s", toolName), err),
		ToolName:  toolName,
	}
}

// Context Errors

// ErrContextCancelled is returned when context is cancelled
type ErrContextCancelled struct {
	*BaseError
	Operation string
}

func NewContextCancelled(operation string, err error) *ErrContextCancelled {
	return &ErrContextCancelled{
		BaseError: NewBaseError(ErrorTypeContext, fmt.Sprintf("context cancelled: %s", operation), err),
		Operation: operation,
	}
}

// Config Errors

// ErrConfigValidationFailed is returned when configuration validation fails
type ErrConfigValidationFailed struct {
	*BaseError
	Field  string
	Reason string
}

func NewConfigValidationFailed(field, reason string) *ErrConfigValidationFailed {
	return &ErrConfigValidationFailed{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("config validation failed: %s - %s", field, reason), nil),
		Field:     field,
		Reason:    reason,
	}
}

// ErrConfigMissingRequired is returned when a required config value is missing
type ErrConfigMissingRequired struct {
	*BaseError
	Field string
}

func NewConfigMissingRequired(field string) *ErrConfigMissingRequired {
	return &ErrConfigMissingRequired{
		BaseError: NewBaseError(ErrorTypeConfig, fmt.Sprintf("missing required config: %s", field), nil),
		Field:     field,
	}
}

// Helper functions

type typedError interface {
	error
	ErrorType() ErrorType
}

// IsErrorType checks if an error, or any error it wraps, is of a specific type
func IsErrorType(err error, errType ErrorType) bool {
	for err != nil {
		if te, ok := err.(typedError); ok && te.ErrorType() == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// StatusCode returns the HTTP status carried by err, or 0 if there is none
func StatusCode(err error) int {
	var statusErr *ErrStatus
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode
	}
	return 0
}
