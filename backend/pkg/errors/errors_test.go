package errors

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsErrorType(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		errType ErrorType
		want    bool
	}{
		{"status error", NewStatus("https://example.com", 401, ""), ErrorTypeStatus, true},
		{"transport error", NewTransport("GET", "https://example.com", io.EOF), ErrorTypeTransport, true},
		{"decode error is not status", NewDecode("https://example.com", "{", io.ErrUnexpectedEOF), ErrorTypeStatus, false},
		{"wrapped config error", fmt.Errorf("load: %w", NewConfigMissingRequired("CLIENT_ID")), ErrorTypeConfig, true},
		{"plain error", errors.New("boom"), ErrorTypeTool, false},
		{"nil", nil, ErrorTypeTool, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsErrorType(tt.err, tt.errType))
		})
	}
}

func TestStatusError_Message(t *testing.T) {
	err := NewStatus("https://www.reddit.com/api/v1/access_token", 401, `{"message": "Unauthorized"}`)

	assert.Contains(t, err.Error(), "401")
	assert.Equal(t, 401, StatusCode(fmt.Errorf("wrapped: %w", err)))
	assert.Equal(t, 0, StatusCode(errors.New("other")))
}

func TestTransportError_Unwrap(t *testing.T) {
	err := NewTransport("POST", "https://www.reddit.com", io.ErrUnexpectedEOF)

	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)

	var transportErr *ErrTransport
	assert.True(t, errors.As(fmt.Errorf("outer: %w", err), &transportErr))
	assert.Equal(t, "POST", transportErr.Method)
}
