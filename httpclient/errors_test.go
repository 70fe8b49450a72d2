package httpclient

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	underlying := errors.New("dial tcp: connection refused")

	tests := []struct {
		name           string
		err            error
		wantTimeout    bool
		wantConnection bool
		wantRequest    bool
	}{
		{"timeout", NewTimeoutError(underlying), true, false, false},
		{"connection", NewConnectionError(underlying), false, true, false},
		{"request", NewRequestError("bad method"), false, false, true},
		{"wrapped timeout", fmt.Errorf("dispatch: %w", NewTimeoutError(underlying)), true, false, false},
		{"plain error", underlying, false, false, false},
		{"nil", nil, false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeout(tt.err); got != tt.wantTimeout {
				t.Errorf("IsTimeout() = %v, want %v", got, tt.wantTimeout)
			}
			if got := IsConnection(tt.err); got != tt.wantConnection {
				t.Errorf("IsConnection() = %v, want %v", got, tt.wantConnection)
			}
			if got := IsRequest(tt.err); got != tt.wantRequest {
				t.Errorf("IsRequest() = %v, want %v", got, tt.wantRequest)
			}
		})
	}
}

func TestErrorUnwrap(t *testing.T) {
	underlying := errors.New("boom")
	err := NewConnectionError(underlying)
	if !errors.Is(err, underlying) {
		t.Error("errors.Is() did not find the underlying error")
	}
}

func TestErrorString(t *testing.T) {
	err := NewTimeoutError(errors.New("deadline exceeded"))
	want := "httpclient: timeout: deadline exceeded"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
