package common

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	wrapped := fmt.Errorf("generate: %w", NewUserError("File 'x.xlsx' not found", ErrInputNotFound))

	assert.Equal(t, "File 'x.xlsx' not found", UserMessage(wrapped))
	assert.ErrorIs(t, wrapped, ErrInputNotFound)
	assert.Equal(t, "plain", UserMessage(errors.New("plain")))
	assert.Equal(t, "File 'x.xlsx' not found: input not found", NewUserError("File 'x.xlsx' not found", ErrInputNotFound).Error())
	assert.Equal(t, "only message", NewUserError("only message", nil).Error())
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want bool
	}{
		{name: "rate limit", err: fmt.Errorf("api: %w", ErrRateLimit), want: true},
		{name: "deadline", err: context.DeadlineExceeded, want: true},
		{name: "transient", err: Transient(errors.New("503")), want: true},
		{name: "permanent", err: Permanent(errors.New("400")), want: false},
		{name: "plain", err: errors.New("other"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRetryable(tt.err))
		})
	}
}
